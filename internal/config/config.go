package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. COUNTER_LOG_LEVEL for
// the log-level key.
const EnvPrefix = "COUNTER"

const (
	KeyLogLevel = "log-level"
	KeyScenario = "scenario"
	KeyQuiet    = "quiet"
)

type Config struct {
	LogLevel logrus.Level

	// ScenarioPath is the YAML or JSON scenario to run. Empty selects the
	// built-in scenario.
	ScenarioPath string

	// Quiet suppresses the queue table printed after every service.
	Quiet bool
}

func Default() *Config {
	return &Config{
		LogLevel: logrus.InfoLevel,
	}
}

// BindFlags registers the command line flags read by Load.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(KeyLogLevel, d.LogLevel.String(), "log level (env "+envName(KeyLogLevel)+")")
	fs.String(KeyScenario, d.ScenarioPath, "YAML or JSON scenario file, empty for the built-in scenario (env "+envName(KeyScenario)+")")
	fs.Bool(KeyQuiet, d.Quiet, "only report services and the summary (env "+envName(KeyQuiet)+")")
}

// Load builds a Config. Flags set on the command line take precedence over
// environment variables, which take precedence over Default. fs may be nil
// to read the environment only.
func Load(fs *pflag.FlagSet) (*Config, error) {
	d := Default()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, d.LogLevel.String())
	v.SetDefault(KeyScenario, d.ScenarioPath)
	v.SetDefault(KeyQuiet, d.Quiet)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, errors.Wrap(err, "config: bind flags")
		}
	}

	level, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", KeyLogLevel)
	}

	quiet, err := cast.ToBoolE(v.Get(KeyQuiet))
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", KeyQuiet)
	}

	return &Config{
		LogLevel:     level,
		ScenarioPath: v.GetString(KeyScenario),
		Quiet:        quiet,
	}, nil
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}
