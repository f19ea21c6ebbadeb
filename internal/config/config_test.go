package config_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/tomasbasham/mlqueue/internal/config"
)

func TestLoad(t *testing.T) {
	tests := map[string]struct {
		env     map[string]string
		args    []string
		want    config.Config
		wantErr bool
	}{
		"defaults when unset": {
			want: config.Config{LogLevel: logrus.InfoLevel},
		},
		"all variables set": {
			env: map[string]string{
				"COUNTER_LOG_LEVEL": "debug",
				"COUNTER_SCENARIO":  "testdata/rush.yaml",
				"COUNTER_QUIET":     "true",
			},
			want: config.Config{
				LogLevel:     logrus.DebugLevel,
				ScenarioPath: "testdata/rush.yaml",
				Quiet:        true,
			},
		},
		"empty values keep defaults": {
			env: map[string]string{
				"COUNTER_LOG_LEVEL": "",
				"COUNTER_QUIET":     "",
			},
			want: config.Config{LogLevel: logrus.InfoLevel},
		},
		"flags override environment": {
			env: map[string]string{
				"COUNTER_LOG_LEVEL": "debug",
				"COUNTER_SCENARIO":  "from-env.yaml",
			},
			args: []string{"--log-level", "warn", "--scenario", "from-flag.yaml", "--quiet"},
			want: config.Config{
				LogLevel:     logrus.WarnLevel,
				ScenarioPath: "from-flag.yaml",
				Quiet:        true,
			},
		},
		"unset flags fall back to environment": {
			env: map[string]string{
				"COUNTER_QUIET": "true",
			},
			args: []string{"--scenario", "from-flag.yaml"},
			want: config.Config{
				LogLevel:     logrus.InfoLevel,
				ScenarioPath: "from-flag.yaml",
				Quiet:        true,
			},
		},
		"invalid log level": {
			env:     map[string]string{"COUNTER_LOG_LEVEL": "loud"},
			wantErr: true,
		},
		"invalid log level flag": {
			args:    []string{"--log-level", "loud"},
			wantErr: true,
		},
		"invalid quiet value": {
			env:     map[string]string{"COUNTER_QUIET": "sometimes"},
			wantErr: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// t.Setenv forbids t.Parallel.
			for _, key := range []string{"COUNTER_LOG_LEVEL", "COUNTER_SCENARIO", "COUNTER_QUIET"} {
				t.Setenv(key, "")
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			var fs *pflag.FlagSet
			if tt.args != nil {
				fs = pflag.NewFlagSet(name, pflag.ContinueOnError)
				config.BindFlags(fs)
				if err := fs.Parse(tt.args); err != nil {
					t.Fatalf("unexpected parse error: %v", err)
				}
			}

			cfg, err := config.Load(fs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error: %v, got: %v", tt.wantErr, err)
			}
			if tt.wantErr {
				return
			}

			if *cfg != tt.want {
				t.Errorf("mismatch:\n  got:  %+v\n  want: %+v", *cfg, tt.want)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	// Each call returns a fresh value so callers cannot share state.
	a, b := config.Default(), config.Default()
	a.Quiet = true
	if b.Quiet {
		t.Error("expected defaults to be independent")
	}
}
