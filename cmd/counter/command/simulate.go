package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tomasbasham/mlqueue"
	"github.com/tomasbasham/mlqueue/internal/config"
)

type Simulate struct {
	Logger *logrus.Logger
}

func (cmd Simulate) Command(ctx context.Context, _ *config.Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "simulate",
		Short: "serve a scenario and report the queue after every service",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.Load(c.Flags())
			if err != nil {
				return errors.Wrap(err, "simulate : failed to load config")
			}
			cmd.Logger.SetLevel(cfg.LogLevel)
			return cmd.main(ctx, cfg, c.OutOrStdout())
		},
	}

	config.BindFlags(c.Flags())

	return c
}

func (cmd Simulate) main(ctx context.Context, cfg *config.Config, out io.Writer) error {
	logger := cmd.Logger.WithContext(ctx).WithField("run", uuid.NewString())

	scenario, err := loadScenario(cfg.ScenarioPath)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"scenario": scenario.Name,
		"arrivals": len(scenario.Arrivals),
	}).Info("starting simulation")

	q := mlqueue.New(mlqueue.WithMetricsHook(logHook{entry: logger}))
	for _, e := range scenario.Entities() {
		q.Enqueue(e)
	}

	fmt.Fprintf(out, "Enqueued %d individuals.\n\nInitial queue state:\n", q.Len())
	if err := mlqueue.WriteQueue(out, q); err != nil {
		return errors.Wrap(err, "simulate : failed to write queue")
	}

	counter := mlqueue.NewCounter(q)

	var sum mlqueue.Summary
	for s := range counter.Services() {
		sum.Services = append(sum.Services, s)
		sum.TotalMinutes += s.Duration

		fmt.Fprintln(out)
		if err := mlqueue.WriteService(out, s); err != nil {
			return errors.Wrap(err, "simulate : failed to write service")
		}
		if !cfg.Quiet {
			fmt.Fprintln(out, "Remaining queue:")
			if err := mlqueue.WriteQueue(out, q); err != nil {
				return errors.Wrap(err, "simulate : failed to write queue")
			}
		}

		if err := ctx.Err(); err != nil {
			logger.WithField("remaining", q.Len()).Warn("simulation interrupted")
			return errors.Wrap(err, "simulate : interrupted")
		}
	}

	fmt.Fprintln(out)
	if err := mlqueue.WriteSummary(out, sum); err != nil {
		return errors.Wrap(err, "simulate : failed to write summary")
	}

	logger.WithFields(logrus.Fields{
		"served":  len(sum.Services),
		"minutes": counter.Elapsed(),
	}).Info("simulation complete")

	return nil
}

func loadScenario(path string) (mlqueue.Scenario, error) {
	if path == "" {
		return mlqueue.DefaultScenario(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return mlqueue.Scenario{}, errors.Wrap(err, "simulate : failed to open scenario")
	}
	defer f.Close()

	s, err := mlqueue.LoadScenario(f)
	if err != nil {
		return mlqueue.Scenario{}, errors.Wrapf(err, "simulate : failed to load scenario %s", path)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}
