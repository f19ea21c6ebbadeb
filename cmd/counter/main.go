package main

import (
	"context"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tomasbasham/mlqueue/cmd/counter/command"
	"github.com/tomasbasham/mlqueue/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	const description = "Service counter multi-level priority queue simulator"
	root := &cobra.Command{Use: "counter", Short: description, SilenceUsage: true}

	cfg, err := config.Load(nil)
	if err != nil {
		log.WithContext(ctx).Fatal(err)
	}

	logger := log.New()
	logger.SetLevel(cfg.LogLevel)

	root.AddCommand(
		command.Simulate{Logger: logger}.Command(ctx, cfg),
		command.Rules{}.Command(ctx, cfg),
	)

	if err := root.Execute(); err != nil {
		logger.WithContext(ctx).Fatalf("failed to execute root command: \n%v", err)
	}
}
