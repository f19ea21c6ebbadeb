package command

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tomasbasham/mlqueue"
	"github.com/tomasbasham/mlqueue/internal/config"
)

type Rules struct{}

func (cmd Rules) Command(_ context.Context, _ *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "print category weights, service durations and lanes",
		RunE: func(c *cobra.Command, _ []string) error {
			return mlqueue.WriteRules(c.OutOrStdout())
		},
	}
}
