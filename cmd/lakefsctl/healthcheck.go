package main

import (
	"github.com/spf13/cobra"
)

func newHealthCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "healthcheck",
		Short: "Check that the lakeFS server is up and running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.HealthCheck(cmd.Context()); err != nil {
				return err
			}
			return a.out.health()
		},
	}
}
