package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the content provider connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			backend := newProvider(cfg)

			label := fmt.Sprintf("%s/%s", backend.Name(), backend.Model())
			if !backend.Configured() {
				fmt.Fprintln(out, renderStatusLine(label, statusWarn, "API key not configured", colorize))
				return nil
			}

			checkCtx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)
			defer cancel()
			if err := backend.HealthCheck(checkCtx); err != nil {
				fmt.Fprintln(out, renderStatusLine(label, statusError, err.Error(), colorize))
				return fmt.Errorf("provider health check failed: %w", err)
			}
			fmt.Fprintln(out, renderStatusLine(label, statusOK, "reachable", colorize))
			return nil
		},
	}
}
