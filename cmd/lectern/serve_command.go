package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lectern/internal/logging"
	"lectern/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the slide viewer in the browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if value := strings.TrimSpace(bind); value != "" {
				cfg.Paths.APIBind = value
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			activeLog := filepath.Join(cfg.Paths.LogDir, logging.LogFileName(time.Now()))
			if removed := logging.CleanupOldLogs(logger, cfg.Logging.RetentionDays, cfg.Paths.LogDir, logging.LogFilePattern, activeLog); removed > 0 {
				logger.Info("pruned old log files", logging.Int("removed", removed))
			}
			for _, warning := range cfg.Warnings() {
				logging.WarnWithContext(logger, "configuration warning", "config_warning",
					logging.String("warning", warning),
					logging.String(logging.FieldErrorHint, "run lectern config validate"),
				)
			}

			rt, err := newAppRuntime(cfg, logger)
			if err != nil {
				return err
			}
			defer rt.Close()

			srv := server.New(rt.session, server.Options{
				Bind:      cfg.Paths.APIBind,
				Token:     cfg.Paths.APIToken,
				OutputDir: cfg.Paths.OutputDir,
				LockPath:  cfg.LockPath(),
				Localizer: rt.localizer,
				History:   rt.history,
				Logger:    logger,
			})

			runCtx := cmd.Context()
			go func() {
				select {
				case <-srv.Ready():
					fmt.Fprintf(cmd.OutOrStdout(), "Viewer ready at http://%s\n", srv.Addr())
				case <-runCtx.Done():
				}
			}()

			if err := srv.Run(runCtx); err != nil {
				if errors.Is(err, server.ErrAlreadyRunning) {
					return fmt.Errorf("another viewer holds %s: %w", cfg.LockPath(), err)
				}
				if !errors.Is(err, context.Canceled) {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Override paths.api_bind for this run")
	return cmd
}
