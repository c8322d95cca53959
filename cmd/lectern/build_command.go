package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lectern/internal/export"
)

// newBuildCommand walks the outline the way a presenter clicking Next would,
// then exports the filled deck.
func newBuildCommand(ctx *commandContext) *cobra.Command {
	var (
		skipExport bool
		jsonOutput bool
		title      string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate every slide and export the deck without the viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if value := strings.TrimSpace(title); value != "" {
				cfg.Lesson.PresentationTitle = value
			}
			logger, err := ctx.fileLogger()
			if err != nil {
				return err
			}

			rt, err := newAppRuntime(cfg, logger)
			if err != nil {
				return err
			}
			defer rt.Close()

			out := cmd.OutOrStdout()
			colorize := !jsonOutput && shouldColorize(out)
			sess := rt.session

			if !jsonOutput {
				for _, line := range renderSectionHeader(sess.Title(), colorize) {
					fmt.Fprintln(out, line)
				}
				if !rt.provider.Configured() {
					fmt.Fprintln(out, renderStatusLine("Provider", statusWarn, "no API key; slides use the missing-key message", colorize))
				}
			}

			// Interrupts cancel in-flight generations.
			stopOnCancel := context.AfterFunc(cmd.Context(), sess.Close)
			defer stopOnCancel()

			sess.Start()
			for {
				sess.Wait()
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				if !jsonOutput {
					fmt.Fprintln(out, renderSlideLine(sess.Snapshot(), colorize))
				}
				if !sess.Advance() {
					break
				}
			}

			if skipExport {
				if jsonOutput {
					return writeJSON(cmd, sess.Snapshot())
				}
				return nil
			}

			result, err := sess.Export(cmd.Context())
			if err != nil {
				if !jsonOutput {
					fmt.Fprintln(out, renderStatusLine("Export", statusError, err.Error(), colorize))
				}
				return fmt.Errorf("export: %w", err)
			}
			if jsonOutput {
				return writeJSON(cmd, result)
			}
			fmt.Fprintln(out, renderStatusLine("Export", statusOK, exportSummary(result), colorize))
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipExport, "no-export", false, "Generate slides without writing a presentation file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output JSON")
	cmd.Flags().StringVar(&title, "title", "", "Override lesson.presentation_title")
	return cmd
}

func exportSummary(result export.Result) string {
	return fmt.Sprintf("%s (%d slides)", result.Path, result.Slides)
}
