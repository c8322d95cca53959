package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"lectern/internal/exportlog"
)

func newExportsCommand(ctx *commandContext) *cobra.Command {
	var (
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "exports",
		Short: "List recent presentation exports",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := exportlog.Open(cfg)
			if err != nil {
				return fmt.Errorf("open export history: %w", err)
			}
			defer store.Close()

			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOutput {
				if entries == nil {
					entries = []exportlog.Entry{}
				}
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No exports recorded")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				detail := entry.FileName
				if entry.Status == exportlog.StatusFailed {
					detail = entry.Error
				}
				rows = append(rows, []string{
					entry.CreatedAt.Local().Format(time.DateTime),
					string(entry.Status),
					entry.Title,
					strconv.Itoa(entry.SlideCount),
					detail,
				})
			}
			fmt.Fprintln(out, renderTable([]column{
				{Header: "Created"},
				{Header: "Status"},
				{Header: "Title", MaxWidth: 40},
				{Header: "Slides", AlignRight: true},
				{Header: "File", MaxWidth: 50},
			}, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of exports to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output JSON")
	return cmd
}
