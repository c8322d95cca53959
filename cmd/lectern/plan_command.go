package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lectern/internal/lesson"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the lesson outline",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			plan, err := lesson.Resolve(cfg.Lesson.PlanPath)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, struct {
					Title  string         `json:"title"`
					Topics []lesson.Topic `json:"topics"`
				}{Title: plan.Title(), Topics: plan.Topics()})
			}

			out := cmd.OutOrStdout()
			for _, line := range renderSectionHeader(plan.Title(), shouldColorize(out)) {
				fmt.Fprintln(out, line)
			}
			rows := make([][]string, 0, plan.Len())
			for i, topic := range plan.Topics() {
				rows = append(rows, []string{strconv.Itoa(i + 1), topic.Type.String(), topic.Topic})
			}
			fmt.Fprintln(out, renderTable([]column{
				{Header: "#", AlignRight: true},
				{Header: "Type"},
				{Header: "Topic", MaxWidth: 60},
			}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output JSON")
	return cmd
}
