package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

func newGymCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "gym",
		Short: "Analyze your content balance and get a weekly challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			report, err := newAnalyzer(st).Analyze(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(report.Balance))
			for _, balance := range report.Balance {
				marker := ""
				if balance.Weak {
					marker = "needs work"
				}
				rows = append(rows, []string{
					titleCaser.String(balance.Theme),
					strconv.Itoa(balance.Count),
					fmt.Sprintf("%.1f%%", balance.CurrentPercent),
					fmt.Sprintf("%.0f%%", balance.IdealPercent),
					marker,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Theme", "Notes", "Current", "Ideal", ""},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft}))

			fmt.Fprintln(out, "Recommendations:")
			for _, rec := range report.Recommendations {
				fmt.Fprintf(out, "  - %s\n", rec)
			}
			if len(report.LearningSuggestions) > 0 {
				fmt.Fprintln(out, "Learning feed:")
				for _, suggestion := range report.LearningSuggestions {
					fmt.Fprintf(out, "  - %s\n", suggestion)
				}
			}
			if len(report.ImplementationPrompts) > 0 {
				fmt.Fprintln(out, "Try recording:")
				for _, prompt := range report.ImplementationPrompts {
					fmt.Fprintf(out, "  - %s\n", prompt)
				}
			}
			fmt.Fprintf(out, "This week's challenge: %s\n", report.WeeklyChallenge)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
