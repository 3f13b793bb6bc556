package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"brandstudio/internal/calendar"
	"brandstudio/internal/store"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show content counts and buffer health",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			runCtx := cmd.Context()
			notes, err := st.ListNotes(runCtx)
			if err != nil {
				return err
			}
			counts, err := st.ArtifactStatusCounts(runCtx)
			if err != nil {
				return err
			}

			untranscribed := 0
			for _, note := range notes {
				if !note.Transcribed {
					untranscribed++
				}
			}

			frequency := cfg.Profile.PostingFrequency
			if profile, profErr := st.LoadProfile(runCtx); profErr == nil {
				frequency = profile.PostingFrequency
			}
			cadence := calendar.Cadence(frequency, counts.Ready())

			if jsonOut {
				return writeJSON(cmd, map[string]any{
					"database":            st.Path(),
					"ai_available":        cfg.AIAvailable(),
					"notes":               len(notes),
					"notes_needing_retry": untranscribed,
					"artifacts":           counts,
					"cadence":             cadence,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database: %s\n", st.Path())
			if cfg.AIAvailable() {
				fmt.Fprintln(out, "OpenAI: connected")
			} else {
				fmt.Fprintln(out, "OpenAI: no credential, fallback mode")
			}
			fmt.Fprintf(out, "Notes: %d (%d need retranscription)\n", len(notes), untranscribed)
			fmt.Fprintf(out, "Artifacts: %d draft, %d approved, %d scheduled, %d published\n",
				counts[store.StatusDraft], counts[store.StatusApproved],
				counts[store.StatusScheduled], counts[store.StatusPublished])
			fmt.Fprintf(out, "Buffer: %s\n", cadence.Buffer)
			fmt.Fprintf(out, "Next: %s (%s)\n", cadence.Recommendation, cadence.NextCreation)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
