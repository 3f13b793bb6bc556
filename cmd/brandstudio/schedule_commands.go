package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newScheduleCommand(ctx *commandContext) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "schedule <artifact-id>",
		Short: "Place an artifact on the posting calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid artifact id %q", args[0])
			}

			cfg, st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()
			sched := newScheduler(cfg, st)

			if dateFlag != "" {
				date, parseErr := time.Parse("2006-01-02", dateFlag)
				if parseErr != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", dateFlag)
				}
				artifact, schedErr := sched.ScheduleAt(cmd.Context(), id, date)
				if schedErr != nil {
					return schedErr
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Artifact %d scheduled for %s\n",
					artifact.ID, artifact.ScheduledDate.Format("2006-01-02"))
				return nil
			}

			artifact, err := sched.Schedule(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Artifact %d scheduled for %s\n",
				artifact.ID, artifact.ScheduledDate.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Explicit date (YYYY-MM-DD) instead of the next free slot")
	return cmd
}

func newCalendarCommand(ctx *commandContext) *cobra.Command {
	var weeks int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the posting calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			slots, err := newScheduler(cfg, st).Slots(cmd.Context(), weeks)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, slots)
			}

			rows := make([][]string, 0, len(slots))
			for _, slot := range slots {
				entries := make([]string, 0, len(slot.Artifacts))
				for _, entry := range slot.Artifacts {
					entries = append(entries, fmt.Sprintf("%s #%d (%s)",
						entry.Type, entry.ArtifactID, entry.Date.Format("Jan 2")))
				}
				rows = append(rows, []string{
					slot.Start.Format("2006-01-02"),
					fmt.Sprintf("%d/%d", len(slot.Artifacts), slot.Capacity),
					strings.Join(entries, ", "),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Week of", "Used", "Scheduled"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft}))
			return nil
		},
	}

	cmd.Flags().IntVar(&weeks, "weeks", 0, "Number of weeks to show (default: configured horizon)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
