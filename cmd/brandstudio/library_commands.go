package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"brandstudio/internal/store"
	"brandstudio/internal/textutil"
)

func newLibraryCommand(ctx *commandContext) *cobra.Command {
	var typeFlag string
	var statusFlag string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "library",
		Short: "Browse generated content",
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter store.ArtifactFilter
			if typeFlag != "" {
				contentType, ok := store.ParseContentType(typeFlag)
				if !ok {
					return fmt.Errorf("unknown content type %q", typeFlag)
				}
				filter.Type = contentType
			}
			if statusFlag != "" {
				status, ok := store.ParseStatus(statusFlag)
				if !ok {
					return fmt.Errorf("unknown status %q", statusFlag)
				}
				filter.Status = status
			}

			_, st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			artifacts, err := st.ListArtifacts(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, artifacts)
			}

			rows := make([][]string, 0, len(artifacts))
			for _, artifact := range artifacts {
				scheduled := ""
				if artifact.ScheduledDate != nil {
					scheduled = artifact.ScheduledDate.Format("2006-01-02")
				}
				body := textutil.Excerpt(artifact.Body, 47)
				rows = append(rows, []string{
					strconv.FormatInt(artifact.ID, 10),
					strconv.FormatInt(artifact.NoteID, 10),
					string(artifact.Type),
					string(artifact.Status),
					scheduled,
					body,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Note", "Type", "Status", "Scheduled", "Body"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft, alignLeft}))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "", "Filter by content type")
	cmd.Flags().StringVar(&statusFlag, "status", "", "Filter by status")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newApproveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <artifact-id>",
		Short: "Mark a draft as approved for posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setArtifactStatus(cmd.Context(), cmd, ctx, args[0], store.StatusApproved)
		},
	}
}

func newPublishCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publish <artifact-id>",
		Short: "Mark an artifact as published",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setArtifactStatus(cmd.Context(), cmd, ctx, args[0], store.StatusPublished)
		},
	}
}

func setArtifactStatus(runCtx context.Context, cmd *cobra.Command, ctx *commandContext, rawID string, status store.Status) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid artifact id %q", rawID)
	}

	_, st, err := ctx.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	artifact, err := st.GetArtifact(runCtx, id)
	if err != nil {
		return err
	}
	artifact.Status = status
	artifact.ScheduledDate = nil
	if err := st.UpdateArtifact(runCtx, artifact); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Artifact %d is now %s\n", id, status)
	return nil
}
