package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"brandstudio/internal/generation"
	"brandstudio/internal/store"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var typeFlags []string
	var tone string
	var length string

	cmd := &cobra.Command{
		Use:   "generate <note-id>",
		Short: "Generate content drafts from a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid note id %q", args[0])
			}

			var types []store.ContentType
			for _, raw := range typeFlags {
				contentType, ok := store.ParseContentType(raw)
				if !ok {
					return fmt.Errorf("unknown content type %q (want post, script, or newsletter)", raw)
				}
				types = append(types, contentType)
			}

			cfg, st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			result, err := newPipeline(cfg, st).FanOut(cmd.Context(), id, types, generation.Options{Tone: tone, Length: length})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, outcome := range result.Outcomes {
				switch {
				case outcome.Skipped:
					fmt.Fprintf(out, "%s: already generated, skipped\n", outcome.Type.DisplayName())
				case outcome.Err != nil:
					fmt.Fprintf(out, "%s: failed: %v\n", outcome.Type.DisplayName(), outcome.Err)
				default:
					mode := ""
					if outcome.Artifact.Fallback {
						mode = " (template)"
					}
					fmt.Fprintf(out, "%s: artifact %d%s\n", outcome.Type.DisplayName(), outcome.Artifact.ID, mode)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&typeFlags, "type", nil, "Content types to generate (default: all)")
	cmd.Flags().StringVar(&tone, "tone", "", "Override the profile tone")
	cmd.Flags().StringVar(&length, "length", "", "Requested draft length (short or long)")
	return cmd
}
