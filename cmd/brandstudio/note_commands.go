package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"brandstudio/internal/store"
	"brandstudio/internal/textutil"
)

func newNoteCommand(ctx *commandContext) *cobra.Command {
	noteCmd := &cobra.Command{
		Use:   "note",
		Short: "Capture and inspect voice notes",
	}

	noteCmd.AddCommand(newNoteAddCommand(ctx))
	noteCmd.AddCommand(newNoteListCommand(ctx))
	noteCmd.AddCommand(newNoteRetranscribeCommand(ctx))

	return noteCmd
}

func newNoteAddCommand(ctx *commandContext) *cobra.Command {
	var audioFile string
	var text string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Capture a note from an audio file or typed text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (audioFile == "") == (text == "") {
				return fmt.Errorf("provide exactly one of --file or --text")
			}

			cfg, st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()
			p := newPipeline(cfg, st)

			var note *store.VoiceNote
			if audioFile != "" {
				audio, readErr := os.ReadFile(audioFile)
				if readErr != nil {
					return fmt.Errorf("read audio file: %w", readErr)
				}
				note, err = p.CaptureAudio(cmd.Context(), audio, filepath.Base(audioFile))
			} else {
				note, err = p.CaptureText(cmd.Context(), text)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Captured note %d\n", note.ID)
			if !note.Transcribed {
				fmt.Fprintln(out, "Transcription unavailable; the audio is kept so you can retry with 'note retranscribe'.")
				return nil
			}
			fmt.Fprintf(out, "Transcript: %s\n", note.Transcript)
			if len(note.Themes) > 0 {
				fmt.Fprintf(out, "Themes: %s\n", strings.Join(note.Themes, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&audioFile, "file", "f", "", "Audio file to transcribe")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Typed note text")
	return cmd
}

func newNoteListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List captured notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			notes, err := st.ListNotes(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, notes)
			}

			rows := make([][]string, 0, len(notes))
			for _, note := range notes {
				transcript := textutil.Excerpt(note.Transcript, 57)
				state := "ok"
				if !note.Transcribed {
					state = "needs retry"
				}
				rows = append(rows, []string{
					strconv.FormatInt(note.ID, 10),
					note.CreatedAt.Format("2006-01-02"),
					state,
					strings.Join(note.Themes, ", "),
					transcript,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Created", "State", "Themes", "Transcript"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newNoteRetranscribeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "retranscribe <note-id>",
		Short: "Retry transcription for a note that fell back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid note id %q", args[0])
			}

			cfg, st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			note, err := newPipeline(cfg, st).Retranscribe(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if note.Transcribed {
				fmt.Fprintf(out, "Note %d transcribed: %s\n", note.ID, note.Transcript)
			} else {
				fmt.Fprintf(out, "Note %d still untranscribed; transcription service unavailable.\n", note.ID)
			}
			return nil
		},
	}
}
