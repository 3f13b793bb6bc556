package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"brandstudio/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Set openai.api_key (or export OPENAI_API_KEY) to enable transcription and generation.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if jsonOut {
				redacted := *cfg
				if redacted.OpenAI.APIKey != "" {
					redacted.OpenAI.APIKey = "***"
				}
				return writeJSON(cmd, redacted)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Data dir:         %s\n", cfg.Paths.DataDir)
			fmt.Fprintf(out, "Audio dir:        %s\n", cfg.Paths.AudioDir)
			fmt.Fprintf(out, "Log dir:          %s\n", cfg.Paths.LogDir)
			fmt.Fprintf(out, "Bind:             %s\n", cfg.Paths.Bind)
			fmt.Fprintf(out, "Database:         %s\n", cfg.DatabasePath())
			fmt.Fprintf(out, "Chat model:       %s\n", cfg.OpenAI.ChatModel)
			fmt.Fprintf(out, "Transcribe model: %s\n", cfg.OpenAI.TranscribeModel)
			fmt.Fprintf(out, "Weekly capacity:  %d\n", cfg.Calendar.WeeklyCapacity)
			fmt.Fprintf(out, "Horizon weeks:    %d\n", cfg.Calendar.HorizonWeeks)
			if cfg.AIAvailable() {
				fmt.Fprintln(out, "OpenAI:           credential configured")
			} else {
				fmt.Fprintln(out, "OpenAI:           no credential, fallback mode")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
