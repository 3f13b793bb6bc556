package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"brandstudio/internal/store"
)

func newProfileCommand(ctx *commandContext) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the brand profile",
	}

	profileCmd.AddCommand(newProfileShowCommand(ctx))
	profileCmd.AddCommand(newProfileSetCommand(ctx))

	return profileCmd
}

func newProfileShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved brand profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			profile, err := st.LoadProfile(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, profile)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:      %s\n", profile.Name)
			fmt.Fprintf(out, "Role:      %s\n", profile.Role)
			fmt.Fprintf(out, "Company:   %s\n", profile.Company)
			fmt.Fprintf(out, "Tone:      %s\n", profile.Tone)
			fmt.Fprintf(out, "Frequency: %s\n", profile.PostingFrequency)
			fmt.Fprintf(out, "Interests: %s\n", strings.Join(profile.Interests, ", "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newProfileSetCommand(ctx *commandContext) *cobra.Command {
	var (
		name      string
		role      string
		company   string
		tone      string
		frequency string
		interests []string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save the brand profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			// Start from the config seed and overlay any saved profile so a
			// partial set keeps earlier values.
			profile := &store.Profile{
				Name:             cfg.Profile.Name,
				Role:             cfg.Profile.Role,
				Company:          cfg.Profile.Company,
				Tone:             cfg.Profile.Tone,
				PostingFrequency: cfg.Profile.PostingFrequency,
				Interests:        cfg.Profile.Interests,
			}
			if saved, loadErr := st.LoadProfile(cmd.Context()); loadErr == nil {
				profile = saved
			}

			if name != "" {
				profile.Name = name
			}
			if role != "" {
				profile.Role = role
			}
			if company != "" {
				profile.Company = company
			}
			if tone != "" {
				profile.Tone = tone
			}
			if frequency != "" {
				profile.PostingFrequency = frequency
			}
			if len(interests) > 0 {
				profile.Interests = interests
			}

			if err := st.SaveProfile(cmd.Context(), profile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile for %s\n", profile.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", "", "Role or title")
	cmd.Flags().StringVar(&company, "company", "", "Company")
	cmd.Flags().StringVar(&tone, "tone", "", "Preferred writing tone")
	cmd.Flags().StringVar(&frequency, "frequency", "", "Posting frequency (daily, every_other_day, weekly, bi-weekly)")
	cmd.Flags().StringSliceVar(&interests, "interests", nil, "Interest topics")
	return cmd
}
