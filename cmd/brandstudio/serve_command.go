package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"brandstudio/internal/logging"
	"brandstudio/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Brand Studio server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, ctx)
		},
	}
}

func runServe(cmd *cobra.Command, ctx *commandContext) error {
	cfg, st, err := ctx.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	srv, err := server.New(cfg, st,
		newPipeline(cfg, st),
		newScheduler(cfg, st),
		newAnalyzer(st),
		logger)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(runCtx); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Brand Studio listening on http://%s\n", srv.Addr())
	if !cfg.AIAvailable() {
		fmt.Fprintln(out, "No OpenAI credential configured; running in fallback mode.")
	}

	<-runCtx.Done()
	srv.Stop()
	return nil
}
