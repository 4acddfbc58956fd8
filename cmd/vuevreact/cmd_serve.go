package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jezweb/vuevreact"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(stdout io.Writer) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site",
		Long:  "Serve the site. Configuration comes from SITE_URL, SITE_NAME, ADDR, DATABASE_PATH, SESSION_SECRET, COOKIE_SECURE, APP_ENV and LOG_LEVEL.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := vuevreact.ConfigFromEnv()
			if addr != "" {
				cfg.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, vuevreact.New(cfg), stdout)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides ADDR)")
	return cmd
}

func serve(ctx context.Context, app *vuevreact.App, stdout io.Writer) error {
	defer app.Close()

	errCh := make(chan error, 1)
	go func() { errCh <- app.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	fmt.Fprintln(stdout, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
