package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/weegigs/wee-counter-go/connectors/wehttp"
	"github.com/weegigs/wee-counter-go/connectors/wetui"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfg := DefaultConfig()

	root := &cobra.Command{
		Use:          "counter",
		Short:        "Bounded counter with terminal and HTTP views",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&cfg.Counter.Initial, "initial", cfg.Counter.Initial, "initial counter value")
	flags.IntVar(&cfg.Counter.Min, "min", cfg.Counter.Min, "minimum counter value")
	flags.IntVar(&cfg.Counter.Max, "max", cfg.Counter.Max, "maximum counter value")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.Trace, "trace", cfg.Trace, "trace exporter (none, console, jaeger, honeycomb)")

	root.AddCommand(tuiCmd(&cfg), serveCmd(&cfg))
	return root
}

func tuiCmd(cfg *Config) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the counter in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := *cfg
			c.Output = io.Discard

			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
				if err != nil {
					return errors.Wrap(err, "failed to open log file")
				}
				defer f.Close()
				c.Output = f
			}

			app, cleanup, err := initializeApp(cmd.Context(), c)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Log.Debug().Int("min", c.Counter.Min).Int("max", c.Counter.Max).Msg("starting terminal view")
			return wetui.Run(app.Presenter)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	return cmd
}

func serveCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the counter over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, cleanup, err := initializeApp(ctx, *cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			return serve(ctx, app)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	return cmd
}

func serve(ctx context.Context, app *App) error {
	handler := wehttp.NewHandler(app.Presenter, wehttp.Journal(app.Journal), wehttp.Logger(app.Log))
	server := &http.Server{
		Addr:              app.Config.Addr,
		Handler:           withLogging(app.Access, handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		app.Log.Info().Str("addr", server.Addr).Msg("listening")
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.Log.Info().Msg("shutting down")
		return server.Shutdown(shutdownCtx)
	}
}
