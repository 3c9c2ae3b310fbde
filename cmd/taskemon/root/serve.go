package root

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rakhmonovquvonchbek/taskemon/internal/serverapp"
	"github.com/rakhmonovquvonchbek/taskemon/internal/telemetry"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			logger := cfg.Log.NewLogger(os.Stderr)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			events := telemetry.NewMemoryRepository()
			store, err := serverapp.NewStore(ctx, cfg, events, logger)
			if err != nil {
				return err
			}
			handler, err := serverapp.NewHandler(serverapp.Options{
				Config: cfg,
				Store:  store,
				Events: events,
				Logger: logger,
			})
			if err != nil {
				return err
			}
			return serverapp.Run(ctx, cfg, handler, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
