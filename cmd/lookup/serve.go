package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kapu/character-lookup-go/internal/app"
)

func NewServeCmd(container func() *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lookup widget over HTTP",
		Long: `Serve the lookup page. Every browser gets its own session and history,
which expire after LOOKUP_SERVER_SESSION_TTL of inactivity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := container()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c.Logger.Info("Starting widget server", zap.String("addr", c.Config.Server.Addr))
			return c.NewServer().Run(ctx)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (overrides LOOKUP_SERVER_ADDR)")
	return cmd
}
