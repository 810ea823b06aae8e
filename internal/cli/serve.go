package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mithrel/blockfmt/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve segment and render endpoints over HTTP",
		Long: `Serve exposes POST /v1/segment and POST /v1/render. Both take response
text as the request body and answer with JSON, or YAML with ?format=yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s := app.Settings.Server
			srv := server.New(server.Options{
				Token:   s.Token,
				MaxBody: s.MaxBodyBytes,
			}, app.Renderer, app.Log.Named("http"))
			return srv.ListenAndServe(ctx, s.Addr)
		},
	}
	cmd.Flags().String("addr", "", "listen address (overrides server.addr)")
	return cmd
}
