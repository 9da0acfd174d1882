package start

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"opencsg.com/github-team-membership/api/httpbase"
	"opencsg.com/github-team-membership/api/router"
	"opencsg.com/github-team-membership/builder/instrumentation"
	"opencsg.com/github-team-membership/common/config"
)

var serverCmd = &cobra.Command{
	Use:     "server",
	Short:   "Start the provider API server",
	Example: serverExample(),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		shutdown, err := instrumentation.SetupOTelSDK(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Error("failed to shutdown otel sdk", slog.Any("error", err))
			}
		}()

		r, err := router.NewRouter(cfg)
		if err != nil {
			return err
		}
		server := httpbase.NewGracefulServer(
			httpbase.GraceServerOpt{
				Port: cfg.APIServer.Port,
			},
			r,
		)
		return server.Run(cmd.Context())
	},
}

func serverExample() string {
	return `
# for development
membership-provider start server --log-format text
`
}
