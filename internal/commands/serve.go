package commands

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/scan/handler"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the operator HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := initDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer d.Close()

			app := fiber.New(fiber.Config{
				AppName:   "mdr-plan-scanner",
				BodyLimit: 32 << 20, // photographed tables can be large
			})
			handler.New(d.Service, d.Logger).RegisterRoutes(app)

			d.Logger.Info("listening", "addr", d.Config.Server.Addr())
			return app.Listen(d.Config.Server.Addr())
		},
	}
}
