package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/TechXTT/blog/internal/server"
	"github.com/TechXTT/blog/pkg/logger"
	"github.com/TechXTT/blog/pkg/orm"
)

// NewServeCmd builds the `serve` command.
func NewServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Open the database pool and serve HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			log := logger.GetDefault()
			log.Debug("configuration loaded", "config", cfg.String())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx = logger.ContextWithLogger(ctx, log)

			db, err := orm.Open(ctx, &cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					log.Error("close database", "error", err)
				}
			}()

			srv, err := server.New(cfg.Server, db, log)
			if err != nil {
				return err
			}
			return srv.Run(ctx)
		},
	}
}
