package commands

import (
	"os/signal"
	"syscall"

	"apparelstore/internal/infra/db"
	"apparelstore/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server on PORT.

Tables are created on startup when AUTO_MIGRATE is true (default).
SIGINT/SIGTERM stops the server after in-flight requests finish or SHUTDOWN_TIMEOUT passes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command) error {
	cfg, log, gdb, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()
	defer closeDB(gdb, log)

	if cfg.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			log.Error("migration failed", "error", err)
			return err
		}
		log.Info("migration completed")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := server.New(cfg, gdb, log)
	if err := server.Run(ctx, e, cfg, log); err != nil {
		log.Error("server error", "error", err)
		return err
	}
	return nil
}

