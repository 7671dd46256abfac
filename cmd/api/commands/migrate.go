package commands

import (
	"apparelstore/internal/infra/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	Long: `Create or update the apparel, customer, order, order line and shipment tables, then exit.

Examples:
  apparelstore migrate
  DB_DRIVER=sqlite SQLITE_PATH=dev.db apparelstore migrate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate() error {
	_, log, gdb, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()
	defer closeDB(gdb, log)

	if err := db.Migrate(gdb); err != nil {
		log.Error("migration failed", "error", err)
		return err
	}
	log.Info("migration completed")
	return nil
}
