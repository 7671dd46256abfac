package commands

import (
	"fmt"
	"os"

	"apparelstore/internal/config"
	"apparelstore/internal/infra/db"
	"apparelstore/internal/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	// 全コマンド共通
	envFiles []string
)

// 引数なしはserveと同じ
var rootCmd = &cobra.Command{
	Use:   "apparelstore",
	Short: "Apparel store REST API",
	Long: `Apparel store REST API.

Commands:
  serve    - Start the HTTP server (default)
  migrate  - Create or update the database tables and exit`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files to load (missing files are ignored)")
}

// 設定・ログ・DBをまとめて用意する
func bootstrap() (config.Config, *logger.Logger, *gorm.DB, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	gdb, err := db.Connect(cfg, log)
	if err != nil {
		log.Sync()
		return config.Config{}, nil, nil, err
	}
	return cfg, log, gdb, nil
}

func closeDB(gdb *gorm.DB, log *logger.Logger) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("close database failed", "error", err)
	}
}
