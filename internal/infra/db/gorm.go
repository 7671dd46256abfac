package db

import (
	"fmt"
	"time"

	"apparelstore/internal/config"
	"apparelstore/internal/domain/model"
	"apparelstore/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config, log *logger.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(cfg.SQLitePath))
	case config.DriverPostgres, "":
		dialector = postgres.Open(cfg.PostgresDSN())
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", cfg.DBDriver)
	}

	gdb, err := Open(dialector, cfg.IsDev())
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		// sqliteは書き込みが1本なので接続も1本にする
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info("database connected", "driver", cfg.DBDriver)
	return gdb, nil
}

// Open は方言を受け取って共通設定でgormを開く（テストからも使う）
func Open(dialector gorm.Dialector, verbose bool) (*gorm.DB, error) {
	level := gormlogger.Silent
	if verbose {
		level = gormlogger.Warn
	}
	return gorm.Open(dialector, &gorm.Config{
		// 一意制約/外部キー違反をgormのエラーに寄せる
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// Migrate は5つのテーブルを作る（既存なら差分だけ）
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.Customer{},
		&model.Apparel{},
		&model.ApparelOrder{},
		&model.ApparelOrderLine{},
		&model.ApparelOrderShipment{},
	)
}

// 外部キーを効かせる
func sqliteDSN(path string) string {
	if path == "" || path == ":memory:" {
		return "file::memory:?cache=shared&_foreign_keys=on"
	}
	return "file:" + path + "?_foreign_keys=on"
}
