package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（8080）
	GoEnv string // dev/test/prod

	DBDriver    string // postgres / sqlite
	DatabaseURL string // あればPOSTGRES_*より優先

	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string // disable

	SQLitePath string // sqlite時のファイル（:memory:も可）

	AutoMigrate     bool          // 起動時にテーブルを作る
	ProblemBaseURL  string        // エラー応答のtypeの頭
	ShutdownTimeout time.Duration // graceful shutdownの待ち時間
}

// Loadは.env（あれば）と環境変数から読む
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// 既にある環境変数は上書きしない
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	pgPort, err := atoiOr("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	autoMigrate, err := boolOr("AUTO_MIGRATE", true)
	if err != nil {
		return Config{}, err
	}
	shutdown, err := durationOr("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:  getenv("PORT", "8080"),
		GoEnv: getenv("GO_ENV", "dev"),

		DBDriver:    strings.ToLower(getenv("DB_DRIVER", DriverPostgres)),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "apparelstore"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		SQLitePath: getenv("SQLITE_PATH", "apparelstore.db"),

		AutoMigrate:     autoMigrate,
		ProblemBaseURL:  strings.TrimRight(getenv("PROBLEM_BASE_URL", "https://api.apparelstore.com/errors"), "/"),
		ShutdownTimeout: shutdown,
	}

	//値チェック
	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return Config{}, fmt.Errorf("DB_DRIVER must be %q or %q: got %q", DriverPostgres, DriverSQLite, cfg.DBDriver)
	}
	if _, err := strconv.Atoi(strings.TrimPrefix(cfg.Port, ":")); err != nil {
		return Config{}, fmt.Errorf("PORT must be number: %w", err)
	}

	return cfg, nil
}

// ":8080" 形式
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func (c Config) IsDev() bool {
	return c.GoEnv == "" || c.GoEnv == "dev" || c.GoEnv == "development"
}

// postgres用のDSN
func (c Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

func getenv(key string, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func atoiOr(key string, def int) (int, error) {
	v := getenv(key, "")
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func boolOr(key string, def bool) (bool, error) {
	v := getenv(key, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be true/false: %w", key, err)
	}
	return b, nil
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := getenv(key, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration (e.g. 10s): %w", key, err)
	}
	return d, nil
}
