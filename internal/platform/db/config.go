package db

import (
	"fmt"
	"os"
	"strings"
)

const (
	// DriverPostgres is the default production driver.
	DriverPostgres = "postgres"
	// DriverSQLite is used for local development and tests.
	DriverSQLite = "sqlite"
)

// Config holds database connection settings.
type Config struct {
	Driver       string // postgres | sqlite
	User         string
	Password     string
	Name         string
	SQLitePath   string
	Host         string
	Port         string
	SSLMode      string
	InstanceName string // Cloud SQL instance connection name
}

// LoadConfigFromEnv はデータベース設定を環境変数から読み込みます。
func LoadConfigFromEnv() Config {
	driver := strings.ToLower(os.Getenv("DB_DRIVER"))
	if driver == "" {
		driver = DriverPostgres
	}
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}
	return Config{
		Driver:       driver,
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		SSLMode:      sslmode,
		SQLitePath:   os.Getenv("DB_SQLITE_PATH"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
	}
}

// BuildDSN は設定からDSN文字列を組み立てます。
// Cloud SQLのインスタンス名が設定されている場合はUnixソケット接続を優先します。
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		if cfg.SQLitePath == "" {
			return "file::memory:?cache=shared"
		}
		return cfg.SQLitePath
	}

	host := cfg.Host
	if cfg.InstanceName != "" {
		host = "/cloudsql/" + cfg.InstanceName
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		host, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
	if cfg.InstanceName == "" && cfg.Port != "" {
		dsn += " port=" + cfg.Port
	}
	return dsn
}
