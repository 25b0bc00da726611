package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server       ServerConfig
	Log          LogConfig
	Ledger       LedgerConfig
	Database     DatabaseConfig
	Notification NotificationConfig
}

// ServerConfig holds HTTP settings
type ServerConfig struct {
	Port           string
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
}

// LedgerConfig selects and locates the ledger backend
type LedgerConfig struct {
	Driver             string
	Path               string
	GCSBucket          string `mapstructure:"gcs_bucket"`
	GCSObject          string `mapstructure:"gcs_object"`
	GCSCredentialsFile string `mapstructure:"gcs_credentials_file"`
}

// DatabaseConfig holds postgres settings for the postgres ledger driver
type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string `mapstructure:"sslmode"`
	MigrationsPath string `mapstructure:"migrations_path"`
	MaxRetries     int    `mapstructure:"max_retries"`
}

// NotificationConfig holds notification rendering settings
type NotificationConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// ConnString returns a libpq style connection string
func (d DatabaseConfig) ConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Ledger drivers
const (
	LedgerDriverFile     = "file"
	LedgerDriverPostgres = "postgres"
	LedgerDriverGCS      = "gcs"
)

// loadConfig reads configuration from an optional file and the environment.
// Env var overrides use prefix INSIGHTS_, e.g. INSIGHTS_LEDGER_PATH.
func loadConfig() (Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8000")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("ledger.driver", LedgerDriverFile)
	v.SetDefault("ledger.path", "uploads/transactions.csv")
	v.SetDefault("ledger.gcs_bucket", "")
	v.SetDefault("ledger.gcs_object", "transactions.csv")
	v.SetDefault("ledger.gcs_credentials_file", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.name", "bankinsights")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.migrations_path", "db/migrations")
	v.SetDefault("database.max_retries", 30)
	v.SetDefault("notification.currency_symbol", "₹")

	if cfgPath := os.Getenv("INSIGHTS_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	v.SetEnvPrefix("INSIGHTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	switch c.Ledger.Driver {
	case LedgerDriverFile:
		if strings.TrimSpace(c.Ledger.Path) == "" {
			return fmt.Errorf("ledger.path is required for the file driver")
		}
	case LedgerDriverPostgres:
	case LedgerDriverGCS:
		if c.Ledger.GCSBucket == "" || c.Ledger.GCSObject == "" {
			return fmt.Errorf("ledger.gcs_bucket and ledger.gcs_object are required for the gcs driver")
		}
	default:
		return fmt.Errorf("unknown ledger driver %q", c.Ledger.Driver)
	}
	return nil
}
