package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/gorm/logger"
)

type Config struct {
	HTTPPort          string        `mapstructure:"http_port"`
	DBHost            string        `mapstructure:"db_host"`
	DBPort            string        `mapstructure:"db_port"`
	DBUser            string        `mapstructure:"db_user"`
	DBPassword        string        `mapstructure:"db_password"`
	DBName            string        `mapstructure:"db_name"`
	DBSslMode         string        `mapstructure:"db_sslmode"`
	AdminUsername     string        `mapstructure:"admin_username"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	JWTSecret         string        `mapstructure:"jwt_secret"`
	JWTTTL            time.Duration `mapstructure:"jwt_ttl"`
	OverdueCron       string        `mapstructure:"overdue_cron"`
	LogLevel          string        `mapstructure:"log_level"`
}

func defaults() map[string]any {
	return map[string]any{
		"http_port":           "8080",
		"db_host":             "localhost",
		"db_port":             "5432",
		"db_user":             "postgres",
		"db_password":         "",
		"db_name":             "distributor",
		"db_sslmode":          "disable",
		"admin_username":      "admin",
		"admin_password_hash": "",
		"jwt_secret":          "",
		"jwt_ttl":             "8h",
		"overdue_cron":        "* * * * *",
		"log_level":           "info",
	}
}

// LoadConfig reads envFile when it exists, then the environment. Keys are the upper-case
// field tags, e.g. HTTP_PORT or ADMIN_PASSWORD_HASH. Variables already set in the
// environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// DSN is the libpq connection string of the database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel parses LogLevel, falling back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// GormLogLevel keeps SQL tracing for the debug level only.
func (c Config) GormLogLevel() logger.LogLevel {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}
