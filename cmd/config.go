package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"clinic/internal/adapters/out/postgres"
	"clinic/internal/adapters/out/security"
	"clinic/internal/jobs"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	HTTPPort string

	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	LogLevel  string
	LogFormat string

	ReminderSchedule string
	ReminderWindow   time.Duration

	ShutdownTimeout time.Duration
}

// LoadConfig reads the configuration from the environment after loading the
// given .env files. Missing files are skipped and variables already present in
// the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	cfg := Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),

		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "clinic"),
		DBSslMode:         getEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "clinic-api"),
		JWTTTL:    getEnvDuration("JWT_TTL", 24*time.Hour),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		ReminderSchedule: getEnv("REMINDER_SCHEDULE", jobs.DefaultReminderSchedule),
		ReminderWindow:   getEnvDuration("REMINDER_WINDOW", time.Hour),

		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	var problems []string

	if port, err := strconv.Atoi(cfg.HTTPPort); err != nil || port <= 0 || port > 65535 {
		problems = append(problems, "HTTP_PORT must be a port number")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		problems = append(problems, "JWT_SECRET is required")
	}
	if cfg.JWTTTL <= 0 {
		problems = append(problems, "JWT_TTL must be positive")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		problems = append(problems, "LOG_LEVEL must be one of debug, info, warn, error")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		problems = append(problems, "LOG_FORMAT must be json or console")
	}
	if cfg.ReminderWindow <= 0 {
		problems = append(problems, "REMINDER_WINDOW must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// Database returns the connection settings for the postgres adapter.
func (c Config) Database() postgres.Config {
	return postgres.Config{
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		Name:            c.DBName,
		SSLMode:         c.DBSslMode,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	}
}

// Token returns the JWT signing settings.
func (c Config) Token() security.TokenConfig {
	return security.TokenConfig{Secret: c.JWTSecret, Issuer: c.JWTIssuer, TTL: c.JWTTTL}
}

// Reminder returns the reminder job settings.
func (c Config) Reminder() jobs.ReminderConfig {
	return jobs.ReminderConfig{Schedule: c.ReminderSchedule, Window: c.ReminderWindow}
}

// Address returns the HTTP listen address.
func (c Config) Address() string {
	return "0.0.0.0:" + c.HTTPPort
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
