package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	Addr              string
	Environment       string
	EmployeeFile      string
	AttendanceFile    string
	JWTSecret         string
	TokenTTL          time.Duration
	DatabaseURL       string
	DataEncryptionKey string
	PayslipDir        string
	ReloadSchedule    string
	LogLevel          string
	MaxBodyBytes      int64
	RunMigrations     bool
	MetricsEnabled    bool
}

// Load reads the process environment, after merging envFile when given.
// A missing default .env is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	return Config{
		Addr:              getEnv("APP_ADDR", ":8080"),
		Environment:       getEnv("APP_ENV", "development"),
		EmployeeFile:      getEnv("EMPLOYEE_FILE", "data/employee_record.csv"),
		AttendanceFile:    getEnv("ATTENDANCE_FILE", "data/attendance_record.csv"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		TokenTTL:          getEnvDuration("TOKEN_TTL", 8*time.Hour),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DataEncryptionKey: getEnv("DATA_ENCRYPTION_KEY", ""),
		PayslipDir:        getEnv("PAYSLIP_DIR", ""),
		ReloadSchedule:    getEnv("RELOAD_SCHEDULE", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		MaxBodyBytes:      int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RunMigrations:     getEnvBool("RUN_MIGRATIONS", true),
		MetricsEnabled:    getEnvBool("METRICS_ENABLED", true),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.EmployeeFile) == "" {
		return fmt.Errorf("EMPLOYEE_FILE is required")
	}
	if strings.TrimSpace(c.AttendanceFile) == "" {
		return fmt.Errorf("ATTENDANCE_FILE is required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		if c.Environment == "production" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.ReloadSchedule != "" {
		if _, err := cron.ParseStandard(c.ReloadSchedule); err != nil {
			return fmt.Errorf("RELOAD_SCHEDULE is not a valid cron spec: %w", err)
		}
	}
	return nil
}
