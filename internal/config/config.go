package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/punchlab/punchclock-backend-go/internal/domain/attendance"
	"github.com/punchlab/punchclock-backend-go/internal/pkg/civiltime"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig holds the civil timezone of the punch-clock devices and
// the default shift settings applied when a request carries no overrides.
type AttendanceConfig struct {
	CivilOffset              string
	WorkStart                string
	WorkEnd                  string
	LateThresholdMinutes     int
	EarlyOutThresholdMinutes int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "punchclock"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Attendance configuration
	lateThreshold, err := strconv.Atoi(getEnv("ATTENDANCE_LATE_THRESHOLD_MINUTES", strconv.Itoa(attendance.DefaultLateThresholdMinutes)))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_LATE_THRESHOLD_MINUTES: %w", err)
	}

	earlyOutThreshold, err := strconv.Atoi(getEnv("ATTENDANCE_EARLY_OUT_THRESHOLD_MINUTES", strconv.Itoa(attendance.DefaultEarlyOutThresholdMinutes)))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_EARLY_OUT_THRESHOLD_MINUTES: %w", err)
	}

	config.Attendance = AttendanceConfig{
		CivilOffset:              getEnv("ATTENDANCE_TZ_OFFSET", "+05:30"),
		WorkStart:                getEnv("ATTENDANCE_WORK_START", attendance.DefaultWorkStart),
		WorkEnd:                  getEnv("ATTENDANCE_WORK_END", attendance.DefaultWorkEnd),
		LateThresholdMinutes:     lateThreshold,
		EarlyOutThresholdMinutes: earlyOutThreshold,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if _, err := civiltime.FixedLocation(c.Attendance.CivilOffset); err != nil {
		return fmt.Errorf("invalid ATTENDANCE_TZ_OFFSET: %w", err)
	}
	if err := c.Attendance.Settings().Validate(); err != nil {
		return fmt.Errorf("invalid attendance settings: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Settings returns the configured defaults as derivation settings.
func (a AttendanceConfig) Settings() attendance.Settings {
	return attendance.Settings{
		WorkStart:                a.WorkStart,
		WorkEnd:                  a.WorkEnd,
		LateThresholdMinutes:     a.LateThresholdMinutes,
		EarlyOutThresholdMinutes: a.EarlyOutThresholdMinutes,
	}
}

// CivilLocation returns the device timezone. Config must have passed
// Validate first.
func (a AttendanceConfig) CivilLocation() *time.Location {
	loc, _ := civiltime.FixedLocation(a.CivilOffset)
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
