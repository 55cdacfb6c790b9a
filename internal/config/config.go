package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pedrohba/gradeplan/internal/app/models"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Planning struct {
		Horizon           int    `yaml:"horizon" env:"PLANNING_HORIZON"`
		MinCreditsPerTerm int    `yaml:"min_credits_per_term" env:"PLANNING_MIN_CREDITS_PER_TERM"`
		MaxCreditsPerTerm int    `yaml:"max_credits_per_term" env:"PLANNING_MAX_CREDITS_PER_TERM"`
		TermOneParity     string `yaml:"term_one_parity" env:"PLANNING_TERM_ONE_PARITY"`
		SolveTimeLimit    string `yaml:"solve_time_limit" env:"PLANNING_SOLVE_TIME_LIMIT"`
		TieBreak          string `yaml:"tie_break" env:"PLANNING_TIE_BREAK"`
	} `yaml:"planning"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		// Read file
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse YAML into Config structure
		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Database defaults
	config.Database.Driver = "postgres"
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "gradeplan"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// Planning defaults
	config.Planning.Horizon = 12
	config.Planning.MinCreditsPerTerm = 0
	config.Planning.MaxCreditsPerTerm = 32
	config.Planning.TermOneParity = string(models.ParityOdd)
	config.Planning.SolveTimeLimit = "120s"
	config.Planning.TieBreak = string(models.TieBreakFrontLoad)

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	// Ensure required fields are set
	if config.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if _, err := time.ParseDuration(config.Planning.SolveTimeLimit); err != nil {
		return fmt.Errorf("invalid planning solve time limit format: %w", err)
	}

	// The full planning section is validated with PlanningConfig semantics.
	if _, err := config.PlanningConfig(); err != nil {
		return err
	}

	return nil
}

// PlanningConfig converts the planning section into the typed configuration
// the planner consumes. Request payloads may still override individual fields.
func (c *Config) PlanningConfig() (models.PlanningConfig, error) {
	limit, err := time.ParseDuration(c.Planning.SolveTimeLimit)
	if err != nil {
		return models.PlanningConfig{}, fmt.Errorf("invalid planning solve time limit format: %w", err)
	}

	cfg := models.PlanningConfig{
		Horizon:           c.Planning.Horizon,
		MinCreditsPerTerm: c.Planning.MinCreditsPerTerm,
		MaxCreditsPerTerm: c.Planning.MaxCreditsPerTerm,
		TermOneParity:     models.TermParity(strings.ToUpper(c.Planning.TermOneParity)),
		SolveTimeLimit:    limit,
		TieBreak:          models.TieBreakPolicy(strings.ToLower(c.Planning.TieBreak)),
	}
	if err := cfg.Validate(); err != nil {
		return models.PlanningConfig{}, err
	}
	return cfg, nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
