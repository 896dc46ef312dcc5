// Package config loads the configuration of the academic record keeper from
// environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
	EnvTest        Environment = "test"
)

// Config holds all application configuration.
type Config struct {
	App      AppConfig      `envPrefix:"APP_"`
	Log      LogConfig      `envPrefix:"LOG_"`
	Grading  GradingConfig  `envPrefix:"GRADING_"`
	Session  SessionConfig  `envPrefix:"SESSION_"`
	EventBus EventBusConfig `envPrefix:"EVENTBUS_"`

	// Features is loaded separately by LoadFeatureFlags.
	Features *FeatureFlags
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string      `env:"NAME" envDefault:"academic-records"`
	Environment Environment `env:"ENV" envDefault:"development"`
	Version     string      `env:"VERSION" envDefault:"0.1.0"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level     string `env:"LEVEL" envDefault:"info"`
	Format    string `env:"FORMAT" envDefault:"text"` // "text" or "json"
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
}

// GradingConfig holds report settings.
type GradingConfig struct {
	// PassingGrade is the minimum final grade reported as passed, in (0,100].
	PassingGrade float64 `env:"PASSING_GRADE" envDefault:"70"`

	// Locale formats numbers in reports (BCP 47 tag).
	Locale string `env:"LOCALE" envDefault:"es-MX"`
}

// SessionConfig holds the profile of the student the console session starts with.
type SessionConfig struct {
	FirstName      string `env:"STUDENT_FIRST_NAME" envDefault:"Perla"`
	MiddleName     string `env:"STUDENT_MIDDLE_NAME" envDefault:"Yudith"`
	LastName       string `env:"STUDENT_LAST_NAME" envDefault:"Delgadillo"`
	MotherLastName string `env:"STUDENT_MOTHER_LAST_NAME" envDefault:"Navarro"`
	Age            int    `env:"STUDENT_AGE" envDefault:"38"`
	Gender         string `env:"STUDENT_GENDER" envDefault:"Femenino"`
	Nationality    string `env:"STUDENT_NATIONALITY" envDefault:"Mexicana"`
	Address        string `env:"STUDENT_ADDRESS" envDefault:"Monterrey, N.L."`
	HomePhone      string `env:"STUDENT_HOME_PHONE" envDefault:"528128459785"`
	MobilePhone    string `env:"STUDENT_MOBILE_PHONE" envDefault:"528131658748"`
}

// EventBusConfig holds event bus settings.
type EventBusConfig struct {
	Async   bool `env:"ASYNC" envDefault:"false"`
	Workers int  `env:"WORKERS" envDefault:"4"`
	Audit   bool `env:"AUDIT" envDefault:"true"`
}

// Load reads the optional dotenv files (".env" when none are given) and then
// the process environment. Variables already set in the environment win over
// dotenv values.
func Load(dotenvFiles ...string) (*Config, error) {
	if err := loadDotenv(dotenvFiles...); err != nil {
		return nil, fmt.Errorf("dotenv: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Features = LoadFeatureFlags()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func loadDotenv(files ...string) error {
	if len(files) == 0 {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
	return godotenv.Load(files...)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	// Handlers read a non-positive threshold as unset, so 0 is refused here.
	if c.Grading.PassingGrade <= 0 || c.Grading.PassingGrade > 100 {
		errs = append(errs, "GRADING_PASSING_GRADE must be greater than 0 and at most 100")
	}
	if _, err := language.Parse(c.Grading.Locale); err != nil {
		errs = append(errs, fmt.Sprintf("GRADING_LOCALE %q is not a valid language tag", c.Grading.Locale))
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, "LOG_FORMAT must be text or json")
	}

	if c.EventBus.Workers <= 0 {
		errs = append(errs, "EVENTBUS_WORKERS must be positive")
	}

	if strings.TrimSpace(c.Session.FirstName) == "" || strings.TrimSpace(c.Session.LastName) == "" {
		errs = append(errs, "SESSION_STUDENT_FIRST_NAME and SESSION_STUDENT_LAST_NAME are required")
	}
	if c.Session.Age < 0 {
		errs = append(errs, "SESSION_STUDENT_AGE cannot be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// Language returns the parsed report locale, falling back to Spanish.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Grading.Locale)
	if err != nil {
		return language.Spanish
	}
	return tag
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}
