package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/league-simulator/models"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting of the server.
type Config struct {
	DatabaseURL       string `env:"DATABASE_URL,required,notEmpty"`
	JWTSecretKey      string `env:"JWT_SECRET_KEY,required,notEmpty"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH,required,notEmpty"`
	ServerPort        int    `env:"SERVER_PORT" envDefault:"8080"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	Simulation SimulationConfig

	R2AccountID       string `env:"R2_ACCOUNT_ID"`
	R2AccessKeyID     string `env:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`
	R2BucketName      string `env:"R2_BUCKET_NAME"`
	R2PublicBaseURL   string `env:"R2_PUBLIC_BASE_URL"`
}

// SimulationConfig is the part of the config the league service uses.
type SimulationConfig struct {
	// Seed 0 draws a fresh seed for every run.
	Seed          uint64                 `env:"SIM_SEED" envDefault:"0"`
	SeasonBestOf  int                    `env:"SEASON_BEST_OF" envDefault:"1"`
	SeasonRounds  int                    `env:"SEASON_ROUNDS" envDefault:"1"`
	PlayoffTeams  int                    `env:"PLAYOFF_TEAMS" envDefault:"4"`
	WorldsSeeded  bool                   `env:"WORLDS_SEEDED_BRACKET" envDefault:"false"`
	WorldsPairing models.KnockoutPairing `env:"WORLDS_KNOCKOUT_PAIRING" envDefault:"random"`
	WorldsFormat  models.KnockoutFormat  `env:"WORLDS_KNOCKOUT_FORMAT" envDefault:"double"`
	BracketReset  bool                   `env:"BRACKET_RESET" envDefault:"false"`
	StartYear     int                    `env:"SIM_START_YEAR" envDefault:"2023"`
}

// ArchiveEnabled reports whether R2 credentials are configured.
func (c *Config) ArchiveEnabled() bool {
	return c.R2AccountID != ""
}

// SlogLevel maps LOG_LEVEL to a slog level, info when unknown.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Load reads the environment, after loading a .env file when present.
func Load() (*Config, error) {
	// A missing .env file is fine outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}
	s := c.Simulation
	switch s.SeasonBestOf {
	case 1, 3, 5:
	default:
		return fmt.Errorf("SEASON_BEST_OF must be 1, 3 or 5, got %d", s.SeasonBestOf)
	}
	if s.SeasonRounds != 1 && s.SeasonRounds != 2 {
		return fmt.Errorf("SEASON_ROUNDS must be 1 or 2, got %d", s.SeasonRounds)
	}
	if s.StartYear <= 0 {
		return fmt.Errorf("SIM_START_YEAR must be positive, got %d", s.StartYear)
	}
	if s.PlayoffTeams < 4 {
		return fmt.Errorf("PLAYOFF_TEAMS must be at least 4, got %d", s.PlayoffTeams)
	}
	if _, err := models.ParseKnockoutPairing(string(s.WorldsPairing)); err != nil {
		return fmt.Errorf("WORLDS_KNOCKOUT_PAIRING: %w", err)
	}
	if _, err := models.ParseKnockoutFormat(string(s.WorldsFormat)); err != nil {
		return fmt.Errorf("WORLDS_KNOCKOUT_FORMAT: %w", err)
	}
	if c.ArchiveEnabled() && (c.R2AccessKeyID == "" || c.R2SecretAccessKey == "" || c.R2BucketName == "") {
		return fmt.Errorf("R2_ACCOUNT_ID is set but R2 credentials or bucket are missing")
	}
	return nil
}
