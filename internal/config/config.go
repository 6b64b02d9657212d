package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	defaultRunAddress      = "localhost:8080"
	defaultMigrationsDir   = "internal/db/migrations"
	defaultRefreshInterval = 24 * time.Hour
	defaultExpireInterval  = time.Hour
	defaultGiftTTL         = 30 * 24 * time.Hour
)

type Config struct {
	RunAddress          string        `env:"RUN_ADDRESS"`
	DatabaseDSN         string        `env:"DATABASE_URI"`
	MigrationsDir       string        `env:"MIGRATIONS_DIR"`
	JWTAdminSecret      string        `env:"JWT_ADMIN_SECRET"`
	AdminPasswordHash   string        `env:"ADMIN_PASSWORD_HASH"`
	RateQuoteURL        string        `env:"RATE_QUOTE_API_URL"`
	RateRefreshInterval time.Duration `env:"RATE_REFRESH_INTERVAL"`
	GiftExpireInterval  time.Duration `env:"GIFT_EXPIRE_INTERVAL"`
	GiftTTL             time.Duration `env:"GIFT_TTL"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTAdminSecret == "" {
		return nil, errors.New("admin JWT secret is not set")
	}
	if conf.AdminPasswordHash == "" {
		return nil, errors.New("admin password hash is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", defaultRunAddress, "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", defaultMigrationsDir, "Database migrations directory")
	flag.StringVar(&flagConfig.JWTAdminSecret, "j", "", "Admin JWT signing secret")
	flag.StringVar(&flagConfig.AdminPasswordHash, "p", "", "Admin password bcrypt hash")
	flag.StringVar(&flagConfig.RateQuoteURL, "q", "", "External USD/VES quote API URL")
	flag.DurationVar(&flagConfig.RateRefreshInterval, "r", defaultRefreshInterval, "Quote refresh interval")
	flag.DurationVar(&flagConfig.GiftExpireInterval, "e", defaultExpireInterval, "Overdue gift sweep interval")
	flag.DurationVar(&flagConfig.GiftTTL, "t", defaultGiftTTL, "Gift acceptance deadline")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:          defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:         defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:       defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTAdminSecret:      defaultIfBlank(envConfig.JWTAdminSecret, flagsConfig.JWTAdminSecret),
		AdminPasswordHash:   defaultIfBlank(envConfig.AdminPasswordHash, flagsConfig.AdminPasswordHash),
		RateQuoteURL:        defaultIfBlank(envConfig.RateQuoteURL, flagsConfig.RateQuoteURL),
		RateRefreshInterval: defaultIfZero(envConfig.RateRefreshInterval, flagsConfig.RateRefreshInterval),
		GiftExpireInterval:  defaultIfZero(envConfig.GiftExpireInterval, flagsConfig.GiftExpireInterval),
		GiftTTL:             defaultIfZero(envConfig.GiftTTL, flagsConfig.GiftTTL),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero(value time.Duration, defaultValue time.Duration) time.Duration {
	if value == 0 {
		return defaultValue
	}
	return value
}
