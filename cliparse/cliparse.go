package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	BaseURL      string
	AdminKey     string
	LogLevel     string

	SMTPHost     string
	SMTPPort     int
	MailFrom     string
	MailPassword string
}

// MailConfigured reports whether SMTP credentials are present.
func (c Config) MailConfigured() bool {
	return c.MailFrom != "" && c.MailPassword != ""
}

// LoadEnv reads a .env file into the process environment.
// A missing file is not an error; variables already set are not overridden.
func LoadEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	return ParseFlagSet(flag.NewFlagSet("vote321", flag.ContinueOnError), args)
}

// ParseFlagSet registers the shared flags on fs, parses args and applies env
// fallbacks. Commands add their own flags to fs before calling it.
func ParseFlagSet(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "Base URL used in voting links")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Admin shared secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := intEnv("PORT", 5000)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = stringEnv("DATABASE_URL", "votes.db")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = stringEnv("DATABASE_TYPE", DatabaseSQLite)
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = stringEnv("BASE_URL", "http://127.0.0.1:5000")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = stringEnv("LOG_LEVEL", "info")
	}

	// Admin is disabled, not an error, when no key is set
	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}

	// Mail transport: absent credentials fall back to logging messages
	cfg.SMTPHost = stringEnv("SMTP_HOST", "smtp.gmail.com")
	smtpPort, err := intEnv("SMTP_PORT", 465)
	if err != nil {
		return Config{}, err
	}
	cfg.SMTPPort = smtpPort
	cfg.MailFrom = os.Getenv("VOTE_APP_EMAIL")
	cfg.MailPassword = os.Getenv("VOTE_APP_EMAIL_PASS")

	return cfg, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}
