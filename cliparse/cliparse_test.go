// cliparse/cliparse_test.go
package cliparse

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("ADMIN_KEY", "test-key")
	t.Setenv("BASE_URL", "https://votes.example.com")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.AdminKey != "test-key" {
		t.Errorf("expected admin key from env, got %q", cfg.AdminKey)
	}
	if cfg.BaseURL != "https://votes.example.com" {
		t.Errorf("expected base url from env, got %s", cfg.BaseURL)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "BASE_URL", "ADMIN_KEY",
		"SMTP_HOST", "SMTP_PORT", "VOTE_APP_EMAIL", "VOTE_APP_EMAIL_PASS", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite || cfg.DatabaseURL != "votes.db" {
		t.Errorf("expected sqlite votes.db, got %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.SMTPHost != "smtp.gmail.com" || cfg.SMTPPort != 465 {
		t.Errorf("unexpected smtp defaults: %s:%d", cfg.SMTPHost, cfg.SMTPPort)
	}
	if cfg.AdminKey != "" {
		t.Errorf("admin key should default to empty, got %q", cfg.AdminKey)
	}
	if cfg.MailConfigured() {
		t.Error("mail should not be configured without credentials")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-admin-key", "k1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.AdminKey != "k1" {
		t.Errorf("expected admin key k1, got %q", cfg.AdminKey)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad port env", map[string]string{"PORT": "abc"}, nil},
		{"bad smtp port", map[string]string{"SMTP_PORT": "x"}, nil},
		{"unknown database type", nil, []string{"-t", "mysql"}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseFlagSet_CommandFlags(t *testing.T) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("o", "votes_export.xlsx", "output file")

	cfg, err := ParseFlagSet(fs, []string{"-o", "out.xlsx", "-d", "other.db"})
	if err != nil {
		t.Fatal(err)
	}
	if *out != "out.xlsx" {
		t.Errorf("expected command flag to be parsed, got %s", *out)
	}
	if cfg.DatabaseURL != "other.db" {
		t.Errorf("expected shared flag to be parsed, got %s", cfg.DatabaseURL)
	}
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("VOTE_APP_EMAIL=from@example.com\nVOTE_APP_EMAIL_PASS=pw\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VOTE_APP_EMAIL", "")
	t.Setenv("VOTE_APP_EMAIL_PASS", "")
	os.Unsetenv("VOTE_APP_EMAIL")
	os.Unsetenv("VOTE_APP_EMAIL_PASS")

	if err := LoadEnv(path); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.MailConfigured() {
		t.Error("expected mail to be configured from .env")
	}

	// Missing file is fine
	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing .env should not fail: %v", err)
	}
}
