// Package config loads the YAML settings file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"inventaris-lab-backend/internal/platform/archive"
	"inventaris-lab-backend/internal/platform/auth"
	"inventaris-lab-backend/internal/platform/db"
)

const (
	ModeDev     = "dev"
	ModeRelease = "release"

	EnvDBPassword = "INVENTARIS_DB_PASSWORD"
	EnvJWTSecret  = "INVENTARIS_JWT_SECRET"
)

type Server struct {
	Addr      string `yaml:"addr"`
	StaticDir string `yaml:"static_dir"`
}

type Certs struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

type Seed struct {
	Dir string `yaml:"dir"`
}

type Log struct {
	Level string `yaml:"level"`
}

type Config struct {
	Version     string            `yaml:"version"`
	Mode        string            `yaml:"mode"`
	Server      Server            `yaml:"server"`
	Certificate Certs             `yaml:"certificate"`
	DB          db.DatabaseConfig `yaml:"database"`
	Auth        auth.Config       `yaml:"auth"`
	Export      archive.Config    `yaml:"export"`
	Seed        Seed              `yaml:"seed"`
	Log         Log               `yaml:"log"`
}

// TLS reports whether both certificate files are configured.
func (c *Config) TLS() bool {
	return c.Certificate.Cert != "" && c.Certificate.Key != ""
}

func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(buf)
}

// Parse decodes buf, applies defaults and environment overrides, then
// validates the result.
func Parse(buf []byte) (*Config, error) {
	cfg := Config{
		Mode:   ModeDev,
		Server: Server{Addr: ":8080"},
		DB:     db.DatabaseConfig{Driver: string(db.DialectSQLite), Path: "inventaris.db"},
		Log:    Log{Level: "info"},
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if v := os.Getenv(EnvDBPassword); v != "" {
		cfg.DB.Password = v
	}
	if v := os.Getenv(EnvJWTSecret); v != "" {
		cfg.Auth.JWTSecret = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Mode != ModeDev && c.Mode != ModeRelease {
		return fmt.Errorf("mode must be %s or %s, got %q", ModeDev, ModeRelease, c.Mode)
	}
	switch db.Dialect(c.DB.Driver) {
	case db.DialectMySQL:
		if c.DB.Host == "" || c.DB.DBName == "" {
			return fmt.Errorf("database.host and database.dbname required for mysql")
		}
	case db.DialectSQLite:
		if c.DB.Path == "" {
			return fmt.Errorf("database.path required for sqlite")
		}
	default:
		return fmt.Errorf("database.driver must be mysql or sqlite, got %q", c.DB.Driver)
	}
	if c.Auth.Enabled && strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("auth.jwt_secret required when auth is enabled (or set %s)", EnvJWTSecret)
	}
	if (c.Certificate.Cert == "") != (c.Certificate.Key == "") {
		return fmt.Errorf("certificate.cert and certificate.key go together")
	}
	return nil
}
