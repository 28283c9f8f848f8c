package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("version: 1.0.0\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Mode != ModeDev || cfg.Server.Addr != ":8080" || cfg.DB.Driver != "sqlite" || cfg.DB.Path != "inventaris.db" {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.TLS() {
		t.Fatal("TLS without certificates")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
version: 1.2.0
mode: release
server:
  addr: ":8443"
certificate:
  cert: server.crt
  key: server.key
database:
  driver: mysql
  host: 127.0.0.1
  port: 3306
  user: lab
  password: from-file
  dbname: inventaris
auth:
  enabled: true
  jwt_secret: file-secret
  token_ttl: 12h
export:
  archive_driver: fs
  fs_root: /var/lib/inventaris
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvDBPassword, "from-env")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DB.Password != "from-env" || cfg.DB.Username != "lab" || cfg.DB.Port != 3306 {
		t.Fatalf("database: %+v", cfg.DB)
	}
	if !cfg.Auth.Enabled || cfg.Auth.JWTSecret != "file-secret" || cfg.Auth.TokenTTL != 12*time.Hour {
		t.Fatalf("auth: %+v", cfg.Auth)
	}
	if cfg.Export.Driver != "fs" || cfg.Export.FSRoot != "/var/lib/inventaris" || !cfg.TLS() {
		t.Fatalf("export/tls: %+v", cfg)
	}
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"unknown mode":       "mode: staging\n",
		"unknown driver":     "database:\n  driver: postgres\n",
		"mysql without host": "database:\n  driver: mysql\n  dbname: x\n",
		"auth without key":   "auth:\n  enabled: true\n",
		"half certificate":   "certificate:\n  cert: a.crt\n",
		"bad yaml":           "mode: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestJWTSecretFromEnv(t *testing.T) {
	t.Setenv(EnvJWTSecret, "env-secret")
	cfg, err := Parse([]byte("auth:\n  enabled: true\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Fatalf("secret: %q", cfg.Auth.JWTSecret)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Fatalf("err: %v", err)
	}
}
