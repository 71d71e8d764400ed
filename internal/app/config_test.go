package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("TUTORBOARD_DB", filepath.Join(t.TempDir(), "t.db"))

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Host != "127.0.0.1" || cfg.Port != 8000 {
		t.Errorf("addr = %s, want 127.0.0.1:8000", cfg.Addr())
	}
	if cfg.Mode != "prod" {
		t.Errorf("mode = %q, want prod", cfg.Mode)
	}
	if cfg.StaticDir != "web/static" {
		t.Errorf("static dir = %q", cfg.StaticDir)
	}
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	t.Setenv("TUTORBOARD_DB", filepath.Join(t.TempDir(), "t.db"))

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "host: 0.0.0.0\nport: 9000\nmode: dev\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Host != "0.0.0.0" || cfg.Port != 9000 || cfg.Mode != "dev" {
		t.Errorf("got %s mode=%s", cfg.Addr(), cfg.Mode)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("TUTORBOARD_DB", filepath.Join(t.TempDir(), "t.db"))
	t.Setenv("TUTORBOARD_PORT", "7777")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: 9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != 7777 {
		t.Errorf("port = %d, want env override 7777", cfg.Port)
	}
}

func TestLoadConfig_MissingFileIgnored(t *testing.T) {
	t.Setenv("TUTORBOARD_DB", filepath.Join(t.TempDir(), "t.db"))

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Errorf("LoadConfig on absent file: %v", err)
	}
}

func TestLoadConfig_InvalidMode(t *testing.T) {
	t.Setenv("TUTORBOARD_DB", filepath.Join(t.TempDir(), "t.db"))
	t.Setenv("TUTORBOARD_MODE", "loud")

	if _, err := LoadConfig(""); err == nil {
		t.Error("LoadConfig accepted invalid mode")
	}
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("TUTORBOARD_DB", filepath.Join(t.TempDir(), "t.db"))
	t.Setenv("TUTORBOARD_PORT", "99999")

	if _, err := LoadConfig(""); err == nil {
		t.Error("LoadConfig accepted out-of-range port")
	}
}

func TestSplitAddr(t *testing.T) {
	host, port, err := SplitAddr("0.0.0.0:9090")
	if err != nil {
		t.Fatalf("SplitAddr: %v", err)
	}
	if host != "0.0.0.0" || port != 9090 {
		t.Errorf("got %s:%d", host, port)
	}

	if _, _, err := SplitAddr("no-port"); err == nil {
		t.Error("SplitAddr accepted address without port")
	}
}
