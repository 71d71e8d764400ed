package app

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/store"
)

// Config holds everything the server process needs. Values come from an
// optional YAML file, with TUTORBOARD_* environment variables taking
// precedence over both the file and the defaults.
type Config struct {
	Host             string `yaml:"host"`
	Port             int    `yaml:"port"`
	Mode             string `yaml:"mode"`
	DBPath           string `yaml:"db_path"`
	StaticDir        string `yaml:"static_dir"`
	GrowthConfigPath string `yaml:"growth_config_path"`
}

// DefaultConfig returns the process defaults used when no file or
// environment override is present.
func DefaultConfig() Config {
	return Config{
		Host:      "127.0.0.1",
		Port:      8000,
		Mode:      "prod",
		StaticDir: "web/static",
	}
}

// LoadConfig reads the YAML config at path (skipped when path is empty
// or the file does not exist) and applies environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return cfg, fmt.Errorf("resolve db path: %w", err)
		}
		cfg.DBPath = p
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.Mode != "prod" && cfg.Mode != "dev" {
		return cfg, fmt.Errorf("invalid mode %q (want prod or dev)", cfg.Mode)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TUTORBOARD_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("TUTORBOARD_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("TUTORBOARD_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("TUTORBOARD_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TUTORBOARD_STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
	if v := os.Getenv("TUTORBOARD_GROWTH_CONFIG"); v != "" {
		cfg.GrowthConfigPath = v
	}
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SplitAddr parses a host:port listen address into its parts.
func SplitAddr(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid addr %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port in %q: %w", addr, err)
	}
	return host, port, nil
}
