// Package config loads the two process-level inputs the handler needs —
// the cache file location and the server bind address — the same way the
// teacher's config package loaded a device IP and password: flags first,
// then a ".env" file, then compiled-in defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cgol/internal/engine"
)

// Config holds process configuration plus the compile-time engine defaults
// the spec allows to remain fixed.
type Config struct {
	CacheDBPath string
	BindAddress string
	Engine      engine.Params
}

// Default returns the compiled-in defaults before any override is applied.
func Default() Config {
	return Config{
		CacheDBPath: "cgol_results.db",
		BindAddress: ":8080",
		Engine:      engine.DefaultParams(),
	}
}

// Load resolves a Config by reading a ".env" file (if present in the
// current directory, or else in the nearest ancestor that holds go.mod),
// then applying environment variable
// overrides. Precedence: environment variable > .env file > default.
func Load() Config {
	cfg := Default()

	envPath := filepath.Join(findProjectRoot(), ".env")
	if data, err := os.ReadFile(envPath); err == nil {
		applyEnvFile(string(data), &cfg)
	}

	if v := os.Getenv("CGOL_CACHE_DB"); v != "" {
		cfg.CacheDBPath = v
	}
	if v := os.Getenv("CGOL_BIND_ADDR"); v != "" {
		cfg.BindAddress = v
	}
	if v := os.Getenv("CGOL_MAX_GENERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.MaxGenerations = n
		}
	}
	if v := os.Getenv("CGOL_REPEAT_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.RepeatThreshold = n
		}
	}

	return cfg
}

func applyEnvFile(content string, cfg *Config) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "CGOL_CACHE_DB":
			cfg.CacheDBPath = value
		case "CGOL_BIND_ADDR":
			cfg.BindAddress = value
		case "CGOL_MAX_GENERATIONS":
			if n, err := strconv.Atoi(value); err == nil {
				cfg.Engine.MaxGenerations = n
			}
		case "CGOL_REPEAT_THRESHOLD":
			if n, err := strconv.Atoi(value); err == nil {
				cfg.Engine.RepeatThreshold = n
			}
		}
	}
}

func findProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	if _, err := os.Stat(filepath.Join(cwd, ".env")); err == nil {
		return cwd
	}
	for {
		if _, err := os.Stat(filepath.Join(cwd, "go.mod")); err == nil {
			return cwd
		}
		parent := filepath.Dir(cwd)
		if parent == cwd {
			return cwd
		}
		cwd = parent
	}
}
