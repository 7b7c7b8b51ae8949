// Package config loads and validates the catalog configuration.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Store struct {
		// Backend selects the store implementation wired into the service
		// by the check command: "memory" or "simdb".
		Backend string `koanf:"backend" validate:"required,oneof=memory simdb"`
	} `koanf:"store"`

	SimDB struct {
		// Latency is the simulated per-operation round-trip delay.
		Latency time.Duration `koanf:"latency" validate:"min=0"`
	} `koanf:"simdb"`

	Log struct {
		Level string `koanf:"level" validate:"required,oneof=debug info warn error"`
	} `koanf:"log"`
}

func (c Config) String() string {
	return fmt.Sprintf("store.backend=%s, simdb.latency=%v, log.level=%s",
		c.Store.Backend,
		c.SimDB.Latency,
		c.Log.Level)
}

const (
	envPrefix      = "catalog_"
	defaultEnvFile = ".env"
)

// defaults let the demo run without any config file present.
var defaults = map[string]any{
	"store.backend": "memory",
	"simdb.latency": "25ms",
	"log.level":     "info",
}

// Load reads the configuration from defaults, an optional YAML file, an
// optional .env file, and environment variables, in ascending priority.
func Load(configFile string) (*Config, error) {
	// Create a new Koanf instance
	var k = koanf.New(".")

	// 1. Load default values
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	// 2. Load configuration from yaml file
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: error loading YAML config: %v", err)
		}
	}

	// 3. Load environment variables from .env file
	if envFileMap, err := godotenv.Read(defaultEnvFile); err == nil {
		envMap := make(map[string]any)
		for key, value := range envFileMap {
			envMap[keyTransformer(key)] = value
		}
		// Load the envMap into Koanf
		if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
			log.Printf("WARN: error loading .env config: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("WARN: error reading .env file: %v", err)
	}

	// 4. Load environment variables from the system, the highest priority
	if err := k.Load(env.Provider(strings.ToUpper(envPrefix), ".", keyTransformer), nil); err != nil {
		log.Printf("WARN: error loading env vars: %v", err)
	}

	var cfg Config
	// 5. Unmarshal the configuration into the Config struct
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// 6. Validate the configuration
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// keyTransformer transforms environment variable keys to match the expected format
func keyTransformer(key string) string {
	key = strings.ToLower(key)
	key = strings.TrimPrefix(key, envPrefix)
	return strings.ReplaceAll(key, "_", ".")
}
