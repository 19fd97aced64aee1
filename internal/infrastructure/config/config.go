package config

import (
	"log"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "STOREFRONT_"

type Config struct {
	Server ServerConfig `koanf:"server"`
	OTLP   OTLPConfig   `koanf:"otlp"`
	Log    LogConfig    `koanf:"log"`
}

type ServerConfig struct {
	Host string `koanf:"host" validate:"required"`
	Port string `koanf:"port" validate:"required,numeric"`
}

type OTLPConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Endpoint    string `koanf:"endpoint" validate:"required_if=Enabled true"`
	ServiceName string `koanf:"service_name" validate:"required"`
	Environment string `koanf:"environment" validate:"required"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

var defaults = map[string]any{
	"server.host":       "0.0.0.0",
	"server.port":       "8080",
	"otlp.enabled":      false,
	"otlp.endpoint":     "localhost:4317",
	"otlp.service_name": "storefront",
	"otlp.environment":  "development",
	"log.level":         "debug",
}

// plainKeys maps the unprefixed variables the service has always read, the
// standard OTel ones and the bare SERVER_* pair, onto config keys
var plainKeys = map[string]string{
	"OTEL_EXPORTER_OTLP_ENDPOINT": "otlp.endpoint",
	"OTEL_SERVICE_NAME":           "otlp.service_name",
	"OTEL_ENVIRONMENT":            "otlp.environment",
	"SERVER_HOST":                 "server.host",
	"SERVER_PORT":                 "server.port",
}

var plainPrefixes = []string{"OTEL_", "SERVER_"}

// LoadConfig loads configuration from config.yaml, .env and the environment
func LoadConfig() (*Config, error) {
	return LoadFrom("config.yaml", ".env")
}

// LoadFrom layers configuration in increasing priority: defaults, the yaml
// file, the dotenv file, the unprefixed variables in plainKeys, then
// STOREFRONT_* variables.
// Missing files are skipped.
func LoadFrom(configFile, envFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}

	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("WARN: error loading YAML config file '%s': %v", configFile, err)
	}

	if envFileMap, err := godotenv.Read(envFile); err == nil {
		envMap := make(map[string]any)
		for key, value := range envFileMap {
			if mapped := envKey(key); mapped != "" {
				envMap[mapped] = value
			}
		}
		if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
			log.Printf("WARN: error loading .env config: %v", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Printf("WARN: error reading .env file: %v", err)
	}

	for _, prefix := range plainPrefixes {
		if err := k.Load(env.Provider(prefix, ".", func(key string) string { return plainKeys[key] }), nil); err != nil {
			log.Printf("WARN: error loading %s* env vars: %v", prefix, err)
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		log.Printf("WARN: error loading system env vars: %v", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// envKey turns STOREFRONT_OTLP_SERVICE_NAME into otlp.service_name. Keys
// in plainKeys keep their fixed mapping, other unprefixed keys are ignored.
func envKey(key string) string {
	if mapped, ok := plainKeys[key]; ok {
		return mapped
	}
	if !strings.HasPrefix(key, envPrefix) {
		return ""
	}
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func (c *Config) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}
