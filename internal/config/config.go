// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env`
// file when one exists), loads them into structured Go types and
// validates that required values are present so they can be reused
// across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for everything except the connection string.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// ServiceName tags every log line emitted by the process.
	ServiceName = "resource-api"

	// EnvPrefix is the prefix for every optional setting.
	EnvPrefix = "RESOURCES_"

	// ConnectionStringEnv holds the MongoDB connection string. It is the
	// only variable the service cannot start without.
	ConnectionStringEnv = "MONGODB"
)

/*
	Key mapping:
	- Optional settings are read with the RESOURCES_ prefix.
	- The prefix is dropped, the rest lowercased, and the first "_" becomes
	  the section separator:
	    RESOURCES_SERVER_READ_TIMEOUT -> server.read_timeout -> Config.Server.ReadTimeout
	- MONGODB is mapped onto database.uri.
*/

// Config is the root configuration object for the application.
type Config struct {
	Primary  Primary            `koanf:"primary" validate:"required"`
	Server   ServerConfig       `koanf:"server" validate:"required"`
	Database DatabaseConfig     `koanf:"database" validate:"required"`
	Logging  LoggingConfig      `koanf:"logging" validate:"required"`
	Health   HealthChecksConfig `koanf:"health" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig contains MongoDB connection parameters.
type DatabaseConfig struct {
	URI            string `koanf:"uri" validate:"required"`
	Name           string `koanf:"name" validate:"required"`
	Collection     string `koanf:"collection" validate:"required"`
	ConnectTimeout int    `koanf:"connect_timeout" validate:"required,min=1"`
}

// Defaults returns a Config with every optional value filled in.
// Database.URI is left empty on purpose: it must come from the environment.
func Defaults() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "8000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			ShutdownTimeout:    30,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Name:           "cfc_db",
			Collection:     "resources",
			ConnectTimeout: 10,
		},
		Logging: DefaultLoggingConfig(),
		Health:  DefaultHealthChecksConfig(),
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it
// on top of Defaults, validates it and returns the result.
//
// Unlike most of the application, this never logs: the caller decides how
// fatal a broken configuration is.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load %s env variables: %w", EnvPrefix, err)
	}

	// Only the exact variable name is accepted; MONGODB_FOO is ignored.
	err = k.Load(env.Provider(ConnectionStringEnv, ".", func(s string) string {
		if s == ConnectionStringEnv {
			return "database.uri"
		}
		return ""
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", ConnectionStringEnv, err)
	}

	// Keys absent from koanf leave the defaults untouched.
	mainConfig := Defaults()
	if err := k.UnmarshalWithConf("", mainConfig, koanf.UnmarshalConf{DecoderConfig: decoderConfig()}); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Logging.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}

	return mainConfig, nil
}

// decoderConfig extends koanf's default decoding with comma separated
// lists, so RESOURCES_SERVER_CORS_ALLOWED_ORIGINS=a,b yields two origins.
// koanf fills in Result and TagName.
func decoderConfig() *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		WeaklyTypedInput: true,
	}
}

// ReadTimeoutDuration converts the configured seconds into a duration.
// The sibling helpers below do the same for the other server timeouts.
func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

func (s ServerConfig) IdleTimeoutDuration() time.Duration {
	return time.Duration(s.IdleTimeout) * time.Second
}

func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// ConnectTimeoutDuration converts the configured seconds into a duration.
func (d DatabaseConfig) ConnectTimeoutDuration() time.Duration {
	return time.Duration(d.ConnectTimeout) * time.Second
}

// IsLocal reports whether the process runs on a developer machine.
// Verbose driver command logging is only switched on there.
func (p Primary) IsLocal() bool {
	return p.Env == "local"
}
