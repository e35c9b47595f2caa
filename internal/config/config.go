// Package config loads the planner's runtime configuration.
//
// Sources, from lowest to highest priority:
//  1. Default values (in code)
//  2. A YAML file, when a path is given
//  3. GEOPLAN_* environment variables
//
// Command-line flags are applied by the caller after Load and the result is
// checked again with Validate.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable Load reads.
const EnvPrefix = "GEOPLAN_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all application configuration.
type Config struct {
	Data    Data    `yaml:"data"`
	Logging Logging `yaml:"logging"`
	Server  Server  `yaml:"server"`
}

// Data names the persisted sources loaded at start-up.
type Data struct {
	Points string `yaml:"points" validate:"required"`
	Routes string `yaml:"routes" validate:"required"`
}

// Logging configures the zap logger.
type Logging struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// Server configures the HTTP surface.
type Server struct {
	Addr            string        `yaml:"addr" validate:"required,hostname_port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	AllowedOrigins  []string      `yaml:"allowed_origins" validate:"min=1,dive,required"`
}

// Default returns a configuration with sensible defaults.
// The application can run with no file and no environment.
func Default() *Config {
	return &Config{
		Data: Data{
			Points: "pontos.txt",
			Routes: "rotas.txt",
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
		Server: Server{
			Addr:            "127.0.0.1:8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: open %s: %w", path, err)
		}
		defer f.Close()
		if err := decode(f, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays YAML from r on cfg. Unknown keys are rejected; an empty
// document leaves cfg unchanged.
func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnv overlays GEOPLAN_* variables on c.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"POINTS":     &c.Data.Points,
		"ROUTES":     &c.Data.Routes,
		"LOG_LEVEL":  &c.Logging.Level,
		"LOG_FORMAT": &c.Logging.Format,
		"ADDR":       &c.Server.Addr,
	}
	for key, dst := range str {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "ALLOWED_ORIGINS"); ok && v != "" {
		c.Server.AllowedOrigins = strings.Split(v, ",")
	}

	dur := map[string]*time.Duration{
		"READ_TIMEOUT":     &c.Server.ReadTimeout,
		"WRITE_TIMEOUT":    &c.Server.WriteTimeout,
		"SHUTDOWN_TIMEOUT": &c.Server.ShutdownTimeout,
	}
	for key, dst := range dur {
		v, ok := lookup(EnvPrefix + key)
		if !ok || v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s: %v", ErrInvalid, EnvPrefix, key, err)
		}
		*dst = d
	}
	return nil
}

var validate = validator.New()

// Validate checks every field constraint and reports all failures at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
