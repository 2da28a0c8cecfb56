// Package config loads program settings from an optional YAML file and
// SCHOOLNET_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the full program configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Storage StorageConfig `yaml:"storage"`
	Solver  SolverConfig  `yaml:"solver"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
	// File appends logs to a file instead of stderr when set.
	File string `yaml:"file"`
}

// MetricsConfig controls the Prometheus endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// StorageConfig holds backend settings used for s3:// locations.
type StorageConfig struct {
	S3 S3Config `yaml:"s3"`
}

// S3Config mirrors the S3 knobs that are not part of a location URI.
type S3Config struct {
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint" validate:"omitempty,url"`
	PathStyle bool   `yaml:"path_style"`
}

// SolverConfig controls the greedy solver front end.
type SolverConfig struct {
	// Trace logs every greedy pick at debug level.
	Trace bool `yaml:"trace"`
}

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "SCHOOLNET_"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

var validate = newValidator()

// newValidator reports fields by their YAML names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads path (skipped when empty), applies environment overrides from
// os.LookupEnv and validates the result.
func Load(path string) (Config, error) {
	return LoadWith(path, os.LookupEnv)
}

// LoadWith is Load with an explicit environment lookup.
func LoadWith(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, &OpError{Op: "config.load", Kind: KindNotFound, Path: path, Err: err}
		}
		if err := decode(b, &cfg); err != nil {
			return Config{}, &OpError{Op: "config.load", Kind: KindInvalidConfig, Path: path, Err: err}
		}
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, &OpError{Op: "config.env", Kind: KindInvalidConfig, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, &OpError{Op: "config.validate", Kind: KindInvalidConfig, Path: path, Err: err}
	}

	return cfg, nil
}

// decode strictly unmarshals YAML onto cfg; an empty document keeps cfg.
func decode(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnv overlays SCHOOLNET_* variables onto cfg.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"LOG_LEVEL":    &cfg.Log.Level,
		"LOG_FORMAT":   &cfg.Log.Format,
		"LOG_FILE":     &cfg.Log.File,
		"METRICS_ADDR": &cfg.Metrics.Addr,
		"S3_REGION":    &cfg.Storage.S3.Region,
		"S3_ENDPOINT":  &cfg.Storage.S3.Endpoint,
	}
	for key, dst := range str {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	flags := map[string]*bool{
		"S3_PATH_STYLE": &cfg.Storage.S3.PathStyle,
		"SOLVER_TRACE":  &cfg.Solver.Trace,
	}
	for key, dst := range flags {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = b
	}

	return nil
}

// Validate checks field constraints and reports the first violation by its
// YAML-ish path, e.g. "log.level: must be one of [debug info warn error]".
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	e := verrs[0]
	field := fieldPath(e.Namespace())
	switch e.Tag() {
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s], got %q", field, e.Param(), e.Value())
	case "hostname_port":
		return fmt.Errorf("%s: must be host:port, got %q", field, e.Value())
	case "url":
		return fmt.Errorf("%s: must be a URL, got %q", field, e.Value())
	default:
		return fmt.Errorf("%s: failed %s", field, e.Tag())
	}
}

// fieldPath turns "Config.log.level" into "log.level".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
