// Package config loads the host configuration.
//
// Precedence, lowest to highest: built-in defaults, the YAML file, then
// SNA_* environment variables. A .env file in the working directory is
// folded into the environment first (existing variables win, the usual
// godotenv behavior). The merged result must pass validation; failures
// list every offending field.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalid classifies every validation failure; match with errors.Is.
var ErrInvalid = errors.New("config: invalid configuration")

// cfgValidate is the shared validator instance for Config.
var cfgValidate = validator.New()

// Config is the host configuration. Zero value is not useful; start from
// Default.
type Config struct {
	// Addr is the HTTP listen address, host optional (":8080").
	Addr string `yaml:"addr" validate:"required,hostname_port"`

	// LogLevel gates log output: debug, info, warn or error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// LogJSON switches the log format from text to JSON.
	LogJSON bool `yaml:"log_json"`

	// MaxUploadBytes caps the accepted upload size.
	MaxUploadBytes int64 `yaml:"max_upload_bytes" validate:"gt=0"`

	// Directed switches every build to directed interpretation.
	Directed bool `yaml:"directed"`

	// Tolerance is the symmetry comparison tolerance.
	Tolerance float64 `yaml:"tolerance" validate:"gte=0"`

	// MemoSize is the digest→diagnosis memo capacity; 0 disables.
	MemoSize int `yaml:"memo_size" validate:"gte=0"`

	// StoreBackend picks the payload store: "memory" or "badger".
	StoreBackend string `yaml:"store_backend" validate:"oneof=memory badger"`

	// StoreDir makes the badger backend persistent under this directory;
	// empty keeps it in-memory. Ignored by the memory backend.
	StoreDir string `yaml:"store_dir"`

	// RateLimitRPS bounds mutating requests per second; 0 disables.
	RateLimitRPS float64 `yaml:"rate_limit_rps" validate:"gte=0"`
}

// Default returns the built-in configuration: in-memory everything,
// human-readable logs, sane upload cap.
func Default() *Config {
	return &Config{
		Addr:           ":8080",
		LogLevel:       "info",
		LogJSON:        false,
		MaxUploadBytes: 32 << 20,
		Directed:       false,
		Tolerance:      1e-9,
		MemoSize:       8,
		StoreBackend:   "memory",
		StoreDir:       "",
		RateLimitRPS:   10,
	}
}

// Load assembles the configuration. An empty path skips the YAML layer;
// a named file must exist and parse. The result is validated before it
// is returned.
func Load(path string) (*Config, error) {
	// Fold .env into the environment; a missing file is fine.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the merged configuration, reporting every offending
// field at once.
func (c *Config) Validate() error {
	err := cfgValidate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: validate: %w", err)
	}

	items := make([]error, 0, len(verrs)+1)
	items = append(items, ErrInvalid)
	for _, fe := range verrs {
		items = append(items, fmt.Errorf("field %s fails %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}

	return errors.Join(items...)
}

// applyEnv lays SNA_* variables over the current values. Unset and empty
// variables change nothing; unparseable ones fail loudly rather than
// silently keeping the old value.
func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setString("SNA_ADDR", &c.Addr)
	setString("SNA_LOG_LEVEL", &c.LogLevel)
	setString("SNA_STORE_BACKEND", &c.StoreBackend)
	setString("SNA_STORE_DIR", &c.StoreDir)

	if err := envBool("SNA_LOG_JSON", &c.LogJSON); err != nil {
		return err
	}
	if err := envBool("SNA_DIRECTED", &c.Directed); err != nil {
		return err
	}
	if err := envInt64("SNA_MAX_UPLOAD_BYTES", &c.MaxUploadBytes); err != nil {
		return err
	}
	if err := envInt("SNA_MEMO_SIZE", &c.MemoSize); err != nil {
		return err
	}
	if err := envFloat("SNA_TOLERANCE", &c.Tolerance); err != nil {
		return err
	}
	if err := envFloat("SNA_RATE_LIMIT_RPS", &c.RateLimitRPS); err != nil {
		return err
	}

	return nil
}

func envBool(key string, dst *bool) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: env %s=%q is not a boolean", ErrInvalid, key, v)
	}
	*dst = parsed

	return nil
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: env %s=%q is not an integer", ErrInvalid, key, v)
	}
	*dst = parsed

	return nil
}

func envInt64(key string, dst *int64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: env %s=%q is not an integer", ErrInvalid, key, v)
	}
	*dst = parsed

	return nil
}

func envFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%w: env %s=%q is not a number", ErrInvalid, key, v)
	}
	*dst = parsed

	return nil
}
