// config/config.go
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix prefixes every environment variable, e.g. VIEWKIT_HTTP_PORT.
const EnvPrefix = "VIEWKIT"

// HTTPConfig groups listener settings.
type HTTPConfig struct {
	HTTPPort            int           `mapstructure:"http_port"`
	ReadTimeout         time.Duration `mapstructure:"-"` // read_timeout, parsed leniently
	ShutdownTimeout     time.Duration `mapstructure:"-"` // shutdown_timeout, parsed leniently
	MaxRequestBodyBytes int64         `mapstructure:"max_request_body_bytes"`
}

// CORSConfig groups all CORS behavior and lists.
type CORSConfig struct {
	EnableCORS         bool     `mapstructure:"enable_cors"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	CORSAllowedMethods []string `mapstructure:"cors_allowed_methods"`
	CORSAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	CORSMaxAge         int      `mapstructure:"cors_max_age"`
}

// HelperConfig holds defaults the preview service feeds into the helpers.
type HelperConfig struct {
	// MaskPlaceholder is used when a mask request names no placeholder.
	MaskPlaceholder string `mapstructure:"mask_placeholder"`
	// MoneyPrefix is prepended to rendered amounts when a request sends none.
	MoneyPrefix string `mapstructure:"money_prefix"`
}

// CoreConfig is the full preview service configuration.
type CoreConfig struct {
	Env      string `mapstructure:"env"`       // "dev" | "prod"
	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error …

	HTTP    HTTPConfig   `mapstructure:",squash"`
	CORS    CORSConfig   `mapstructure:",squash"`
	Helpers HelperConfig `mapstructure:",squash"`
}

// Dump returns a pretty JSON string of the config for debugging.
func (c CoreConfig) Dump() string {
	b, _ := json.MarshalIndent(c, "", "  ")
	return string(b)
}

// Load reads configuration using the process arguments.
func Load(logger *zap.Logger) (*CoreConfig, error) {
	return LoadArgs(logger, os.Args[1:])
}

// LoadArgs merges defaults → config.* file(s) → env vars → explicit flags into
// one CoreConfig. Final precedence (highest wins): flags > env > config > defaults.
func LoadArgs(logger *zap.Logger, args []string) (*CoreConfig, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Optional .env; real env still wins over .env.
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded .env file")
	}

	fs := pflag.NewFlagSet("viewkit", pflag.ContinueOnError)
	fs.String("env", "dev", `Runtime environment "dev"|"prod"`)
	fs.String("log_level", "debug", "Log level")
	fs.Int("http_port", 8080, "HTTP port")
	fs.String("read_timeout", "15s", "HTTP read timeout (e.g. \"15s\")")
	fs.String("shutdown_timeout", "10s", "Graceful shutdown timeout (e.g. \"10s\")")
	fs.Int64("max_request_body_bytes", 1<<20, "Max HTTP request body size in bytes (0 = unlimited)")

	fs.Bool("enable_cors", false, "Enable CORS")
	fs.String("cors_allowed_origins", "", `JSON array of origins, e.g. '["https://a.example"]'`)
	fs.String("cors_allowed_methods", "", `JSON array of methods, e.g. '["GET","POST"]'`)
	fs.String("cors_allowed_headers", "", `JSON array of headers, e.g. '["Content-Type"]'`)
	fs.Int("cors_max_age", 0, "CORS: max age seconds (0 disables cache)")

	fs.String("mask_placeholder", "#", "Default mask placeholder character")
	fs.String("money_prefix", "", `Default prefix for rendered amounts, e.g. "R$ "`)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, k := range allKeys() {
		_ = v.BindEnv(k)
	}

	mergeConfigFiles(logger, v)
	setDefaults(v)

	// Only explicitly set flags override.
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			_ = v.BindPFlag(f.Name, f)
		}
	})

	if err := normalizeListKeys(logger, v,
		"cors_allowed_origins",
		"cors_allowed_methods",
		"cors_allowed_headers",
	); err != nil {
		return nil, err
	}

	var cfg CoreConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	readTimeout, err := parseDurationFlexible(v.Get("read_timeout"), 15*time.Second)
	if err != nil {
		logger.Warn("invalid read_timeout; using default 15s",
			zap.Any("value", v.Get("read_timeout")), zap.Error(err))
	}
	cfg.HTTP.ReadTimeout = readTimeout

	shutdownTimeout, err := parseDurationFlexible(v.Get("shutdown_timeout"), 10*time.Second)
	if err != nil {
		logger.Warn("invalid shutdown_timeout; using default 10s",
			zap.Any("value", v.Get("shutdown_timeout")), zap.Error(err))
	}
	cfg.HTTP.ShutdownTimeout = shutdownTimeout

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigFiles merges optional config.{yaml,yml,json,toml} from the
// working directory, in that order.
func mergeConfigFiles(logger *zap.Logger, v *viper.Viper) {
	for _, ext := range [...]string{"yaml", "yml", "json", "toml"} {
		file := "config." + ext
		b, err := os.ReadFile(file)
		if err != nil {
			if !os.IsNotExist(err) {
				logger.Warn("cannot read config file", zap.String("file", file), zap.Error(err))
			}
			continue
		}
		v.SetConfigType(ext)
		if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
			logger.Warn("cannot decode config file", zap.String("file", file), zap.Error(err))
			continue
		}
		logger.Info("Loaded config file", zap.String("file", file))
	}
}

func allKeys() []string {
	return []string{
		"env", "log_level",
		"http_port", "read_timeout", "shutdown_timeout", "max_request_body_bytes",
		"enable_cors", "cors_allowed_origins", "cors_allowed_methods",
		"cors_allowed_headers", "cors_max_age",
		"mask_placeholder", "money_prefix",
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "debug")

	v.SetDefault("http_port", 8080)
	v.SetDefault("read_timeout", "15s")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("max_request_body_bytes", int64(1<<20))

	v.SetDefault("enable_cors", false)
	v.SetDefault("cors_allowed_origins", []string{})
	v.SetDefault("cors_allowed_methods", []string{})
	v.SetDefault("cors_allowed_headers", []string{})
	v.SetDefault("cors_max_age", 0)

	v.SetDefault("mask_placeholder", "#")
	v.SetDefault("money_prefix", "")
}

// normalizeListKeys coerces JSON-string values into []string for the given keys.
func normalizeListKeys(logger *zap.Logger, v *viper.Viper, keys ...string) error {
	for _, key := range keys {
		switch t := v.Get(key).(type) {
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				v.Set(key, []string{})
				continue
			}
			var arr []string
			if err := json.Unmarshal([]byte(s), &arr); err != nil {
				return fmt.Errorf("config key %q expects a JSON array string, got %q: %w", key, s, err)
			}
			v.Set(key, arr)
		case []any:
			arr := make([]string, 0, len(t))
			for _, e := range t {
				arr = append(arr, fmt.Sprint(e))
			}
			v.Set(key, arr)
		case []string, nil:
			// already correct or unset
		default:
			logger.Warn("unexpected type for list key; expected JSON array/string",
				zap.String("key", key), zap.Any("value", t))
		}
	}
	return nil
}

func validate(cfg CoreConfig) error {
	var missing []string
	var invalid []string

	if cfg.Env != "dev" && cfg.Env != "prod" {
		invalid = append(invalid, `env must be "dev" or "prod"`)
	}
	if cfg.HTTP.HTTPPort <= 0 || cfg.HTTP.HTTPPort > 65535 {
		invalid = append(invalid, "http_port must be in 1..65535")
	}
	if cfg.HTTP.MaxRequestBodyBytes < 0 {
		invalid = append(invalid, "max_request_body_bytes must be >= 0")
	}

	if cfg.CORS.EnableCORS {
		if len(cfg.CORS.CORSAllowedOrigins) == 0 {
			missing = append(missing, "CORS: cors_allowed_origins (JSON array) required when enable_cors=true")
		}
		if len(cfg.CORS.CORSAllowedMethods) == 0 {
			missing = append(missing, "CORS: cors_allowed_methods (JSON array) required when enable_cors=true")
		}
		if cfg.CORS.CORSMaxAge < 0 {
			invalid = append(invalid, "CORS: cors_max_age must be >= 0")
		}
	}

	if utf8.RuneCountInString(cfg.Helpers.MaskPlaceholder) != 1 {
		invalid = append(invalid, "mask_placeholder must be exactly one character")
	}

	if len(missing) == 0 && len(invalid) == 0 {
		return nil
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "invalid: "+strings.Join(invalid, ", "))
	}
	return fmt.Errorf("configuration errors: %s", strings.Join(parts, " | "))
}

// Placeholder returns the configured mask placeholder as a rune.
func (h HelperConfig) Placeholder() rune {
	for _, r := range h.MaskPlaceholder {
		return r
	}
	return '#'
}
