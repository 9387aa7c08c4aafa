package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	minBcryptCost = 12
)

// expiryPattern matches configured lifetimes: an integer with a unit of
// seconds, minutes, hours, or days (e.g. "60s", "15m", "2h", "7d").
var expiryPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	JWT JWTConfig `json:"jwt" yaml:"jwt"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// PubSub configuration for auth event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Cleanup configuration for the expired-record sweeper
	Cleanup *CleanupConfig `json:"cleanup" yaml:"cleanup"`
}

// JWTConfig defines token signing configuration. Lifetimes use the
// <integer><unit> format and are validated at startup; a malformed value is a
// configuration error, never a silent fallback.
type JWTConfig struct {
	Secret           string `json:"secret" yaml:"secret"`
	AccessExpiresIn  string `json:"accessExpiresIn" yaml:"accessExpiresIn"`
	RefreshExpiresIn string `json:"refreshExpiresIn" yaml:"refreshExpiresIn"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost            int    `json:"bcryptCost" yaml:"bcryptCost"`
	MaxActiveSessions     int    `json:"maxActiveSessions" yaml:"maxActiveSessions"`
	VerificationExpiresIn string `json:"verificationExpiresIn" yaml:"verificationExpiresIn"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// CleanupConfig defines the expired session/token sweep schedule.
type CleanupConfig struct {
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// ParseExpiry converts an <integer><unit> lifetime string into a duration.
// Unit is one of s, m, h, d. A malformed string is an error; callers must
// treat it as a configuration failure rather than substituting a default.
func ParseExpiry(expiresIn string) (time.Duration, error) {
	match := expiryPattern.FindStringSubmatch(strings.TrimSpace(expiresIn))
	if match == nil {
		return 0, errors.Errorf("invalid expiry format %q (expect e.g. 60s, 15m, 2h, 7d)", expiresIn)
	}

	value, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, errors.Wrapf(err, "invalid expiry value %q", expiresIn)
	}

	switch match[2] {
	case "s":
		return time.Duration(value) * time.Second, nil
	case "m":
		return time.Duration(value) * time.Minute, nil
	case "h":
		return time.Duration(value) * time.Hour, nil
	case "d":
		return time.Duration(value) * 24 * time.Hour, nil
	default:
		return 0, errors.Errorf("invalid expiry unit %q", expiresIn)
	}
}

// LoadWithEnv loads .yaml files through koanf, then applies environment
// variable overrides (JWT_SECRET -> jwt.secret and so on).
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// Load environment variables: JWT_ACCESS_EXPIRES_IN -> jwt.access.expires.in
	// segments are matched case-insensitively against struct fields below.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate fails fast on settings that would otherwise surface as runtime
// surprises: missing JWT secret, malformed lifetimes, weak bcrypt cost.
func (cfg *Config) validate() error {
	if cfg.JWT.Secret == "" {
		return errors.New("jwt.secret must be provided")
	}

	if _, err := ParseExpiry(cfg.JWT.AccessExpiresIn); err != nil {
		return errors.Wrap(err, "jwt.accessExpiresIn")
	}
	if _, err := ParseExpiry(cfg.JWT.RefreshExpiresIn); err != nil {
		return errors.Wrap(err, "jwt.refreshExpiresIn")
	}

	if cfg.Auth != nil {
		if cfg.Auth.VerificationExpiresIn != "" {
			if _, err := ParseExpiry(cfg.Auth.VerificationExpiresIn); err != nil {
				return errors.Wrap(err, "auth.verificationExpiresIn")
			}
		}
		if cfg.Auth.BcryptCost != 0 && cfg.Auth.BcryptCost < minBcryptCost {
			return errors.Errorf("auth.bcryptCost must be at least %d", minBcryptCost)
		}
	}

	return nil
}
