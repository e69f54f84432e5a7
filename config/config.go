package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."
	envPrefix   = "MARKET_"
)

// ErrNotFound is returned when no config file exists in any search path
var ErrNotFound = errors.New("config file not found")

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	API     APIConfig     `json:"api" yaml:"api"`
	Payment PaymentConfig `json:"payment" yaml:"payment"`
	Sandbox SandboxConfig `json:"sandbox" yaml:"sandbox"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig is how the client SDK reaches the marketplace API
type APIConfig struct {
	BaseURL     string        `json:"baseURL" yaml:"baseURL"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
	SessionFile string        `json:"sessionFile" yaml:"sessionFile"`
}

// PaymentConfig tunes entry-fee confirmation
type PaymentConfig struct {
	// offsets from the start of confirmation at which the status endpoint is checked
	ConfirmDelays   []time.Duration `json:"confirmDelays" yaml:"confirmDelays"`
	HistoryFallback bool            `json:"historyFallback" yaml:"historyFallback"`
	LiveEvents      bool            `json:"liveEvents" yaml:"liveEvents"`
}

// SandboxConfig configures the local in-memory backend
type SandboxConfig struct {
	Port int `json:"port" yaml:"port"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	AccessTTL  time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`

	// how long the payment processor takes to settle an entry fee
	EntryFeeLag    time.Duration `json:"entryFeeLag" yaml:"entryFeeLag"`
	PublishableKey string        `json:"publishableKey" yaml:"publishableKey"`
	Seed           bool          `json:"seed" yaml:"seed"`

	Timeouts struct {
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
}

// Default is the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Env.Env == "" {
		cfg.Env.Env = "local"
	}
	if cfg.Env.ServiceName == "" {
		cfg.Env.ServiceName = "auction-marketplace"
	}
	if cfg.Env.Log.Level == "" {
		cfg.Env.Log.Level = "info"
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8080/api"
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = 30 * time.Second
	}
	if len(cfg.Payment.ConfirmDelays) == 0 {
		cfg.Payment.ConfirmDelays = []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}
		cfg.Payment.HistoryFallback = true
	}
	if cfg.Sandbox.Port == 0 {
		cfg.Sandbox.Port = 8080
	}
	if cfg.Sandbox.SecretKey.Access == "" {
		cfg.Sandbox.SecretKey.Access = "sandbox-access-secret"
	}
	if cfg.Sandbox.SecretKey.Refresh == "" {
		cfg.Sandbox.SecretKey.Refresh = "sandbox-refresh-secret"
	}
	if cfg.Sandbox.AccessTTL <= 0 {
		cfg.Sandbox.AccessTTL = 15 * time.Minute
	}
	if cfg.Sandbox.RefreshTTL <= 0 {
		cfg.Sandbox.RefreshTTL = 7 * 24 * time.Hour
	}
	if cfg.Sandbox.BcryptCost == 0 {
		cfg.Sandbox.BcryptCost = 10
	}
	if cfg.Sandbox.PublishableKey == "" {
		cfg.Sandbox.PublishableKey = "pk_test_sandbox"
	}
	if cfg.Sandbox.Timeouts.ReadHeaderTimeout <= 0 {
		cfg.Sandbox.Timeouts.ReadHeaderTimeout = 5 * time.Second
	}
	if cfg.Sandbox.Timeouts.WriteTimeout <= 0 {
		cfg.Sandbox.Timeouts.WriteTimeout = 15 * time.Second
	}
	if cfg.Sandbox.Timeouts.IdleTimeout <= 0 {
		cfg.Sandbox.Timeouts.IdleTimeout = 60 * time.Second
	}
}

// LoadWithEnv loads <currEnv>.yaml through koanf and overlays MARKET_* environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

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

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			break
		}
	}
	if configFile == "" {
		return nil, errors.Wrapf(ErrNotFound, "%s.yaml", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// MARKET_API_BASEURL -> api.baseURL
			return canonicalizeEnvKey(strings.TrimPrefix(k, envPrefix), existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
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

// New loads .env (when present) and config.yaml from the usual locations.
func New() (*Config, error) {
	return Load("config", "config", "../config", "../../config")
}

// Load is New with an explicit file name and search paths. A missing file falls
// back to Default so the CLI works without any configuration.
func Load(name string, paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	cfg, err := LoadWithEnv[Config](name, paths...)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
