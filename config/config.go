package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultCurrency           = "USD"
	defaultMaxLoginAttempts   = 5
	defaultLockoutDuration    = 2 * time.Hour
	defaultAuditBufferSize    = 1024
	defaultAuditBatchSize     = 100
	defaultAuditFlushInterval = time.Second
	defaultAuditRetention     = 90 * 24 * time.Hour
	defaultAuditPurgeSchedule = "0 3 * * *"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Purchase configures pricing defaults and automatic role escalation
	Purchase *PurchaseConfig `json:"purchase" yaml:"purchase"`

	// Audit configures the asynchronous audit trail and its retention
	Audit *AuditConfig `json:"audit" yaml:"audit"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost       int           `json:"bcryptCost" yaml:"bcryptCost"`
	MaxLoginAttempts int           `json:"maxLoginAttempts" yaml:"maxLoginAttempts"`
	LockoutDuration  time.Duration `json:"lockoutDuration" yaml:"lockoutDuration"`
	AccessTokenTTL   time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL  time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
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

// PurchaseConfig defines order pricing defaults and role escalation thresholds
type PurchaseConfig struct {
	Currency         string          `json:"currency" yaml:"currency"`
	PremiumThreshold decimal.Decimal `json:"premiumThreshold" yaml:"premiumThreshold"`
	VIPThreshold     decimal.Decimal `json:"vipThreshold" yaml:"vipThreshold"`
}

// AuditConfig defines the audit recorder and retention sweeper
type AuditConfig struct {
	// Capacity of the in-memory buffer; events beyond it are dropped
	BufferSize int `json:"bufferSize" yaml:"bufferSize"`

	// Maximum number of events written in one batch
	BatchSize int `json:"batchSize" yaml:"batchSize"`

	// Longest time an event waits in a partial batch
	FlushInterval time.Duration `json:"flushInterval" yaml:"flushInterval"`

	// Events older than this are purged
	Retention time.Duration `json:"retention" yaml:"retention"`

	// Cron spec of the purge job
	PurgeSchedule string `json:"purgeSchedule" yaml:"purgeSchedule"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "noop" to disable
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Optional API endpoint override, e.g. an emulator (for google provider)
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Optional service account key file (for google provider)
	CredentialsFile string `json:"credentialsFile" yaml:"credentialsFile"`
}

// LoadWithEnv loads .yaml files through koanf.
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
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
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

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
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
				stringToDecimalHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

// applyDefaults fills the sections a deployment may leave out.
func applyDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.MaxLoginAttempts <= 0 {
		cfg.Auth.MaxLoginAttempts = defaultMaxLoginAttempts
	}
	if cfg.Auth.LockoutDuration <= 0 {
		cfg.Auth.LockoutDuration = defaultLockoutDuration
	}

	if cfg.Purchase == nil {
		cfg.Purchase = &PurchaseConfig{}
	}
	if cfg.Purchase.Currency == "" {
		cfg.Purchase.Currency = defaultCurrency
	}
	if !cfg.Purchase.PremiumThreshold.IsPositive() {
		cfg.Purchase.PremiumThreshold = decimal.NewFromInt(10000)
	}
	if !cfg.Purchase.VIPThreshold.IsPositive() {
		cfg.Purchase.VIPThreshold = decimal.NewFromInt(50000)
	}

	if cfg.Audit == nil {
		cfg.Audit = &AuditConfig{}
	}
	if cfg.Audit.BufferSize <= 0 {
		cfg.Audit.BufferSize = defaultAuditBufferSize
	}
	if cfg.Audit.BatchSize <= 0 {
		cfg.Audit.BatchSize = defaultAuditBatchSize
	}
	if cfg.Audit.FlushInterval <= 0 {
		cfg.Audit.FlushInterval = defaultAuditFlushInterval
	}
	if cfg.Audit.Retention <= 0 {
		cfg.Audit.Retention = defaultAuditRetention
	}
	if strings.TrimSpace(cfg.Audit.PurgeSchedule) == "" {
		cfg.Audit.PurgeSchedule = defaultAuditPurgeSchedule
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{Provider: "noop"}
	}
}

// stringToDecimalHookFunc decodes YAML numbers and env strings into decimal.Decimal.
func stringToDecimalHookFunc() mapstructure.DecodeHookFuncType {
	decimalType := reflect.TypeOf(decimal.Decimal{})

	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != decimalType {
			return data, nil
		}

		switch v := data.(type) {
		case decimal.Decimal:
			return v, nil
		case float64:
			return decimal.NewFromFloat(v), nil
		default:
			d, err := decimal.NewFromString(fmt.Sprint(v))
			if err != nil {
				return nil, errors.Wrapf(err, "parse decimal %v", v)
			}

			return d, nil
		}
	}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
