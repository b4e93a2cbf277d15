package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Signing  SigningConfig  `mapstructure:"signing"`
	Gateway  GatewayConfig  `mapstructure:"gateway"`
	Notifier NotifierConfig `mapstructure:"notifier"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AuthConfig holds caller identity and capability grant settings.
// Grants map privileged accounts to capabilities; everything else is an
// ordinary caller.
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret"`
	JWTExpiry  time.Duration `mapstructure:"jwt_expiry"`
	JWTIssuer  string        `mapstructure:"jwt_issuer"`
	Admins     []string      `mapstructure:"admins"`
	Registrars []string      `mapstructure:"registrars"`
	Verifiers  []string      `mapstructure:"verifiers"`
	Relayers   []string      `mapstructure:"relayers"`
}

// LedgerConfig holds ledger accounts and the bootstrap values for the
// admin-adjustable parameters (persisted values take precedence once set).
type LedgerConfig struct {
	FeeCollector      string `mapstructure:"fee_collector"`
	MaxFeeBps         int64  `mapstructure:"max_fee_bps"`
	DefaultFeeBps     int64  `mapstructure:"default_fee_bps"`
	MinPaymentAmount  int64  `mapstructure:"min_payment_amount"`
	DailyGaslessQuota int64  `mapstructure:"daily_gasless_quota"`
}

// SigningConfig describes the domain separator for gasless payment intents.
// All four fields are bound into the domain hash so signatures cannot be
// replayed across networks or ledger deployments.
type SigningConfig struct {
	DomainName    string `mapstructure:"domain_name"`
	DomainVersion string `mapstructure:"domain_version"`
	NetworkID     string `mapstructure:"network_id"`
	LedgerID      string `mapstructure:"ledger_id"`
}

// GatewayConfig points at the external value transfer gateway.
type GatewayConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Secret  string        `mapstructure:"secret"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// NotifierConfig lists indexer endpoints that receive signed ledger events.
type NotifierConfig struct {
	Endpoints []string `mapstructure:"endpoints"`
	Secret    string   `mapstructure:"secret"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PRL_ (Payment Rails).
// Nested keys use underscore: PRL_DATABASE_HOST, PRL_AUTH_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "payment_rails")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_expiry", "24h")
	v.SetDefault("auth.jwt_issuer", "payment-rails")
	v.SetDefault("ledger.fee_collector", "")
	v.SetDefault("ledger.max_fee_bps", 1000)
	v.SetDefault("ledger.default_fee_bps", 100)
	v.SetDefault("ledger.min_payment_amount", 1)
	v.SetDefault("ledger.daily_gasless_quota", 1_000_000)
	v.SetDefault("signing.domain_name", "PaymentRails")
	v.SetDefault("signing.domain_version", "1")
	v.SetDefault("signing.network_id", "mainnet")
	v.SetDefault("signing.ledger_id", "")
	v.SetDefault("gateway.base_url", "")
	v.SetDefault("gateway.secret", "")
	v.SetDefault("gateway.timeout", "10s")
	v.SetDefault("notifier.endpoints", []string{})
	v.SetDefault("notifier.secret", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PRL_DATABASE_HOST -> database.host
	v.SetEnvPrefix("PRL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
