package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Wallet    WalletConfig    `mapstructure:"wallet"`
	Chains    ChainsConfig    `mapstructure:"chains"`
	Oracle    OracleConfig    `mapstructure:"oracle"`
	Reconcile ReconcileConfig `mapstructure:"reconcile"`
	Log       LogConfig       `mapstructure:"log"`
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

// WalletConfig holds the master secret and export-authorization
// settings. Mnemonic is the system's single highest-value secret: it is
// read once at startup, converted to the master seed, and never logged
// or persisted.
type WalletConfig struct {
	Mnemonic             string        `mapstructure:"mnemonic"`
	ExportCredentialHash string        `mapstructure:"export_credential_hash"` // argon2id hash of the admin export credential
	ExportTokenSecret    string        `mapstructure:"export_token_secret"`    // HMAC secret for short-lived export tokens
	ExportTokenTTL       time.Duration `mapstructure:"export_token_ttl"`
}

// ChainsConfig holds per-network endpoints. EVM networks share one
// derived address; only the RPC endpoint differs.
type ChainsConfig struct {
	EthereumRPC string        `mapstructure:"ethereum_rpc"`
	BSCRPC      string        `mapstructure:"bsc_rpc"`
	PolygonRPC  string        `mapstructure:"polygon_rpc"`
	ArbitrumRPC string        `mapstructure:"arbitrum_rpc"`
	BaseRPC     string        `mapstructure:"base_rpc"`
	SolanaRPC   string        `mapstructure:"solana_rpc"`
	BitcoinAPI  string        `mapstructure:"bitcoin_api"`
	TronAPI     string        `mapstructure:"tron_api"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type OracleConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ReconcileConfig struct {
	LockTTL time.Duration `mapstructure:"lock_ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MCC_.
// Nested keys use underscore: MCC_DATABASE_HOST, MCC_WALLET_MNEMONIC, etc.
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
	v.SetDefault("database.dbname", "custody")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("wallet.mnemonic", "")
	v.SetDefault("wallet.export_credential_hash", "")
	v.SetDefault("wallet.export_token_secret", "")
	v.SetDefault("wallet.export_token_ttl", "5m")
	v.SetDefault("chains.ethereum_rpc", "https://eth.llamarpc.com")
	v.SetDefault("chains.bsc_rpc", "https://bsc-dataseed.binance.org")
	v.SetDefault("chains.polygon_rpc", "https://polygon-rpc.com")
	v.SetDefault("chains.arbitrum_rpc", "https://arb1.arbitrum.io/rpc")
	v.SetDefault("chains.base_rpc", "https://mainnet.base.org")
	v.SetDefault("chains.solana_rpc", "https://api.mainnet-beta.solana.com")
	v.SetDefault("chains.bitcoin_api", "https://blockstream.info/api")
	v.SetDefault("chains.tron_api", "https://api.trongrid.io")
	v.SetDefault("chains.timeout", "10s")
	v.SetDefault("oracle.base_url", "https://api.coingecko.com/api/v3")
	v.SetDefault("oracle.api_key", "")
	v.SetDefault("oracle.timeout", "10s")
	v.SetDefault("reconcile.lock_ttl", "30s")
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

	// Environment variables: MCC_DATABASE_HOST -> database.host
	v.SetEnvPrefix("MCC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional, env vars can suffice.
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
