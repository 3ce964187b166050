package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "custody", cfg.Database.DBName)
	assert.Equal(t, "https://api.coingecko.com/api/v3", cfg.Oracle.BaseURL)
	assert.Equal(t, "https://blockstream.info/api", cfg.Chains.BitcoinAPI)
	assert.NotZero(t, cfg.Chains.Timeout)
	assert.NotZero(t, cfg.Reconcile.LockTTL)
	assert.Empty(t, cfg.Wallet.Mnemonic, "mnemonic must have no default")
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
database:
  dbname: custody_test
wallet:
  export_token_ttl: 2m
chains:
  solana_rpc: http://localhost:8899
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "custody_test", cfg.Database.DBName)
	assert.Equal(t, "http://localhost:8899", cfg.Chains.SolanaRPC)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "2m0s", cfg.Wallet.ExportTokenTTL.String())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MCC_SERVER_PORT", "7070")
	t.Setenv("MCC_WALLET_MNEMONIC", "legal winner thank year wave sausage worth useful legal winner thank yellow")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.NotEmpty(t, cfg.Wallet.Mnemonic)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p",
		DBName: "custody", SSLMode: "require",
	}
	assert.Equal(t, "postgres://u:p@db:5433/custody?sslmode=require", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
