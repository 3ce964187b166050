package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "multichain-custody/internal/adapter/http/handler"
	redisStorage "multichain-custody/internal/adapter/storage/redis"
	"multichain-custody/internal/core/domain"
	"multichain-custody/internal/hdwallet"
	"multichain-custody/internal/service"
	"multichain-custody/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds a full application stack: real HTTP layer, middleware,
// services, real derivation and Redis leases (miniredis), with the
// chain reader and price oracle faked and storage in memory.

const (
	testMnemonic     = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testExportSecret = "integration-export-secret"
	testTokenSecret  = "integration-token-secret-32bytes"
)

type testApp struct {
	server      *httptest.Server
	redis       *miniredis.Miniredis
	accountRepo *inMemoryAccountRepo
	ledgerRepo  *inMemoryLedgerRepo
	auditRepo   *inMemoryExportAuditRepo
	reader      *fakeBalanceReader
	oracle      *fakePriceOracle
	tokenAuth   *service.ExportTokenAuthorizer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	seed, err := hdwallet.SeedFromMnemonic(testMnemonic)
	require.NoError(t, err)

	locks := newRowLocks()
	accountRepo := newInMemoryAccountRepo(locks)
	ledgerRepo := newInMemoryLedgerRepo()
	auditRepo := newInMemoryExportAuditRepo()
	transactor := memTransactor{}

	reader := newFakeBalanceReader()
	oracle := newFakePriceOracle()
	reconcileLock := redisStorage.NewReconcileLock(rdb)

	log := logger.New("error", false)
	deriver := hdwallet.New()

	accountSvc := service.NewAccountService(accountRepo, ledgerRepo, deriver, seed, log)
	reconcileSvc := service.NewReconcileService(
		accountRepo, ledgerRepo, reader, oracle, reconcileLock, transactor, 30*time.Second, log,
	)

	tokenAuth := service.NewExportTokenAuthorizer(testTokenSecret, 5*time.Minute)
	authorizer := service.NewMultiAuthorizer(
		service.NewStaticCredentialAuthorizer(
			service.HashExportCredential(testExportSecret, []byte("integration-salt")),
		),
		tokenAuth,
	)
	exportSvc := service.NewKeyExportService(accountRepo, auditRepo, authorizer, deriver, seed, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AccountSvc:   accountSvc,
		ReconcileSvc: reconcileSvc,
		ExportSvc:    exportSvc,
		Logger:       log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{
		server:      server,
		redis:       mr,
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		auditRepo:   auditRepo,
		reader:      reader,
		oracle:      oracle,
		tokenAuth:   tokenAuth,
	}
}

func (a *testApp) post(t *testing.T, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	resp, err := http.Post(a.server.URL+path, "application/json", &buf)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func (a *testApp) get(t *testing.T, path string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(a.server.URL + path)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func (a *testApp) createAccount(t *testing.T) string {
	t.Helper()
	resp, body := a.post(t, "/api/v1/accounts", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	return data["id"].(string)
}

// --- Integration tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, body := app.get(t, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_CreateAccountAndWallets(t *testing.T) {
	app := newTestApp(t)

	resp, body := app.post(t, "/api/v1/accounts", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]any)
	accountID := data["id"].(string)
	assert.Equal(t, "0", data["balance_usd"])

	wallets := data["wallets"].([]any)
	require.Len(t, wallets, 4)
	addresses := make(map[string]string)
	for _, w := range wallets {
		wallet := w.(map[string]any)
		assert.True(t, wallet["available"].(bool))
		assert.NotEmpty(t, wallet["address"])
		assert.NotEmpty(t, wallet["derivation_path"])
		addresses[wallet["family"].(string)] = wallet["address"].(string)
	}
	assert.Regexp(t, "^0x", addresses["EVM"])
	assert.Regexp(t, "^T", addresses["TRON"])

	// Wallets endpoint returns the same immutable addresses.
	resp2, body2 := app.get(t, "/api/v1/accounts/"+accountID+"/wallets")
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	for _, w := range body2["data"].(map[string]any)["wallets"].([]any) {
		wallet := w.(map[string]any)
		assert.Equal(t, addresses[wallet["family"].(string)], wallet["address"].(string))
	}
}

func TestIntegration_AccountsGetDistinctAddresses(t *testing.T) {
	app := newTestApp(t)

	id1 := app.createAccount(t)
	id2 := app.createAccount(t)

	_, body1 := app.get(t, "/api/v1/accounts/"+id1+"/wallets")
	_, body2 := app.get(t, "/api/v1/accounts/"+id2+"/wallets")

	w1 := body1["data"].(map[string]any)["wallets"].([]any)[0].(map[string]any)
	w2 := body2["data"].(map[string]any)["wallets"].([]any)[0].(map[string]any)
	assert.NotEqual(t, w1["address"], w2["address"])
}

func TestIntegration_DepositLifecycle(t *testing.T) {
	app := newTestApp(t)
	accountID := app.createAccount(t)

	app.oracle.set("ETH", decimal.NewFromInt(2000))
	app.reader.set(domain.NetworkEthereum, decimal.NewFromFloat(0.5))

	// First check credits the full on-chain balance: 0.5 ETH at $2000.
	resp, body := app.post(t, "/api/v1/accounts/"+accountID+"/deposits/check",
		map[string]string{"network": "eth"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.True(t, data["new_deposit"].(bool))
	assert.Equal(t, "1000", data["amount"])

	// Second check sees no delta.
	_, body = app.post(t, "/api/v1/accounts/"+accountID+"/deposits/check",
		map[string]string{"network": "eth"})
	assert.False(t, body["data"].(map[string]any)["new_deposit"].(bool))

	// A further on-chain deposit credits only the delta.
	app.reader.set(domain.NetworkEthereum, decimal.NewFromFloat(0.8))
	_, body = app.post(t, "/api/v1/accounts/"+accountID+"/deposits/check",
		map[string]string{"network": "eth"})
	data = body["data"].(map[string]any)
	assert.True(t, data["new_deposit"].(bool))
	assert.Equal(t, "600", data["amount"])

	// Ledger shows both credits, newest first.
	resp, body = app.get(t, "/api/v1/accounts/"+accountID+"/ledger")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ledger := body["data"].(map[string]any)
	assert.Equal(t, float64(2), ledger["total"])
	items := ledger["items"].([]any)
	first := items[0].(map[string]any)
	assert.Equal(t, "DEPOSIT", first["type"])
	assert.Equal(t, "APPROVED", first["status"])
	assert.Equal(t, "ethereum", first["method"])
}

func TestIntegration_DustDeltaNotCredited(t *testing.T) {
	app := newTestApp(t)
	accountID := app.createAccount(t)

	app.oracle.set("ETH", decimal.NewFromInt(2000))
	app.reader.set(domain.NetworkEthereum, decimal.NewFromFloat(0.000004)) // 0.008 USD

	_, body := app.post(t, "/api/v1/accounts/"+accountID+"/deposits/check",
		map[string]string{"network": "eth"})
	assert.False(t, body["data"].(map[string]any)["new_deposit"].(bool))
	assert.Equal(t, 0, app.ledgerRepo.countFor(uuid.MustParse(accountID)))
}

func TestIntegration_BalanceUnavailableSkipsCycle(t *testing.T) {
	app := newTestApp(t)
	accountID := app.createAccount(t)

	app.oracle.set("BTC", decimal.NewFromInt(60000))
	// No balance registered for btc: the reader reports unavailable.

	resp, body := app.post(t, "/api/v1/accounts/"+accountID+"/deposits/check",
		map[string]string{"network": "btc"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, body["data"].(map[string]any)["new_deposit"].(bool))
}

func TestIntegration_FallbackWalletSkipsCheck(t *testing.T) {
	app := newTestApp(t)

	// Seed an account whose Tron derivation failed at creation time.
	now := time.Now().UTC()
	account := &domain.Account{
		ID:          uuid.New(),
		BalanceUSD:  decimal.Zero,
		WalletIndex: 42,
		Wallets: map[domain.ChainFamily]domain.ChainWallet{
			domain.FamilyTron: domain.NewFallbackWallet(domain.FamilyTron),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, app.accountRepo.Create(context.Background(), account))

	resp, body := app.post(t, "/api/v1/accounts/"+account.ID.String()+"/deposits/check",
		map[string]string{"network": "trx"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, body["data"].(map[string]any)["new_deposit"].(bool))
}

func TestIntegration_UnknownNetwork(t *testing.T) {
	app := newTestApp(t)
	accountID := app.createAccount(t)

	resp, body := app.post(t, "/api/v1/accounts/"+accountID+"/deposits/check",
		map[string]string{"network": "dogecoin"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error_code"])
}

func TestIntegration_UnknownAccount(t *testing.T) {
	app := newTestApp(t)

	resp, body := app.post(t, "/api/v1/accounts/b2c7a1de-0000-4000-8000-000000000000/deposits/check",
		map[string]string{"network": "eth"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "WAL_001", body["error_code"])
}

func TestIntegration_KeyExport(t *testing.T) {
	app := newTestApp(t)
	accountID := app.createAccount(t)

	resp, body := app.post(t, "/api/v1/accounts/"+accountID+"/keys/export",
		map[string]string{"authorization_secret": testExportSecret})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	keys := body["data"].(map[string]any)["keys"].([]any)
	require.Len(t, keys, 4)
	for _, k := range keys {
		key := k.(map[string]any)
		assert.NotEmpty(t, key["secret"], "family %s", key["family"])
		assert.NotEmpty(t, key["address"])
	}

	assert.Equal(t, []domain.ExportAuditOutcome{domain.ExportOutcomeGranted}, app.auditRepo.outcomes())
}

func TestIntegration_KeyExportWithToken(t *testing.T) {
	app := newTestApp(t)
	accountID := app.createAccount(t)

	token, _, err := app.tokenAuth.Generate()
	require.NoError(t, err)

	resp, body := app.post(t, "/api/v1/accounts/"+accountID+"/keys/export",
		map[string]string{"export_token": token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].(map[string]any)["keys"].([]any), 4)
}

func TestIntegration_KeyExportRejected(t *testing.T) {
	app := newTestApp(t)
	accountID := app.createAccount(t)

	resp, body := app.post(t, "/api/v1/accounts/"+accountID+"/keys/export",
		map[string]string{"authorization_secret": "wrong-secret"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SEC_001", body["error_code"])

	// A denied attempt leaves only the audit row behind.
	assert.Equal(t, []domain.ExportAuditOutcome{domain.ExportOutcomeDenied}, app.auditRepo.outcomes())
}
