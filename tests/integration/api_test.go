package integration

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "payment-rails/internal/adapter/http/handler"
	redisStorage "payment-rails/internal/adapter/storage/redis"
	"payment-rails/internal/core/domain"
	"payment-rails/internal/core/ports"
	"payment-rails/internal/service"
	"payment-rails/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds a full application stack with in-memory repos, an in-memory
// value transfer gateway, and miniredis behind the real quota store. This
// exercises the real HTTP layer, middleware, handlers, and services
// end-to-end.

const (
	adminAccount     = "ops-admin"
	registrarAccount = "registrar-1"
	verifierAccount  = "verifier-1"
	relayerAccount   = "relayer-1"
	collectorAccount = "fee-collector"
)

type testApp struct {
	server        *httptest.Server
	redis         *miniredis.Miniredis
	gateway       *inMemoryGateway
	tokenSvc      *service.JWTTokenService
	signingDomain domain.SigningDomain
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	quotaStore := redisStorage.NewQuotaStore(rdb)

	log := logger.New("debug", false)

	merchantRepo := newInMemoryMerchantRepo()
	paymentRepo := newInMemoryPaymentRepo()
	payerRepo := newInMemoryPayerRepo()
	paramsRepo := newInMemoryParamsRepo()
	transactor := newInMemoryTransactor()
	gw := newInMemoryGateway()

	require.NoError(t, paramsRepo.Update(context.Background(), &domain.LedgerParams{
		MaxFeeBps:         1000,
		DefaultFeeBps:     100,
		MinPaymentAmount:  1,
		DailyGaslessQuota: 150,
		UpdatedAt:         time.Now().UTC(),
	}))

	signingDomain := domain.SigningDomain{
		Name:      "payment-rails",
		Version:   "1",
		NetworkID: "testnet",
		LedgerID:  "ledger-test",
	}

	signer := service.NewHMACSigner()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")
	authorizer := service.NewCapabilityAuthorizer(
		[]string{adminAccount},
		[]string{registrarAccount},
		[]string{verifierAccount},
		[]string{relayerAccount},
	)
	verifier := service.NewIntentVerifier(signingDomain)
	notifier := service.NewEventNotifier(nil, "", signer, http.DefaultClient, log)

	directorySvc := service.NewDirectoryService(merchantRepo, paramsRepo, transactor, authorizer, notifier, log)
	ledgerSvc := service.NewLedgerService(
		paymentRepo, merchantRepo, payerRepo, paramsRepo, transactor,
		gw, verifier, quotaStore, authorizer, notifier, collectorAccount, log,
	)
	paramsSvc := service.NewParamsService(paramsRepo, authorizer, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		DirectorySvc:   directorySvc,
		LedgerSvc:      ledgerSvc,
		ParamsSvc:      paramsSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server:        server,
		redis:         mr,
		gateway:       gw,
		tokenSvc:      tokenSvc,
		signingDomain: signingDomain,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// do issues a request as account (empty = unauthenticated) and returns the
// status code plus the decoded response envelope.
func (a *testApp) do(t *testing.T, method, path, account string, payload any) (int, map[string]interface{}) {
	t.Helper()

	var reqBody *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if account != "" {
		token, _, err := a.tokenSvc.Generate(account)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", body)
	return d
}

// registerActiveMerchant registers an already-active merchant through the
// registrar path and returns its id.
func registerActiveMerchant(t *testing.T, app *testApp, owner, payout string, feeBps int64) string {
	t.Helper()
	status, body := app.do(t, http.MethodPost, "/api/v1/merchants/direct", registrarAccount, map[string]interface{}{
		"name":             "Shop " + owner,
		"category":         "RETAIL",
		"payout_account":   payout,
		"owner":            owner,
		"fee_override_bps": feeBps,
		"accepts_credit":   true,
		"accepts_stable":   true,
	})
	require.Equal(t, http.StatusCreated, status, "register direct failed: %v", body)
	d := data(t, body)
	assert.Equal(t, "ACTIVE", d["status"])
	return d["id"].(string)
}

// payDirect settles a direct payment as payer and returns the payment id.
func payDirect(t *testing.T, app *testApp, payer, merchantID string, amount int64) string {
	t.Helper()
	status, body := app.do(t, http.MethodPost, "/api/v1/payments", payer, map[string]interface{}{
		"merchant_id": merchantID,
		"asset":       "CREDIT",
		"amount":      amount,
		"order_ref":   fmt.Sprintf("order-%d", time.Now().UnixNano()),
	})
	require.Equal(t, http.StatusCreated, status, "payment failed: %v", body)
	return data(t, body)["id"].(string)
}

// gaslessBody builds a signed gasless payment request for the given key pair.
func gaslessBody(app *testApp, priv ed25519.PrivateKey, payer, merchantID string, amount int64, orderRef string, nonce uint64, deadline time.Time) map[string]interface{} {
	deadline = deadline.UTC().Truncate(time.Second)
	intent := domain.PaymentIntent{
		Payer:      payer,
		MerchantID: merchantID,
		Asset:      domain.AssetCredit,
		Amount:     amount,
		OrderRef:   orderRef,
		Nonce:      nonce,
		Deadline:   deadline,
	}
	digest := intent.Digest(app.signingDomain)
	sig := ed25519.Sign(priv, digest[:])

	return map[string]interface{}{
		"payer":       payer,
		"merchant_id": merchantID,
		"asset":       "CREDIT",
		"amount":      amount,
		"order_ref":   orderRef,
		"nonce":       nonce,
		"deadline":    deadline.Format(time.RFC3339),
		"signature":   base64.StdEncoding.EncodeToString(sig),
	}
}

// registerPayerKey generates a key pair and registers the public part.
func registerPayerKey(t *testing.T, app *testApp, payer string) ed25519.PrivateKey {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	status, body := app.do(t, http.MethodPost, "/api/v1/payers/keys", payer, map[string]string{
		"public_key": base64.StdEncoding.EncodeToString(pub),
	})
	require.Equal(t, http.StatusCreated, status, "key registration failed: %v", body)
	return priv
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_DirectPaymentFeeSplit(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	merchantID := registerActiveMerchant(t, app, "alice", "alice-payout", 100)
	app.gateway.fund(domain.AssetCredit, "bob", 1_000)

	status, body := app.do(t, http.MethodPost, "/api/v1/payments", "bob", map[string]interface{}{
		"merchant_id": merchantID,
		"asset":       "CREDIT",
		"amount":      int64(100),
		"order_ref":   "order-1",
	})
	require.Equal(t, http.StatusCreated, status, "payment failed: %v", body)

	d := data(t, body)
	assert.Equal(t, float64(1), d["fee"])
	assert.Equal(t, float64(99), d["merchant_amount"])
	assert.Equal(t, "COMPLETED", d["status"])

	payout, err := app.gateway.BalanceOf(context.Background(), domain.AssetCredit, "alice-payout")
	require.NoError(t, err)
	assert.Equal(t, int64(99), payout)
	collector, err := app.gateway.BalanceOf(context.Background(), domain.AssetCredit, collectorAccount)
	require.NoError(t, err)
	assert.Equal(t, int64(1), collector)

	// The merchant's volume counters moved with the payment.
	status, body = app.do(t, http.MethodGet, "/api/v1/merchants/"+merchantID, "", nil)
	require.Equal(t, http.StatusOK, status)
	md := data(t, body)
	assert.Equal(t, float64(100), md["total_volume"])
	assert.Equal(t, float64(1), md["total_tx_count"])
}

func TestIntegration_PartialRefund(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	merchantID := registerActiveMerchant(t, app, "alice", "alice-payout", 100)
	app.gateway.fund(domain.AssetCredit, "bob", 1_000)
	paymentID := payDirect(t, app, "bob", merchantID, 100)

	status, body := app.do(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/refund", "alice", map[string]interface{}{
		"amount": int64(40),
	})
	require.Equal(t, http.StatusOK, status, "refund failed: %v", body)
	d := data(t, body)
	assert.Equal(t, "PARTIAL_REFUND", d["status"])
	assert.Equal(t, float64(40), d["refunded_amount"])

	status, body = app.do(t, http.MethodGet, "/api/v1/payments/"+paymentID+"/refundable", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(59), data(t, body)["refundable"])

	// The payer got the 40 back.
	balance, err := app.gateway.BalanceOf(context.Background(), domain.AssetCredit, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(940), balance)
}

func TestIntegration_RefundToExhaustion(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	merchantID := registerActiveMerchant(t, app, "alice", "alice-payout", 100)
	app.gateway.fund(domain.AssetCredit, "bob", 1_000)
	paymentID := payDirect(t, app, "bob", merchantID, 100)

	status, body := app.do(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/refund", "alice", map[string]interface{}{
		"amount": int64(40),
	})
	require.Equal(t, http.StatusOK, status, "refund failed: %v", body)

	// A zero amount refunds everything that remains.
	status, body = app.do(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/refund", "alice", map[string]interface{}{
		"amount": int64(0),
	})
	require.Equal(t, http.StatusOK, status, "refund failed: %v", body)
	d := data(t, body)
	assert.Equal(t, "REFUNDED", d["status"])
	assert.Equal(t, float64(99), d["refunded_amount"])

	// Nothing left to give back.
	status, body = app.do(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/refund", "alice", map[string]interface{}{
		"amount": int64(1),
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "PAY_005", body["error_code"])
}

func TestIntegration_OperatorRefundReturnsFee(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	merchantID := registerActiveMerchant(t, app, "alice", "alice-payout", 100)
	app.gateway.fund(domain.AssetCredit, "bob", 1_000)
	paymentID := payDirect(t, app, "bob", merchantID, 100)

	status, body := app.do(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/refund/full", adminAccount, nil)
	require.Equal(t, http.StatusOK, status, "operator refund failed: %v", body)
	assert.Equal(t, "REFUNDED", data(t, body)["status"])

	// Merchant share and fee both came back to the payer.
	balance, err := app.gateway.BalanceOf(context.Background(), domain.AssetCredit, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(1_000), balance)
}

func TestIntegration_DisputeFreezesRefunds(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	merchantID := registerActiveMerchant(t, app, "alice", "alice-payout", 100)
	app.gateway.fund(domain.AssetCredit, "bob", 1_000)
	paymentID := payDirect(t, app, "bob", merchantID, 100)

	status, body := app.do(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/dispute", adminAccount, nil)
	require.Equal(t, http.StatusOK, status, "dispute failed: %v", body)

	status, body = app.do(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/refund", "alice", map[string]interface{}{
		"amount": int64(10),
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "PAY_006", body["error_code"])
}

func TestIntegration_GaslessPayment(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	merchantID := registerActiveMerchant(t, app, "alice", "alice-payout", 100)
	app.gateway.fund(domain.AssetCredit, "carol", 1_000)
	priv := registerPayerKey(t, app, "carol")

	deadline := time.Now().Add(time.Hour)
	payload := gaslessBody(app, priv, "carol", merchantID, 100, "order-g1", 0, deadline)

	status, body := app.do(t, http.MethodPost, "/api/v1/payments/gasless", relayerAccount, payload)
	require.Equal(t, http.StatusCreated, status, "gasless payment failed: %v", body)
	d := data(t, body)
	assert.Equal(t, "COMPLETED", d["status"])
	assert.Equal(t, float64(1), d["fee"])

	// Replaying the same signed intent fails on the consumed nonce.
	status, body = app.do(t, http.MethodPost, "/api/v1/payments/gasless", relayerAccount, payload)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "SIG_003", body["error_code"])
}

func TestIntegration_GaslessDeadlineExpired(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	merchantID := registerActiveMerchant(t, app, "alice", "alice-payout", 100)
	app.gateway.fund(domain.AssetCredit, "carol", 1_000)
	priv := registerPayerKey(t, app, "carol")

	payload := gaslessBody(app, priv, "carol", merchantID, 100, "order-g2", 0, time.Now().Add(-time.Minute))

	status, body := app.do(t, http.MethodPost, "/api/v1/payments/gasless", relayerAccount, payload)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "SIG_002", body["error_code"])
}

func TestIntegration_GaslessDailyQuota(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	merchantID := registerActiveMerchant(t, app, "alice", "alice-payout", 100)
	app.gateway.fund(domain.AssetCredit, "carol", 1_000)
	priv := registerPayerKey(t, app, "carol")

	deadline := time.Now().Add(time.Hour)

	// First payment of 100 fits inside the 150 daily quota.
	payload := gaslessBody(app, priv, "carol", merchantID, 100, "order-q1", 0, deadline)
	status, body := app.do(t, http.MethodPost, "/api/v1/payments/gasless", relayerAccount, payload)
	require.Equal(t, http.StatusCreated, status, "gasless payment failed: %v", body)

	// A second 100 would push the day's spend to 200.
	payload = gaslessBody(app, priv, "carol", merchantID, 100, "order-q2", 1, deadline)
	status, body = app.do(t, http.MethodPost, "/api/v1/payments/gasless", relayerAccount, payload)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "RATE_001", body["error_code"])

	// Simulate the UTC day rollover by clearing today's bucket; the same
	// intent then settles since the rejection never consumed the nonce.
	app.redis.Del("quota:carol:" + time.Now().UTC().Format("2006-01-02"))

	status, body = app.do(t, http.MethodPost, "/api/v1/payments/gasless", relayerAccount, payload)
	assert.Equal(t, http.StatusCreated, status, "gasless payment failed: %v", body)
}

func TestIntegration_DuplicatePayoutAccount(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	register := func(owner string) (int, map[string]interface{}) {
		return app.do(t, http.MethodPost, "/api/v1/merchants", owner, map[string]interface{}{
			"name":           "Shop " + owner,
			"category":       "SERVICES",
			"payout_account": "shared-payout",
			"accepts_credit": true,
		})
	}

	status, body := register("alice")
	require.Equal(t, http.StatusCreated, status, "register failed: %v", body)
	assert.Equal(t, "PENDING", data(t, body)["status"])

	status, body = register("dave")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DIR_002", body["error_code"])
}

func TestIntegration_MerchantLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// Self-service registration lands in Pending and cannot take payments.
	status, body := app.do(t, http.MethodPost, "/api/v1/merchants", "alice", map[string]interface{}{
		"name":           "Alice Shop",
		"category":       "RETAIL",
		"payout_account": "alice-payout",
		"accepts_credit": true,
	})
	require.Equal(t, http.StatusCreated, status, "register failed: %v", body)
	merchantID := data(t, body)["id"].(string)

	app.gateway.fund(domain.AssetCredit, "bob", 1_000)
	status, body = app.do(t, http.MethodPost, "/api/v1/payments", "bob", map[string]interface{}{
		"merchant_id": merchantID,
		"asset":       "CREDIT",
		"amount":      int64(100),
		"order_ref":   "order-1",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "PAY_002", body["error_code"])

	// Verification activates it.
	status, body = app.do(t, http.MethodPost, "/api/v1/merchants/"+merchantID+"/verify", verifierAccount, nil)
	require.Equal(t, http.StatusOK, status, "verify failed: %v", body)
	payDirect(t, app, "bob", merchantID, 100)

	// Suspension stops payments again.
	status, body = app.do(t, http.MethodPost, "/api/v1/merchants/"+merchantID+"/suspend", verifierAccount, nil)
	require.Equal(t, http.StatusOK, status, "suspend failed: %v", body)
	status, body = app.do(t, http.MethodPost, "/api/v1/payments", "bob", map[string]interface{}{
		"merchant_id": merchantID,
		"asset":       "CREDIT",
		"amount":      int64(100),
		"order_ref":   "order-2",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	// Terminated is terminal: no way back to Active.
	status, body = app.do(t, http.MethodPost, "/api/v1/merchants/"+merchantID+"/terminate", adminAccount, nil)
	require.Equal(t, http.StatusOK, status, "terminate failed: %v", body)
	status, body = app.do(t, http.MethodPost, "/api/v1/merchants/"+merchantID+"/reactivate", verifierAccount, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "DIR_004", body["error_code"])
}

func TestIntegration_ParamsUpdateRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	payload := map[string]interface{}{
		"max_fee_bps":         int64(500),
		"default_fee_bps":     int64(50),
		"min_payment_amount":  int64(10),
		"daily_gasless_quota": int64(1_000),
	}

	status, body := app.do(t, http.MethodPut, "/api/v1/params", "alice", payload)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "AUTH_002", body["error_code"])

	status, body = app.do(t, http.MethodPut, "/api/v1/params", adminAccount, payload)
	require.Equal(t, http.StatusOK, status, "params update failed: %v", body)

	status, body = app.do(t, http.MethodGet, "/api/v1/params", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(50), data(t, body)["default_fee_bps"])
}

func TestIntegration_UnauthenticatedWriteRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, body := app.do(t, http.MethodPost, "/api/v1/payments", "", map[string]interface{}{
		"merchant_id": "mch_x",
		"asset":       "CREDIT",
		"amount":      int64(100),
		"order_ref":   "order-1",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_001", body["error_code"])
}
