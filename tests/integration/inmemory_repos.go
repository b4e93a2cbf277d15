package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"payment-rails/internal/core/domain"
	"payment-rails/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Merchant Repo ---

type inMemoryMerchantRepo struct {
	mu        sync.RWMutex
	merchants map[string]*domain.Merchant
	seq       int64
}

func newInMemoryMerchantRepo() *inMemoryMerchantRepo {
	return &inMemoryMerchantRepo{merchants: make(map[string]*domain.Merchant)}
}

func (r *inMemoryMerchantRepo) Create(ctx context.Context, tx pgx.Tx, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.merchants[m.ID]; ok {
		return fmt.Errorf("merchant id already exists")
	}
	cp := *m
	r.merchants[m.ID] = &cp
	return nil
}

func (r *inMemoryMerchantRepo) GetByID(ctx context.Context, id string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.merchants[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *inMemoryMerchantRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Merchant, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryMerchantRepo) GetByOwner(ctx context.Context, owner string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.merchants {
		if m.Owner == owner {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryMerchantRepo) GetByPayoutAccount(ctx context.Context, account string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.merchants {
		if m.PayoutAccount == account {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryMerchantRepo) Update(ctx context.Context, tx pgx.Tx, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.merchants[m.ID]; !ok {
		return fmt.Errorf("merchant not found")
	}
	cp := *m
	r.merchants[m.ID] = &cp
	return nil
}

func (r *inMemoryMerchantRepo) RecordPayment(ctx context.Context, tx pgx.Tx, id string, amount int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.merchants[id]
	if !ok {
		return fmt.Errorf("merchant not found")
	}
	m.TotalVolume += amount
	m.TotalTxCount++
	t := at
	m.LastTxAt = &t
	m.UpdatedAt = at
	return nil
}

func (r *inMemoryMerchantRepo) NextSequence(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

// --- In-Memory Payment Repo ---

type inMemoryPaymentRepo struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment
	seq      int64
}

func newInMemoryPaymentRepo() *inMemoryPaymentRepo {
	return &inMemoryPaymentRepo{payments: make(map[string]*domain.Payment)}
}

func (r *inMemoryPaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[p.ID]; ok {
		return fmt.Errorf("payment id already exists")
	}
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *inMemoryPaymentRepo) Exists(ctx context.Context, tx pgx.Tx, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.payments[id]
	return ok, nil
}

func (r *inMemoryPaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryPaymentRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Payment, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryPaymentRepo) UpdateRefund(ctx context.Context, tx pgx.Tx, id string, refundedAmount int64, status domain.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return fmt.Errorf("payment not found")
	}
	p.RefundedAmount = refundedAmount
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryPaymentRepo) NextSequence(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

// --- In-Memory Payer Repo ---

type inMemoryPayerRepo struct {
	mu    sync.RWMutex
	creds map[string]*domain.PayerCredential
}

func newInMemoryPayerRepo() *inMemoryPayerRepo {
	return &inMemoryPayerRepo{creds: make(map[string]*domain.PayerCredential)}
}

func (r *inMemoryPayerRepo) Get(ctx context.Context, payer string) (*domain.PayerCredential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.creds[payer]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *inMemoryPayerRepo) RegisterKey(ctx context.Context, payer string, publicKey []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if c, ok := r.creds[payer]; ok {
		c.PublicKey = append([]byte(nil), publicKey...)
		c.UpdatedAt = now
		return nil
	}
	r.creds[payer] = &domain.PayerCredential{
		Payer:     payer,
		PublicKey: append([]byte(nil), publicKey...),
		Nonce:     0,
		UpdatedAt: now,
	}
	return nil
}

func (r *inMemoryPayerRepo) IncrementNonce(ctx context.Context, tx pgx.Tx, payer string, expected uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.creds[payer]
	if !ok || c.Nonce != expected {
		return apperror.ErrNonceMismatch()
	}
	c.Nonce = expected + 1
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// --- In-Memory Params Repo ---

type inMemoryParamsRepo struct {
	mu     sync.RWMutex
	params *domain.LedgerParams
}

func newInMemoryParamsRepo() *inMemoryParamsRepo {
	return &inMemoryParamsRepo{}
}

func (r *inMemoryParamsRepo) Get(ctx context.Context) (*domain.LedgerParams, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.params == nil {
		return nil, nil
	}
	cp := *r.params
	return &cp, nil
}

func (r *inMemoryParamsRepo) Update(ctx context.Context, params *domain.LedgerParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *params
	r.params = &cp
	return nil
}

// --- In-Memory Value Transfer Gateway ---

// inMemoryGateway keeps per-asset account balances and moves value
// atomically, mirroring what the external ledger does.
type inMemoryGateway struct {
	mu       sync.Mutex
	balances map[domain.Asset]map[string]int64
}

func newInMemoryGateway() *inMemoryGateway {
	return &inMemoryGateway{balances: make(map[domain.Asset]map[string]int64)}
}

func (g *inMemoryGateway) fund(asset domain.Asset, account string, amount int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.balances[asset] == nil {
		g.balances[asset] = make(map[string]int64)
	}
	g.balances[asset][account] += amount
}

func (g *inMemoryGateway) Transfer(ctx context.Context, asset domain.Asset, from, to string, amount int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.balances[asset] == nil {
		g.balances[asset] = make(map[string]int64)
	}
	if g.balances[asset][from] < amount {
		return fmt.Errorf("insufficient balance on %s", from)
	}
	g.balances[asset][from] -= amount
	g.balances[asset][to] += amount
	return nil
}

func (g *inMemoryGateway) BalanceOf(ctx context.Context, asset domain.Asset, account string) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.balances[asset][account], nil
}

// --- In-Memory Transactor ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
