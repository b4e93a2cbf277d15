package service

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"time"

	"payment-rails/internal/core/domain"
	"payment-rails/internal/core/ports"
	"payment-rails/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ledgerService implements ports.LedgerService.
type ledgerService struct {
	paymentRepo  ports.PaymentRepository
	merchantRepo ports.MerchantRepository
	payerRepo    ports.PayerRepository
	paramsRepo   ports.ParamsRepository
	transactor   ports.DBTransactor
	gateway      ports.ValueTransferGateway
	verifier     ports.IntentVerifier
	quota        ports.QuotaStore
	authorizer   ports.CapabilityAuthorizer
	notifier     ports.EventNotifier
	feeCollector string
	log          zerolog.Logger
}

// NewLedgerService creates the payment ledger service.
func NewLedgerService(
	paymentRepo ports.PaymentRepository,
	merchantRepo ports.MerchantRepository,
	payerRepo ports.PayerRepository,
	paramsRepo ports.ParamsRepository,
	transactor ports.DBTransactor,
	gateway ports.ValueTransferGateway,
	verifier ports.IntentVerifier,
	quota ports.QuotaStore,
	authorizer ports.CapabilityAuthorizer,
	notifier ports.EventNotifier,
	feeCollector string,
	log zerolog.Logger,
) ports.LedgerService {
	return &ledgerService{
		paymentRepo:  paymentRepo,
		merchantRepo: merchantRepo,
		payerRepo:    payerRepo,
		paramsRepo:   paramsRepo,
		transactor:   transactor,
		gateway:      gateway,
		verifier:     verifier,
		quota:        quota,
		authorizer:   authorizer,
		notifier:     notifier,
		feeCollector: feeCollector,
		log:          log,
	}
}

// Pay settles a direct payment from the payer to the merchant's payout
// account, splitting the fee to the collector.
func (s *ledgerService) Pay(ctx context.Context, req ports.PayRequest) (*domain.Payment, error) {
	params, err := s.validatePayRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.settle(ctx, req, params, nil, domain.EventPaymentProcessed, "")
}

// PayWithSignature settles a gasless payment submitted by a relayer on the
// payer's behalf. The payer's signed intent is checked against their
// registered key and stored nonce, a daily quota reservation is taken, and
// the nonce is advanced inside the same transaction as the settlement.
func (s *ledgerService) PayWithSignature(ctx context.Context, req ports.SignedPayRequest) (*domain.Payment, error) {
	if !s.authorizer.CapabilitiesOf(req.Relayer).Has(domain.CapabilityRelayer) {
		return nil, apperror.ErrMissingCapability(string(domain.CapabilityRelayer))
	}

	payReq := ports.PayRequest{
		Payer:      req.Payer,
		MerchantID: req.MerchantID,
		Asset:      req.Asset,
		Amount:     req.Amount,
		OrderRef:   req.OrderRef,
		Memo:       req.Memo,
	}
	params, err := s.validatePayRequest(ctx, payReq)
	if err != nil {
		return nil, err
	}

	if time.Now().UTC().After(req.Deadline) {
		return nil, apperror.ErrSignatureExpired()
	}

	cred, err := s.payerRepo.Get(ctx, req.Payer)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load payer credential: %w", err))
	}
	if cred == nil {
		return nil, apperror.ErrSignatureInvalid()
	}
	if req.Nonce != cred.Nonce {
		return nil, apperror.ErrNonceMismatch()
	}

	intent := domain.PaymentIntent{
		Payer:      req.Payer,
		MerchantID: req.MerchantID,
		Asset:      req.Asset,
		Amount:     req.Amount,
		OrderRef:   req.OrderRef,
		Memo:       req.Memo,
		Nonce:      req.Nonce,
		Deadline:   req.Deadline,
	}
	if !s.verifier.Verify(intent, cred.PublicKey, req.Signature) {
		return nil, apperror.ErrSignatureInvalid()
	}

	reserved, day, err := s.quota.Reserve(ctx, req.Payer, req.Amount, params.DailyGaslessQuota)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reserve quota: %w", err))
	}
	if !reserved {
		return nil, apperror.ErrLimitExceeded()
	}

	payment, err := s.settle(ctx, payReq, params, func(dbTx pgx.Tx) error {
		return s.payerRepo.IncrementNonce(ctx, dbTx, req.Payer, req.Nonce)
	}, domain.EventGaslessPayment, req.Relayer)
	if err != nil {
		// Give the quota back so a failed attempt costs nothing.
		if relErr := s.quota.Release(ctx, req.Payer, day, req.Amount); relErr != nil {
			s.log.Warn().Err(relErr).Str("payer", req.Payer).Msg("quota release failed")
		}
		return nil, err
	}
	return payment, nil
}

func (s *ledgerService) validatePayRequest(ctx context.Context, req ports.PayRequest) (*domain.LedgerParams, error) {
	if req.Payer == "" || req.MerchantID == "" {
		return nil, apperror.ErrInvalidInput("payer and merchant id are required")
	}
	if !req.Asset.IsRecognized() {
		return nil, apperror.ErrInvalidInput("unrecognized asset")
	}
	params, err := s.paramsRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load params: %w", err))
	}
	if params == nil {
		return nil, apperror.InternalError(errParamsNotSeeded)
	}
	if req.Amount < params.MinPaymentAmount {
		return nil, apperror.ErrInvalidInput("amount below minimum")
	}
	return params, nil
}

// settle runs the shared payment core: lock merchant, split fee, derive id,
// pre-check balance, persist the record, move value through the gateway and
// bump the merchant counters, all in one transaction. extra runs inside the
// same transaction before commit.
func (s *ledgerService) settle(ctx context.Context, req ports.PayRequest, params *domain.LedgerParams, extra func(pgx.Tx) error, eventType domain.EventType, relayer string) (*domain.Payment, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	merchant, err := s.merchantRepo.GetByIDForUpdate(ctx, dbTx, req.MerchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock merchant: %w", err))
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	if !merchant.CanAccept(req.Asset) {
		return nil, apperror.ErrIneligible("merchant does not accept this asset")
	}

	fee, merchantAmount := domain.SplitFee(req.Amount, merchant.EffectiveFeeRate(params.DefaultFeeBps))

	seq, err := s.paymentRepo.NextSequence(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("next sequence: %w", err))
	}
	now := time.Now().UTC()
	id := domain.DerivePaymentID(req.MerchantID, req.Payer, req.Amount, now, req.OrderRef, seq)

	exists, err := s.paymentRepo.Exists(ctx, dbTx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check payment id: %w", err))
	}
	if exists {
		return nil, apperror.ErrAlreadyProcessed()
	}

	balance, err := s.gateway.BalanceOf(ctx, req.Asset, req.Payer)
	if err != nil {
		return nil, apperror.ErrTransferFailed(fmt.Errorf("balance check: %w", err))
	}
	if balance < req.Amount {
		return nil, apperror.ErrInsufficientBalance()
	}

	payment := &domain.Payment{
		ID:             id,
		MerchantID:     req.MerchantID,
		Payer:          req.Payer,
		Asset:          req.Asset,
		Amount:         req.Amount,
		Fee:            fee,
		MerchantAmount: merchantAmount,
		Status:         domain.PaymentStatusCompleted,
		OrderRef:       req.OrderRef,
		Memo:           req.Memo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.paymentRepo.Create(ctx, dbTx, payment); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create payment: %w", err))
	}

	if err := s.gateway.Transfer(ctx, req.Asset, req.Payer, merchant.PayoutAccount, merchantAmount); err != nil {
		return nil, apperror.ErrTransferFailed(fmt.Errorf("merchant transfer: %w", err))
	}
	if fee > 0 {
		if err := s.gateway.Transfer(ctx, req.Asset, req.Payer, s.feeCollector, fee); err != nil {
			return nil, apperror.ErrTransferFailed(fmt.Errorf("fee transfer: %w", err))
		}
	}

	if err := s.merchantRepo.RecordPayment(ctx, dbTx, req.MerchantID, req.Amount, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record payment: %w", err))
	}

	if extra != nil {
		if err := extra(dbTx); err != nil {
			return nil, err
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.notifier.Enqueue(ctx, domain.NewEvent(eventType, domain.PaymentEventPayload{
		PaymentID:  payment.ID,
		MerchantID: payment.MerchantID,
		Payer:      payment.Payer,
		Asset:      string(payment.Asset),
		Amount:     payment.Amount,
		Fee:        payment.Fee,
		OrderRef:   payment.OrderRef,
		Relayer:    relayer,
	}))

	s.log.Info().
		Str("payment_id", payment.ID).
		Str("merchant_id", payment.MerchantID).
		Int64("amount", payment.Amount).
		Int64("fee", payment.Fee).
		Msg("payment settled")

	return payment, nil
}

// MerchantRefund returns part of the merchant share to the payer. Callable by
// the merchant's owner or payout account; the requested amount is clamped to
// what remains refundable, and zero means refund everything that remains.
func (s *ledgerService) MerchantRefund(ctx context.Context, caller, paymentID string, refundAmount int64) (*domain.Payment, error) {
	if refundAmount < 0 {
		return nil, apperror.ErrInvalidInput("refund amount must not be negative")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	payment, err := s.paymentRepo.GetByIDForUpdate(ctx, dbTx, paymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("payment")
	}
	if payment.Status == domain.PaymentStatusDisputed {
		return nil, apperror.ErrPaymentDisputed()
	}

	merchant, err := s.merchantRepo.GetByIDForUpdate(ctx, dbTx, payment.MerchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock merchant: %w", err))
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	if caller != merchant.Owner && caller != merchant.PayoutAccount {
		return nil, apperror.ErrUnauthorized("caller cannot refund this payment")
	}

	remaining := payment.RemainingRefundable()
	if remaining == 0 {
		return nil, apperror.ErrRefundExhausted()
	}
	if refundAmount == 0 || refundAmount > remaining {
		refundAmount = remaining
	}

	balance, err := s.gateway.BalanceOf(ctx, payment.Asset, merchant.PayoutAccount)
	if err != nil {
		return nil, apperror.ErrTransferFailed(fmt.Errorf("balance check: %w", err))
	}
	if balance < refundAmount {
		return nil, apperror.ErrInsufficientBalance()
	}

	newRefunded := payment.RefundedAmount + refundAmount
	newStatus := domain.PaymentStatusPartialRefund
	if newRefunded == payment.MerchantAmount {
		newStatus = domain.PaymentStatusRefunded
	}

	if err := s.gateway.Transfer(ctx, payment.Asset, merchant.PayoutAccount, payment.Payer, refundAmount); err != nil {
		return nil, apperror.ErrTransferFailed(fmt.Errorf("refund transfer: %w", err))
	}

	if err := s.paymentRepo.UpdateRefund(ctx, dbTx, paymentID, newRefunded, newStatus); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update refund: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	payment.RefundedAmount = newRefunded
	payment.Status = newStatus
	payment.UpdatedAt = time.Now().UTC()

	s.notifier.Enqueue(ctx, domain.NewEvent(domain.EventMerchantRefund, domain.RefundEventPayload{
		PaymentID:  payment.ID,
		MerchantID: payment.MerchantID,
		Payer:      payment.Payer,
		Asset:      string(payment.Asset),
		Amount:     refundAmount,
		Partial:    newStatus == domain.PaymentStatusPartialRefund,
	}))

	s.log.Info().
		Str("payment_id", paymentID).
		Int64("refund_amount", refundAmount).
		Str("status", string(newStatus)).
		Msg("merchant refund settled")

	return payment, nil
}

// OperatorRefund fully unwinds a payment: the remaining merchant share comes
// back from the payout account and the fee comes back from the collector.
// Requires the admin capability. Disputed is terminal and stays frozen here
// too; dispute resolution happens off-ledger.
func (s *ledgerService) OperatorRefund(ctx context.Context, caller, paymentID string) (*domain.Payment, error) {
	if !s.authorizer.CapabilitiesOf(caller).Has(domain.CapabilityAdmin) {
		return nil, apperror.ErrMissingCapability(string(domain.CapabilityAdmin))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	payment, err := s.paymentRepo.GetByIDForUpdate(ctx, dbTx, paymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("payment")
	}
	if payment.Status == domain.PaymentStatusDisputed {
		return nil, apperror.ErrPaymentDisputed()
	}
	if payment.Status == domain.PaymentStatusRefunded {
		return nil, apperror.ErrRefundExhausted()
	}

	merchant, err := s.merchantRepo.GetByIDForUpdate(ctx, dbTx, payment.MerchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock merchant: %w", err))
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}

	remaining := payment.MerchantAmount - payment.RefundedAmount
	if remaining > 0 {
		if err := s.gateway.Transfer(ctx, payment.Asset, merchant.PayoutAccount, payment.Payer, remaining); err != nil {
			return nil, apperror.ErrTransferFailed(fmt.Errorf("merchant share refund: %w", err))
		}
	}
	if payment.Fee > 0 {
		if err := s.gateway.Transfer(ctx, payment.Asset, s.feeCollector, payment.Payer, payment.Fee); err != nil {
			return nil, apperror.ErrTransferFailed(fmt.Errorf("fee refund: %w", err))
		}
	}

	if err := s.paymentRepo.UpdateRefund(ctx, dbTx, paymentID, payment.MerchantAmount, domain.PaymentStatusRefunded); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update refund: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	payment.RefundedAmount = payment.MerchantAmount
	payment.Status = domain.PaymentStatusRefunded
	payment.UpdatedAt = time.Now().UTC()

	s.notifier.Enqueue(ctx, domain.NewEvent(domain.EventFullRefund, domain.RefundEventPayload{
		PaymentID:    payment.ID,
		MerchantID:   payment.MerchantID,
		Payer:        payment.Payer,
		Asset:        string(payment.Asset),
		Amount:       remaining,
		FeeReturned:  payment.Fee,
		OperatorCall: true,
	}))

	s.log.Info().
		Str("payment_id", paymentID).
		Int64("returned", remaining).
		Int64("fee_returned", payment.Fee).
		Msg("operator refund settled")

	return payment, nil
}

// MarkDisputed freezes a payment against merchant refunds. Requires the
// admin capability; only Completed or PartialRefund payments can be disputed.
func (s *ledgerService) MarkDisputed(ctx context.Context, caller, paymentID string) error {
	if !s.authorizer.CapabilitiesOf(caller).Has(domain.CapabilityAdmin) {
		return apperror.ErrMissingCapability(string(domain.CapabilityAdmin))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	payment, err := s.paymentRepo.GetByIDForUpdate(ctx, dbTx, paymentID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if payment == nil {
		return apperror.ErrNotFound("payment")
	}
	if payment.IsTerminal() {
		return apperror.ErrInvalidTransition(string(payment.Status), string(domain.PaymentStatusDisputed))
	}

	if err := s.paymentRepo.UpdateRefund(ctx, dbTx, paymentID, payment.RefundedAmount, domain.PaymentStatusDisputed); err != nil {
		return apperror.InternalError(fmt.Errorf("update status: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.notifier.Enqueue(ctx, domain.NewEvent(domain.EventPaymentDisputed, domain.RefundEventPayload{
		PaymentID:    payment.ID,
		MerchantID:   payment.MerchantID,
		Payer:        payment.Payer,
		Asset:        string(payment.Asset),
		OperatorCall: true,
	}))

	s.log.Info().Str("payment_id", paymentID).Msg("payment marked disputed")
	return nil
}

// GetPayment returns the payment by id.
func (s *ledgerService) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("payment")
	}
	return payment, nil
}

// GetRefundableAmount returns what a merchant refund could still return.
func (s *ledgerService) GetRefundableAmount(ctx context.Context, paymentID string) (int64, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return 0, apperror.InternalError(err)
	}
	if payment == nil {
		return 0, apperror.ErrNotFound("payment")
	}
	if payment.IsTerminal() {
		return 0, nil
	}
	return payment.RemainingRefundable(), nil
}

// RegisterPayerKey registers or rotates the payer's Ed25519 verification key.
func (s *ledgerService) RegisterPayerKey(ctx context.Context, payer string, publicKey []byte) error {
	if payer == "" {
		return apperror.ErrInvalidInput("payer is required")
	}
	if len(publicKey) != ed25519.PublicKeySize {
		return apperror.ErrInvalidInput("public key must be 32 bytes")
	}
	if err := s.payerRepo.RegisterKey(ctx, payer, publicKey); err != nil {
		return apperror.InternalError(fmt.Errorf("register key: %w", err))
	}
	s.log.Info().Str("payer", payer).Msg("payer key registered")
	return nil
}
