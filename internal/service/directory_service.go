package service

import (
	"context"
	"fmt"
	"time"

	"payment-rails/internal/core/domain"
	"payment-rails/internal/core/ports"
	"payment-rails/pkg/apperror"

	"github.com/rs/zerolog"
)

// directoryService implements ports.DirectoryService.
type directoryService struct {
	merchantRepo ports.MerchantRepository
	paramsRepo   ports.ParamsRepository
	transactor   ports.DBTransactor
	authorizer   ports.CapabilityAuthorizer
	notifier     ports.EventNotifier
	log          zerolog.Logger
}

// NewDirectoryService creates the merchant directory service.
func NewDirectoryService(
	merchantRepo ports.MerchantRepository,
	paramsRepo ports.ParamsRepository,
	transactor ports.DBTransactor,
	authorizer ports.CapabilityAuthorizer,
	notifier ports.EventNotifier,
	log zerolog.Logger,
) ports.DirectoryService {
	return &directoryService{
		merchantRepo: merchantRepo,
		paramsRepo:   paramsRepo,
		transactor:   transactor,
		authorizer:   authorizer,
		notifier:     notifier,
		log:          log,
	}
}

// RegisterSelfService registers the caller as a Pending merchant awaiting
// verification.
func (s *directoryService) RegisterSelfService(ctx context.Context, caller string, profile ports.MerchantProfile) (*domain.Merchant, error) {
	return s.register(ctx, profile, caller, 0, domain.MerchantStatusPending)
}

// RegisterDirect registers a merchant on behalf of owner, already Active.
// Requires the registrar capability.
func (s *directoryService) RegisterDirect(ctx context.Context, caller string, profile ports.MerchantProfile, owner string, feeOverride int64) (*domain.Merchant, error) {
	if !s.authorizer.CapabilitiesOf(caller).Has(domain.CapabilityRegistrar) {
		return nil, apperror.ErrMissingCapability(string(domain.CapabilityRegistrar))
	}
	if feeOverride != 0 {
		params, err := s.paramsRepo.Get(ctx)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("load params: %w", err))
		}
		if params == nil {
			return nil, apperror.InternalError(errParamsNotSeeded)
		}
		if feeOverride < 0 || feeOverride > params.MaxFeeBps {
			return nil, apperror.ErrInvalidInput("fee override exceeds directory maximum")
		}
	}
	return s.register(ctx, profile, owner, feeOverride, domain.MerchantStatusActive)
}

func (s *directoryService) register(ctx context.Context, profile ports.MerchantProfile, owner string, feeOverride int64, status domain.MerchantStatus) (*domain.Merchant, error) {
	if owner == "" || profile.Name == "" || profile.PayoutAccount == "" {
		return nil, apperror.ErrInvalidInput("owner, name and payout account are required")
	}
	if !profile.Category.IsValid() {
		return nil, apperror.ErrInvalidInput("unknown merchant category")
	}
	if !profile.AcceptsCredit && !profile.AcceptsStable {
		return nil, apperror.ErrInvalidInput("merchant must accept at least one asset")
	}

	existing, err := s.merchantRepo.GetByOwner(ctx, owner)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check owner: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrAlreadyExists("merchant for owner")
	}
	existing, err = s.merchantRepo.GetByPayoutAccount(ctx, profile.PayoutAccount)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check payout account: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrAlreadyExists("merchant for payout account")
	}

	seq, err := s.merchantRepo.NextSequence(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("next sequence: %w", err))
	}
	id := domain.DeriveMerchantID(owner, profile.PayoutAccount, profile.Name, seq)

	collided, err := s.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check id: %w", err))
	}
	if collided != nil {
		return nil, apperror.ErrAlreadyExists("merchant id")
	}

	now := time.Now().UTC()
	merchant := &domain.Merchant{
		ID:            id,
		Name:          profile.Name,
		BusinessID:    profile.BusinessID,
		Category:      profile.Category,
		Owner:         owner,
		PayoutAccount: profile.PayoutAccount,
		FeeOverride:   feeOverride,
		AcceptsCredit: profile.AcceptsCredit,
		AcceptsStable: profile.AcceptsStable,
		Status:        status,
		MetadataURI:   profile.MetadataURI,
		RegisteredAt:  now,
		UpdatedAt:     now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.merchantRepo.Create(ctx, dbTx, merchant); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create merchant: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.notifier.Enqueue(ctx, domain.NewEvent(domain.EventMerchantRegistered, domain.MerchantEventPayload{
		MerchantID: merchant.ID,
		Owner:      merchant.Owner,
		Status:     string(merchant.Status),
	}))

	s.log.Info().
		Str("merchant_id", merchant.ID).
		Str("owner", merchant.Owner).
		Str("status", string(merchant.Status)).
		Msg("merchant registered")

	return merchant, nil
}

// Verify moves a Pending merchant to Active. Requires the verifier capability.
func (s *directoryService) Verify(ctx context.Context, caller, id string) error {
	return s.transition(ctx, caller, id, domain.MerchantStatusActive, domain.CapabilityVerifier)
}

// Suspend moves an Active merchant to Suspended. Requires the verifier
// capability.
func (s *directoryService) Suspend(ctx context.Context, caller, id string) error {
	return s.transition(ctx, caller, id, domain.MerchantStatusSuspended, domain.CapabilityVerifier)
}

// Reactivate moves a Suspended merchant back to Active. Requires the verifier
// capability.
func (s *directoryService) Reactivate(ctx context.Context, caller, id string) error {
	return s.transition(ctx, caller, id, domain.MerchantStatusActive, domain.CapabilityVerifier)
}

// Terminate moves a Suspended merchant to the terminal Terminated state.
// Requires the admin capability.
func (s *directoryService) Terminate(ctx context.Context, caller, id string) error {
	return s.transition(ctx, caller, id, domain.MerchantStatusTerminated, domain.CapabilityAdmin)
}

func (s *directoryService) transition(ctx context.Context, caller, id string, next domain.MerchantStatus, required domain.Capability) error {
	if !s.authorizer.CapabilitiesOf(caller).Has(required) {
		return apperror.ErrMissingCapability(string(required))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	merchant, err := s.merchantRepo.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock merchant: %w", err))
	}
	if merchant == nil {
		return apperror.ErrNotFound("merchant")
	}
	if !merchant.CanTransitionTo(next) {
		return apperror.ErrInvalidTransition(string(merchant.Status), string(next))
	}

	prev := merchant.Status
	merchant.Status = next
	merchant.UpdatedAt = time.Now().UTC()

	if err := s.merchantRepo.Update(ctx, dbTx, merchant); err != nil {
		return apperror.InternalError(fmt.Errorf("update merchant: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.notifier.Enqueue(ctx, domain.NewEvent(domain.EventMerchantStatusChanged, domain.MerchantEventPayload{
		MerchantID: merchant.ID,
		Owner:      merchant.Owner,
		Status:     string(next),
		PrevStatus: string(prev),
	}))

	s.log.Info().
		Str("merchant_id", id).
		Str("from", string(prev)).
		Str("to", string(next)).
		Msg("merchant status changed")

	return nil
}

// UpdatePayoutAccount changes where settled funds land. Owner only; the new
// account must not belong to another merchant.
func (s *directoryService) UpdatePayoutAccount(ctx context.Context, caller, id, newAccount string) error {
	if newAccount == "" {
		return apperror.ErrInvalidInput("payout account is required")
	}
	taken, err := s.merchantRepo.GetByPayoutAccount(ctx, newAccount)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check payout account: %w", err))
	}
	if taken != nil && taken.ID != id {
		return apperror.ErrAlreadyExists("merchant for payout account")
	}
	return s.ownerUpdate(ctx, caller, id, func(m *domain.Merchant) error {
		m.PayoutAccount = newAccount
		return nil
	})
}

// UpdateAcceptedAssets changes which assets the merchant takes. Owner only.
func (s *directoryService) UpdateAcceptedAssets(ctx context.Context, caller, id string, acceptsCredit, acceptsStable bool) error {
	if !acceptsCredit && !acceptsStable {
		return apperror.ErrInvalidInput("merchant must accept at least one asset")
	}
	return s.ownerUpdate(ctx, caller, id, func(m *domain.Merchant) error {
		m.AcceptsCredit = acceptsCredit
		m.AcceptsStable = acceptsStable
		return nil
	})
}

// UpdateMetadata changes the off-ledger metadata pointer. Owner only.
func (s *directoryService) UpdateMetadata(ctx context.Context, caller, id, uri string) error {
	return s.ownerUpdate(ctx, caller, id, func(m *domain.Merchant) error {
		m.MetadataURI = uri
		return nil
	})
}

func (s *directoryService) ownerUpdate(ctx context.Context, caller, id string, mutate func(*domain.Merchant) error) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	merchant, err := s.merchantRepo.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock merchant: %w", err))
	}
	if merchant == nil {
		return apperror.ErrNotFound("merchant")
	}
	if merchant.Owner != caller {
		return apperror.ErrUnauthorized("caller is not the merchant owner")
	}
	if merchant.Status == domain.MerchantStatusTerminated {
		return apperror.ErrInvalidTransition(string(merchant.Status), string(merchant.Status))
	}

	if err := mutate(merchant); err != nil {
		return err
	}
	merchant.UpdatedAt = time.Now().UTC()

	if err := s.merchantRepo.Update(ctx, dbTx, merchant); err != nil {
		return apperror.InternalError(fmt.Errorf("update merchant: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// SetFeeOverride sets a per-merchant fee rate in basis points, 0 restoring
// the directory default. Requires the admin capability.
func (s *directoryService) SetFeeOverride(ctx context.Context, caller, id string, rateBps int64) error {
	if !s.authorizer.CapabilitiesOf(caller).Has(domain.CapabilityAdmin) {
		return apperror.ErrMissingCapability(string(domain.CapabilityAdmin))
	}
	params, err := s.paramsRepo.Get(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load params: %w", err))
	}
	if params == nil {
		return apperror.InternalError(errParamsNotSeeded)
	}
	if rateBps < 0 || rateBps > params.MaxFeeBps {
		return apperror.ErrInvalidInput("fee override exceeds directory maximum")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	merchant, err := s.merchantRepo.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock merchant: %w", err))
	}
	if merchant == nil {
		return apperror.ErrNotFound("merchant")
	}

	merchant.FeeOverride = rateBps
	merchant.UpdatedAt = time.Now().UTC()

	if err := s.merchantRepo.Update(ctx, dbTx, merchant); err != nil {
		return apperror.InternalError(fmt.Errorf("update merchant: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("merchant_id", id).Int64("fee_bps", rateBps).Msg("fee override set")
	return nil
}

// Get returns the merchant by id.
func (s *directoryService) Get(ctx context.Context, id string) (*domain.Merchant, error) {
	merchant, err := s.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	return merchant, nil
}

// ByOwner returns the merchant owned by account.
func (s *directoryService) ByOwner(ctx context.Context, account string) (*domain.Merchant, error) {
	merchant, err := s.merchantRepo.GetByOwner(ctx, account)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	return merchant, nil
}

// ByPayout returns the merchant settling to account.
func (s *directoryService) ByPayout(ctx context.Context, account string) (*domain.Merchant, error) {
	merchant, err := s.merchantRepo.GetByPayoutAccount(ctx, account)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	return merchant, nil
}

// CanAcceptPayment reports whether the merchant is active and takes asset.
func (s *directoryService) CanAcceptPayment(ctx context.Context, id string, asset domain.Asset) (bool, error) {
	merchant, err := s.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return false, apperror.InternalError(err)
	}
	if merchant == nil {
		return false, apperror.ErrNotFound("merchant")
	}
	return merchant.CanAccept(asset), nil
}

// EffectiveFeeRate returns the fee rate applied to the merchant's payments,
// in basis points.
func (s *directoryService) EffectiveFeeRate(ctx context.Context, id string) (int64, error) {
	merchant, err := s.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return 0, apperror.InternalError(err)
	}
	if merchant == nil {
		return 0, apperror.ErrNotFound("merchant")
	}
	params, err := s.paramsRepo.Get(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("load params: %w", err))
	}
	if params == nil {
		return 0, apperror.InternalError(errParamsNotSeeded)
	}
	return merchant.EffectiveFeeRate(params.DefaultFeeBps), nil
}
