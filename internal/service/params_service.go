package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-rails/internal/core/domain"
	"payment-rails/internal/core/ports"
	"payment-rails/pkg/apperror"

	"github.com/rs/zerolog"
)

// errParamsNotSeeded surfaces a missing ledger_params row, which only happens
// when the boot-time seeding in cmd/api was skipped.
var errParamsNotSeeded = errors.New("ledger params not seeded")

// paramsService implements ports.ParamsService.
type paramsService struct {
	paramsRepo ports.ParamsRepository
	authorizer ports.CapabilityAuthorizer
	log        zerolog.Logger
}

// NewParamsService creates the ledger parameters service.
func NewParamsService(
	paramsRepo ports.ParamsRepository,
	authorizer ports.CapabilityAuthorizer,
	log zerolog.Logger,
) ports.ParamsService {
	return &paramsService{
		paramsRepo: paramsRepo,
		authorizer: authorizer,
		log:        log,
	}
}

// Get returns the current ledger parameters.
func (s *paramsService) Get(ctx context.Context) (*domain.LedgerParams, error) {
	params, err := s.paramsRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load params: %w", err))
	}
	if params == nil {
		return nil, apperror.ErrNotFound("ledger params")
	}
	return params, nil
}

// Update replaces the ledger parameters. Requires the admin capability; the
// new values must pass the fixed bounds checks.
func (s *paramsService) Update(ctx context.Context, caller string, params domain.LedgerParams) (*domain.LedgerParams, error) {
	if !s.authorizer.CapabilitiesOf(caller).Has(domain.CapabilityAdmin) {
		return nil, apperror.ErrMissingCapability(string(domain.CapabilityAdmin))
	}
	if err := params.Validate(); err != nil {
		return nil, apperror.ErrInvalidInput(err.Error())
	}

	params.UpdatedAt = time.Now().UTC()
	if err := s.paramsRepo.Update(ctx, &params); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update params: %w", err))
	}

	s.log.Info().
		Int64("max_fee_bps", params.MaxFeeBps).
		Int64("default_fee_bps", params.DefaultFeeBps).
		Int64("min_payment_amount", params.MinPaymentAmount).
		Int64("daily_gasless_quota", params.DailyGaslessQuota).
		Msg("ledger params updated")

	return &params, nil
}
