package service

import (
	"context"
	"testing"

	"payment-rails/internal/core/domain"
	"payment-rails/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParamsService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockParamsRepository(ctrl)
	auth := mocks.NewMockCapabilityAuthorizer(ctrl)
	svc := NewParamsService(repo, auth, zerolog.Nop())

	ctx := context.Background()
	repo.EXPECT().Get(ctx).Return(testParams(), nil)

	params, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), params.MaxFeeBps)
}

func TestParamsService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockParamsRepository(ctrl)
	auth := mocks.NewMockCapabilityAuthorizer(ctrl)
	svc := NewParamsService(repo, auth, zerolog.Nop())

	ctx := context.Background()
	auth.EXPECT().CapabilitiesOf("acct_admin").Return(domain.CapabilitySet{domain.CapabilityAdmin: true})
	repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	updated, err := svc.Update(ctx, "acct_admin", domain.LedgerParams{
		MaxFeeBps:         500,
		DefaultFeeBps:     50,
		MinPaymentAmount:  10,
		DailyGaslessQuota: 100_000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(500), updated.MaxFeeBps)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestParamsService_Update_MissingAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockParamsRepository(ctrl)
	auth := mocks.NewMockCapabilityAuthorizer(ctrl)
	svc := NewParamsService(repo, auth, zerolog.Nop())

	auth.EXPECT().CapabilitiesOf("acct_user").Return(domain.CapabilitySet{})

	updated, err := svc.Update(context.Background(), "acct_user", *testParams())
	assert.Nil(t, updated)
	assertAppError(t, err, "AUTH_002")
}

func TestParamsService_Update_RejectsInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockParamsRepository(ctrl)
	auth := mocks.NewMockCapabilityAuthorizer(ctrl)
	svc := NewParamsService(repo, auth, zerolog.Nop())

	tests := []struct {
		name   string
		params domain.LedgerParams
	}{
		{"max fee over 10000", domain.LedgerParams{MaxFeeBps: 10_001, DefaultFeeBps: 100, MinPaymentAmount: 1, DailyGaslessQuota: 100}},
		{"default over max", domain.LedgerParams{MaxFeeBps: 100, DefaultFeeBps: 200, MinPaymentAmount: 1, DailyGaslessQuota: 100}},
		{"zero min payment", domain.LedgerParams{MaxFeeBps: 100, DefaultFeeBps: 50, MinPaymentAmount: 0, DailyGaslessQuota: 100}},
		{"quota below min", domain.LedgerParams{MaxFeeBps: 100, DefaultFeeBps: 50, MinPaymentAmount: 100, DailyGaslessQuota: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth.EXPECT().CapabilitiesOf("acct_admin").Return(domain.CapabilitySet{domain.CapabilityAdmin: true})
			updated, err := svc.Update(context.Background(), "acct_admin", tt.params)
			assert.Nil(t, updated)
			assertAppError(t, err, "PAY_001")
		})
	}
}
