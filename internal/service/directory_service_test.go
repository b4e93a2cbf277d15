package service

import (
	"context"
	"strings"
	"testing"

	"payment-rails/internal/core/domain"
	"payment-rails/internal/core/ports"
	"payment-rails/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type directoryTestDeps struct {
	svc          ports.DirectoryService
	merchantRepo *mocks.MockMerchantRepository
	paramsRepo   *mocks.MockParamsRepository
	transactor   *mocks.MockDBTransactor
	authorizer   *mocks.MockCapabilityAuthorizer
	notifier     *mocks.MockEventNotifier
	ctrl         *gomock.Controller
}

func setupDirectoryService(t *testing.T) *directoryTestDeps {
	ctrl := gomock.NewController(t)
	d := &directoryTestDeps{
		merchantRepo: mocks.NewMockMerchantRepository(ctrl),
		paramsRepo:   mocks.NewMockParamsRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		authorizer:   mocks.NewMockCapabilityAuthorizer(ctrl),
		notifier:     mocks.NewMockEventNotifier(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewDirectoryService(
		d.merchantRepo, d.paramsRepo, d.transactor,
		d.authorizer, d.notifier, zerolog.Nop(),
	)
	return d
}

func testProfile() ports.MerchantProfile {
	return ports.MerchantProfile{
		Name:          "Corner Shop",
		BusinessID:    "BIZ-42",
		Category:      domain.CategoryRetail,
		PayoutAccount: "acct_payout",
		AcceptsCredit: true,
	}
}

// ==================== Registration Tests ====================

func TestDirectoryService_RegisterSelfService_Success(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.merchantRepo.EXPECT().GetByOwner(ctx, "acct_owner").Return(nil, nil)
	d.merchantRepo.EXPECT().GetByPayoutAccount(ctx, "acct_payout").Return(nil, nil)
	d.merchantRepo.EXPECT().NextSequence(ctx).Return(int64(3), nil)
	d.merchantRepo.EXPECT().GetByID(ctx, gomock.Any()).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.merchantRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.notifier.EXPECT().Enqueue(ctx, gomock.Any())

	merchant, err := d.svc.RegisterSelfService(ctx, "acct_owner", testProfile())
	require.NoError(t, err)
	require.NotNil(t, merchant)
	assert.True(t, strings.HasPrefix(merchant.ID, "mch_"))
	assert.Equal(t, domain.MerchantStatusPending, merchant.Status)
	assert.Equal(t, "acct_owner", merchant.Owner)
	assert.Equal(t, int64(0), merchant.FeeOverride)
}

func TestDirectoryService_RegisterSelfService_OwnerTaken(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.merchantRepo.EXPECT().GetByOwner(ctx, "acct_owner").Return(activeMerchant("mch_other"), nil)

	merchant, err := d.svc.RegisterSelfService(ctx, "acct_owner", testProfile())
	assert.Nil(t, merchant)
	assertAppError(t, err, "DIR_002")
}

func TestDirectoryService_RegisterSelfService_PayoutTaken(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.merchantRepo.EXPECT().GetByOwner(ctx, "acct_owner").Return(nil, nil)
	d.merchantRepo.EXPECT().GetByPayoutAccount(ctx, "acct_payout").Return(activeMerchant("mch_other"), nil)

	merchant, err := d.svc.RegisterSelfService(ctx, "acct_owner", testProfile())
	assert.Nil(t, merchant)
	assertAppError(t, err, "DIR_002")
}

func TestDirectoryService_RegisterSelfService_InvalidProfile(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	tests := []struct {
		name   string
		mutate func(*ports.MerchantProfile)
	}{
		{"empty name", func(p *ports.MerchantProfile) { p.Name = "" }},
		{"empty payout", func(p *ports.MerchantProfile) { p.PayoutAccount = "" }},
		{"bad category", func(p *ports.MerchantProfile) { p.Category = "LEMONADE" }},
		{"no assets", func(p *ports.MerchantProfile) { p.AcceptsCredit = false; p.AcceptsStable = false }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := testProfile()
			tt.mutate(&profile)
			merchant, err := d.svc.RegisterSelfService(context.Background(), "acct_owner", profile)
			assert.Nil(t, merchant)
			assertAppError(t, err, "PAY_001")
		})
	}
}

func TestDirectoryService_RegisterDirect_Success(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.authorizer.EXPECT().CapabilitiesOf("acct_registrar").Return(domain.CapabilitySet{domain.CapabilityRegistrar: true})
	d.paramsRepo.EXPECT().Get(ctx).Return(testParams(), nil)
	d.merchantRepo.EXPECT().GetByOwner(ctx, "acct_owner").Return(nil, nil)
	d.merchantRepo.EXPECT().GetByPayoutAccount(ctx, "acct_payout").Return(nil, nil)
	d.merchantRepo.EXPECT().NextSequence(ctx).Return(int64(4), nil)
	d.merchantRepo.EXPECT().GetByID(ctx, gomock.Any()).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.merchantRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.notifier.EXPECT().Enqueue(ctx, gomock.Any())

	merchant, err := d.svc.RegisterDirect(ctx, "acct_registrar", testProfile(), "acct_owner", 250)
	require.NoError(t, err)
	assert.Equal(t, domain.MerchantStatusActive, merchant.Status)
	assert.Equal(t, int64(250), merchant.FeeOverride)
}

func TestDirectoryService_RegisterDirect_MissingCapability(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	d.authorizer.EXPECT().CapabilitiesOf("acct_user").Return(domain.CapabilitySet{})

	merchant, err := d.svc.RegisterDirect(context.Background(), "acct_user", testProfile(), "acct_owner", 0)
	assert.Nil(t, merchant)
	assertAppError(t, err, "AUTH_002")
}

func TestDirectoryService_RegisterDirect_FeeOverMax(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.authorizer.EXPECT().CapabilitiesOf("acct_registrar").Return(domain.CapabilitySet{domain.CapabilityRegistrar: true})
	d.paramsRepo.EXPECT().Get(ctx).Return(testParams(), nil) // max 1000 bps

	merchant, err := d.svc.RegisterDirect(ctx, "acct_registrar", testProfile(), "acct_owner", 1500)
	assert.Nil(t, merchant)
	assertAppError(t, err, "PAY_001")
}

// ==================== Status Transition Tests ====================

func TestDirectoryService_Verify_Success(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	merchant := activeMerchant("mch_0001")
	merchant.Status = domain.MerchantStatusPending

	d.authorizer.EXPECT().CapabilitiesOf("acct_verifier").Return(domain.CapabilitySet{domain.CapabilityVerifier: true})
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.merchantRepo.EXPECT().GetByIDForUpdate(ctx, tx, "mch_0001").Return(merchant, nil)
	d.merchantRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.notifier.EXPECT().Enqueue(ctx, gomock.Any())

	err := d.svc.Verify(ctx, "acct_verifier", "mch_0001")
	require.NoError(t, err)
	assert.Equal(t, domain.MerchantStatusActive, merchant.Status)
}

func TestDirectoryService_Verify_InvalidTransition(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	merchant := activeMerchant("mch_0001") // already ACTIVE

	d.authorizer.EXPECT().CapabilitiesOf("acct_verifier").Return(domain.CapabilitySet{domain.CapabilityVerifier: true})
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.merchantRepo.EXPECT().GetByIDForUpdate(ctx, tx, "mch_0001").Return(merchant, nil)

	err := d.svc.Verify(ctx, "acct_verifier", "mch_0001")
	assertAppError(t, err, "DIR_004")
}

func TestDirectoryService_Terminate_RequiresAdmin(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	d.authorizer.EXPECT().CapabilitiesOf("acct_verifier").Return(domain.CapabilitySet{domain.CapabilityVerifier: true})

	err := d.svc.Terminate(context.Background(), "acct_verifier", "mch_0001")
	assertAppError(t, err, "AUTH_002")
}

func TestDirectoryService_Terminate_FromSuspended(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	merchant := activeMerchant("mch_0001")
	merchant.Status = domain.MerchantStatusSuspended

	d.authorizer.EXPECT().CapabilitiesOf("acct_admin").Return(domain.CapabilitySet{domain.CapabilityAdmin: true})
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.merchantRepo.EXPECT().GetByIDForUpdate(ctx, tx, "mch_0001").Return(merchant, nil)
	d.merchantRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.notifier.EXPECT().Enqueue(ctx, gomock.Any())

	err := d.svc.Terminate(ctx, "acct_admin", "mch_0001")
	require.NoError(t, err)
	assert.Equal(t, domain.MerchantStatusTerminated, merchant.Status)
}

func TestDirectoryService_Suspend_NotFound(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.authorizer.EXPECT().CapabilitiesOf("acct_verifier").Return(domain.CapabilitySet{domain.CapabilityVerifier: true})
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.merchantRepo.EXPECT().GetByIDForUpdate(ctx, tx, "mch_missing").Return(nil, nil)

	err := d.svc.Suspend(ctx, "acct_verifier", "mch_missing")
	assertAppError(t, err, "DIR_001")
}

// ==================== Owner Update Tests ====================

func TestDirectoryService_UpdatePayoutAccount_Success(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	merchant := activeMerchant("mch_0001")

	d.merchantRepo.EXPECT().GetByPayoutAccount(ctx, "acct_new_payout").Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.merchantRepo.EXPECT().GetByIDForUpdate(ctx, tx, "mch_0001").Return(merchant, nil)
	d.merchantRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)

	err := d.svc.UpdatePayoutAccount(ctx, "acct_owner", "mch_0001", "acct_new_payout")
	require.NoError(t, err)
	assert.Equal(t, "acct_new_payout", merchant.PayoutAccount)
}

func TestDirectoryService_UpdatePayoutAccount_Taken(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	other := activeMerchant("mch_other")

	d.merchantRepo.EXPECT().GetByPayoutAccount(ctx, "acct_new_payout").Return(other, nil)

	err := d.svc.UpdatePayoutAccount(ctx, "acct_owner", "mch_0001", "acct_new_payout")
	assertAppError(t, err, "DIR_002")
}

func TestDirectoryService_UpdateAcceptedAssets_NotOwner(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.merchantRepo.EXPECT().GetByIDForUpdate(ctx, tx, "mch_0001").Return(activeMerchant("mch_0001"), nil)

	err := d.svc.UpdateAcceptedAssets(ctx, "acct_stranger", "mch_0001", true, false)
	assertAppError(t, err, "DIR_003")
}

func TestDirectoryService_UpdateMetadata_Success(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	merchant := activeMerchant("mch_0001")

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.merchantRepo.EXPECT().GetByIDForUpdate(ctx, tx, "mch_0001").Return(merchant, nil)
	d.merchantRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)

	err := d.svc.UpdateMetadata(ctx, "acct_owner", "mch_0001", "ipfs://profile")
	require.NoError(t, err)
	assert.Equal(t, "ipfs://profile", merchant.MetadataURI)
}

// ==================== Fee & Query Tests ====================

func TestDirectoryService_SetFeeOverride_Success(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	merchant := activeMerchant("mch_0001")

	d.authorizer.EXPECT().CapabilitiesOf("acct_admin").Return(domain.CapabilitySet{domain.CapabilityAdmin: true})
	d.paramsRepo.EXPECT().Get(ctx).Return(testParams(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.merchantRepo.EXPECT().GetByIDForUpdate(ctx, tx, "mch_0001").Return(merchant, nil)
	d.merchantRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)

	err := d.svc.SetFeeOverride(ctx, "acct_admin", "mch_0001", 300)
	require.NoError(t, err)
	assert.Equal(t, int64(300), merchant.FeeOverride)
}

func TestDirectoryService_SetFeeOverride_OverMax(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.authorizer.EXPECT().CapabilitiesOf("acct_admin").Return(domain.CapabilitySet{domain.CapabilityAdmin: true})
	d.paramsRepo.EXPECT().Get(ctx).Return(testParams(), nil)

	err := d.svc.SetFeeOverride(ctx, "acct_admin", "mch_0001", 2000)
	assertAppError(t, err, "PAY_001")
}

func TestDirectoryService_EffectiveFeeRate(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	merchant := activeMerchant("mch_0001")
	d.merchantRepo.EXPECT().GetByID(ctx, "mch_0001").Return(merchant, nil)
	d.paramsRepo.EXPECT().Get(ctx).Return(testParams(), nil)

	rate, err := d.svc.EffectiveFeeRate(ctx, "mch_0001")
	require.NoError(t, err)
	assert.Equal(t, int64(100), rate) // directory default

	overridden := activeMerchant("mch_0002")
	overridden.FeeOverride = 50
	d.merchantRepo.EXPECT().GetByID(ctx, "mch_0002").Return(overridden, nil)
	d.paramsRepo.EXPECT().Get(ctx).Return(testParams(), nil)

	rate, err = d.svc.EffectiveFeeRate(ctx, "mch_0002")
	require.NoError(t, err)
	assert.Equal(t, int64(50), rate)
}

func TestDirectoryService_CanAcceptPayment(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchant := activeMerchant("mch_0001")
	merchant.AcceptsStable = false

	d.merchantRepo.EXPECT().GetByID(ctx, "mch_0001").Return(merchant, nil).Times(2)

	ok, err := d.svc.CanAcceptPayment(ctx, "mch_0001", domain.AssetCredit)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.svc.CanAcceptPayment(ctx, "mch_0001", domain.AssetStable)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDirectoryService_Get_NotFound(t *testing.T) {
	d := setupDirectoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.merchantRepo.EXPECT().GetByID(ctx, "mch_missing").Return(nil, nil)

	merchant, err := d.svc.Get(ctx, "mch_missing")
	assert.Nil(t, merchant)
	assertAppError(t, err, "DIR_001")
}
