package service

import (
	"context"
	"errors"
	"testing"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"
	"money-transfer-api/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type accountTestDeps struct {
	svc      *AccountServiceImpl
	accounts *mocks.MockSavedAccountRepository
	notifier *mocks.MockNotifier
	changes  *mocks.MockChangePublisher
}

func setupAccountService(t *testing.T) *accountTestDeps {
	ctrl := gomock.NewController(t)
	d := &accountTestDeps{
		accounts: mocks.NewMockSavedAccountRepository(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		changes:  mocks.NewMockChangePublisher(ctrl),
	}
	d.svc = NewAccountService(d.accounts, d.notifier, d.changes, newTestLogger())
	d.svc.now = fixedClock
	return d
}

func TestAccountService_CreateSavedAccount(t *testing.T) {
	d := setupAccountService(t)
	ctx := context.Background()
	actor := userActor()

	d.accounts.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.changes.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	account, err := d.svc.CreateSavedAccount(ctx, actor, ports.CreateSavedAccountRequest{
		Type:    domain.AccountTypeBinance,
		Details: map[string]string{domain.DetailBinanceEmail: "ana@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, actor.ID, account.UserID)
	assert.False(t, account.USDTEnabled)
	assert.Nil(t, account.VerifiedAt)
	assert.False(t, account.CanReceiveStablecoin())
	assert.Equal(t, fixedNow, account.CreatedAt)
}

func TestAccountService_CreateSavedAccount_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		typ     domain.AccountType
		details map[string]string
		code    string
	}{
		{"clabe", domain.AccountTypeCLABE, map[string]string{domain.DetailCLABE: "0123"}, "VAL_004"},
		{"card", domain.AccountTypeCard, map[string]string{domain.DetailCardNumber: "4111"}, "VAL_005"},
		{"binance bad email", domain.AccountTypeBinance, map[string]string{domain.DetailBinanceEmail: "nope"}, "VAL_007"},
		{"unknown type", "paypal", map[string]string{}, "VAL_007"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupAccountService(t)
			_, err := d.svc.CreateSavedAccount(context.Background(), userActor(),
				ports.CreateSavedAccountRequest{Type: tt.typ, Details: tt.details})
			assertAppError(t, err, tt.code)
		})
	}
}

func TestAccountService_ListSavedAccounts(t *testing.T) {
	d := setupAccountService(t)
	ctx := context.Background()
	actor := userActor()

	_, err := d.svc.ListSavedAccounts(ctx, actor, uuid.New())
	assertAppError(t, err, "TRF_007")

	d.accounts.EXPECT().ListByUser(ctx, actor.ID).Return([]domain.SavedAccount{{ID: uuid.New()}}, nil)
	list, err := d.svc.ListSavedAccounts(ctx, actor, actor.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAccountService_VerifyAccount_PromotesWaitingTransfers(t *testing.T) {
	d := setupAccountService(t)
	ctx := context.Background()
	admin := adminActor()
	owner := uuid.New()
	account := &domain.SavedAccount{ID: uuid.New(), UserID: owner, Type: domain.AccountTypeBinance}
	promoted := []uuid.UUID{uuid.New(), uuid.New()}

	d.accounts.EXPECT().GetByID(ctx, account.ID).Return(account, nil)
	d.accounts.EXPECT().SetVerification(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u ports.AccountVerificationUpdate) (*domain.SavedAccount, []uuid.UUID, error) {
			assert.True(t, u.USDTEnabled)
			require.NotNil(t, u.VerifiedAt)
			assert.Equal(t, fixedNow, *u.VerifiedAt)
			require.NotNil(t, u.VerifiedBy)
			assert.Equal(t, admin.ID, *u.VerifiedBy)
			require.NotNil(t, u.Promote)
			assert.Equal(t, domain.TransferStatusPendingUSDApproval, u.Promote.From)
			assert.Equal(t, domain.TransferStatusPending, u.Promote.To)
			assert.Equal(t, domain.CurrencyUSDT, u.Promote.DestinationCurrency)

			out := *account
			out.USDTEnabled = true
			out.VerifiedAt = u.VerifiedAt
			out.VerifiedBy = u.VerifiedBy
			return &out, promoted, nil
		})
	d.notifier.EXPECT().Notify(ctx, owner, "Account verified", gomock.Any()).Return(nil)
	d.notifier.EXPECT().Notify(ctx, owner, "Transfer approved", gomock.Any()).Return(nil).Times(2)
	for _, id := range promoted {
		d.notifier.EXPECT().PostSystemMessage(ctx, id, gomock.Any()).Return(nil)
	}
	d.changes.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(3)

	got, err := d.svc.VerifyAccount(ctx, admin, account.ID, true)
	require.NoError(t, err)
	assert.True(t, got.CanReceiveStablecoin())
}

func TestAccountService_VerifyAccount_RevokeDoesNotPromote(t *testing.T) {
	d := setupAccountService(t)
	ctx := context.Background()
	at := fixedNow
	account := &domain.SavedAccount{
		ID: uuid.New(), UserID: uuid.New(), Type: domain.AccountTypeBinance,
		USDTEnabled: true, VerifiedAt: &at,
	}

	d.accounts.EXPECT().GetByID(ctx, account.ID).Return(account, nil)
	d.accounts.EXPECT().SetVerification(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u ports.AccountVerificationUpdate) (*domain.SavedAccount, []uuid.UUID, error) {
			assert.False(t, u.USDTEnabled)
			assert.Nil(t, u.VerifiedAt)
			assert.Nil(t, u.VerifiedBy)
			assert.Nil(t, u.Promote)
			out := *account
			out.USDTEnabled = false
			out.VerifiedAt = nil
			return &out, nil, nil
		})
	d.notifier.EXPECT().Notify(ctx, account.UserID, "Account verification revoked", gomock.Any()).Return(nil)
	d.changes.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	got, err := d.svc.VerifyAccount(ctx, adminActor(), account.ID, false)
	require.NoError(t, err)
	assert.False(t, got.CanReceiveStablecoin())
}

func TestAccountService_VerifyAccount_OnlyBinance(t *testing.T) {
	d := setupAccountService(t)
	ctx := context.Background()
	account := &domain.SavedAccount{ID: uuid.New(), UserID: uuid.New(), Type: domain.AccountTypeCLABE}

	d.accounts.EXPECT().GetByID(ctx, account.ID).Return(account, nil)

	_, err := d.svc.VerifyAccount(ctx, adminActor(), account.ID, true)
	assertAppError(t, err, "VAL_007")
}

func TestAccountService_VerifyAccount_Guards(t *testing.T) {
	d := setupAccountService(t)
	ctx := context.Background()

	_, err := d.svc.VerifyAccount(ctx, userActor(), uuid.New(), true)
	assertAppError(t, err, "TRF_001")

	id := uuid.New()
	d.accounts.EXPECT().GetByID(ctx, id).Return(nil, nil)
	_, err = d.svc.VerifyAccount(ctx, adminActor(), id, true)
	assertAppError(t, err, "NF_001")
}

func TestAccountService_VerifyAccount_NotificationFailureIgnored(t *testing.T) {
	d := setupAccountService(t)
	ctx := context.Background()
	account := &domain.SavedAccount{ID: uuid.New(), UserID: uuid.New(), Type: domain.AccountTypeBinance}

	d.accounts.EXPECT().GetByID(ctx, account.ID).Return(account, nil)
	d.accounts.EXPECT().SetVerification(ctx, gomock.Any()).Return(account, nil, nil)
	d.notifier.EXPECT().Notify(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("down"))
	d.changes.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("down"))

	_, err := d.svc.VerifyAccount(ctx, adminActor(), account.ID, true)
	require.NoError(t, err)
}
