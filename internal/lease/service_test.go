package lease_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmarins/rently/internal/lease"
	"github.com/dmarins/rently/internal/payment"
	"github.com/dmarins/rently/internal/property"
	"github.com/dmarins/rently/internal/tenant"
)

type fixture struct {
	repo       *lease.MockRepository
	properties *lease.MockPropertyDirectory
	tenants    *lease.MockTenantDirectory
	biller     *lease.MockBiller
	svc        *lease.Service

	property *property.Property
	tenant   *tenant.Tenant
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:       lease.NewMockRepository(ctrl),
		properties: lease.NewMockPropertyDirectory(ctrl),
		tenants:    lease.NewMockTenantDirectory(ctrl),
		biller:     lease.NewMockBiller(ctrl),
		property: &property.Property{
			ID:      uuid.New(),
			Address: "Av. Paulista, 1000 - Apt 405",
		},
		tenant: &tenant.Tenant{
			ID:   uuid.New(),
			Name: "João Souza",
		},
	}
	f.svc = lease.NewService(f.repo, f.properties, f.tenants, f.biller)

	return f
}

func createParams(f *fixture) lease.CreateParams {
	return lease.CreateParams{
		PropertyID:      f.property.ID,
		TenantID:        f.tenant.ID,
		Value:           250000,
		DueDay:          5,
		StartDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		AdjustmentIndex: lease.IndexIPCA,
		GuaranteeType:   lease.GuaranteeGuarantor,
	}
}

func expectResolve(f *fixture) {
	f.properties.EXPECT().GetProperty(gomock.Any(), f.property.ID).Return(f.property, nil)
	f.tenants.EXPECT().GetTenant(gomock.Any(), f.tenant.ID).Return(f.tenant, nil)
}

func TestService_Create_WithoutDeposit_SinglePendingInstallment(t *testing.T) {
	f := newFixture(t)
	params := createParams(f)

	expectResolve(f)

	var created []*payment.Payment

	f.repo.EXPECT().
		CreateLeaseWithPayments(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *lease.Lease, installments []*payment.Payment) error {
			l.ID = uuid.New()
			created = installments
			return nil
		})
	f.biller.EXPECT().
		SubscribeLease(gomock.Any(), gomock.Any(), f.property, f.tenant).
		Return("", errors.New("provider unavailable"))

	l, err := f.svc.Create(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, lease.StatusActive, l.Status)
	require.Len(t, created, 1)

	rent := created[0]
	assert.Equal(t, int64(250000), rent.Amount)
	assert.Equal(t, payment.StatusPending, rent.Status)
	assert.Equal(t, params.StartDate, rent.DueDate)
	assert.Equal(t, payment.MethodProvider, rent.Method)
	assert.Equal(t, "first month rent", rent.Notes)
}

func TestService_Create_WithDeposit_TwoInstallments(t *testing.T) {
	f := newFixture(t)
	params := createParams(f)
	params.GuaranteeType = lease.GuaranteeDeposit
	params.GuaranteeAmount = 450000

	expectResolve(f)

	var created []*payment.Payment

	f.repo.EXPECT().
		CreateLeaseWithPayments(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *lease.Lease, installments []*payment.Payment) error {
			l.ID = uuid.New()
			created = installments
			return nil
		})
	f.biller.EXPECT().
		SubscribeLease(gomock.Any(), gomock.Any(), f.property, f.tenant).
		Return("", errors.New("provider unavailable"))

	_, err := f.svc.Create(context.Background(), params)
	require.NoError(t, err)

	require.Len(t, created, 2)

	rent, deposit := created[0], created[1]
	assert.Equal(t, payment.StatusPending, rent.Status)
	assert.Equal(t, int64(250000), rent.Amount)

	// The deposit arrives pre-settled: money already in hand at signing.
	assert.Equal(t, payment.StatusReceived, deposit.Status)
	assert.Equal(t, int64(450000), deposit.Amount)
	assert.Equal(t, int64(450000), deposit.AmountReceived)
	assert.Equal(t, payment.MethodCash, deposit.Method)
	require.NotNil(t, deposit.PaymentDate)
}

func TestService_Create_ZeroDepositAmount_NoDepositInstallment(t *testing.T) {
	f := newFixture(t)
	params := createParams(f)
	params.GuaranteeType = lease.GuaranteeDeposit
	params.GuaranteeAmount = 0

	expectResolve(f)

	f.repo.EXPECT().
		CreateLeaseWithPayments(gomock.Any(), gomock.Any(), gomock.Len(1)).
		Return(nil)
	f.biller.EXPECT().
		SubscribeLease(gomock.Any(), gomock.Any(), f.property, f.tenant).
		Return("sub_abc123", nil)
	f.repo.EXPECT().SetSubscriptionID(gomock.Any(), gomock.Any(), "sub_abc123").Return(nil)

	_, err := f.svc.Create(context.Background(), params)
	require.NoError(t, err)
}

func TestService_Create_DanglingProperty(t *testing.T) {
	f := newFixture(t)
	params := createParams(f)

	f.properties.EXPECT().
		GetProperty(gomock.Any(), f.property.ID).
		Return(nil, property.ErrNotFound)

	_, err := f.svc.Create(context.Background(), params)
	assert.ErrorIs(t, err, property.ErrNotFound)
}

func TestService_Create_DanglingTenant(t *testing.T) {
	f := newFixture(t)
	params := createParams(f)

	f.properties.EXPECT().GetProperty(gomock.Any(), f.property.ID).Return(f.property, nil)
	f.tenants.EXPECT().GetTenant(gomock.Any(), f.tenant.ID).Return(nil, tenant.ErrNotFound)

	_, err := f.svc.Create(context.Background(), params)
	assert.ErrorIs(t, err, tenant.ErrNotFound)
}

func TestService_Create_BillingFailure_LeaseStillUsable(t *testing.T) {
	f := newFixture(t)
	params := createParams(f)

	expectResolve(f)

	f.repo.EXPECT().
		CreateLeaseWithPayments(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	f.biller.EXPECT().
		SubscribeLease(gomock.Any(), gomock.Any(), f.property, f.tenant).
		Return("", errors.New("provider returned 500"))
	// No SetSubscriptionID expectation: the failure must not reach the store.

	l, err := f.svc.Create(context.Background(), params)
	require.NoError(t, err)
	assert.Nil(t, l.SubscriptionID)
}

func TestService_Create_BillingSuccess_StoresSubscriptionID(t *testing.T) {
	f := newFixture(t)
	params := createParams(f)

	expectResolve(f)

	f.repo.EXPECT().
		CreateLeaseWithPayments(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *lease.Lease, _ []*payment.Payment) error {
			l.ID = uuid.New()
			return nil
		})
	f.biller.EXPECT().
		SubscribeLease(gomock.Any(), gomock.Any(), f.property, f.tenant).
		Return("sub_xyz789", nil)
	f.repo.EXPECT().SetSubscriptionID(gomock.Any(), gomock.Any(), "sub_xyz789").Return(nil)

	l, err := f.svc.Create(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, l.SubscriptionID)
	assert.Equal(t, "sub_xyz789", *l.SubscriptionID)
}

func TestService_Terminate_BlockedByDebt(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()
	active := &lease.Lease{ID: id, Status: lease.StatusActive}

	f.repo.EXPECT().GetLease(gomock.Any(), id).Return(active, nil)
	f.repo.EXPECT().CountUnsettledPayments(gomock.Any(), id).Return(2, nil)
	// No UpdateLease expectation: the guard must abort before any write.

	_, err := f.svc.Terminate(context.Background(), id, lease.TerminateParams{
		TerminationDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	var debtErr *lease.DebtOutstandingError

	require.ErrorAs(t, err, &debtErr)
	assert.Equal(t, 2, debtErr.Unsettled)
	assert.Equal(t, lease.StatusActive, active.Status)
}

func TestService_Terminate_NoDebt_Succeeds(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()
	active := &lease.Lease{ID: id, Status: lease.StatusActive}
	keyReturn := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	f.repo.EXPECT().GetLease(gomock.Any(), id).Return(active, nil)
	f.repo.EXPECT().CountUnsettledPayments(gomock.Any(), id).Return(0, nil)
	f.repo.EXPECT().UpdateLease(gomock.Any(), active).Return(nil)

	l, err := f.svc.Terminate(context.Background(), id, lease.TerminateParams{
		TerminationDate:             time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		KeyReturnDate:               &keyReturn,
		Reason:                      "tenant relocated",
		KeyReturnSigned:             true,
		TerminationContractSigned:   true,
		SettlementWithoutDebtSigned: true,
	})
	require.NoError(t, err)

	assert.Equal(t, lease.StatusTerminated, l.Status)
	require.NotNil(t, l.TerminationDate)
	assert.Equal(t, &keyReturn, l.KeyReturnDate)
	assert.Equal(t, "tenant relocated", l.TerminationReason)
	assert.True(t, l.KeyReturnSigned)
	assert.True(t, l.SettlementWithoutDebtSigned)
	assert.False(t, l.SettlementWithDebtSigned)
}

func TestService_Update_TerminatedLeaseIsFinal(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()
	terminated := &lease.Lease{ID: id, Status: lease.StatusTerminated}
	active := lease.StatusActive

	f.repo.EXPECT().GetLease(gomock.Any(), id).Return(terminated, nil)
	// No UpdateLease expectation: the edit must be rejected before any write.

	_, err := f.svc.Update(context.Background(), id, lease.UpdateParams{Status: &active})
	assert.ErrorIs(t, err, lease.ErrAlreadyTerminated)
	assert.Equal(t, lease.StatusTerminated, terminated.Status)
}

func TestService_Terminate_AlreadyTerminated(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()
	terminated := &lease.Lease{ID: id, Status: lease.StatusTerminated}

	f.repo.EXPECT().GetLease(gomock.Any(), id).Return(terminated, nil)

	_, err := f.svc.Terminate(context.Background(), id, lease.TerminateParams{
		TerminationDate: time.Now(),
	})
	assert.ErrorIs(t, err, lease.ErrAlreadyTerminated)
}

func TestService_Terminate_NotFound(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()

	f.repo.EXPECT().GetLease(gomock.Any(), id).Return(nil, lease.ErrNotFound)

	_, err := f.svc.Terminate(context.Background(), id, lease.TerminateParams{})
	assert.ErrorIs(t, err, lease.ErrNotFound)
}

func TestService_Sync_PropagatesBillingError(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()
	l := &lease.Lease{ID: id, PropertyID: f.property.ID, TenantID: f.tenant.ID, Status: lease.StatusActive}

	f.repo.EXPECT().GetLease(gomock.Any(), id).Return(l, nil)
	expectResolve(f)
	f.biller.EXPECT().
		SubscribeLease(gomock.Any(), l, f.property, f.tenant).
		Return("", errors.New("provider returned 422"))

	_, err := f.svc.Sync(context.Background(), id)
	assert.Error(t, err)
}

func TestService_Sync_Success(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()
	l := &lease.Lease{ID: id, PropertyID: f.property.ID, TenantID: f.tenant.ID, Status: lease.StatusActive}

	f.repo.EXPECT().GetLease(gomock.Any(), id).Return(l, nil)
	expectResolve(f)
	f.biller.EXPECT().
		SubscribeLease(gomock.Any(), l, f.property, f.tenant).
		Return("sub_resync", nil)
	f.repo.EXPECT().SetSubscriptionID(gomock.Any(), id, "sub_resync").Return(nil)

	got, err := f.svc.Sync(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got.SubscriptionID)
	assert.Equal(t, "sub_resync", *got.SubscriptionID)
}
