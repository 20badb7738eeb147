package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmarins/rently/internal/payment"
)

func pendingPayment(amount int64) *payment.Payment {
	return &payment.Payment{
		ID:      uuid.New(),
		LeaseID: uuid.New(),
		Amount:  amount,
		Status:  payment.StatusPending,
		DueDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Method:  payment.MethodProvider,
	}
}

func TestService_Settle_Full(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	stx := payment.NewMockSettlementTx(ctrl)
	svc := payment.NewService(repo)

	p := pendingPayment(250000)

	repo.EXPECT().BeginSettlement(gomock.Any(), p.ID).Return(stx, nil)
	stx.EXPECT().Payment().Return(p)
	stx.EXPECT().UpdatePayment(gomock.Any(), p).Return(nil)
	stx.EXPECT().Commit().Return(nil)
	stx.EXPECT().Rollback().Return(nil)

	result, err := svc.Settle(context.Background(), p.ID, payment.SettleParams{
		AmountReceived: 250000,
		Method:         payment.MethodTransfer,
	})
	require.NoError(t, err)
	assert.Nil(t, result.Remainder)
	assert.Equal(t, payment.StatusReceived, result.Payment.Status)
	assert.Equal(t, int64(250000), result.Payment.AmountReceived)
	assert.Equal(t, payment.MethodTransfer, result.Payment.Method)
	require.NotNil(t, result.Payment.PaymentDate)
}

func TestService_Settle_Overpayment_StoresRawAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	stx := payment.NewMockSettlementTx(ctrl)
	svc := payment.NewService(repo)

	p := pendingPayment(250000)

	repo.EXPECT().BeginSettlement(gomock.Any(), p.ID).Return(stx, nil)
	stx.EXPECT().Payment().Return(p)
	stx.EXPECT().UpdatePayment(gomock.Any(), p).Return(nil)
	stx.EXPECT().Commit().Return(nil)
	stx.EXPECT().Rollback().Return(nil)

	result, err := svc.Settle(context.Background(), p.ID, payment.SettleParams{
		AmountReceived: 300000,
		Method:         payment.MethodCash,
	})
	require.NoError(t, err)
	assert.Nil(t, result.Remainder)
	assert.Equal(t, int64(300000), result.Payment.AmountReceived)
}

func TestService_Settle_Partial_SplitsRemainder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	stx := payment.NewMockSettlementTx(ctrl)
	svc := payment.NewService(repo)

	p := pendingPayment(250000)
	dueDate := p.DueDate

	repo.EXPECT().BeginSettlement(gomock.Any(), p.ID).Return(stx, nil)
	stx.EXPECT().Payment().Return(p)
	stx.EXPECT().UpdatePayment(gomock.Any(), p).Return(nil)
	stx.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, remainder *payment.Payment) error {
			remainder.ID = uuid.New()
			return nil
		})
	stx.EXPECT().Commit().Return(nil)
	stx.EXPECT().Rollback().Return(nil)

	result, err := svc.Settle(context.Background(), p.ID, payment.SettleParams{
		AmountReceived: 100000,
		Method:         payment.MethodTransfer,
	})
	require.NoError(t, err)

	assert.Equal(t, payment.StatusReceived, result.Payment.Status)
	assert.Equal(t, int64(100000), result.Payment.AmountReceived)

	require.NotNil(t, result.Remainder)
	assert.Equal(t, int64(150000), result.Remainder.Amount)
	assert.Equal(t, payment.StatusPending, result.Remainder.Status)
	assert.Equal(t, p.LeaseID, result.Remainder.LeaseID)
	assert.Equal(t, dueDate, result.Remainder.DueDate)
	assert.Contains(t, result.Remainder.Notes, "remaining balance from partial settlement")
	assert.Contains(t, result.Remainder.Notes, p.ID.String())

	// The settled and remaining amounts reassemble the original debt.
	assert.Equal(t, int64(250000), result.Payment.AmountReceived+result.Remainder.Amount)
}

func TestService_Settle_NonPositive_IsPlainUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	stx := payment.NewMockSettlementTx(ctrl)
	svc := payment.NewService(repo)

	p := pendingPayment(250000)
	notes := "due day renegotiated"

	repo.EXPECT().BeginSettlement(gomock.Any(), p.ID).Return(stx, nil)
	stx.EXPECT().Payment().Return(p)
	stx.EXPECT().UpdatePayment(gomock.Any(), p).Return(nil)
	stx.EXPECT().Commit().Return(nil)
	stx.EXPECT().Rollback().Return(nil)

	result, err := svc.Settle(context.Background(), p.ID, payment.SettleParams{
		AmountReceived: 0,
		Method:         payment.MethodCard,
		Notes:          &notes,
	})
	require.NoError(t, err)

	assert.Equal(t, payment.StatusPending, result.Payment.Status)
	assert.Nil(t, result.Payment.PaymentDate)
	assert.Equal(t, payment.MethodCard, result.Payment.Method)
	assert.Equal(t, notes, result.Payment.Notes)
	assert.Nil(t, result.Remainder)
}

func TestService_Settle_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	svc := payment.NewService(repo)

	id := uuid.New()

	repo.EXPECT().BeginSettlement(gomock.Any(), id).Return(nil, payment.ErrNotFound)

	_, err := svc.Settle(context.Background(), id, payment.SettleParams{AmountReceived: 1000})
	assert.ErrorIs(t, err, payment.ErrNotFound)
}

func TestService_Settle_AlreadySettled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	stx := payment.NewMockSettlementTx(ctrl)
	svc := payment.NewService(repo)

	now := time.Now()
	p := pendingPayment(250000)
	p.Status = payment.StatusReceived
	p.PaymentDate = &now
	p.AmountReceived = 250000

	repo.EXPECT().BeginSettlement(gomock.Any(), p.ID).Return(stx, nil)
	stx.EXPECT().Payment().Return(p)
	stx.EXPECT().Rollback().Return(nil)

	_, err := svc.Settle(context.Background(), p.ID, payment.SettleParams{AmountReceived: 250000})
	assert.ErrorIs(t, err, payment.ErrAlreadySettled)
}

func TestService_Settle_UpdateError_RollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	stx := payment.NewMockSettlementTx(ctrl)
	svc := payment.NewService(repo)

	p := pendingPayment(250000)

	repo.EXPECT().BeginSettlement(gomock.Any(), p.ID).Return(stx, nil)
	stx.EXPECT().Payment().Return(p)
	stx.EXPECT().UpdatePayment(gomock.Any(), p).Return(errors.New("db error"))
	stx.EXPECT().Rollback().Return(nil)

	_, err := svc.Settle(context.Background(), p.ID, payment.SettleParams{AmountReceived: 250000})
	assert.Error(t, err)
}
