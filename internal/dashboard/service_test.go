package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmarins/rently/internal/dashboard"
	"github.com/dmarins/rently/internal/lease"
	"github.com/dmarins/rently/internal/payment"
)

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := dashboard.NewMockRepository(ctrl)
	svc := dashboard.NewService(repo)

	repo.EXPECT().CountProperties(gomock.Any()).Return(12, nil)
	repo.EXPECT().CountTenants(gomock.Any()).Return(9, nil)
	repo.EXPECT().CountLeasesByStatus(gomock.Any(), lease.StatusActive).Return(7, nil)
	repo.EXPECT().
		SumPaymentAmounts(gomock.Any(), payment.StatusPending, payment.StatusOverdue).
		Return(int64(525000), nil)
	repo.EXPECT().SumAmountsReceived(gomock.Any()).Return(int64(980000), nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, stats.TotalProperties)
	assert.Equal(t, 9, stats.TotalTenants)
	assert.Equal(t, 7, stats.ActiveLeases)
	assert.Equal(t, int64(525000), stats.PendingPaymentsAmount)
	assert.Equal(t, int64(980000), stats.ReceivedPaymentsAmount)
}

func TestService_Stats_EmptyPortfolioIsAllZeros(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := dashboard.NewMockRepository(ctrl)
	svc := dashboard.NewService(repo)

	repo.EXPECT().CountProperties(gomock.Any()).Return(0, nil)
	repo.EXPECT().CountTenants(gomock.Any()).Return(0, nil)
	repo.EXPECT().CountLeasesByStatus(gomock.Any(), lease.StatusActive).Return(0, nil)
	repo.EXPECT().
		SumPaymentAmounts(gomock.Any(), payment.StatusPending, payment.StatusOverdue).
		Return(int64(0), nil)
	repo.EXPECT().SumAmountsReceived(gomock.Any()).Return(int64(0), nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.PendingPaymentsAmount)
	assert.Zero(t, stats.ReceivedPaymentsAmount)
}

func TestService_Stats_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := dashboard.NewMockRepository(ctrl)
	svc := dashboard.NewService(repo)

	repo.EXPECT().CountProperties(gomock.Any()).Return(0, errors.New("db error"))

	_, err := svc.Stats(context.Background())
	assert.Error(t, err)
}
