package service

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/shenikar/fire_ops_system/internal/service/mocks"
	"github.com/shenikar/fire_ops_system/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestFireDueService(t *testing.T) (FireDueService, *mocks.MockFireDueRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockFireDueRepository(ctrl)
	repoMock.EXPECT().Now().Return(testNow).AnyTimes()
	return NewFireDueService(repoMock, newTestLogger()), repoMock
}

func TestGenerateAnnualDues_RejectsNonPositiveAmount(t *testing.T) {
	service, _ := newTestFireDueService(t)

	_, err := service.GenerateAnnualDues(context.Background(), 2025, 0)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestBulkMarkPaid_ReportsMissing(t *testing.T) {
	service, repoMock := newTestFireDueService(t)
	ctx := context.Background()
	ids := []string{"due-1", "due-x"}
	result := models.BulkPaymentResult{Updated: []models.FireDue{{ID: "due-1"}}, Missing: []string{"due-x"}}

	repoMock.EXPECT().BulkMarkFireDuesPaid(ctx, ids, testNow).Return(result, nil)

	got, err := service.BulkMarkPaid(ctx, ids, testNow)

	require.NoError(t, err)
	assert.Equal(t, []string{"due-x"}, got.Missing)
}

func TestFireDuesSummary_CollectionRate(t *testing.T) {
	service, repoMock := newTestFireDueService(t)
	ctx := context.Background()
	dues := make([]models.FireDue, 0, 10)
	for i := 0; i < 10; i++ {
		status := models.FireDueStatusUnpaid
		if i < 4 {
			status = models.FireDueStatusPaid
		}
		dues = append(dues, models.FireDue{ID: "d", Year: 2024, Amount: 100, Status: status})
	}

	repoMock.EXPECT().ListFireDues(ctx, models.FireDueFilter{}).Return(dues, nil)

	summary, err := service.Summary(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 40.0, summary.CollectionRate, 0.001)
	assert.Equal(t, 6, summary.OutstandingCount)
}

func TestMarkPaid_RealStore(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.WithClock(func() time.Time { return testNow }))
	service := NewFireDueService(s, newTestLogger())

	due, err := service.CreateFireDue(ctx, models.FireDue{PropertyID: "prop-1", Amount: 75})
	require.NoError(t, err)

	paid, err := service.MarkPaid(ctx, due.ID, testNow)

	require.NoError(t, err)
	assert.Equal(t, models.FireDueStatusPaid, paid.Status)
	require.NotNil(t, paid.PaymentDate)

	_, err = service.MarkPaid(ctx, "due-missing", testNow)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
