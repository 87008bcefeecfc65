package service

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/fire_ops_system/internal/analytics"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/shenikar/fire_ops_system/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetService_ExpenseAndStats(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.WithClock(func() time.Time { return testNow }))
	service := NewBudgetService(s, newTestLogger())

	b, err := service.CreateBudget(ctx, 2024, []models.BudgetLineItem{
		{Category: "Fuel", BudgetedAmount: 10000},
		{Category: "Training", BudgetedAmount: 5000},
	})
	require.NoError(t, err)
	require.Len(t, b.LineItems, 2)

	b, err = service.RecordExpense(ctx, 2024, b.LineItems[0].ID, 2500)
	require.NoError(t, err)
	assert.InDelta(t, 15000.0, b.TotalBudget, 0.001)
	assert.InDelta(t, 2500.0, b.TotalSpent, 0.001)

	stats, err := service.Stats(ctx, 2024)
	require.NoError(t, err)
	assert.InDelta(t, 12500.0, stats.Remaining, 0.001)
	assert.Equal(t, analytics.FiscalYearProgress(2024, testNow), stats.FiscalYearProgress)
}

func TestBudgetService_Validation(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.WithClock(func() time.Time { return testNow }))
	service := NewBudgetService(s, newTestLogger())

	_, err := service.RecordExpense(ctx, 2024, "item", 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.AddLineItem(ctx, 2024, models.BudgetLineItem{BudgetedAmount: 10})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Stats(ctx, 1999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
