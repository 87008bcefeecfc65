package store

import (
	"context"
	"strings"
	"testing"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImport_RoundTrip(t *testing.T) {
	src := newTestStore(t)
	ctx := context.Background()
	inc, err := src.CreateIncident(ctx, models.Incident{Type: "MVA"})
	require.NoError(t, err)
	_, err = src.CreateBudget(ctx, 2024, []models.BudgetLineItem{{Category: "Fuel", BudgetedAmount: 1000, ActualAmount: 400}})
	require.NoError(t, err)

	snap, err := src.Export(ctx)
	require.NoError(t, err)
	snap.Budgets[0].TotalBudget = 1
	snap.Budgets[0].TotalSpent = 1

	dst := newTestStore(t)
	require.NoError(t, dst.Import(ctx, snap))

	got, ok, err := dst.GetIncident(ctx, inc.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, inc, got)

	b, _, err := dst.GetBudget(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, b.TotalBudget)
	assert.Equal(t, 400.0, b.TotalSpent)

	// новые id не пересекаются с импортированными
	next, err := dst.CreateIncident(ctx, models.Incident{Type: "MVA"})
	require.NoError(t, err)
	assert.NotEqual(t, inc.ID, next.ID)
	assert.True(t, strings.HasPrefix(next.ID, "inc-"))
	assert.Equal(t, "2024-00002", next.IncidentNumber)
}

func TestExport_IsACopy(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p, err := s.CreateProperty(ctx, models.Property{ParcelID: "P-1", OwnerIDs: []string{"own-1"}})
	require.NoError(t, err)

	snap, err := s.Export(ctx)
	require.NoError(t, err)
	snap.Properties[0].OwnerIDs[0] = "changed"

	got, _, err := s.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"own-1"}, got.OwnerIDs)
}
