package seed

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

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.WithClock(func() time.Time { return testNow }))

	require.NoError(t, Load(ctx, s, testNow))

	budget, ok, err := s.GetBudget(ctx, 2024)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 267000.0, budget.TotalBudget, 0.001)
	assert.InDelta(t, 75000.0, budget.TotalSpent, 0.001)

	// Счет уже выставлен за MVA, остается Hazmat
	billable, err := s.GetBillableIncidents(ctx)
	require.NoError(t, err)
	require.Len(t, billable, 1)
	assert.Equal(t, "Hazmat", billable[0].Type)

	// Новые записи не конфликтуют с импортированными id
	created, err := s.CreateIncident(ctx, models.Incident{Type: "Medical"})
	require.NoError(t, err)
	assert.Equal(t, "2024-00005", created.IncidentNumber)
}

func TestSnapshot_References(t *testing.T) {
	snap := Snapshot(testNow)

	properties := make(map[string]bool)
	for _, p := range snap.Properties {
		properties[p.ID] = true
	}
	for _, d := range snap.FireDues {
		assert.True(t, properties[d.PropertyID], "fire due %s", d.ID)
	}

	courses := make(map[string]bool)
	for _, c := range snap.Courses {
		courses[c.ID] = true
	}
	for _, id := range analytics.RequiredCourseIDs {
		assert.True(t, courses[id], "required course %s", id)
	}
}
