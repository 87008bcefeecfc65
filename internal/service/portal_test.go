package service

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/shenikar/fire_ops_system/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPortal(t *testing.T) (PortalService, *store.Store, models.Citizen, models.FireDue) {
	t.Helper()
	ctx := context.Background()
	s := store.New(store.WithClock(func() time.Time { return testNow }))

	prop, err := s.CreateProperty(ctx, models.Property{ParcelID: "P-1", Address: "7 Pine St"})
	require.NoError(t, err)
	due, err := s.CreateFireDue(ctx, models.FireDue{PropertyID: prop.ID, Year: 2024, Amount: 150})
	require.NoError(t, err)
	citizen, err := s.CreateCitizen(ctx, models.Citizen{Name: "Jane Roe", Email: "jane@example.com", PropertyIDs: []string{prop.ID}})
	require.NoError(t, err)

	return NewPortalService(s, newTestLogger()), s, citizen, due
}

func TestCitizenDues(t *testing.T) {
	service, _, citizen, due := newTestPortal(t)

	dues, err := service.CitizenDues(context.Background(), citizen.ID)

	require.NoError(t, err)
	require.Len(t, dues, 1)
	assert.Equal(t, due.ID, dues[0].ID)
	assert.Equal(t, "7 Pine St", dues[0].Address)
}

func TestCitizenDues_UnknownCitizen(t *testing.T) {
	service, _, _, _ := newTestPortal(t)

	_, err := service.CitizenDues(context.Background(), "citizen-missing")

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestForgivenessFlow_Approve(t *testing.T) {
	service, s, citizen, due := newTestPortal(t)
	ctx := context.Background()

	req, err := service.SubmitForgivenessRequest(ctx, models.BillForgivenessRequest{
		CitizenID: citizen.ID,
		FireDueID: due.ID,
		Reason:    "Hardship",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ForgivenessPending, req.Status)

	// Повторная заявка на тот же счет
	_, err = service.SubmitForgivenessRequest(ctx, models.BillForgivenessRequest{CitizenID: citizen.ID, FireDueID: due.ID})
	assert.ErrorIs(t, err, store.ErrConflict)

	pending, err := service.PendingForgivenessRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Jane Roe", pending[0].CitizenName)
	assert.Equal(t, "2024 Bill", pending[0].BillLabel)

	resolved, err := service.ResolveForgivenessRequest(ctx, req.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.ForgivenessApproved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, testNow, *resolved.ResolvedAt)

	updated, ok, err := s.GetFireDue(ctx, due.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0.0, updated.Amount)
	assert.Equal(t, models.FireDueStatusPaid, updated.Status)

	// Решенную заявку нельзя решить повторно
	_, err = service.ResolveForgivenessRequest(ctx, req.ID, false)
	assert.ErrorIs(t, err, store.ErrInvalidTransition)
}

func TestForgivenessFlow_Deny(t *testing.T) {
	service, s, citizen, due := newTestPortal(t)
	ctx := context.Background()

	req, err := service.SubmitForgivenessRequest(ctx, models.BillForgivenessRequest{CitizenID: citizen.ID, FireDueID: due.ID})
	require.NoError(t, err)

	resolved, err := service.ResolveForgivenessRequest(ctx, req.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.ForgivenessDenied, resolved.Status)

	unchanged, _, err := s.GetFireDue(ctx, due.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, unchanged.Amount)
	assert.Equal(t, models.FireDueStatusUnpaid, unchanged.Status)

	list, err := service.ListForgivenessRequests(ctx, citizen.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
