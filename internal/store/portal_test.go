package store

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCitizenWithDue(t *testing.T, s *Store) (models.Citizen, models.FireDue) {
	t.Helper()
	ctx := context.Background()
	prop, err := s.CreateProperty(ctx, models.Property{ParcelID: "P-5", Address: "5 Pine Ct"})
	require.NoError(t, err)
	due, err := s.CreateFireDue(ctx, models.FireDue{PropertyID: prop.ID, Year: 2024, Amount: 175})
	require.NoError(t, err)
	citizen, err := s.CreateCitizen(ctx, models.Citizen{Name: "Riley Chen", Email: "riley@example.com", PropertyIDs: []string{prop.ID}})
	require.NoError(t, err)
	return citizen, due
}

func TestGetCitizenDues(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	citizen, due := seedCitizenWithDue(t, s)
	_, err := s.CreateFireDue(ctx, models.FireDue{PropertyID: "prop-other", Amount: 90})
	require.NoError(t, err)

	dues, err := s.GetCitizenDues(ctx, citizen.ID)
	require.NoError(t, err)
	require.Len(t, dues, 1)
	assert.Equal(t, due.ID, dues[0].ID)
	assert.Equal(t, "5 Pine Ct", dues[0].Address)

	_, err = s.GetCitizenDues(ctx, "citizen-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestForgiveness_ApproveZeroesDue(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	citizen, due := seedCitizenWithDue(t, s)

	req, err := s.SubmitForgivenessRequest(ctx, models.BillForgivenessRequest{CitizenID: citizen.ID, FireDueID: due.ID, Reason: "Hardship"})
	require.NoError(t, err)
	assert.Equal(t, models.ForgivenessPending, req.Status)
	assert.Equal(t, testNow, req.SubmittedAt)

	pending, err := s.GetPendingForgivenessRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Riley Chen", pending[0].CitizenName)
	assert.Equal(t, "2024 Bill", pending[0].BillLabel)

	resolvedAt := testNow.Add(time.Hour)
	resolved, err := s.ResolveForgivenessRequest(ctx, req.ID, true, resolvedAt)
	require.NoError(t, err)
	assert.Equal(t, models.ForgivenessApproved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)

	got, _, err := s.GetFireDue(ctx, due.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Amount)
	assert.Equal(t, models.FireDueStatusPaid, got.Status)
	require.NotNil(t, got.PaymentDate)
	assert.Equal(t, resolvedAt, *got.PaymentDate)

	_, err = s.ResolveForgivenessRequest(ctx, req.ID, false, resolvedAt)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	pending, err = s.GetPendingForgivenessRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestForgiveness_DenyKeepsDue(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	citizen, due := seedCitizenWithDue(t, s)
	req, err := s.SubmitForgivenessRequest(ctx, models.BillForgivenessRequest{CitizenID: citizen.ID, FireDueID: due.ID})
	require.NoError(t, err)

	_, err = s.SubmitForgivenessRequest(ctx, models.BillForgivenessRequest{CitizenID: citizen.ID, FireDueID: due.ID})
	assert.ErrorIs(t, err, ErrConflict)

	denied, err := s.ResolveForgivenessRequest(ctx, req.ID, false, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, models.ForgivenessDenied, denied.Status)

	got, _, err := s.GetFireDue(ctx, due.ID)
	require.NoError(t, err)
	assert.Equal(t, 175.0, got.Amount)
	assert.Equal(t, models.FireDueStatusUnpaid, got.Status)
}

func TestSubmitForgiveness_UnknownTargets(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	citizen, _ := seedCitizenWithDue(t, s)

	_, err := s.SubmitForgivenessRequest(ctx, models.BillForgivenessRequest{CitizenID: "citizen-404", FireDueID: "due-1"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.SubmitForgivenessRequest(ctx, models.BillForgivenessRequest{CitizenID: citizen.ID, FireDueID: "due-404"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitForgiveness_RejectsForeignDue(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, due := seedCitizenWithDue(t, s)
	stranger, err := s.CreateCitizen(ctx, models.Citizen{Name: "Sam Ortiz", Email: "sam@example.com"})
	require.NoError(t, err)

	_, err = s.SubmitForgivenessRequest(ctx, models.BillForgivenessRequest{CitizenID: stranger.ID, FireDueID: due.ID, Reason: "Hardship"})
	assert.ErrorIs(t, err, ErrNotFound)

	requests, err := s.ListForgivenessRequests(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, requests)
	got, _, err := s.GetFireDue(ctx, due.ID)
	require.NoError(t, err)
	assert.Equal(t, 175.0, got.Amount)
}

func TestPendingForgiveness_JoinTolerance(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	citizen, due := seedCitizenWithDue(t, s)
	_, err := s.SubmitForgivenessRequest(ctx, models.BillForgivenessRequest{CitizenID: citizen.ID, FireDueID: due.ID})
	require.NoError(t, err)
	require.NoError(t, s.DeleteFireDue(ctx, due.ID))

	pending, err := s.GetPendingForgivenessRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "N/A", pending[0].BillLabel)
}
