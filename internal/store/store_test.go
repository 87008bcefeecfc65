package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

// newTestStore - хранилище с фиксированными часами
func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	return New(append([]Option{WithClock(func() time.Time { return testNow })}, opts...)...)
}

func ptr[T any](v T) *T { return &v }

func TestCreateIncident_AppliesDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateIncident(ctx, models.Incident{Type: "MVA", Address: "12 Main St"})
	require.NoError(t, err)
	second, err := s.CreateIncident(ctx, models.Incident{Type: "Hazmat", Address: "4 Elm Rd"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.ID, "inc-"))
	assert.Equal(t, "2024-00001", first.IncidentNumber)
	assert.Equal(t, "2024-00002", second.IncidentNumber)
	assert.Equal(t, models.IncidentStatusInProgress, first.Status)
	assert.Equal(t, testNow, first.Date)
	assert.NotNil(t, first.RespondingPersonnelIDs)
	assert.Nil(t, first.LockedAt)
}

func TestCreateIncident_DuplicateNumber(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateIncident(ctx, models.Incident{IncidentNumber: "2024-00010", Type: "MVA"})
	require.NoError(t, err)

	_, err = s.CreateIncident(ctx, models.Incident{IncidentNumber: "2024-00010", Type: "MVA"})
	assert.ErrorIs(t, err, ErrConflict)

	next, err := s.CreateIncident(ctx, models.Incident{Type: "MVA"})
	require.NoError(t, err)
	assert.Equal(t, "2024-00011", next.IncidentNumber)
}

func TestGetIncident_CreateThenRead(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateIncident(ctx, models.Incident{
		Type:                   "Structure Fire",
		Address:                "7 Oak Ave",
		RespondingPersonnelIDs: []string{"per-1", "per-2"},
		Modules: models.NFIRSModules{
			Fire: &models.FireModule{AreaOfOrigin: "Kitchen"},
		},
	})
	require.NoError(t, err)

	// Повторное чтение возвращает одно и то же
	got1, ok, err := s.GetIncident(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	got2, _, err := s.GetIncident(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created, got1)
	assert.Equal(t, got1, got2)
}

func TestGetIncident_Missing(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.GetIncident(context.Background(), "inc-404")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadsReturnCopies(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	created, err := s.CreateIncident(ctx, models.Incident{
		Type:                   "MVA",
		RespondingPersonnelIDs: []string{"per-1"},
		Modules:                models.NFIRSModules{Fire: &models.FireModule{HeatSource: "Spark"}},
	})
	require.NoError(t, err)

	got, _, err := s.GetIncident(ctx, created.ID)
	require.NoError(t, err)
	got.RespondingPersonnelIDs[0] = "changed"
	got.Modules.Fire.HeatSource = "changed"

	again, _, err := s.GetIncident(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "per-1", again.RespondingPersonnelIDs[0])
	assert.Equal(t, "Spark", again.Modules.Fire.HeatSource)
}

func TestUpdateIncident_MergesOnlyProvidedFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	created, err := s.CreateIncident(ctx, models.Incident{Type: "MVA", Address: "1 First St", Narrative: "initial"})
	require.NoError(t, err)

	updated, err := s.UpdateIncident(ctx, created.ID, models.IncidentPatch{Narrative: ptr("revised")})
	require.NoError(t, err)

	assert.Equal(t, "revised", updated.Narrative)
	assert.Equal(t, "MVA", updated.Type)
	assert.Equal(t, "1 First St", updated.Address)
	assert.Equal(t, created.IncidentNumber, updated.IncidentNumber)
}

func TestUpdateIncident_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateIncident(context.Background(), "inc-404", models.IncidentPatch{Narrative: ptr("x")})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Incident not found", err.Error())
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "inc-404", nf.ID)
}

func TestLockIncident_RejectsFurtherUpdates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	created, err := s.CreateIncident(ctx, models.Incident{Type: "MVA"})
	require.NoError(t, err)

	locked, err := s.LockIncident(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusLocked, locked.Status)
	require.NotNil(t, locked.LockedAt)

	_, err = s.UpdateIncident(ctx, created.ID, models.IncidentPatch{Status: ptr(models.IncidentStatusInProgress)})
	assert.ErrorIs(t, err, ErrIncidentLocked)

	_, err = s.LockIncident(ctx, created.ID)
	assert.ErrorIs(t, err, ErrIncidentLocked)
}

func TestUpdateIncident_UnknownStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	created, err := s.CreateIncident(ctx, models.Incident{Type: "MVA"})
	require.NoError(t, err)

	_, err = s.UpdateIncident(ctx, created.ID, models.IncidentPatch{Status: ptr("Reopened")})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestReads_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	prop, err := s.CreateProperty(ctx, models.Property{ParcelID: "P-9", Address: "9 Elm St"})
	require.NoError(t, err)
	_, err = s.CreateFireDue(ctx, models.FireDue{PropertyID: prop.ID, Year: 2024, Amount: 125})
	require.NoError(t, err)
	_, err = s.CreateFireDue(ctx, models.FireDue{PropertyID: "prop-404", Year: 2024, Amount: 80})
	require.NoError(t, err)
	_, err = s.CreateIncident(ctx, models.Incident{Type: "MVA", Address: "Route 9", Date: testNow.Add(-time.Hour)})
	require.NoError(t, err)
	_, err = s.CreateIncident(ctx, models.Incident{Type: "Medical", Address: "9 Elm St", Date: testNow})
	require.NoError(t, err)

	incidents1, err := s.ListIncidents(ctx, models.IncidentFilter{})
	require.NoError(t, err)
	incidents2, err := s.ListIncidents(ctx, models.IncidentFilter{})
	require.NoError(t, err)
	assert.Equal(t, incidents1, incidents2)

	dues1, err := s.GetFireDuesWithDetails(ctx)
	require.NoError(t, err)
	dues2, err := s.GetFireDuesWithDetails(ctx)
	require.NoError(t, err)
	assert.Equal(t, dues1, dues2)

	props1, err := s.GetProperties(ctx, models.PropertyFilter{})
	require.NoError(t, err)
	props2, err := s.GetProperties(ctx, models.PropertyFilter{})
	require.NoError(t, err)
	assert.Equal(t, props1, props2)
}

func TestDeleteIncident_RemovesOnlyTarget(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	keep, err := s.CreateIncident(ctx, models.Incident{Type: "MVA"})
	require.NoError(t, err)
	drop, err := s.CreateIncident(ctx, models.Incident{Type: "Hazmat"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteIncident(ctx, drop.ID))
	require.NoError(t, s.DeleteIncident(ctx, "inc-404"))

	list, err := s.ListIncidents(ctx, models.IncidentFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)
}

func TestListIncidents_FilterAndOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	older := testNow.AddDate(0, 0, -10)
	from := testNow.AddDate(0, 0, -5)

	_, err := s.CreateIncident(ctx, models.Incident{Type: "MVA", Address: "Route 9", Date: older})
	require.NoError(t, err)
	newer, err := s.CreateIncident(ctx, models.Incident{Type: "MVA", Address: "Main St"})
	require.NoError(t, err)
	_, err = s.CreateIncident(ctx, models.Incident{Type: "Hazmat", Address: "main street depot"})
	require.NoError(t, err)

	all, err := s.ListIncidents(ctx, models.IncidentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, older, all[2].Date)

	byType, err := s.ListIncidents(ctx, models.IncidentFilter{Type: "MVA", From: &from})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, newer.ID, byType[0].ID)

	bySearch, err := s.ListIncidents(ctx, models.IncidentFilter{Search: "MAIN"})
	require.NoError(t, err)
	assert.Len(t, bySearch, 2)
}

func TestNewID_UniqueInTightLoop(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seen := make(map[string]struct{})

	for i := 0; i < 500; i++ {
		o, err := s.CreateOwner(ctx, models.Owner{Name: "Owner"})
		require.NoError(t, err)
		_, dup := seen[o.ID]
		require.False(t, dup, "duplicate id %s", o.ID)
		seen[o.ID] = struct{}{}
	}
}

func TestSimulate_TransientError(t *testing.T) {
	s := newTestStore(t, WithErrorRate(0.5, func() float64 { return 0.1 }))

	_, err := s.ListIncidents(context.Background(), models.IncidentFilter{})

	assert.ErrorIs(t, err, ErrTransient)
	assert.Equal(t, "network error", err.Error())
}

func TestSimulate_PassesAboveErrorRate(t *testing.T) {
	s := newTestStore(t, WithErrorRate(0.5, func() float64 { return 0.9 }))

	_, err := s.CreateOwner(context.Background(), models.Owner{Name: "A"})

	assert.NoError(t, err)
}

func TestSimulate_HonorsContextCancellation(t *testing.T) {
	s := newTestStore(t, WithLatency(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListPersonnel(ctx, models.PersonnelFilter{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAddVitals_PrependsAndUpdatesCounters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a, err := s.CreateApparatus(ctx, models.Apparatus{UnitID: "E1", Type: "Engine"})
	require.NoError(t, err)

	_, err = s.AddVitals(ctx, a.ID, models.VitalsReading{Mileage: 1000, EngineHours: 50})
	require.NoError(t, err)
	got, err := s.AddVitals(ctx, a.ID, models.VitalsReading{Mileage: 1200, EngineHours: 58})
	require.NoError(t, err)

	require.Len(t, got.VitalsHistory, 2)
	assert.Equal(t, 1200.0, got.VitalsHistory[0].Mileage)
	assert.Equal(t, 1000.0, got.VitalsHistory[1].Mileage)
	assert.Equal(t, 1200.0, got.Mileage)
	assert.Equal(t, 58.0, got.EngineHours)
}

func TestAddTrainingRecord_FillsCourseName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, err := s.CreateCourse(ctx, models.Course{ID: "c-hazmat", Name: "Hazmat Awareness", Hours: 8})
	require.NoError(t, err)
	p, err := s.CreatePersonnel(ctx, models.Personnel{Name: "Jordan Lee", Rank: "Firefighter"})
	require.NoError(t, err)

	got, err := s.AddTrainingRecord(ctx, p.ID, models.TrainingRecord{CourseID: "c-hazmat", Hours: 8})
	require.NoError(t, err)

	require.Len(t, got.TrainingHistory, 1)
	assert.Equal(t, "Hazmat Awareness", got.TrainingHistory[0].CourseName)
	assert.Equal(t, testNow, got.TrainingHistory[0].CompletedOn)
}

func TestExposureLogs_ResolveIncidentNumber(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p, err := s.CreatePersonnel(ctx, models.Personnel{Name: "Sam Ortiz"})
	require.NoError(t, err)
	inc, err := s.CreateIncident(ctx, models.Incident{Type: "Hazmat"})
	require.NoError(t, err)

	_, err = s.CreateExposureLog(ctx, models.ExposureLog{PersonnelID: p.ID, IncidentID: inc.ID, ExposureType: "Smoke"})
	require.NoError(t, err)
	_, err = s.CreateExposureLog(ctx, models.ExposureLog{PersonnelID: p.ID, IncidentID: "inc-gone", ExposureType: "Chemical", Date: testNow.Add(-time.Hour)})
	require.NoError(t, err)

	logs, err := s.ListExposureLogs(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, inc.IncidentNumber, logs[0].IncidentNumber)
	assert.Equal(t, "N/A", logs[1].IncidentNumber)
}

func TestCreateShift_UnknownPersonnel(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateShift(context.Background(), models.Shift{Name: "A Shift", PersonnelIDs: []string{"per-404"}})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOwner_DetachesFromProperties(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a, err := s.CreateOwner(ctx, models.Owner{Name: "Ana"})
	require.NoError(t, err)
	b, err := s.CreateOwner(ctx, models.Owner{Name: "Ben"})
	require.NoError(t, err)
	p, err := s.CreateProperty(ctx, models.Property{ParcelID: "P-1", Address: "1 Hill Rd", OwnerIDs: []string{a.ID, b.ID}})
	require.NoError(t, err)

	require.NoError(t, s.DeleteOwner(ctx, a.ID))

	got, _, err := s.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID}, got.OwnerIDs)
}

func TestGetProperties_JoinsOwnersAndFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a, err := s.CreateOwner(ctx, models.Owner{Name: "Ana"})
	require.NoError(t, err)
	b, err := s.CreateOwner(ctx, models.Owner{Name: "Ben"})
	require.NoError(t, err)
	withPlan, err := s.CreateProperty(ctx, models.Property{ParcelID: "P-1", Address: "1 Hill Rd", OccupancyType: "Commercial", OwnerIDs: []string{a.ID, b.ID}})
	require.NoError(t, err)
	_, err = s.CreateProperty(ctx, models.Property{ParcelID: "P-2", Address: "2 Hill Rd", OccupancyType: "Residential"})
	require.NoError(t, err)
	_, err = s.SetPreIncidentPlan(ctx, withPlan.ID, models.PreIncidentPlan{ConstructionType: "Type II"})
	require.NoError(t, err)

	all, err := s.GetProperties(ctx, models.PropertyFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ana, Ben", all[0].OwnerNames)
	assert.Equal(t, "Unknown", all[1].OwnerNames)

	planned, err := s.GetProperties(ctx, models.PropertyFilter{HasPIP: ptr(true)})
	require.NoError(t, err)
	require.Len(t, planned, 1)
	assert.Equal(t, withPlan.ID, planned[0].ID)
}

func TestSetPreIncidentPlan_ReplacesSinglePlan(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p, err := s.CreateProperty(ctx, models.Property{ParcelID: "P-9", Address: "9 Bay St"})
	require.NoError(t, err)

	first, err := s.SetPreIncidentPlan(ctx, p.ID, models.PreIncidentPlan{Hazards: []string{"Propane"}})
	require.NoError(t, err)
	second, err := s.SetPreIncidentPlan(ctx, p.ID, models.PreIncidentPlan{Hazards: []string{"Ammonia"}, KnoxBox: true})
	require.NoError(t, err)

	require.NotNil(t, second.PreIncidentPlan)
	assert.Equal(t, first.PreIncidentPlan.ID, second.PreIncidentPlan.ID)
	assert.Equal(t, []string{"Ammonia"}, second.PreIncidentPlan.Hazards)

	removed, err := s.RemovePreIncidentPlan(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, removed.PreIncidentPlan)
}

func TestParcelIDExists(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p, err := s.CreateProperty(ctx, models.Property{ParcelID: "PAR-100"})
	require.NoError(t, err)

	taken, err := s.ParcelIDExists(ctx, "PAR-100", "")
	require.NoError(t, err)
	assert.True(t, taken)

	self, err := s.ParcelIDExists(ctx, "PAR-100", p.ID)
	require.NoError(t, err)
	assert.False(t, self)
}
