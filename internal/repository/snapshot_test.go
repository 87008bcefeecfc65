package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/shenikar/fire_ops_system/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitJoinSnapshot(t *testing.T) {
	paid := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	snap := store.Snapshot{
		Incidents: []models.Incident{{ID: "inc-1", IncidentNumber: "2024-0001", Type: "MVA"}},
		FireDues:  []models.FireDue{{ID: "due-1", Year: 2024, Amount: 100, Status: models.FireDueStatusPaid, PaymentDate: &paid}},
		Courses:   []models.Course{{ID: "course-cpr", Name: "CPR", Hours: 4}},
	}

	buckets, err := splitSnapshot(snap)
	require.NoError(t, err)
	assert.Contains(t, buckets, "incidents")
	assert.Contains(t, buckets, "fire_dues")
	assert.Contains(t, buckets, "forgiveness_requests")

	got, err := joinSnapshot(buckets)
	require.NoError(t, err)
	assert.Equal(t, snap.Incidents[0].IncidentNumber, got.Incidents[0].IncidentNumber)
	require.NotNil(t, got.FireDues[0].PaymentDate)
	assert.True(t, paid.Equal(*got.FireDues[0].PaymentDate))
	assert.Equal(t, snap.Courses, got.Courses)
}

func TestJoinSnapshot_PartialBuckets(t *testing.T) {
	buckets := map[string]json.RawMessage{
		"courses": json.RawMessage(`[{"id":"course-nims","name":"NIMS","hours":2}]`),
	}

	got, err := joinSnapshot(buckets)

	require.NoError(t, err)
	assert.Len(t, got.Courses, 1)
	assert.Empty(t, got.Incidents)
}

func TestJoinSnapshot_InvalidBucket(t *testing.T) {
	buckets := map[string]json.RawMessage{
		"courses": json.RawMessage(`{"id":1}`),
	}

	_, err := joinSnapshot(buckets)

	assert.Error(t, err)
}
