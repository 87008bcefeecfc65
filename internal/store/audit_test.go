package store

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog_NewestFirstWithLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	for i, action := range []string{"create", "update", "delete"} {
		_, err := s.AppendAuditEntry(ctx, models.AuditLogEntry{
			Timestamp: testNow.Add(time.Duration(i) * time.Minute),
			UserID:    "chief",
			Action:    action,
			Target:    "Incident",
			TargetID:  "inc-1",
		})
		require.NoError(t, err)
	}
	_, err := s.AppendAuditEntry(ctx, models.AuditLogEntry{UserID: "clerk", Action: "create", Target: "Asset"})
	require.NoError(t, err)

	entries, err := s.ListAuditLog(ctx, models.AuditFilter{Target: "Incident", Limit: 2})
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "delete", entries[0].Action)
	assert.Equal(t, "update", entries[1].Action)
}

func TestNotifications(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	older, err := s.AddNotification(ctx, models.Notification{Message: "first", Timestamp: testNow.Add(-time.Hour)})
	require.NoError(t, err)
	newer, err := s.AddNotification(ctx, models.Notification{Message: "second", Type: models.NotificationAlert})
	require.NoError(t, err)
	assert.Equal(t, models.NotificationInfo, older.Type)

	list, err := s.ListNotifications(ctx, false)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)

	_, err = s.MarkNotificationRead(ctx, newer.ID)
	require.NoError(t, err)
	unread, err := s.ListNotifications(ctx, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, older.ID, unread[0].ID)

	_, err = s.MarkNotificationRead(ctx, "notif-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAlertRules_MarkTriggeredSurvivesUpdate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	rule, err := s.CreateAlertRule(ctx, models.AlertRule{Name: "Low compliance", Threshold: 80, Enabled: true})
	require.NoError(t, err)
	assert.Equal(t, models.MetricTrainingCompliance, rule.Metric)
	assert.Equal(t, models.AlertConditionBelow, rule.Condition)

	_, err = s.MarkRuleTriggered(ctx, rule.ID, testNow)
	require.NoError(t, err)

	updated, err := s.UpdateAlertRule(ctx, rule.ID, models.AlertRule{Name: "Low compliance", Threshold: 75, Enabled: true})
	require.NoError(t, err)
	assert.Equal(t, 75.0, updated.Threshold)
	require.NotNil(t, updated.LastTriggered)
	assert.Equal(t, testNow, *updated.LastTriggered)
}

func TestUpdateAlertRule_KeepsMetricAndCondition(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	rule, err := s.CreateAlertRule(ctx, models.AlertRule{Name: "High compliance", Condition: models.AlertConditionAbove, Threshold: 95})
	require.NoError(t, err)

	updated, err := s.UpdateAlertRule(ctx, rule.ID, models.AlertRule{Name: "High compliance", Threshold: 90, Enabled: true})
	require.NoError(t, err)
	assert.Equal(t, models.MetricTrainingCompliance, updated.Metric)
	assert.Equal(t, models.AlertConditionAbove, updated.Condition)

	got, _, err := s.GetAlertRule(ctx, rule.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}
