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

func completed(courseIDs ...string) []models.TrainingRecord {
	out := make([]models.TrainingRecord, 0, len(courseIDs))
	for _, id := range courseIDs {
		out = append(out, models.TrainingRecord{CourseID: id, CompletedOn: testNow.AddDate(0, -2, 0), Hours: 8})
	}
	return out
}

func TestTrainingCompliance_ActiveStaffOnly(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.WithClock(func() time.Time { return testNow }))
	service := NewTrainingService(s, newTestLogger())

	_, err := s.CreatePersonnel(ctx, models.Personnel{Name: "A", TrainingHistory: completed("course-cpr", "course-hazmat", "course-nims")})
	require.NoError(t, err)
	_, err = s.CreatePersonnel(ctx, models.Personnel{Name: "B", TrainingHistory: completed("course-cpr")})
	require.NoError(t, err)
	_, err = s.CreatePersonnel(ctx, models.Personnel{Name: "C", Status: models.PersonnelStatusOnLeave})
	require.NoError(t, err)

	report, err := service.Compliance(ctx)

	require.NoError(t, err)
	assert.Len(t, report.Records, 2)
	assert.Equal(t, 1, report.CompliantCount)
	assert.Equal(t, 1, report.NonCompliantCount)
	assert.InDelta(t, 50.0, report.CompliantPercentage, 0.001)
}

func TestEvaluateAlerts_CooldownAndDedup(t *testing.T) {
	ctx := context.Background()
	now := testNow
	s := store.New(store.WithClock(func() time.Time { return now }))
	service := NewTrainingService(s, newTestLogger())

	_, err := s.CreatePersonnel(ctx, models.Personnel{Name: "A", TrainingHistory: completed("course-cpr", "course-hazmat", "course-nims")})
	require.NoError(t, err)
	_, err = s.CreatePersonnel(ctx, models.Personnel{Name: "B"})
	require.NoError(t, err)

	rule, err := service.CreateAlertRule(ctx, models.AlertRule{Name: "Low compliance", Threshold: 80, Enabled: true})
	require.NoError(t, err)
	assert.Equal(t, models.AlertConditionBelow, rule.Condition)

	created, err := service.EvaluateAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, models.NotificationAlert, created[0].Type)
	assert.Equal(t, "Alert: Low compliance - training compliance is 50.0% (below 80.0%)", created[0].Message)

	// Правило сработало только что
	created, err = service.EvaluateAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, created)

	// Кулдаун прошел, но сообщение то же самое
	now = now.Add(2 * time.Hour)
	created, err = service.EvaluateAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, created)

	// Процент изменился, появляется новое уведомление
	_, err = s.CreatePersonnel(ctx, models.Personnel{Name: "C"})
	require.NoError(t, err)
	created, err = service.EvaluateAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Contains(t, created[0].Message, "33.3%")

	unread, err := service.ListNotifications(ctx, true)
	require.NoError(t, err)
	assert.Len(t, unread, 2)

	rules, err := service.ListAlertRules(ctx)
	require.NoError(t, err)
	require.NotNil(t, rules[0].LastTriggered)
	assert.Equal(t, now, *rules[0].LastTriggered)
}

func TestEvaluateAlerts_DisabledRule(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.WithClock(func() time.Time { return testNow }))
	service := NewTrainingService(s, newTestLogger())

	_, err := s.CreatePersonnel(ctx, models.Personnel{Name: "B"})
	require.NoError(t, err)
	_, err = service.CreateAlertRule(ctx, models.AlertRule{Name: "Off", Threshold: 90, Enabled: false})
	require.NoError(t, err)

	created, err := service.EvaluateAlerts(ctx)

	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestCreateAlertRule_Validation(t *testing.T) {
	s := store.New(store.WithClock(func() time.Time { return testNow }))
	service := NewTrainingService(s, newTestLogger())

	_, err := service.CreateAlertRule(context.Background(), models.AlertRule{Condition: "equals", Threshold: 50})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateAlertRule(context.Background(), models.AlertRule{Threshold: 150})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateCourse_DuplicateID(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.WithClock(func() time.Time { return testNow }))
	service := NewTrainingService(s, newTestLogger())

	_, err := service.CreateCourse(ctx, models.Course{ID: "course-cpr", Name: "CPR", Hours: 4})
	require.NoError(t, err)
	_, err = service.CreateCourse(ctx, models.Course{ID: "course-cpr", Name: "CPR again"})

	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestEvaluateAlerts_AfterPartialRuleUpdate(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.WithClock(func() time.Time { return testNow }))
	service := NewTrainingService(s, newTestLogger())

	_, err := s.CreatePersonnel(ctx, models.Personnel{Name: "A"})
	require.NoError(t, err)
	rule, err := service.CreateAlertRule(ctx, models.AlertRule{Name: "Low compliance", Condition: models.AlertConditionBelow, Threshold: 90, Enabled: true})
	require.NoError(t, err)

	// PUT без metric и condition
	_, err = service.UpdateAlertRule(ctx, rule.ID, models.AlertRule{Name: "Low compliance", Threshold: 80, Enabled: true})
	require.NoError(t, err)

	created, err := service.EvaluateAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Contains(t, created[0].Message, "below 80.0%")
}
