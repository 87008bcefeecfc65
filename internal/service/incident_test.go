package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/fire_ops_system/internal/audit"
	audit_mocks "github.com/shenikar/fire_ops_system/internal/audit/mocks"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/shenikar/fire_ops_system/internal/service/mocks"
	"github.com/shenikar/fire_ops_system/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *audit_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	publisherMock := audit_mocks.NewMockPublisher(ctrl)
	repoMock.EXPECT().Now().Return(testNow).AnyTimes()

	service := NewIncidentService(repoMock, newTestLogger(), publisherMock)
	return service.(*incidentService), repoMock, publisherMock
}

func TestGetIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := models.Incident{ID: "inc-1", IncidentNumber: "2024-0001", Type: "Structure Fire"}

	// Ожидания
	repoMock.EXPECT().
		GetIncident(ctx, "inc-1").
		Return(expected, true, nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, "inc-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetIncident(ctx, "missing").Return(models.Incident{}, false, nil)

	_, err := service.GetIncident(ctx, "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, "Incident not found", err.Error())
}

func TestGetIncident_RepoError(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetIncident(ctx, "inc-1").Return(models.Incident{}, false, store.ErrTransient)

	_, err := service.GetIncident(ctx, "inc-1")

	assert.ErrorIs(t, err, store.ErrTransient)
}

func TestCreateIncident_PublishesAuditEvent(t *testing.T) {
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := audit.WithActor(context.Background(), "chief")
	input := models.Incident{Type: "Medical"}
	created := models.Incident{ID: "inc-7", IncidentNumber: "2024-0007", Type: "Medical"}

	repoMock.EXPECT().CreateIncident(ctx, input).Return(created, nil)

	var published audit.Event
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e audit.Event) error {
			published = e
			return nil
		}).
		Times(1)

	result, err := service.CreateIncident(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, created, result)
	assert.NotEmpty(t, published.ID)
	assert.Equal(t, "chief", published.UserID)
	assert.Equal(t, audit.ActionCreate, published.Action)
	assert.Equal(t, "Incident", published.Target)
	assert.Equal(t, "inc-7", published.TargetID)
	assert.Equal(t, testNow, published.Timestamp)
	assert.Equal(t, "2024-0007", published.Details["incident_number"])
}

func TestCreateIncident_PublishErrorDoesNotFail(t *testing.T) {
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	created := models.Incident{ID: "inc-1"}

	repoMock.EXPECT().CreateIncident(ctx, gomock.Any()).Return(created, nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down"))

	result, err := service.CreateIncident(ctx, models.Incident{})

	require.NoError(t, err)
	assert.Equal(t, "inc-1", result.ID)
}

func TestCreateIncident_RepoError(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().CreateIncident(ctx, gomock.Any()).Return(models.Incident{}, store.ErrTransient)
	// Publish не должен вызываться

	_, err := service.CreateIncident(ctx, models.Incident{})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrTransient)
}

func TestUpdateIncident_Locked(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	narrative := "late update"
	patch := models.IncidentPatch{Narrative: &narrative}

	repoMock.EXPECT().
		UpdateIncident(ctx, "inc-1", patch).
		Return(models.Incident{}, fmt.Errorf("update: %w", store.ErrIncidentLocked))

	_, err := service.UpdateIncident(ctx, "inc-1", patch)

	assert.ErrorIs(t, err, store.ErrIncidentLocked)
}

func TestLockIncident_Success(t *testing.T) {
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	locked := models.Incident{ID: "inc-1", Status: models.IncidentStatusLocked}

	repoMock.EXPECT().LockIncident(ctx, "inc-1").Return(locked, nil)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e audit.Event) error {
			assert.Equal(t, audit.ActionLock, e.Action)
			assert.Equal(t, audit.SystemActor, e.UserID)
			return nil
		})

	result, err := service.LockIncident(ctx, "inc-1")

	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusLocked, result.Status)
}

func TestDeleteIncident_NotFound(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().DeleteIncident(ctx, "missing").Return(&store.NotFoundError{Entity: "Incident", ID: "missing"})

	err := service.DeleteIncident(ctx, "missing")

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetAnalytics(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidents := []models.Incident{
		{ID: "1", Type: "Medical", Status: models.IncidentStatusInProgress, Date: testNow},
		{ID: "2", Type: "Medical", Status: models.IncidentStatusLocked, Date: testNow},
		{ID: "3", Type: "Structure Fire", Status: models.IncidentStatusLocked, Date: testNow.AddDate(0, -1, 0)},
	}

	repoMock.EXPECT().ListIncidents(ctx, models.IncidentFilter{}).Return(incidents, nil)

	result, err := service.GetAnalytics(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.ByType["Medical"])
	assert.Equal(t, 2, result.ByStatus[models.IncidentStatusLocked])
	assert.Equal(t, 2, result.ByMonth[2])
	assert.Equal(t, 1, result.ByMonth[1])
}
