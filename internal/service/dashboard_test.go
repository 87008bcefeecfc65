package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/shenikar/fire_ops_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDashboardService(t *testing.T) (DashboardService, *mocks.MockDashboardRepository, *mocks.MockLayoutRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockDashboardRepository(ctrl)
	layoutMock := mocks.NewMockLayoutRepository(ctrl)
	repoMock.EXPECT().Now().Return(testNow).AnyTimes()
	return NewDashboardService(repoMock, layoutMock, newTestLogger()), repoMock, layoutMock
}

func TestDashboardSummary(t *testing.T) {
	service, repoMock, _ := newTestDashboardService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		ListIncidents(ctx, models.IncidentFilter{Status: models.IncidentStatusInProgress}).
		Return([]models.Incident{{ID: "1"}, {ID: "2"}}, nil)
	repoMock.EXPECT().
		ListPersonnel(ctx, models.PersonnelFilter{Status: models.PersonnelStatusActive}).
		Return([]models.Personnel{{ID: "p"}}, nil)
	repoMock.EXPECT().
		ListApparatus(ctx, models.ApparatusFilter{Status: models.ApparatusStatusInService}).
		Return([]models.Apparatus{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}}, nil)
	repoMock.EXPECT().
		ListFireDues(ctx, models.FireDueFilter{}).
		Return([]models.FireDue{
			{ID: "d1", Year: 2024, Amount: 100, Status: models.FireDueStatusUnpaid},
			{ID: "d2", Year: 2024, Amount: 100, Status: models.FireDueStatusPaid},
		}, nil)
	repoMock.EXPECT().ListNotifications(ctx, true).Return([]models.Notification{{ID: "n"}}, nil)

	summary, err := service.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.OpenIncidents)
	assert.Equal(t, 1, summary.ActivePersonnel)
	assert.Equal(t, 3, summary.ApparatusInService)
	assert.Equal(t, 1, summary.UnreadAlerts)
	assert.InDelta(t, 50.0, summary.FireDues.CollectionRate, 0.001)
	assert.InDelta(t, 100.0, summary.FireDues.TotalOutstanding, 0.001)
}

func TestGetLayout_DefaultWhenAbsent(t *testing.T) {
	service, _, layoutMock := newTestDashboardService(t)
	ctx := context.Background()

	layoutMock.EXPECT().Get(ctx, "u1").Return(models.DashboardLayout{}, false, nil)

	layout, err := service.GetLayout(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, models.DefaultDashboardLayout(), layout)
}

func TestGetLayout_DefaultOnError(t *testing.T) {
	service, _, layoutMock := newTestDashboardService(t)
	ctx := context.Background()

	layoutMock.EXPECT().Get(ctx, "u1").Return(models.DashboardLayout{}, false, errors.New("redis down"))

	layout, err := service.GetLayout(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, models.DefaultDashboardLayout(), layout)
}

func TestSaveLayout(t *testing.T) {
	service, _, layoutMock := newTestDashboardService(t)
	ctx := context.Background()
	layout := models.DashboardLayout{WidgetOrder: []string{"budget", "incidents"}}
	stored := models.DashboardLayout{WidgetOrder: []string{"budget", "incidents"}, HiddenWidgets: []string{}}

	layoutMock.EXPECT().Save(ctx, "u1", stored).Return(nil)

	result, err := service.SaveLayout(ctx, "u1", layout)

	require.NoError(t, err)
	assert.Equal(t, stored, result)
}

func TestSaveLayout_Invalid(t *testing.T) {
	service, _, _ := newTestDashboardService(t)
	ctx := context.Background()

	cases := map[string]models.DashboardLayout{
		"empty order":    {},
		"unknown widget": {WidgetOrder: []string{"weather"}},
		"duplicate":      {WidgetOrder: []string{"budget", "budget"}},
		"unknown hidden": {WidgetOrder: []string{"budget"}, HiddenWidgets: []string{"weather"}},
	}
	for name, layout := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := service.SaveLayout(ctx, "u1", layout)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestResetLayout(t *testing.T) {
	service, _, layoutMock := newTestDashboardService(t)
	ctx := context.Background()

	layoutMock.EXPECT().Delete(ctx, "u1").Return(nil)

	layout, err := service.ResetLayout(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, models.DefaultDashboardLayout(), layout)
}
