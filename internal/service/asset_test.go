package service

import (
	"context"
	"testing"

	"github.com/shenikar/fire_ops_system/internal/audit"
	audit_mocks "github.com/shenikar/fire_ops_system/internal/audit/mocks"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/shenikar/fire_ops_system/internal/service/mocks"
	"github.com/shenikar/fire_ops_system/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAssetService(t *testing.T) (AssetService, *mocks.MockAssetRepository, *audit_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAssetRepository(ctrl)
	publisherMock := audit_mocks.NewMockPublisher(ctrl)
	repoMock.EXPECT().Now().Return(testNow).AnyTimes()
	return NewAssetService(repoMock, newTestLogger(), publisherMock), repoMock, publisherMock
}

func TestCreateAsset_DuplicateSerial(t *testing.T) {
	service, repoMock, _ := newTestAssetService(t)
	ctx := context.Background()

	repoMock.EXPECT().SerialNumberExists(ctx, "SCBA-001", "").Return(true, nil)
	// CreateAsset не должен вызываться

	_, err := service.CreateAsset(ctx, models.Asset{Name: "SCBA", SerialNumber: "SCBA-001"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateAsset_WithoutSerialSkipsCheck(t *testing.T) {
	service, repoMock, publisherMock := newTestAssetService(t)
	ctx := context.Background()
	created := models.Asset{ID: "asset-1", Name: "Hose"}

	repoMock.EXPECT().CreateAsset(ctx, models.Asset{Name: "Hose"}).Return(created, nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	result, err := service.CreateAsset(ctx, models.Asset{Name: "Hose"})

	require.NoError(t, err)
	assert.Equal(t, created, result)
}

func TestUpdateAsset_SerialCheckExcludesSelf(t *testing.T) {
	service, repoMock, publisherMock := newTestAssetService(t)
	ctx := context.Background()
	serial := "TIC-9"
	patch := models.AssetPatch{SerialNumber: &serial}

	repoMock.EXPECT().SerialNumberExists(ctx, serial, "asset-1").Return(false, nil)
	repoMock.EXPECT().UpdateAsset(ctx, "asset-1", patch).Return(models.Asset{ID: "asset-1", SerialNumber: serial}, nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	result, err := service.UpdateAsset(ctx, "asset-1", patch)

	require.NoError(t, err)
	assert.Equal(t, serial, result.SerialNumber)
}

func TestAssignAsset_PublishesAssignEvent(t *testing.T) {
	service, repoMock, publisherMock := newTestAssetService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		AssignAsset(ctx, "asset-1", models.AssignedToApparatus, "app-1").
		Return(models.Asset{ID: "asset-1"}, nil)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e audit.Event) error {
			assert.Equal(t, audit.ActionAssign, e.Action)
			assert.Equal(t, "Asset", e.Target)
			assert.Equal(t, "app-1", e.Details["assigned_to_id"])
			return nil
		})

	_, err := service.AssignAsset(ctx, "asset-1", models.AssignedToApparatus, "app-1")

	require.NoError(t, err)
}

func TestListComponents_MissingParent(t *testing.T) {
	service, repoMock, _ := newTestAssetService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetAsset(ctx, "kit-1").Return(models.Asset{}, false, nil)

	_, err := service.ListComponents(ctx, "kit-1")

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListComponents_FiltersByParent(t *testing.T) {
	service, repoMock, _ := newTestAssetService(t)
	ctx := context.Background()
	components := []models.Asset{{ID: "a"}, {ID: "b"}}

	repoMock.EXPECT().GetAsset(ctx, "kit-1").Return(models.Asset{ID: "kit-1"}, true, nil)
	repoMock.EXPECT().ListAssets(ctx, models.AssetFilter{ParentID: "kit-1"}).Return(components, nil)

	result, err := service.ListComponents(ctx, "kit-1")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
