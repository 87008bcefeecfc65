package store

import (
	"context"
	"testing"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAsset_ParentValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateAsset(ctx, models.Asset{Name: "Mask", ParentID: "asset-404"})
	assert.ErrorIs(t, err, ErrInvalidParent)

	parent, err := s.CreateAsset(ctx, models.Asset{Name: "SCBA Pack", SerialNumber: "SC-1"})
	require.NoError(t, err)
	assert.Equal(t, models.AssetStatusInService, parent.Status)

	child, err := s.CreateAsset(ctx, models.Asset{Name: "Cylinder", ParentID: parent.ID})
	require.NoError(t, err)
	assert.Equal(t, parent.ID, child.ParentID)
}

func TestUpdateAsset_RejectsCycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	root, err := s.CreateAsset(ctx, models.Asset{Name: "Kit"})
	require.NoError(t, err)
	child, err := s.CreateAsset(ctx, models.Asset{Name: "Part", ParentID: root.ID})
	require.NoError(t, err)

	_, err = s.UpdateAsset(ctx, root.ID, models.AssetPatch{ParentID: ptr(child.ID)})
	assert.ErrorIs(t, err, ErrInvalidParent)

	_, err = s.UpdateAsset(ctx, root.ID, models.AssetPatch{ParentID: ptr(root.ID)})
	assert.ErrorIs(t, err, ErrInvalidParent)
}

func TestDeleteAsset_DetachesComponents(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	parent, err := s.CreateAsset(ctx, models.Asset{Name: "Kit"})
	require.NoError(t, err)
	child, err := s.CreateAsset(ctx, models.Asset{Name: "Part", ParentID: parent.ID})
	require.NoError(t, err)

	require.NoError(t, s.DeleteAsset(ctx, parent.ID))

	got, ok, err := s.GetAsset(ctx, child.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, got.ParentID)
}

func TestAssignAsset(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	asset, err := s.CreateAsset(ctx, models.Asset{Name: "Thermal Camera"})
	require.NoError(t, err)
	engine, err := s.CreateApparatus(ctx, models.Apparatus{UnitID: "E2"})
	require.NoError(t, err)

	got, err := s.AssignAsset(ctx, asset.ID, models.AssignedToApparatus, engine.ID)
	require.NoError(t, err)
	assert.Equal(t, engine.ID, got.AssignedToID)
	assert.Equal(t, models.AssignedToApparatus, got.AssignedToType)

	_, err = s.AssignAsset(ctx, asset.ID, models.AssignedToPersonnel, "per-404")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.AssignAsset(ctx, asset.ID, "Station", engine.ID)
	assert.ErrorIs(t, err, ErrInvalidAssignment)

	cleared, err := s.AssignAsset(ctx, asset.ID, "", "")
	require.NoError(t, err)
	assert.Empty(t, cleared.AssignedToID)
	assert.Empty(t, cleared.AssignedToType)
}

func TestSerialNumberExists(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a, err := s.CreateAsset(ctx, models.Asset{Name: "Radio", SerialNumber: "RAD-001"})
	require.NoError(t, err)

	taken, err := s.SerialNumberExists(ctx, "rad-001", "")
	require.NoError(t, err)
	assert.True(t, taken)

	self, err := s.SerialNumberExists(ctx, "RAD-001", a.ID)
	require.NoError(t, err)
	assert.False(t, self)
}
