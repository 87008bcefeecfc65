package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/shenikar/fire_ops_system/internal/service/mocks"
	"github.com/shenikar/fire_ops_system/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSnapshotRestore_NoSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSnapshotSource(ctrl)
	repo := mocks.NewMockSnapshotRepository(ctrl)
	service := NewSnapshotService(source, repo, newTestLogger())
	ctx := context.Background()

	repo.EXPECT().Load(ctx).Return(store.Snapshot{}, false, nil)
	// Import не должен вызываться

	restored, err := service.Restore(ctx)

	require.NoError(t, err)
	assert.False(t, restored)
}

func TestSnapshotRestore_Imports(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSnapshotSource(ctrl)
	repo := mocks.NewMockSnapshotRepository(ctrl)
	service := NewSnapshotService(source, repo, newTestLogger())
	ctx := context.Background()
	snap := store.Snapshot{Incidents: []models.Incident{{ID: "inc-1"}}}

	repo.EXPECT().Load(ctx).Return(snap, true, nil)
	source.EXPECT().Import(ctx, snap).Return(nil)

	restored, err := service.Restore(ctx)

	require.NoError(t, err)
	assert.True(t, restored)
}

func TestSnapshotPersist_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSnapshotSource(ctrl)
	repo := mocks.NewMockSnapshotRepository(ctrl)
	service := NewSnapshotService(source, repo, newTestLogger())
	ctx := context.Background()

	source.EXPECT().Export(ctx).Return(store.Snapshot{}, nil)
	repo.EXPECT().Save(ctx, store.Snapshot{}).Return(errors.New("connection refused"))

	err := service.Persist(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not save snapshot")
}

func TestSnapshotRun_PersistsOnStop(t *testing.T) {
	source := store.New(store.WithClock(func() time.Time { return testNow }))
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSnapshotRepository(ctrl)
	service := NewSnapshotService(source, repo, newTestLogger())

	saved := make(chan store.Snapshot, 1)
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snap store.Snapshot) error {
			saved <- snap
			return nil
		}).
		Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		service.Run(ctx, time.Hour)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot loop did not stop")
	}
	assert.Len(t, saved, 1)
}
