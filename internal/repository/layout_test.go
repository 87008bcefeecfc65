package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisLayout_SaveGetDelete(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewRedisLayoutRepository(client)
	ctx := context.Background()
	layout := models.DashboardLayout{WidgetOrder: []string{"budget", "incidents"}, HiddenWidgets: []string{"training"}}

	_, ok, err := repo.Get(ctx, "chief")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Save(ctx, "chief", layout))
	assert.True(t, mr.Exists("dashboard_layout:chief"))

	got, ok, err := repo.Get(ctx, "chief")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, layout, got)

	require.NoError(t, repo.Delete(ctx, "chief"))
	_, ok, err = repo.Get(ctx, "chief")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisLayout_InvalidValueFallsBack(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewRedisLayoutRepository(client)
	ctx := context.Background()

	cases := map[string]string{
		"not json":          "{broken",
		"order not array":   `{"widgetOrder":"budget","hiddenWidgets":[]}`,
		"hidden missing":    `{"widgetOrder":["budget"]}`,
		"numbers in hidden": `{"widgetOrder":["budget"],"hiddenWidgets":[1,2]}`,
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, mr.Set("dashboard_layout:u1", value))

			_, ok, err := repo.Get(ctx, "u1")

			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestRedisLayout_ConnectionError(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewRedisLayoutRepository(client)
	mr.Close()

	_, _, err := repo.Get(context.Background(), "u1")

	assert.Error(t, err)
}

func TestMemoryLayout_ReturnsCopies(t *testing.T) {
	repo := NewMemoryLayoutRepository()
	ctx := context.Background()
	layout := models.DashboardLayout{WidgetOrder: []string{"budget"}, HiddenWidgets: []string{}}

	require.NoError(t, repo.Save(ctx, "u1", layout))
	layout.WidgetOrder[0] = "incidents"

	got, ok, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"budget"}, got.WidgetOrder)

	require.NoError(t, repo.Delete(ctx, "u1"))
	_, ok, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)
}
