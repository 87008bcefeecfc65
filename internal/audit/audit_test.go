package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_ops_system/internal/config"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/shenikar/fire_ops_system/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func testEvent() Event {
	return Event{
		ID:        "evt-1",
		Timestamp: testNow,
		UserID:    "chief",
		Action:    ActionLock,
		Target:    "Incident",
		TargetID:  "inc-1",
		Details:   map[string]any{"incident_number": "2024-0001"},
	}
}

func newTestWorker(t *testing.T, sink Sink, cfg *config.Config) *Worker {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewWorker(client, sink, logger, cfg)
}

func TestActorFromContext(t *testing.T) {
	assert.Equal(t, SystemActor, ActorFromContext(context.Background()))
	assert.Equal(t, SystemActor, ActorFromContext(WithActor(context.Background(), "")))
	assert.Equal(t, "chief", ActorFromContext(WithActor(context.Background(), "chief")))
}

func TestRedisPublisher_PushesJSON(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	publisher := NewRedisPublisher(client)

	require.NoError(t, publisher.Publish(context.Background(), testEvent()))

	items, err := mr.List(QueueKey)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var got Event
	require.NoError(t, json.Unmarshal([]byte(items[0]), &got))
	assert.Equal(t, "evt-1", got.ID)
	assert.Equal(t, ActionLock, got.Action)
	assert.True(t, testNow.Equal(got.Timestamp))
}

func TestStoreSink_AppendsEntry(t *testing.T) {
	s := store.New(store.WithClock(func() time.Time { return testNow }))
	sink := NewStoreSink(s)
	ctx := context.Background()

	require.NoError(t, sink.Publish(ctx, testEvent()))

	entries, err := s.ListAuditLog(ctx, models.AuditFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "chief", entries[0].UserID)
	assert.Equal(t, "Incident", entries[0].Target)
	assert.NotEmpty(t, entries[0].ID)
}

func TestWorkerProcess_WithoutWebhook(t *testing.T) {
	s := store.New(store.WithClock(func() time.Time { return testNow }))
	worker := newTestWorker(t, s, &config.Config{WebhookTimeout: time.Second, WebhookMaxRetries: 1})
	payload, err := json.Marshal(testEvent())
	require.NoError(t, err)

	require.NoError(t, worker.process(context.Background(), string(payload)))

	entries, err := s.ListAuditLog(context.Background(), models.AuditFilter{TargetID: "inc-1"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ActionLock, entries[0].Action)
	assert.True(t, testNow.Equal(entries[0].Timestamp))
}

func TestWorkerProcess_SinkError(t *testing.T) {
	s := store.New(store.WithClock(func() time.Time { return testNow }), store.WithErrorRate(1, func() float64 { return 0 }))
	worker := newTestWorker(t, s, &config.Config{WebhookTimeout: time.Second, WebhookMaxRetries: 1})
	payload, err := json.Marshal(testEvent())
	require.NoError(t, err)

	err = worker.process(context.Background(), string(payload))

	assert.ErrorIs(t, err, store.ErrTransient)
}

func TestWorkerProcess_InvalidPayload(t *testing.T) {
	s := store.New(store.WithClock(func() time.Time { return testNow }))
	worker := newTestWorker(t, s, &config.Config{WebhookTimeout: time.Second, WebhookMaxRetries: 1})

	err := worker.process(context.Background(), "{not json")

	assert.Error(t, err)
}

func TestWorkerProcess_DeliversSignedWebhook(t *testing.T) {
	payload, err := json.Marshal(testEvent())
	require.NoError(t, err)

	var received atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, string(payload), string(body))
		assert.Equal(t, "evt-1", r.Header.Get("X-Event-ID"))
		assert.Equal(t, generateHMACSHA256(string(payload), "secret"), r.Header.Get("X-Webhook-Signature"))
		received.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s := store.New(store.WithClock(func() time.Time { return testNow }))
	worker := newTestWorker(t, s, &config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	require.NoError(t, worker.process(context.Background(), string(payload)))
	assert.Equal(t, int32(1), received.Load())

	entries, err := s.ListAuditLog(context.Background(), models.AuditFilter{})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWorkerDeliver_RetriesThenSucceeds(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	worker := newTestWorker(t, nil, &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	err := worker.deliver(context.Background(), logrus.NewEntry(worker.logger), "evt-1", `{"id":"evt-1"}`)

	require.NoError(t, err)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestWorkerDeliver_GivesUp(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	worker := newTestWorker(t, nil, &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	err := worker.deliver(context.Background(), logrus.NewEntry(worker.logger), "evt-1", `{}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.Equal(t, int32(2), attempts.Load())
}

func TestWorkerStart_ConsumesQueue(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	s := store.New(store.WithClock(func() time.Time { return testNow }))
	worker := NewWorker(client, s, logger, &config.Config{WebhookTimeout: 10 * time.Millisecond, WebhookMaxRetries: 1})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	require.NoError(t, NewRedisPublisher(client).Publish(ctx, testEvent()))

	assert.Eventually(t, func() bool {
		entries, err := s.ListAuditLog(context.Background(), models.AuditFilter{})
		return err == nil && len(entries) == 1
	}, 2*time.Second, 10*time.Millisecond)
}
