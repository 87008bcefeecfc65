package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/fire_ops_system/internal/service"
	"github.com/shenikar/fire_ops_system/internal/store"
)

// SnapshotRepository хранит снимок хранилища в Postgres: одна строка JSONB на таблицу
type SnapshotRepository struct {
	db *pgxpool.Pool
}

func NewSnapshotRepository(db *pgxpool.Pool) service.SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save перезаписывает все таблицы снимка в одной транзакции
func (r *SnapshotRepository) Save(ctx context.Context, snap store.Snapshot) error {
	buckets, err := splitSnapshot(snap)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	query := `
		INSERT INTO store_snapshots (bucket, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (bucket) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at;
	`
	for bucket, data := range buckets {
		if _, err := tx.Exec(ctx, query, bucket, data); err != nil {
			return fmt.Errorf("failed to save snapshot bucket %s: %w", bucket, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// Load читает последний снимок; false, если таблица пуста
func (r *SnapshotRepository) Load(ctx context.Context) (store.Snapshot, bool, error) {
	rows, err := r.db.Query(ctx, `SELECT bucket, data FROM store_snapshots;`)
	if err != nil {
		return store.Snapshot{}, false, fmt.Errorf("failed to load snapshot: %w", err)
	}
	defer rows.Close()

	buckets := make(map[string]json.RawMessage)
	for rows.Next() {
		var (
			bucket string
			data   []byte
		)
		if err := rows.Scan(&bucket, &data); err != nil {
			return store.Snapshot{}, false, fmt.Errorf("failed to scan snapshot bucket: %w", err)
		}
		buckets[bucket] = data
	}
	if err := rows.Err(); err != nil {
		return store.Snapshot{}, false, fmt.Errorf("error during snapshot rows iteration: %w", err)
	}
	if len(buckets) == 0 {
		return store.Snapshot{}, false, nil
	}

	snap, err := joinSnapshot(buckets)
	if err != nil {
		return store.Snapshot{}, false, err
	}
	return snap, true, nil
}

// splitSnapshot раскладывает снимок по ключам верхнего уровня
func splitSnapshot(snap store.Snapshot) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	buckets := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &buckets); err != nil {
		return nil, fmt.Errorf("failed to split snapshot: %w", err)
	}
	return buckets, nil
}

func joinSnapshot(buckets map[string]json.RawMessage) (store.Snapshot, error) {
	raw, err := json.Marshal(buckets)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to join snapshot: %w", err)
	}
	var snap store.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snap, nil
}
