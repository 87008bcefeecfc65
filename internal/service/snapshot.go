package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/fire_ops_system/internal/store"
	"github.com/sirupsen/logrus"
)

// SnapshotSource - хранилище, состояние которого сохраняется целиком
type SnapshotSource interface {
	Export(ctx context.Context) (store.Snapshot, error)
	Import(ctx context.Context, snap store.Snapshot) error
}

// SnapshotRepository - внешнее хранилище снимков (Postgres)
type SnapshotRepository interface {
	Save(ctx context.Context, snap store.Snapshot) error
	Load(ctx context.Context) (store.Snapshot, bool, error)
}

// SnapshotService сохраняет и восстанавливает состояние хранилища
type SnapshotService interface {
	Restore(ctx context.Context) (bool, error)
	Persist(ctx context.Context) error
	Run(ctx context.Context, interval time.Duration)
}

type snapshotService struct {
	source SnapshotSource
	repo   SnapshotRepository
	logger *logrus.Logger
}

func NewSnapshotService(source SnapshotSource, repo SnapshotRepository, logger *logrus.Logger) SnapshotService {
	return &snapshotService{source: source, repo: repo, logger: logger}
}

func (s *snapshotService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{"service": "snapshot", "method": method})
}

// Restore загружает последний снимок. Возвращает false, если снимка нет.
func (s *snapshotService) Restore(ctx context.Context) (bool, error) {
	snap, ok, err := s.repo.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("service: could not load snapshot: %w", err)
	}
	if !ok {
		s.log("Restore").Info("No snapshot found")
		return false, nil
	}
	if err := s.source.Import(ctx, snap); err != nil {
		return false, fmt.Errorf("service: could not import snapshot: %w", err)
	}
	s.log("Restore").WithField("incidents", len(snap.Incidents)).Info("Snapshot restored")
	return true, nil
}

func (s *snapshotService) Persist(ctx context.Context) error {
	snap, err := s.source.Export(ctx)
	if err != nil {
		return fmt.Errorf("service: could not export snapshot: %w", err)
	}
	if err := s.repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("service: could not save snapshot: %w", err)
	}
	return nil
}

// Run сохраняет снимок с заданным интервалом и один раз при остановке
func (s *snapshotService) Run(ctx context.Context, interval time.Duration) {
	log := s.log("Run")
	log.WithField("interval", interval).Info("Snapshot loop started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Финальное сохранение с отдельным контекстом
			finalCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.Persist(finalCtx); err != nil {
				log.WithError(err).Error("Failed to persist final snapshot")
			}
			cancel()
			log.Info("Snapshot loop stopped")
			return
		case <-ticker.C:
			if err := s.Persist(ctx); err != nil {
				log.WithError(err).Error("Failed to persist snapshot")
			}
		}
	}
}
