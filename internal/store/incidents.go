package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shenikar/fire_ops_system/internal/models"
)

func incidentKey(i models.Incident) string { return i.ID }

// ListIncidents возвращает инциденты, отсортированные по дате (сначала новые)
func (s *Store) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]models.Incident, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Incident, 0, len(s.incidents))
	for _, inc := range s.incidents {
		if filter.Type != "" && inc.Type != filter.Type {
			continue
		}
		if filter.Status != "" && inc.Status != filter.Status {
			continue
		}
		if filter.Search != "" && !containsFold(inc.IncidentNumber, filter.Search) &&
			!containsFold(inc.Address, filter.Search) && !containsFold(inc.Type, filter.Search) {
			continue
		}
		if !inRange(inc.Date, filter.From, filter.To) {
			continue
		}
		out = append(out, inc.Clone())
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Date.After(out[b].Date)
	})
	return out, nil
}

func (s *Store) GetIncident(ctx context.Context, id string) (models.Incident, bool, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Incident{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.incidents, id, incidentKey)
	if i < 0 {
		return models.Incident{}, false, nil
	}
	return s.incidents[i].Clone(), true, nil
}

// CreateIncident добавляет инцидент, присваивая id и порядковый номер
func (s *Store) CreateIncident(ctx context.Context, inc models.Incident) (models.Incident, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Incident{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFn()
	inc = inc.Clone()
	inc.ID = s.newID("inc")
	if inc.Date.IsZero() {
		inc.Date = now
	}
	if inc.Status == "" {
		inc.Status = models.IncidentStatusInProgress
	}
	if inc.Status != models.IncidentStatusInProgress && inc.Status != models.IncidentStatusLocked {
		return models.Incident{}, fmt.Errorf("%w: %q", ErrInvalidStatus, inc.Status)
	}
	if inc.Status == models.IncidentStatusLocked && inc.LockedAt == nil {
		lockedAt := now
		inc.LockedAt = &lockedAt
	}
	if inc.IncidentNumber == "" {
		inc.IncidentNumber = s.nextIncidentNumber(inc.Date.Year())
	} else if s.incidentNumberTaken(inc.IncidentNumber) {
		return models.Incident{}, fmt.Errorf("%w: incident number %s already exists", ErrConflict, inc.IncidentNumber)
	}
	inc.RespondingPersonnelIDs = nonNil(inc.RespondingPersonnelIDs)
	inc.RespondingApparatusIDs = nonNil(inc.RespondingApparatusIDs)
	inc.CreatedAt = now
	inc.UpdatedAt = now

	s.incidents = append(s.incidents, inc.Clone())
	return inc, nil
}

// UpdateIncident применяет частичное обновление. Заблокированный инцидент не меняется,
// статус может перейти только из In Progress в Locked.
func (s *Store) UpdateIncident(ctx context.Context, id string, patch models.IncidentPatch) (models.Incident, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Incident{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.incidents, id, incidentKey)
	if i < 0 {
		return models.Incident{}, notFound("Incident", id)
	}
	current := s.incidents[i].Clone()
	if current.Status == models.IncidentStatusLocked {
		return models.Incident{}, ErrIncidentLocked
	}
	if patch.Status != nil {
		switch *patch.Status {
		case models.IncidentStatusInProgress:
		case models.IncidentStatusLocked:
			lockedAt := s.nowFn()
			current.LockedAt = &lockedAt
		default:
			return models.Incident{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, *patch.Status)
		}
	}
	patch.Apply(&current)
	current.UpdatedAt = s.nowFn()
	s.incidents[i] = current.Clone()
	return current, nil
}

// LockIncident переводит инцидент в статус Locked
func (s *Store) LockIncident(ctx context.Context, id string) (models.Incident, error) {
	status := models.IncidentStatusLocked
	return s.UpdateIncident(ctx, id, models.IncidentPatch{Status: &status})
}

// DeleteIncident удаляет инцидент по id; отсутствие записи не ошибка
func (s *Store) DeleteIncident(ctx context.Context, id string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.incidents, id, incidentKey); i >= 0 {
		s.incidents = removeAt(s.incidents, i)
	}
	return nil
}

// GetBillableIncidents возвращает инциденты тарифицируемого типа без выставленного счета
func (s *Store) GetBillableIncidents(ctx context.Context) ([]models.Incident, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	invoiced := make(map[string]struct{}, len(s.invoices))
	for _, inv := range s.invoices {
		invoiced[inv.IncidentID] = struct{}{}
	}
	out := make([]models.Incident, 0)
	for _, inc := range s.incidents {
		if _, ok := s.rates[inc.Type]; !ok {
			continue
		}
		if _, ok := invoiced[inc.ID]; ok {
			continue
		}
		out = append(out, inc.Clone())
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Date.After(out[b].Date)
	})
	return out, nil
}

func (s *Store) incidentNumberTaken(number string) bool {
	for _, inc := range s.incidents {
		if inc.IncidentNumber == number {
			return true
		}
	}
	return false
}

// nextIncidentNumber - следующий номер вида YYYY-NNNNN
func (s *Store) nextIncidentNumber(year int) string {
	return nextSequence(fmt.Sprintf("%d-", year), len(s.incidents), func(i int) string {
		return s.incidents[i].IncidentNumber
	}, 5)
}

func nextSequence(prefix string, n int, number func(int) string, width int) string {
	maxSeq := 0
	for i := 0; i < n; i++ {
		num := number(i)
		if !strings.HasPrefix(num, prefix) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(num, prefix))
		if err == nil && seq > maxSeq {
			maxSeq = seq
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, maxSeq+1)
}
