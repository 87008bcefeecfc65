package store

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
)

func citizenKey(c models.Citizen) string { return c.ID }

func forgivenessKey(r models.BillForgivenessRequest) string { return r.ID }

func (s *Store) ListCitizens(ctx context.Context) ([]models.Citizen, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.citizens, models.Citizen.Clone), nil
}

func (s *Store) GetCitizen(ctx context.Context, id string) (models.Citizen, bool, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Citizen{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.citizens, id, citizenKey)
	if i < 0 {
		return models.Citizen{}, false, nil
	}
	return s.citizens[i].Clone(), true, nil
}

func (s *Store) CreateCitizen(ctx context.Context, c models.Citizen) (models.Citizen, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Citizen{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c = c.Clone()
	c.ID = s.newID("citizen")
	c.PropertyIDs = nonNil(c.PropertyIDs)
	s.citizens = append(s.citizens, c.Clone())
	return c, nil
}

// GetCitizenDues возвращает сборы по объектам жителя вместе с адресами
func (s *Store) GetCitizenDues(ctx context.Context, citizenID string) ([]models.FireDueWithDetails, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.citizens, citizenID, citizenKey)
	if i < 0 {
		return nil, notFound("Citizen", citizenID)
	}
	owned := make(map[string]struct{}, len(s.citizens[i].PropertyIDs))
	for _, id := range s.citizens[i].PropertyIDs {
		owned[id] = struct{}{}
	}
	dues := make([]models.FireDue, 0)
	for _, d := range s.fireDues {
		if _, ok := owned[d.PropertyID]; ok {
			dues = append(dues, d)
		}
	}
	sort.SliceStable(dues, func(a, b int) bool { return dues[a].Year > dues[b].Year })
	return s.fireDueDetails(dues), nil
}

// SubmitForgivenessRequest регистрирует заявку на списание сбора
func (s *Store) SubmitForgivenessRequest(ctx context.Context, r models.BillForgivenessRequest) (models.BillForgivenessRequest, error) {
	if err := s.simulate(ctx); err != nil {
		return models.BillForgivenessRequest{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := indexOf(s.citizens, r.CitizenID, citizenKey)
	if c < 0 {
		return models.BillForgivenessRequest{}, notFound("Citizen", r.CitizenID)
	}
	d := indexOf(s.fireDues, r.FireDueID, fireDueKey)
	// чужой сбор для жителя не существует
	if d < 0 || !slices.Contains(s.citizens[c].PropertyIDs, s.fireDues[d].PropertyID) {
		return models.BillForgivenessRequest{}, notFound("Fire due", r.FireDueID)
	}
	for _, existing := range s.forgiveness {
		if existing.FireDueID == r.FireDueID && existing.Status == models.ForgivenessPending {
			return models.BillForgivenessRequest{}, fmt.Errorf("%w: request for this bill is already pending", ErrConflict)
		}
	}
	r = r.Clone()
	r.ID = s.newID("forgive")
	r.Status = models.ForgivenessPending
	r.SubmittedAt = s.nowFn()
	r.ResolvedAt = nil
	s.forgiveness = append(s.forgiveness, r.Clone())
	return r, nil
}

func (s *Store) ListForgivenessRequests(ctx context.Context, citizenID string) ([]models.BillForgivenessRequest, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BillForgivenessRequest, 0, len(s.forgiveness))
	for _, r := range s.forgiveness {
		if citizenID != "" && r.CitizenID != citizenID {
			continue
		}
		out = append(out, r.Clone())
	}
	return out, nil
}

// GetPendingForgivenessRequests возвращает ожидающие заявки с именем жителя и подписью счета.
// Отсутствующий житель дает "Unknown", отсутствующий сбор - "N/A".
func (s *Store) GetPendingForgivenessRequests(ctx context.Context) ([]models.ForgivenessRequestWithDetails, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ForgivenessRequestWithDetails, 0)
	for _, r := range s.forgiveness {
		if r.Status != models.ForgivenessPending {
			continue
		}
		row := models.ForgivenessRequestWithDetails{
			BillForgivenessRequest: r.Clone(),
			CitizenName:            "Unknown",
			BillLabel:              "N/A",
		}
		if i := indexOf(s.citizens, r.CitizenID, citizenKey); i >= 0 {
			row.CitizenName = s.citizens[i].Name
		}
		if i := indexOf(s.fireDues, r.FireDueID, fireDueKey); i >= 0 {
			row.BillLabel = fmt.Sprintf("%d Bill", s.fireDues[i].Year)
		}
		out = append(out, row)
	}
	return out, nil
}

// ResolveForgivenessRequest одобряет или отклоняет заявку.
// При одобрении сумма сбора обнуляется, а сбор считается оплаченным.
func (s *Store) ResolveForgivenessRequest(ctx context.Context, id string, approve bool, at time.Time) (models.BillForgivenessRequest, error) {
	if err := s.simulate(ctx); err != nil {
		return models.BillForgivenessRequest{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.forgiveness, id, forgivenessKey)
	if i < 0 {
		return models.BillForgivenessRequest{}, notFound("Forgiveness request", id)
	}
	if s.forgiveness[i].Status != models.ForgivenessPending {
		return models.BillForgivenessRequest{}, ErrInvalidTransition
	}
	if at.IsZero() {
		at = s.nowFn()
	}
	resolved := at
	s.forgiveness[i].ResolvedAt = &resolved
	if !approve {
		s.forgiveness[i].Status = models.ForgivenessDenied
		return s.forgiveness[i].Clone(), nil
	}
	s.forgiveness[i].Status = models.ForgivenessApproved
	if d := indexOf(s.fireDues, s.forgiveness[i].FireDueID, fireDueKey); d >= 0 {
		paid := at
		s.fireDues[d].Amount = 0
		s.fireDues[d].Status = models.FireDueStatusPaid
		s.fireDues[d].PaymentDate = &paid
	}
	return s.forgiveness[i].Clone(), nil
}
