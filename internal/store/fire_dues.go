package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
)

func fireDueKey(d models.FireDue) string { return d.ID }

func (s *Store) ListFireDues(ctx context.Context, filter models.FireDueFilter) ([]models.FireDue, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterFireDues(filter), nil
}

func (s *Store) filterFireDues(filter models.FireDueFilter) []models.FireDue {
	out := make([]models.FireDue, 0, len(s.fireDues))
	for _, d := range s.fireDues {
		if filter.Year != 0 && d.Year != filter.Year {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		if filter.PropertyID != "" && d.PropertyID != filter.PropertyID {
			continue
		}
		out = append(out, d.Clone())
	}
	return out
}

func (s *Store) GetFireDue(ctx context.Context, id string) (models.FireDue, bool, error) {
	if err := s.simulate(ctx); err != nil {
		return models.FireDue{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.fireDues, id, fireDueKey)
	if i < 0 {
		return models.FireDue{}, false, nil
	}
	return s.fireDues[i].Clone(), true, nil
}

func (s *Store) CreateFireDue(ctx context.Context, d models.FireDue) (models.FireDue, error) {
	if err := s.simulate(ctx); err != nil {
		return models.FireDue{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	d = d.Clone()
	d.ID = s.newID("due")
	if d.Year == 0 {
		d.Year = s.nowFn().Year()
	}
	if d.Status == "" {
		d.Status = models.FireDueStatusUnpaid
	}
	if err := s.normalizePayment(&d); err != nil {
		return models.FireDue{}, err
	}
	s.fireDues = append(s.fireDues, d.Clone())
	return d, nil
}

// UpdateFireDue обновляет сбор, сохраняя инвариант: дата оплаты есть только у статуса Paid
func (s *Store) UpdateFireDue(ctx context.Context, id string, patch models.FireDuePatch) (models.FireDue, error) {
	if err := s.simulate(ctx); err != nil {
		return models.FireDue{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.fireDues, id, fireDueKey)
	if i < 0 {
		return models.FireDue{}, notFound("Fire due", id)
	}
	current := s.fireDues[i].Clone()
	if patch.Amount != nil {
		current.Amount = *patch.Amount
	}
	if patch.Status != nil {
		current.Status = *patch.Status
	}
	if patch.PaymentDate != nil {
		paid := *patch.PaymentDate
		current.PaymentDate = &paid
	}
	if err := s.normalizePayment(&current); err != nil {
		return models.FireDue{}, err
	}
	s.fireDues[i] = current.Clone()
	return current, nil
}

func (s *Store) DeleteFireDue(ctx context.Context, id string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.fireDues, id, fireDueKey); i >= 0 {
		s.fireDues = removeAt(s.fireDues, i)
	}
	return nil
}

// MarkFireDuePaid отмечает сбор оплаченным на дату paidAt (нулевая дата - текущее время)
func (s *Store) MarkFireDuePaid(ctx context.Context, id string, paidAt time.Time) (models.FireDue, error) {
	status := models.FireDueStatusPaid
	if paidAt.IsZero() {
		paidAt = s.nowFn()
	}
	return s.UpdateFireDue(ctx, id, models.FireDuePatch{Status: &status, PaymentDate: &paidAt})
}

// BulkMarkFireDuesPaid отмечает несколько сборов оплаченными; отсутствующие id пропускаются
func (s *Store) BulkMarkFireDuesPaid(ctx context.Context, ids []string, paidAt time.Time) (models.BulkPaymentResult, error) {
	if err := s.simulate(ctx); err != nil {
		return models.BulkPaymentResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if paidAt.IsZero() {
		paidAt = s.nowFn()
	}
	result := models.BulkPaymentResult{Updated: make([]models.FireDue, 0, len(ids))}
	for _, id := range ids {
		i := indexOf(s.fireDues, id, fireDueKey)
		if i < 0 {
			result.Missing = append(result.Missing, id)
			continue
		}
		paid := paidAt
		s.fireDues[i].Status = models.FireDueStatusPaid
		s.fireDues[i].PaymentDate = &paid
		result.Updated = append(result.Updated, s.fireDues[i].Clone())
	}
	return result, nil
}

// GenerateAnnualDues создает сбор за год для каждого объекта, у которого его еще нет
func (s *Store) GenerateAnnualDues(ctx context.Context, year int, amount float64) ([]models.FireDue, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]struct{})
	for _, d := range s.fireDues {
		if d.Year == year {
			existing[d.PropertyID] = struct{}{}
		}
	}
	created := make([]models.FireDue, 0)
	for _, p := range s.properties {
		if _, ok := existing[p.ID]; ok {
			continue
		}
		d := models.FireDue{
			ID:         s.newID("due"),
			PropertyID: p.ID,
			Year:       year,
			Amount:     amount,
			Status:     models.FireDueStatusUnpaid,
		}
		s.fireDues = append(s.fireDues, d)
		created = append(created, d.Clone())
	}
	return created, nil
}

// GetFireDuesWithDetails соединяет сборы с объектами и владельцами.
// Отсутствующий объект дает "N/A" вместо адреса и "Unknown" вместо владельца.
func (s *Store) GetFireDuesWithDetails(ctx context.Context) ([]models.FireDueWithDetails, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fireDueDetails(s.fireDues), nil
}

// fireDueDetails вызывается под s.mu
func (s *Store) fireDueDetails(dues []models.FireDue) []models.FireDueWithDetails {
	out := make([]models.FireDueWithDetails, 0, len(dues))
	for _, d := range dues {
		row := models.FireDueWithDetails{
			FireDue:   d.Clone(),
			Address:   "N/A",
			ParcelID:  "N/A",
			OwnerName: "Unknown",
		}
		if i := indexOf(s.properties, d.PropertyID, propertyKey); i >= 0 {
			p := s.properties[i]
			row.Address = p.Address
			row.ParcelID = p.ParcelID
			row.OwnerName = s.ownerNames(p.OwnerIDs)
		}
		out = append(out, row)
	}
	return out
}

func (s *Store) normalizePayment(d *models.FireDue) error {
	switch d.Status {
	case models.FireDueStatusPaid:
		if d.PaymentDate == nil {
			paid := s.nowFn()
			d.PaymentDate = &paid
		}
	case models.FireDueStatusUnpaid, models.FireDueStatusOverdue:
		d.PaymentDate = nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, d.Status)
	}
	return nil
}
