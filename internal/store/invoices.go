package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
)

const invoiceDueDays = 30

func invoiceKey(i models.Invoice) string { return i.ID }

// ListInvoices возвращает счета, сначала последние выставленные
func (s *Store) ListInvoices(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		if filter.IncidentID != "" && inv.IncidentID != filter.IncidentID {
			continue
		}
		if filter.PropertyID != "" && inv.PropertyID != filter.PropertyID {
			continue
		}
		out = append(out, inv.Clone())
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].IssuedDate.After(out[b].IssuedDate)
	})
	return out, nil
}

func (s *Store) GetInvoice(ctx context.Context, id string) (models.Invoice, bool, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Invoice{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.invoices, id, invoiceKey)
	if i < 0 {
		return models.Invoice{}, false, nil
	}
	return s.invoices[i].Clone(), true, nil
}

// GenerateInvoiceForIncident выставляет черновик счета по тарифу типа инцидента.
// На один инцидент допускается один счет.
func (s *Store) GenerateInvoiceForIncident(ctx context.Context, incidentID string) (models.Invoice, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Invoice{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.incidents, incidentID, incidentKey)
	if i < 0 {
		return models.Invoice{}, notFound("Incident", incidentID)
	}
	incident := s.incidents[i]
	rate, ok := s.rates[incident.Type]
	if !ok {
		return models.Invoice{}, fmt.Errorf("%w: %s", ErrNotBillable, incident.Type)
	}
	if indexOf(s.invoices, incidentID, func(inv models.Invoice) string { return inv.IncidentID }) >= 0 {
		return models.Invoice{}, fmt.Errorf("%w: incident %s already invoiced", ErrConflict, incident.IncidentNumber)
	}

	now := s.nowFn()
	item := models.InvoiceLineItem{
		Description: rate.Description,
		Quantity:    1,
		Rate:        rate.Rate,
		Total:       rate.Rate,
	}
	inv := models.Invoice{
		ID:            s.newID("inv"),
		InvoiceNumber: s.nextInvoiceNumber(now.Year()),
		IncidentID:    incident.ID,
		PropertyID:    incident.PropertyID,
		IssuedDate:    now,
		DueDate:       now.AddDate(0, 0, invoiceDueDays),
		LineItems:     []models.InvoiceLineItem{item},
		TotalAmount:   item.Total,
		Status:        models.InvoiceStatusDraft,
	}
	s.invoices = append(s.invoices, inv.Clone())
	return inv, nil
}

// UpdateInvoiceStatus меняет статус счета; при оплате фиксируется дата paidAt
func (s *Store) UpdateInvoiceStatus(ctx context.Context, id, status string, paidAt time.Time) (models.Invoice, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Invoice{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.invoices, id, invoiceKey)
	if i < 0 {
		return models.Invoice{}, notFound("Invoice", id)
	}
	current := s.invoices[i].Clone()
	switch status {
	case models.InvoiceStatusPaid:
		if paidAt.IsZero() {
			paidAt = s.nowFn()
		}
		current.PaidDate = &paidAt
	case models.InvoiceStatusDraft, models.InvoiceStatusSent, models.InvoiceStatusOverdue, models.InvoiceStatusVoid:
		current.PaidDate = nil
	default:
		return models.Invoice{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	current.Status = status
	s.invoices[i] = current.Clone()
	return current, nil
}

// DeleteInvoice удаляет счет по id; отсутствие записи не ошибка
func (s *Store) DeleteInvoice(ctx context.Context, id string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.invoices, id, invoiceKey); i >= 0 {
		s.invoices = removeAt(s.invoices, i)
	}
	return nil
}

func (s *Store) nextInvoiceNumber(year int) string {
	return nextSequence(fmt.Sprintf("INV-%d-", year), len(s.invoices), func(i int) string {
		return s.invoices[i].InvoiceNumber
	}, 4)
}
