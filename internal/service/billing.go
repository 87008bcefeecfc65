package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/fire_ops_system/internal/analytics"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

type BillingRepository interface {
	Clock
	ListInvoices(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error)
	GetInvoice(ctx context.Context, id string) (models.Invoice, bool, error)
	GetBillableIncidents(ctx context.Context) ([]models.Incident, error)
	GenerateInvoiceForIncident(ctx context.Context, incidentID string) (models.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, id, status string, paidAt time.Time) (models.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
}

// BillingService - счета за выезды по тарифицируемым инцидентам
type BillingService interface {
	ListInvoices(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error)
	GetInvoice(ctx context.Context, id string) (models.Invoice, error)
	ListBillableIncidents(ctx context.Context) ([]models.Incident, error)
	GenerateInvoice(ctx context.Context, incidentID string) (models.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, id, status string, paidAt time.Time) (models.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
	FinancialDashboard(ctx context.Context) (models.FinancialDashboard, error)
}

type billingService struct {
	repo   BillingRepository
	logger *logrus.Logger
}

func NewBillingService(repo BillingRepository, logger *logrus.Logger) BillingService {
	return &billingService{repo: repo, logger: logger}
}

func (s *billingService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{"service": "billing", "method": method})
}

func (s *billingService) ListInvoices(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error) {
	invoices, err := s.repo.ListInvoices(ctx, filter)
	if err != nil {
		s.log("ListInvoices").WithError(err).Error("Failed to list invoices")
		return nil, fmt.Errorf("service: could not list invoices: %w", err)
	}
	return invoices, nil
}

func (s *billingService) GetInvoice(ctx context.Context, id string) (models.Invoice, error) {
	inv, ok, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("service: could not get invoice: %w", err)
	}
	if !ok {
		return models.Invoice{}, notFound("Invoice", id)
	}
	return inv, nil
}

func (s *billingService) ListBillableIncidents(ctx context.Context) ([]models.Incident, error) {
	incidents, err := s.repo.GetBillableIncidents(ctx)
	if err != nil {
		s.log("ListBillableIncidents").WithError(err).Error("Failed to list billable incidents")
		return nil, fmt.Errorf("service: could not list billable incidents: %w", err)
	}
	return incidents, nil
}

// GenerateInvoice выставляет черновик счета по инциденту
func (s *billingService) GenerateInvoice(ctx context.Context, incidentID string) (models.Invoice, error) {
	log := s.log("GenerateInvoice").WithField("incident_id", incidentID)
	log.Info("Attempting to generate invoice")

	inv, err := s.repo.GenerateInvoiceForIncident(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to generate invoice")
		return models.Invoice{}, fmt.Errorf("service: could not generate invoice: %w", err)
	}
	log.WithFields(logrus.Fields{
		"invoice_id":     inv.ID,
		"invoice_number": inv.InvoiceNumber,
		"total":          inv.TotalAmount,
	}).Info("Invoice generated successfully")
	return inv, nil
}

func (s *billingService) UpdateInvoiceStatus(ctx context.Context, id, status string, paidAt time.Time) (models.Invoice, error) {
	inv, err := s.repo.UpdateInvoiceStatus(ctx, id, status, paidAt)
	if err != nil {
		s.log("UpdateInvoiceStatus").WithFields(logrus.Fields{"invoice_id": id, "status": status}).
			WithError(err).Warn("Failed to update invoice status")
		return models.Invoice{}, fmt.Errorf("service: could not update invoice status: %w", err)
	}
	return inv, nil
}

func (s *billingService) DeleteInvoice(ctx context.Context, id string) error {
	if err := s.repo.DeleteInvoice(ctx, id); err != nil {
		s.log("DeleteInvoice").WithError(err).Error("Failed to delete invoice")
		return fmt.Errorf("service: could not delete invoice: %w", err)
	}
	return nil
}

func (s *billingService) FinancialDashboard(ctx context.Context) (models.FinancialDashboard, error) {
	invoices, err := s.repo.ListInvoices(ctx, models.InvoiceFilter{})
	if err != nil {
		s.log("FinancialDashboard").WithError(err).Error("Failed to list invoices")
		return models.FinancialDashboard{}, fmt.Errorf("service: could not compute financial dashboard: %w", err)
	}
	return analytics.FinancialDashboard(invoices, s.repo.Now()), nil
}
