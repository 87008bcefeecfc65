package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shenikar/fire_ops_system/internal/analytics"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

type BudgetRepository interface {
	Clock
	ListBudgets(ctx context.Context) ([]models.Budget, error)
	GetBudget(ctx context.Context, fiscalYear int) (models.Budget, bool, error)
	CreateBudget(ctx context.Context, fiscalYear int, items []models.BudgetLineItem) (models.Budget, error)
	AddBudgetLineItem(ctx context.Context, fiscalYear int, item models.BudgetLineItem) (models.Budget, error)
	UpdateBudgetLineItem(ctx context.Context, fiscalYear int, itemID string, patch models.BudgetLineItemPatch) (models.Budget, error)
	DeleteBudgetLineItem(ctx context.Context, fiscalYear int, itemID string) (models.Budget, error)
	RecordExpense(ctx context.Context, fiscalYear int, itemID string, amount float64) (models.Budget, error)
}

// BudgetService - бюджет по финансовым годам и темп расходования
type BudgetService interface {
	ListBudgets(ctx context.Context) ([]models.Budget, error)
	GetBudget(ctx context.Context, fiscalYear int) (models.Budget, error)
	CreateBudget(ctx context.Context, fiscalYear int, items []models.BudgetLineItem) (models.Budget, error)
	AddLineItem(ctx context.Context, fiscalYear int, item models.BudgetLineItem) (models.Budget, error)
	UpdateLineItem(ctx context.Context, fiscalYear int, itemID string, patch models.BudgetLineItemPatch) (models.Budget, error)
	DeleteLineItem(ctx context.Context, fiscalYear int, itemID string) (models.Budget, error)
	RecordExpense(ctx context.Context, fiscalYear int, itemID string, amount float64) (models.Budget, error)
	Stats(ctx context.Context, fiscalYear int) (models.BudgetStats, error)
}

type budgetService struct {
	repo   BudgetRepository
	logger *logrus.Logger
}

func NewBudgetService(repo BudgetRepository, logger *logrus.Logger) BudgetService {
	return &budgetService{repo: repo, logger: logger}
}

func (s *budgetService) log(method string, fiscalYear int) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{"service": "budget", "method": method, "fiscal_year": fiscalYear})
}

func (s *budgetService) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	budgets, err := s.repo.ListBudgets(ctx)
	if err != nil {
		s.log("ListBudgets", 0).WithError(err).Error("Failed to list budgets")
		return nil, fmt.Errorf("service: could not list budgets: %w", err)
	}
	return budgets, nil
}

func (s *budgetService) GetBudget(ctx context.Context, fiscalYear int) (models.Budget, error) {
	b, ok, err := s.repo.GetBudget(ctx, fiscalYear)
	if err != nil {
		return models.Budget{}, fmt.Errorf("service: could not get budget: %w", err)
	}
	if !ok {
		return models.Budget{}, notFound("Budget", strconv.Itoa(fiscalYear))
	}
	return b, nil
}

func (s *budgetService) CreateBudget(ctx context.Context, fiscalYear int, items []models.BudgetLineItem) (models.Budget, error) {
	log := s.log("CreateBudget", fiscalYear)
	for _, item := range items {
		if err := validateLineItem(item); err != nil {
			return models.Budget{}, err
		}
	}

	b, err := s.repo.CreateBudget(ctx, fiscalYear, items)
	if err != nil {
		log.WithError(err).Warn("Failed to create budget")
		return models.Budget{}, fmt.Errorf("service: could not create budget: %w", err)
	}
	log.WithField("total_budget", b.TotalBudget).Info("Budget created successfully")
	return b, nil
}

func (s *budgetService) AddLineItem(ctx context.Context, fiscalYear int, item models.BudgetLineItem) (models.Budget, error) {
	if err := validateLineItem(item); err != nil {
		return models.Budget{}, err
	}
	b, err := s.repo.AddBudgetLineItem(ctx, fiscalYear, item)
	if err != nil {
		s.log("AddLineItem", fiscalYear).WithError(err).Warn("Failed to add budget line item")
		return models.Budget{}, fmt.Errorf("service: could not add budget line item: %w", err)
	}
	return b, nil
}

func (s *budgetService) UpdateLineItem(ctx context.Context, fiscalYear int, itemID string, patch models.BudgetLineItemPatch) (models.Budget, error) {
	if (patch.BudgetedAmount != nil && *patch.BudgetedAmount < 0) || (patch.ActualAmount != nil && *patch.ActualAmount < 0) {
		return models.Budget{}, fmt.Errorf("%w: amounts must not be negative", ErrValidation)
	}
	b, err := s.repo.UpdateBudgetLineItem(ctx, fiscalYear, itemID, patch)
	if err != nil {
		s.log("UpdateLineItem", fiscalYear).WithField("item_id", itemID).WithError(err).Warn("Failed to update budget line item")
		return models.Budget{}, fmt.Errorf("service: could not update budget line item: %w", err)
	}
	return b, nil
}

func (s *budgetService) DeleteLineItem(ctx context.Context, fiscalYear int, itemID string) (models.Budget, error) {
	b, err := s.repo.DeleteBudgetLineItem(ctx, fiscalYear, itemID)
	if err != nil {
		s.log("DeleteLineItem", fiscalYear).WithField("item_id", itemID).WithError(err).Warn("Failed to delete budget line item")
		return models.Budget{}, fmt.Errorf("service: could not delete budget line item: %w", err)
	}
	return b, nil
}

// RecordExpense проводит расход по статье
func (s *budgetService) RecordExpense(ctx context.Context, fiscalYear int, itemID string, amount float64) (models.Budget, error) {
	log := s.log("RecordExpense", fiscalYear).WithFields(logrus.Fields{"item_id": itemID, "amount": amount})
	if amount <= 0 {
		return models.Budget{}, fmt.Errorf("%w: expense amount must be positive", ErrValidation)
	}

	b, err := s.repo.RecordExpense(ctx, fiscalYear, itemID, amount)
	if err != nil {
		log.WithError(err).Warn("Failed to record expense")
		return models.Budget{}, fmt.Errorf("service: could not record expense: %w", err)
	}
	log.Info("Expense recorded")
	return b, nil
}

// Stats считает темп расходования бюджета на текущую дату
func (s *budgetService) Stats(ctx context.Context, fiscalYear int) (models.BudgetStats, error) {
	b, err := s.GetBudget(ctx, fiscalYear)
	if err != nil {
		return models.BudgetStats{}, err
	}
	return analytics.BudgetStats(b, s.repo.Now()), nil
}

func validateLineItem(item models.BudgetLineItem) error {
	if item.Category == "" {
		return fmt.Errorf("%w: line item category is required", ErrValidation)
	}
	if item.BudgetedAmount < 0 || item.ActualAmount < 0 {
		return fmt.Errorf("%w: amounts must not be negative", ErrValidation)
	}
	return nil
}
