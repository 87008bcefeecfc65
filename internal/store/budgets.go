package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/shenikar/fire_ops_system/internal/models"
)

func lineItemKey(li models.BudgetLineItem) string { return li.ID }

func (s *Store) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := cloneAll(s.budgets, models.Budget.Clone)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].FiscalYear > out[b].FiscalYear
	})
	return out, nil
}

func (s *Store) GetBudget(ctx context.Context, fiscalYear int) (models.Budget, bool, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Budget{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.budgetIndex(fiscalYear)
	if i < 0 {
		return models.Budget{}, false, nil
	}
	return s.budgets[i].Clone(), true, nil
}

// CreateBudget создает бюджет на финансовый год; итоги считаются по статьям
func (s *Store) CreateBudget(ctx context.Context, fiscalYear int, items []models.BudgetLineItem) (models.Budget, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Budget{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.budgetIndex(fiscalYear) >= 0 {
		return models.Budget{}, fmt.Errorf("%w: budget for fiscal year %d already exists", ErrConflict, fiscalYear)
	}
	b := models.Budget{FiscalYear: fiscalYear, LineItems: make([]models.BudgetLineItem, 0, len(items))}
	for _, item := range items {
		item.ID = s.newID("bli")
		b.LineItems = append(b.LineItems, item)
	}
	recomputeTotals(&b)
	s.budgets = append(s.budgets, b.Clone())
	return b, nil
}

func (s *Store) AddBudgetLineItem(ctx context.Context, fiscalYear int, item models.BudgetLineItem) (models.Budget, error) {
	return s.mutateBudget(ctx, fiscalYear, func(b *models.Budget) error {
		item.ID = s.newID("bli")
		b.LineItems = append(b.LineItems, item)
		return nil
	})
}

func (s *Store) UpdateBudgetLineItem(ctx context.Context, fiscalYear int, itemID string, patch models.BudgetLineItemPatch) (models.Budget, error) {
	return s.mutateBudget(ctx, fiscalYear, func(b *models.Budget) error {
		i := indexOf(b.LineItems, itemID, lineItemKey)
		if i < 0 {
			return notFound("Budget line item", itemID)
		}
		patch.Apply(&b.LineItems[i])
		return nil
	})
}

// DeleteBudgetLineItem удаляет статью; отсутствующая статья не ошибка
func (s *Store) DeleteBudgetLineItem(ctx context.Context, fiscalYear int, itemID string) (models.Budget, error) {
	return s.mutateBudget(ctx, fiscalYear, func(b *models.Budget) error {
		if i := indexOf(b.LineItems, itemID, lineItemKey); i >= 0 {
			b.LineItems = removeAt(b.LineItems, i)
		}
		return nil
	})
}

// RecordExpense добавляет фактический расход к статье
func (s *Store) RecordExpense(ctx context.Context, fiscalYear int, itemID string, amount float64) (models.Budget, error) {
	return s.mutateBudget(ctx, fiscalYear, func(b *models.Budget) error {
		i := indexOf(b.LineItems, itemID, lineItemKey)
		if i < 0 {
			return notFound("Budget line item", itemID)
		}
		b.LineItems[i].ActualAmount += amount
		return nil
	})
}

// mutateBudget - единственный путь изменения статей бюджета; после изменения итоги пересчитываются
func (s *Store) mutateBudget(ctx context.Context, fiscalYear int, fn func(*models.Budget) error) (models.Budget, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Budget{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.budgetIndex(fiscalYear)
	if i < 0 {
		return models.Budget{}, notFound("Budget", fmt.Sprint(fiscalYear))
	}
	current := s.budgets[i].Clone()
	if err := fn(&current); err != nil {
		return models.Budget{}, err
	}
	recomputeTotals(&current)
	s.budgets[i] = current.Clone()
	return current, nil
}

func (s *Store) budgetIndex(fiscalYear int) int {
	for i := range s.budgets {
		if s.budgets[i].FiscalYear == fiscalYear {
			return i
		}
	}
	return -1
}

func recomputeTotals(b *models.Budget) {
	b.TotalBudget = 0
	b.TotalSpent = 0
	for _, item := range b.LineItems {
		b.TotalBudget += item.BudgetedAmount
		b.TotalSpent += item.ActualAmount
	}
}
