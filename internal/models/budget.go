package models

type Budget struct {
	FiscalYear  int              `json:"fiscal_year"`
	TotalBudget float64          `json:"total_budget"`
	TotalSpent  float64          `json:"total_spent"`
	LineItems   []BudgetLineItem `json:"line_items"`
}

type BudgetLineItem struct {
	ID             string  `json:"id"`
	Category       string  `json:"category"`
	Description    string  `json:"description,omitempty"`
	BudgetedAmount float64 `json:"budgeted_amount"`
	ActualAmount   float64 `json:"actual_amount"`
}

func (b Budget) Clone() Budget {
	out := b
	if b.LineItems != nil {
		out.LineItems = append([]BudgetLineItem(nil), b.LineItems...)
	}
	return out
}

type BudgetLineItemPatch struct {
	Category       *string
	Description    *string
	BudgetedAmount *float64
	ActualAmount   *float64
}

func (p BudgetLineItemPatch) Apply(item *BudgetLineItem) {
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.BudgetedAmount != nil {
		item.BudgetedAmount = *p.BudgetedAmount
	}
	if p.ActualAmount != nil {
		item.ActualAmount = *p.ActualAmount
	}
}
