package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List budgets
// @Tags Budget
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Budget
// @Router /budgets [get]
func (h *Handler) listBudgets(c *gin.Context) {
	log := h.log(c, "listBudgets")

	budgets, err := h.services.Budget.ListBudgets(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, budgets)
}

// @Summary Get budget for a fiscal year
// @Tags Budget
// @Produce json
// @Security ApiKeyAuth
// @Param year path int true "Fiscal year"
// @Success 200 {object} models.Budget
// @Failure 404 {object} map[string]string "Budget not found"
// @Router /budgets/{year} [get]
func (h *Handler) getBudget(c *gin.Context) {
	year, ok := paramInt(c, "year")
	if !ok {
		h.badRequest(c, "invalid fiscal year")
		return
	}
	log := h.log(c, "getBudget").WithField("fiscal_year", year)

	budget, err := h.services.Budget.GetBudget(c.Request.Context(), year)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

// @Summary Create budget
// @Tags Budget
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param budget body CreateBudgetRequest true "Budget"
// @Success 201 {object} models.Budget
// @Failure 409 {object} map[string]string "Budget already exists"
// @Router /budgets [post]
func (h *Handler) createBudget(c *gin.Context) {
	var input CreateBudgetRequest
	log := h.log(c, "createBudget")

	if !h.bind(c, log, &input) {
		return
	}

	budget, err := h.services.Budget.CreateBudget(c.Request.Context(), input.FiscalYear, DTOToBudgetLineItems(input.LineItems))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, budget)
}

// @Summary Budget statistics
// @Description Spending against the elapsed share of the fiscal year.
// @Tags Budget
// @Produce json
// @Security ApiKeyAuth
// @Param year path int true "Fiscal year"
// @Success 200 {object} models.BudgetStats
// @Router /budgets/{year}/stats [get]
func (h *Handler) budgetStats(c *gin.Context) {
	year, ok := paramInt(c, "year")
	if !ok {
		h.badRequest(c, "invalid fiscal year")
		return
	}
	log := h.log(c, "budgetStats").WithField("fiscal_year", year)

	stats, err := h.services.Budget.Stats(c.Request.Context(), year)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Add budget line item
// @Tags Budget
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param year path int true "Fiscal year"
// @Param item body BudgetLineItemRequest true "Line item"
// @Success 201 {object} models.Budget
// @Router /budgets/{year}/items [post]
func (h *Handler) addBudgetLineItem(c *gin.Context) {
	year, ok := paramInt(c, "year")
	if !ok {
		h.badRequest(c, "invalid fiscal year")
		return
	}
	log := h.log(c, "addBudgetLineItem").WithField("fiscal_year", year)

	var input BudgetLineItemRequest
	if !h.bind(c, log, &input) {
		return
	}

	budget, err := h.services.Budget.AddLineItem(c.Request.Context(), year, DTOToBudgetLineItem(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, budget)
}

// @Summary Update budget line item
// @Tags Budget
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param year path int true "Fiscal year"
// @Param itemId path string true "Line item ID"
// @Param item body UpdateBudgetLineItemRequest true "Line item update"
// @Success 200 {object} models.Budget
// @Router /budgets/{year}/items/{itemId} [put]
func (h *Handler) updateBudgetLineItem(c *gin.Context) {
	year, ok := paramInt(c, "year")
	if !ok {
		h.badRequest(c, "invalid fiscal year")
		return
	}
	itemID := c.Param("itemId")
	log := h.log(c, "updateBudgetLineItem").WithField("fiscal_year", year).WithField("item_id", itemID)

	var input UpdateBudgetLineItemRequest
	if !h.bind(c, log, &input) {
		return
	}

	budget, err := h.services.Budget.UpdateLineItem(c.Request.Context(), year, itemID, DTOToBudgetLineItemPatch(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

// @Summary Delete budget line item
// @Tags Budget
// @Produce json
// @Security ApiKeyAuth
// @Param year path int true "Fiscal year"
// @Param itemId path string true "Line item ID"
// @Success 200 {object} models.Budget
// @Router /budgets/{year}/items/{itemId} [delete]
func (h *Handler) deleteBudgetLineItem(c *gin.Context) {
	year, ok := paramInt(c, "year")
	if !ok {
		h.badRequest(c, "invalid fiscal year")
		return
	}
	itemID := c.Param("itemId")
	log := h.log(c, "deleteBudgetLineItem").WithField("fiscal_year", year).WithField("item_id", itemID)

	budget, err := h.services.Budget.DeleteLineItem(c.Request.Context(), year, itemID)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

// @Summary Record an expense
// @Description Adds the amount to the line item actuals; budget totals are recomputed.
// @Tags Budget
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param year path int true "Fiscal year"
// @Param itemId path string true "Line item ID"
// @Param expense body ExpenseRequest true "Expense"
// @Success 200 {object} models.Budget
// @Router /budgets/{year}/items/{itemId}/expenses [post]
func (h *Handler) recordExpense(c *gin.Context) {
	year, ok := paramInt(c, "year")
	if !ok {
		h.badRequest(c, "invalid fiscal year")
		return
	}
	itemID := c.Param("itemId")
	log := h.log(c, "recordExpense").WithField("fiscal_year", year).WithField("item_id", itemID)

	var input ExpenseRequest
	if !h.bind(c, log, &input) {
		return
	}

	budget, err := h.services.Budget.RecordExpense(c.Request.Context(), year, itemID, input.Amount)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}
