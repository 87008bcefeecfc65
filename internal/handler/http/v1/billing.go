package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fire_ops_system/internal/models"
)

// @Summary List invoices
// @Tags Billing
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Status"
// @Param incident_id query string false "Incident ID"
// @Param property_id query string false "Property ID"
// @Success 200 {array} models.Invoice
// @Router /invoices [get]
func (h *Handler) listInvoices(c *gin.Context) {
	log := h.log(c, "listInvoices")

	invoices, err := h.services.Billing.ListInvoices(c.Request.Context(), models.InvoiceFilter{
		Status:     c.Query("status"),
		IncidentID: c.Query("incident_id"),
		PropertyID: c.Query("property_id"),
	})
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// @Summary Get invoice by ID
// @Tags Billing
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.Invoice
// @Failure 404 {object} map[string]string "Invoice not found"
// @Router /invoices/{id} [get]
func (h *Handler) getInvoice(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "getInvoice").WithField("id", id)

	inv, err := h.services.Billing.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// @Summary List billable incidents
// @Description Incidents of a billable type that have no invoice yet.
// @Tags Billing
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Incident
// @Router /invoices/billable-incidents [get]
func (h *Handler) listBillableIncidents(c *gin.Context) {
	log := h.log(c, "listBillableIncidents")

	incidents, err := h.services.Billing.ListBillableIncidents(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// @Summary Generate an invoice for an incident
// @Tags Billing
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body GenerateInvoiceRequest true "Incident"
// @Success 201 {object} models.Invoice
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident type is not billable"
// @Router /invoices [post]
func (h *Handler) generateInvoice(c *gin.Context) {
	var input GenerateInvoiceRequest
	log := h.log(c, "generateInvoice")

	if !h.bind(c, log, &input) {
		return
	}

	inv, err := h.services.Billing.GenerateInvoice(c.Request.Context(), input.IncidentID)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// @Summary Change invoice status
// @Tags Billing
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Invoice ID"
// @Param request body InvoiceStatusRequest true "New status"
// @Success 200 {object} models.Invoice
// @Router /invoices/{id}/status [put]
func (h *Handler) updateInvoiceStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "updateInvoiceStatus").WithField("id", id)

	var input InvoiceStatusRequest
	if !h.bind(c, log, &input) {
		return
	}

	inv, err := h.services.Billing.UpdateInvoiceStatus(c.Request.Context(), id, input.Status, timeOrZero(input.PaidAt))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// @Summary Delete invoice
// @Tags Billing
// @Security ApiKeyAuth
// @Param id path string true "Invoice ID"
// @Success 204 "No Content"
// @Router /invoices/{id} [delete]
func (h *Handler) deleteInvoice(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "deleteInvoice").WithField("id", id)

	if err := h.services.Billing.DeleteInvoice(c.Request.Context(), id); err != nil {
		h.fail(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Financial dashboard
// @Description Budget, fire dues and invoice revenue for the current year.
// @Tags Billing
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.FinancialDashboard
// @Router /financials [get]
func (h *Handler) financialDashboard(c *gin.Context) {
	log := h.log(c, "financialDashboard")

	dashboard, err := h.services.Billing.FinancialDashboard(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
