package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fire_ops_system/internal/models"
)

// @Summary List fire dues
// @Tags FireDues
// @Produce json
// @Security ApiKeyAuth
// @Param year query int false "Year"
// @Param status query string false "Status"
// @Param property_id query string false "Property ID"
// @Success 200 {array} models.FireDue
// @Router /fire-dues [get]
func (h *Handler) listFireDues(c *gin.Context) {
	log := h.log(c, "listFireDues")

	year, err := queryInt(c, "year", 0)
	if err != nil {
		h.badRequest(c, "invalid year")
		return
	}

	dues, err := h.services.FireDues.ListFireDues(c.Request.Context(), models.FireDueFilter{
		Year:       year,
		Status:     c.Query("status"),
		PropertyID: c.Query("property_id"),
	})
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, dues)
}

// @Summary List fire dues with property details
// @Description Each due carries the property address, parcel id and first owner name ("N/A" when missing).
// @Tags FireDues
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.FireDueWithDetails
// @Router /fire-dues/details [get]
func (h *Handler) listFireDuesWithDetails(c *gin.Context) {
	log := h.log(c, "listFireDuesWithDetails")

	dues, err := h.services.FireDues.ListFireDuesWithDetails(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, dues)
}

// @Summary Fire dues summary
// @Description Totals and collection rate for the current year.
// @Tags FireDues
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.FireDuesSummary
// @Router /fire-dues/summary [get]
func (h *Handler) fireDuesSummary(c *gin.Context) {
	log := h.log(c, "fireDuesSummary")

	summary, err := h.services.FireDues.Summary(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Get fire due by ID
// @Tags FireDues
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Fire due ID"
// @Success 200 {object} models.FireDue
// @Failure 404 {object} map[string]string "Fire due not found"
// @Router /fire-dues/{id} [get]
func (h *Handler) getFireDue(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "getFireDue").WithField("id", id)

	due, err := h.services.FireDues.GetFireDue(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, due)
}

// @Summary Create fire due
// @Tags FireDues
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param due body FireDueRequest true "Fire due"
// @Success 201 {object} models.FireDue
// @Router /fire-dues [post]
func (h *Handler) createFireDue(c *gin.Context) {
	var input FireDueRequest
	log := h.log(c, "createFireDue")

	if !h.bind(c, log, &input) {
		return
	}

	created, err := h.services.FireDues.CreateFireDue(c.Request.Context(), DTOToFireDue(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update fire due
// @Tags FireDues
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Fire due ID"
// @Param due body UpdateFireDueRequest true "Fire due update"
// @Success 200 {object} models.FireDue
// @Router /fire-dues/{id} [put]
func (h *Handler) updateFireDue(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "updateFireDue").WithField("id", id)

	var input UpdateFireDueRequest
	if !h.bind(c, log, &input) {
		return
	}

	updated, err := h.services.FireDues.UpdateFireDue(c.Request.Context(), id, DTOToFireDuePatch(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete fire due
// @Tags FireDues
// @Security ApiKeyAuth
// @Param id path string true "Fire due ID"
// @Success 204 "No Content"
// @Router /fire-dues/{id} [delete]
func (h *Handler) deleteFireDue(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "deleteFireDue").WithField("id", id)

	if err := h.services.FireDues.DeleteFireDue(c.Request.Context(), id); err != nil {
		h.fail(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark fire due paid
// @Tags FireDues
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Fire due ID"
// @Param payment body PaymentRequest false "Payment date, defaults to now"
// @Success 200 {object} models.FireDue
// @Router /fire-dues/{id}/pay [post]
func (h *Handler) payFireDue(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "payFireDue").WithField("id", id)

	var input PaymentRequest
	if c.Request.ContentLength > 0 && !h.bind(c, log, &input) {
		return
	}

	paid, err := h.services.FireDues.MarkPaid(c.Request.Context(), id, timeOrZero(input.PaidAt))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, paid)
}

// @Summary Mark several fire dues paid
// @Description Unknown ids are returned in "missing" and do not fail the request.
// @Tags FireDues
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param payment body BulkPaymentRequest true "Fire due ids"
// @Success 200 {object} models.BulkPaymentResult
// @Router /fire-dues/bulk-pay [post]
func (h *Handler) bulkPayFireDues(c *gin.Context) {
	var input BulkPaymentRequest
	log := h.log(c, "bulkPayFireDues")

	if !h.bind(c, log, &input) {
		return
	}

	result, err := h.services.FireDues.BulkMarkPaid(c.Request.Context(), input.IDs, timeOrZero(input.PaidAt))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Generate annual fire dues
// @Description Creates an unpaid due for every property that has none for the year.
// @Tags FireDues
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body GenerateDuesRequest true "Year and amount"
// @Success 201 {array} models.FireDue
// @Router /fire-dues/generate [post]
func (h *Handler) generateFireDues(c *gin.Context) {
	var input GenerateDuesRequest
	log := h.log(c, "generateFireDues")

	if !h.bind(c, log, &input) {
		return
	}

	created, err := h.services.FireDues.GenerateAnnualDues(c.Request.Context(), input.Year, input.Amount)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
