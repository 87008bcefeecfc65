package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fire_ops_system/internal/models"
)

// @Summary Register a citizen
// @Description Registration by department staff; links the citizen to their properties.
// @Tags Citizens
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param citizen body CitizenRequest true "Citizen"
// @Success 201 {object} models.Citizen
// @Router /citizens [post]
func (h *Handler) createCitizen(c *gin.Context) {
	var input CitizenRequest
	log := h.log(c, "createCitizen")

	if !h.bind(c, log, &input) {
		return
	}

	created, err := h.services.Portal.CreateCitizen(c.Request.Context(), DTOToCitizen(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Get citizen profile
// @Tags Portal
// @Produce json
// @Param id path string true "Citizen ID"
// @Success 200 {object} models.Citizen
// @Failure 404 {object} map[string]string "Citizen not found"
// @Router /portal/citizens/{id} [get]
func (h *Handler) getCitizen(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "getCitizen").WithField("id", id)

	citizen, err := h.services.Portal.GetCitizen(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, citizen)
}

// @Summary Fire dues of a citizen
// @Description Dues of every property linked to the citizen.
// @Tags Portal
// @Produce json
// @Param id path string true "Citizen ID"
// @Success 200 {array} models.FireDueWithDetails
// @Router /portal/citizens/{id}/dues [get]
func (h *Handler) citizenDues(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "citizenDues").WithField("id", id)

	dues, err := h.services.Portal.CitizenDues(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, dues)
}

// @Summary Forgiveness requests of a citizen
// @Tags Portal
// @Produce json
// @Param id path string true "Citizen ID"
// @Success 200 {array} models.BillForgivenessRequest
// @Router /portal/citizens/{id}/forgiveness-requests [get]
func (h *Handler) citizenForgivenessRequests(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "citizenForgivenessRequests").WithField("id", id)

	requests, err := h.services.Portal.ListForgivenessRequests(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// @Summary Submit a forgiveness request
// @Tags Portal
// @Accept json
// @Produce json
// @Param id path string true "Citizen ID"
// @Param request body ForgivenessRequest true "Forgiveness request"
// @Success 201 {object} models.BillForgivenessRequest
// @Failure 409 {object} map[string]string "A pending request already exists"
// @Router /portal/citizens/{id}/forgiveness-requests [post]
func (h *Handler) submitForgivenessRequest(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "submitForgivenessRequest").WithField("id", id)

	var input ForgivenessRequest
	if !h.bind(c, log, &input) {
		return
	}

	created, err := h.services.Portal.SubmitForgivenessRequest(c.Request.Context(), models.BillForgivenessRequest{
		CitizenID: id,
		FireDueID: input.FireDueID,
		Reason:    input.Reason,
	})
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary List citizens
// @Tags Citizens
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Citizen
// @Router /citizens [get]
func (h *Handler) listCitizens(c *gin.Context) {
	log := h.log(c, "listCitizens")

	citizens, err := h.services.Portal.ListCitizens(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, citizens)
}

// @Summary Pending forgiveness requests
// @Tags Citizens
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.ForgivenessRequestWithDetails
// @Router /forgiveness-requests/pending [get]
func (h *Handler) pendingForgivenessRequests(c *gin.Context) {
	log := h.log(c, "pendingForgivenessRequests")

	requests, err := h.services.Portal.PendingForgivenessRequests(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// @Summary Resolve a forgiveness request
// @Description Approving a request marks the fire due as paid.
// @Tags Citizens
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Request ID"
// @Param decision body ResolveForgivenessRequest true "Decision"
// @Success 200 {object} models.BillForgivenessRequest
// @Failure 409 {object} map[string]string "Request already resolved"
// @Router /forgiveness-requests/{id}/resolve [post]
func (h *Handler) resolveForgivenessRequest(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "resolveForgivenessRequest").WithField("id", id)

	var input ResolveForgivenessRequest
	if !h.bind(c, log, &input) {
		return
	}

	resolved, err := h.services.Portal.ResolveForgivenessRequest(c.Request.Context(), id, *input.Approve)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, resolved)
}
