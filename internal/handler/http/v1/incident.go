package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fire_ops_system/internal/models"
)

// @Summary Create a new incident
// @Description Create an NFIRS incident report. The incident number is assigned when omitted. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} models.Incident
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Incident number already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.log(c, "createIncident")

	if !h.bind(c, log, &input) {
		return
	}

	created, err := h.services.Incidents.CreateIncident(c.Request.Context(), DTOToIncidentModel(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Get a list of incidents
// @Description List incidents, newest first. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param type query string false "Incident type"
// @Param status query string false "Incident status"
// @Param search query string false "Search by number or address"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {array} models.Incident
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.log(c, "listIncidents")

	from, err := parseDate(c.Query("from"))
	if err != nil {
		h.badRequest(c, "invalid from date")
		return
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		h.badRequest(c, "invalid to date")
		return
	}

	incidents, err := h.services.Incidents.ListIncidents(c.Request.Context(), models.IncidentFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Search: c.Query("search"),
		From:   from,
		To:     to,
	})
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} models.Incident
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "getIncident").WithField("id", id)

	incident, err := h.services.Incidents.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary Update an existing incident
// @Description Partially update an incident. Locked incidents cannot be changed. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 {object} models.Incident
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident is locked"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
	if !h.bind(c, log, &input) {
		return
	}

	updated, err := h.services.Incidents.UpdateIncident(c.Request.Context(), id, DTOToIncidentPatch(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Lock an incident
// @Description Lock the incident report. A locked report is read-only. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} models.Incident
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident is already locked"
// @Router /incidents/{id}/lock [post]
func (h *Handler) lockIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "lockIncident").WithField("id", id)

	locked, err := h.services.Incidents.LockIncident(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, locked)
}

// @Summary Delete an incident
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "deleteIncident").WithField("id", id)

	if err := h.services.Incidents.DeleteIncident(c.Request.Context(), id); err != nil {
		h.fail(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get incident analytics
// @Description Counts by type, month and status. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.IncidentAnalytics
// @Router /incidents/analytics [get]
func (h *Handler) incidentAnalytics(c *gin.Context) {
	log := h.log(c, "incidentAnalytics")

	stats, err := h.services.Incidents.GetAnalytics(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
