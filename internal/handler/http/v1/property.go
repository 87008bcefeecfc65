package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fire_ops_system/internal/models"
)

// @Summary List owners
// @Tags Owners
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "Search by name, email or phone"
// @Success 200 {array} models.Owner
// @Router /owners [get]
func (h *Handler) listOwners(c *gin.Context) {
	log := h.log(c, "listOwners")

	owners, err := h.services.Property.ListOwners(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, owners)
}

// @Summary Get owner by ID
// @Tags Owners
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Owner ID"
// @Success 200 {object} models.Owner
// @Failure 404 {object} map[string]string "Owner not found"
// @Router /owners/{id} [get]
func (h *Handler) getOwner(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "getOwner").WithField("id", id)

	owner, err := h.services.Property.GetOwner(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, owner)
}

// @Summary Create owner
// @Tags Owners
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param owner body OwnerRequest true "Owner"
// @Success 201 {object} models.Owner
// @Router /owners [post]
func (h *Handler) createOwner(c *gin.Context) {
	var input OwnerRequest
	log := h.log(c, "createOwner")

	if !h.bind(c, log, &input) {
		return
	}

	created, err := h.services.Property.CreateOwner(c.Request.Context(), DTOToOwner(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update owner
// @Tags Owners
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Owner ID"
// @Param owner body UpdateOwnerRequest true "Owner update"
// @Success 200 {object} models.Owner
// @Router /owners/{id} [put]
func (h *Handler) updateOwner(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "updateOwner").WithField("id", id)

	var input UpdateOwnerRequest
	if !h.bind(c, log, &input) {
		return
	}

	updated, err := h.services.Property.UpdateOwner(c.Request.Context(), id, DTOToOwnerPatch(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete owner
// @Tags Owners
// @Security ApiKeyAuth
// @Param id path string true "Owner ID"
// @Success 204 "No Content"
// @Router /owners/{id} [delete]
func (h *Handler) deleteOwner(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "deleteOwner").WithField("id", id)

	if err := h.services.Property.DeleteOwner(c.Request.Context(), id); err != nil {
		h.fail(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List properties with owners
// @Tags Properties
// @Produce json
// @Security ApiKeyAuth
// @Param occupancy_type query string false "Occupancy type"
// @Param has_pip query bool false "Only properties with (or without) a pre-incident plan"
// @Param search query string false "Search by address or parcel id"
// @Success 200 {array} models.PropertyWithOwners
// @Router /properties [get]
func (h *Handler) listProperties(c *gin.Context) {
	log := h.log(c, "listProperties")

	filter := models.PropertyFilter{
		OccupancyType: c.Query("occupancy_type"),
		Search:        c.Query("search"),
	}
	if raw := c.Query("has_pip"); raw != "" {
		hasPIP, err := strconv.ParseBool(raw)
		if err != nil {
			h.badRequest(c, "invalid has_pip")
			return
		}
		filter.HasPIP = &hasPIP
	}

	properties, err := h.services.Property.ListProperties(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// @Summary Get property by ID
// @Tags Properties
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Property ID"
// @Success 200 {object} models.Property
// @Failure 404 {object} map[string]string "Property not found"
// @Router /properties/{id} [get]
func (h *Handler) getProperty(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "getProperty").WithField("id", id)

	p, err := h.services.Property.GetProperty(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Create property
// @Tags Properties
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param property body PropertyRequest true "Property"
// @Success 201 {object} models.Property
// @Failure 409 {object} map[string]string "Parcel id already exists"
// @Router /properties [post]
func (h *Handler) createProperty(c *gin.Context) {
	var input PropertyRequest
	log := h.log(c, "createProperty")

	if !h.bind(c, log, &input) {
		return
	}

	created, err := h.services.Property.CreateProperty(c.Request.Context(), DTOToProperty(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update property
// @Tags Properties
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Property ID"
// @Param property body UpdatePropertyRequest true "Property update"
// @Success 200 {object} models.Property
// @Router /properties/{id} [put]
func (h *Handler) updateProperty(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "updateProperty").WithField("id", id)

	var input UpdatePropertyRequest
	if !h.bind(c, log, &input) {
		return
	}

	updated, err := h.services.Property.UpdateProperty(c.Request.Context(), id, DTOToPropertyPatch(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete property
// @Tags Properties
// @Security ApiKeyAuth
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Router /properties/{id} [delete]
func (h *Handler) deleteProperty(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "deleteProperty").WithField("id", id)

	if err := h.services.Property.DeleteProperty(c.Request.Context(), id); err != nil {
		h.fail(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set pre-incident plan
// @Tags Properties
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Property ID"
// @Param plan body PreIncidentPlanRequest true "Pre-incident plan"
// @Success 200 {object} models.Property
// @Router /properties/{id}/pre-incident-plan [put]
func (h *Handler) setPreIncidentPlan(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "setPreIncidentPlan").WithField("id", id)

	var input PreIncidentPlanRequest
	if !h.bind(c, log, &input) {
		return
	}

	updated, err := h.services.Property.SetPreIncidentPlan(c.Request.Context(), id, DTOToPreIncidentPlan(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Remove pre-incident plan
// @Tags Properties
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Property ID"
// @Success 200 {object} models.Property
// @Router /properties/{id}/pre-incident-plan [delete]
func (h *Handler) removePreIncidentPlan(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "removePreIncidentPlan").WithField("id", id)

	updated, err := h.services.Property.RemovePreIncidentPlan(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
