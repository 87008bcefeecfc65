package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fire_ops_system/internal/models"
)

// @Summary List assets
// @Tags Assets
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Status"
// @Param category query string false "Category"
// @Param assigned_to_id query string false "Apparatus or personnel ID"
// @Param parent_id query string false "Parent asset ID"
// @Param search query string false "Search by name or serial number"
// @Success 200 {array} models.Asset
// @Router /assets [get]
func (h *Handler) listAssets(c *gin.Context) {
	log := h.log(c, "listAssets")

	assets, err := h.services.Assets.ListAssets(c.Request.Context(), models.AssetFilter{
		Status:       c.Query("status"),
		Category:     c.Query("category"),
		AssignedToID: c.Query("assigned_to_id"),
		ParentID:     c.Query("parent_id"),
		Search:       c.Query("search"),
	})
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

// @Summary Get asset by ID
// @Tags Assets
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Asset ID"
// @Success 200 {object} models.Asset
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /assets/{id} [get]
func (h *Handler) getAsset(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "getAsset").WithField("id", id)

	asset, err := h.services.Assets.GetAsset(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// @Summary List kit components
// @Tags Assets
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Parent asset ID"
// @Success 200 {array} models.Asset
// @Router /assets/{id}/components [get]
func (h *Handler) listComponents(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "listComponents").WithField("id", id)

	components, err := h.services.Assets.ListComponents(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, components)
}

// @Summary Create asset
// @Tags Assets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param asset body CreateAssetRequest true "Asset"
// @Success 201 {object} models.Asset
// @Failure 409 {object} map[string]string "Serial number already exists"
// @Failure 422 {object} map[string]string "Invalid parent asset"
// @Router /assets [post]
func (h *Handler) createAsset(c *gin.Context) {
	var input CreateAssetRequest
	log := h.log(c, "createAsset")

	if !h.bind(c, log, &input) {
		return
	}

	created, err := h.services.Assets.CreateAsset(c.Request.Context(), DTOToAsset(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update asset
// @Tags Assets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Asset ID"
// @Param asset body UpdateAssetRequest true "Asset update"
// @Success 200 {object} models.Asset
// @Router /assets/{id} [put]
func (h *Handler) updateAsset(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "updateAsset").WithField("id", id)

	var input UpdateAssetRequest
	if !h.bind(c, log, &input) {
		return
	}

	updated, err := h.services.Assets.UpdateAsset(c.Request.Context(), id, DTOToAssetPatch(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete asset
// @Description Components of a deleted kit become standalone assets.
// @Tags Assets
// @Security ApiKeyAuth
// @Param id path string true "Asset ID"
// @Success 204 "No Content"
// @Router /assets/{id} [delete]
func (h *Handler) deleteAsset(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "deleteAsset").WithField("id", id)

	if err := h.services.Assets.DeleteAsset(c.Request.Context(), id); err != nil {
		h.fail(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Assign asset
// @Description Assign an asset to an apparatus or a staff member; an empty target_id clears the assignment.
// @Tags Assets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Asset ID"
// @Param assignment body AssignAssetRequest true "Assignment target"
// @Success 200 {object} models.Asset
// @Router /assets/{id}/assign [post]
func (h *Handler) assignAsset(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "assignAsset").WithField("id", id)

	var input AssignAssetRequest
	if !h.bind(c, log, &input) {
		return
	}

	updated, err := h.services.Assets.AssignAsset(c.Request.Context(), id, input.TargetType, input.TargetID)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
