package api

import (
	"errors"
	"net/http"

	reqdto "campusbook/internal/handler/dto/request"
	resdto "campusbook/internal/handler/dto/response"
	"campusbook/internal/usecase/commands"
	"campusbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResourceHandler struct {
	resourceCommands commands.ResourceCommands
	resourceQueries  queries.ResourceQueries
}

func NewResourceHandler(resourceCommands commands.ResourceCommands, resourceQueries queries.ResourceQueries) *ResourceHandler {
	return &ResourceHandler{
		resourceCommands: resourceCommands,
		resourceQueries:  resourceQueries,
	}
}

// @Summary Create resource
// @Description Register a new bookable resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateResourceRequest true "Resource request"
// @Success 201 {object} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /resources [post]
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	var req reqdto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	details, err := req.DecodeDetails()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource kind or details",
		})
		return
	}

	view, err := h.resourceCommands.Create(c.Request.Context(), commands.CreateResourceParams{
		Name:        req.Name,
		Kind:        req.Kind,
		Description: req.Description,
		Capacity:    req.Capacity,
		Details:     details,
	})
	if err != nil {
		h.respondResourceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromResourceView(view))
}

// @Summary Update resource
// @Description Update name, description, capacity or active flag of a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.UpdateResourceRequest true "Fields to update"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id} [patch]
func (h *ResourceHandler) UpdateResource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	var req reqdto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.resourceCommands.Update(c.Request.Context(), id, commands.UpdateResourceParams{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.respondResourceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

// @Summary Delete resource
// @Description Delete a resource together with all its bookings
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id} [delete]
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	if err := h.resourceCommands.Delete(c.Request.Context(), id); err != nil {
		h.respondResourceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get resource
// @Description Get resource by ID
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id} [get]
func (h *ResourceHandler) GetResource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	view, err := h.resourceQueries.GetResource(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resource not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

// @Summary List resources
// @Description List active resources with optional kind filter and name search
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param type query string false "Filter by resource type"
// @Param search query string false "Case-insensitive name/description search"
// @Success 200 {array} resdto.ResourceResponse
// @Failure 401 {object} map[string]string
// @Router /resources [get]
func (h *ResourceHandler) ListResources(c *gin.Context) {
	var filter queries.ResourceFilter
	if kind := c.Query("type"); kind != "" {
		filter.Kind = &kind
	}
	if search := c.Query("search"); search != "" {
		filter.Search = &search
	}

	views, err := h.resourceQueries.ListResources(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}

func (h *ResourceHandler) respondResourceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Resource not found",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource data",
		})
	case errors.Is(err, commands.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Service temporarily unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
