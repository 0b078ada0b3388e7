package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/domains/initiative"
	"labsite-backend/internal/shared/response"
)

// InitiativeHandler handles HTTP requests for the initiative domain.
type InitiativeHandler struct {
	service initiative.Service
}

func NewInitiativeHandler(service initiative.Service) *InitiativeHandler {
	return &InitiativeHandler{service: service}
}

// ListInitiatives handles GET /initiatives
func (h *InitiativeHandler) ListInitiatives(c *gin.Context) {
	initiatives, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, initiatives)
}

// GetInitiative handles GET /initiatives/:idOrSlug
func (h *InitiativeHandler) GetInitiative(c *gin.Context) {
	i, err := h.service.Get(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, i)
}

// CreateInitiative handles POST /initiatives
func (h *InitiativeHandler) CreateInitiative(c *gin.Context) {
	var req initiative.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// UpdateInitiative handles PUT /initiatives/:idOrSlug
func (h *InitiativeHandler) UpdateInitiative(c *gin.Context) {
	var req initiative.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("idOrSlug"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// DeleteInitiative handles DELETE /initiatives/:idOrSlug
func (h *InitiativeHandler) DeleteInitiative(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("idOrSlug")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Initiative deleted successfully")
}
