package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/domains/partner"
	"labsite-backend/internal/shared/response"
)

// PartnerHandler handles HTTP requests for the partner domain.
type PartnerHandler struct {
	service partner.Service
}

func NewPartnerHandler(service partner.Service) *PartnerHandler {
	return &PartnerHandler{service: service}
}

// ListPartners handles GET /partners
func (h *PartnerHandler) ListPartners(c *gin.Context) {
	partners, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, partners)
}

// GetPartner handles GET /partners/:idOrSlug
func (h *PartnerHandler) GetPartner(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// CreatePartner handles POST /partners
func (h *PartnerHandler) CreatePartner(c *gin.Context) {
	var req partner.CreateRequest
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

// UpdatePartner handles PUT /partners/:idOrSlug
func (h *PartnerHandler) UpdatePartner(c *gin.Context) {
	var req partner.UpdateRequest
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

// DeletePartner handles DELETE /partners/:idOrSlug
func (h *PartnerHandler) DeletePartner(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("idOrSlug")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Partner deleted successfully")
}
