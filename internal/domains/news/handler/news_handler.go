package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/domains/news"
	"labsite-backend/internal/shared/response"
)

// NewsHandler handles HTTP requests for the news domain.
type NewsHandler struct {
	service news.Service
}

func NewNewsHandler(service news.Service) *NewsHandler {
	return &NewsHandler{service: service}
}

// ListNews handles GET /news
func (h *NewsHandler) ListNews(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, items)
}

// GetNews handles GET /news/:idOrSlug
func (h *NewsHandler) GetNews(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// CreateNews handles POST /news
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req news.CreateRequest
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

// UpdateNews handles PUT /news/:idOrSlug
func (h *NewsHandler) UpdateNews(c *gin.Context) {
	var req news.UpdateRequest
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

// DeleteNews handles DELETE /news/:idOrSlug
func (h *NewsHandler) DeleteNews(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("idOrSlug")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "News item deleted successfully")
}
