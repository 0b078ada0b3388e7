package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/domains/team"
	"labsite-backend/internal/shared/response"
)

// TeamHandler handles HTTP requests for the team domain.
type TeamHandler struct {
	service team.Service
}

func NewTeamHandler(service team.Service) *TeamHandler {
	return &TeamHandler{service: service}
}

// ListMembers handles GET /team-members
func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, members)
}

// GetMember handles GET /team-members/:id
func (h *TeamHandler) GetMember(c *gin.Context) {
	member, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, member)
}

// CreateMember handles POST /team-members
func (h *TeamHandler) CreateMember(c *gin.Context) {
	var req team.CreateRequest
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

// UpdateMember handles PUT /team-members/:id
func (h *TeamHandler) UpdateMember(c *gin.Context) {
	var req team.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// DeleteMember handles DELETE /team-members/:id
func (h *TeamHandler) DeleteMember(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Team member deleted successfully")
}
