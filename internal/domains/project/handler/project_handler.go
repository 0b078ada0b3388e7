package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/domains/project"
	"labsite-backend/internal/shared/response"
)

// ProjectHandler handles HTTP requests for the project domain.
type ProjectHandler struct {
	service project.Service
}

func NewProjectHandler(service project.Service) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, projects)
}

// GetProject handles GET /projects/:idOrSlug
func (h *ProjectHandler) GetProject(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// CreateProject handles POST /projects. Accepts a JSON body or a
// multipart form; both are normalized into project.Input before the
// intake validator ever sees them.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// UpdateProject handles PUT /projects/:idOrSlug. Accepts a JSON body
// or a multipart form like CreateProject; a form field that is absent
// keeps the stored value.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	in, err := bindUpdateInput(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("idOrSlug"), in)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// DeleteProject handles DELETE /projects/:idOrSlug
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("idOrSlug")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Project deleted successfully")
}

// bindInput maps the incoming payload into the one normalized input
// shape, whatever container it arrived in.
func bindInput(c *gin.Context) (*project.Input, error) {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return inputFromForm(c)
	}

	var in project.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		return nil, err
	}

	return &in, nil
}

// bindUpdateInput is the partial-payload counterpart of bindInput.
func bindUpdateInput(c *gin.Context) (*project.UpdateInput, error) {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return updateInputFromForm(c)
	}

	var in project.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		return nil, err
	}

	return &in, nil
}
