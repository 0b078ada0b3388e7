package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labsite-backend/internal/domains/project"
)

// stubService records the last payload each operation received.
type stubService struct {
	lastInput       *project.Input
	lastUpdateInput *project.UpdateInput
	lastIDOrSlug    string
}

func (s *stubService) List(ctx context.Context) ([]*project.Project, error) {
	return nil, nil
}

func (s *stubService) Get(ctx context.Context, idOrSlug string) (*project.Project, error) {
	return &project.Project{}, nil
}

func (s *stubService) Create(ctx context.Context, in *project.Input) (*project.Project, error) {
	s.lastInput = in
	return &project.Project{}, nil
}

func (s *stubService) Update(ctx context.Context, idOrSlug string, in *project.UpdateInput) (*project.Project, error) {
	s.lastIDOrSlug = idOrSlug
	s.lastUpdateInput = in
	return &project.Project{}, nil
}

func (s *stubService) Delete(ctx context.Context, idOrSlug string) error {
	return nil
}

func newTestRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProjectHandler(svc)

	router := gin.New()
	router.POST("/projects", h.CreateProject)
	router.PUT("/projects/:idOrSlug", h.UpdateProject)
	return router
}

func multipartBody(t *testing.T, fields map[string][]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for field, values := range fields {
		for _, value := range values {
			require.NoError(t, writer.WriteField(field, value))
		}
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestCreateProjectBindsMultipartForm(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	body, contentType := multipartBody(t, map[string][]string{
		"title":       {"Graph Mining at Scale"},
		"description": {"A study."},
		"category":    {"master"},
		"keywords":    {"graphs, mining"},
		"authors":     {"Ana", "Bruno"},
		"year":        {"2023"},
	})

	req := httptest.NewRequest(http.MethodPost, "/projects", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.lastInput)
	assert.Equal(t, "Graph Mining at Scale", svc.lastInput.Title)
	assert.Equal(t, []string{"graphs", "mining"}, svc.lastInput.Keywords)
	assert.Equal(t, []string{"Ana", "Bruno"}, svc.lastInput.Authors)
	require.NotNil(t, svc.lastInput.Year)
	assert.Equal(t, 2023, *svc.lastInput.Year)
}

func TestUpdateProjectBindsMultipartForm(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	body, contentType := multipartBody(t, map[string][]string{
		"title": {"Renamed Project"},
	})

	req := httptest.NewRequest(http.MethodPut, "/projects/some-slug", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "some-slug", svc.lastIDOrSlug)
	require.NotNil(t, svc.lastUpdateInput)

	// Only the submitted field is provided; everything else keeps the
	// stored value during the merge.
	require.NotNil(t, svc.lastUpdateInput.Title)
	assert.Equal(t, "Renamed Project", *svc.lastUpdateInput.Title)
	assert.Nil(t, svc.lastUpdateInput.Description)
	assert.Nil(t, svc.lastUpdateInput.Category)
	assert.Nil(t, svc.lastUpdateInput.Keywords)
	assert.Nil(t, svc.lastUpdateInput.Authors)
	assert.Nil(t, svc.lastUpdateInput.Year)
	assert.Nil(t, svc.lastUpdateInput.Website)
}

func TestUpdateProjectBindsMultipartCollectionsAndYear(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	body, contentType := multipartBody(t, map[string][]string{
		"keywords": {"ml, systems"},
		"year":     {"2021"},
	})

	req := httptest.NewRequest(http.MethodPut, "/projects/some-slug", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastUpdateInput)
	require.NotNil(t, svc.lastUpdateInput.Keywords)
	assert.Equal(t, []string{"ml", "systems"}, *svc.lastUpdateInput.Keywords)
	require.NotNil(t, svc.lastUpdateInput.Year)
	assert.Equal(t, 2021, *svc.lastUpdateInput.Year)
}

func TestUpdateProjectRejectsNonNumericYearInForm(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	body, contentType := multipartBody(t, map[string][]string{
		"year": {"twenty-twenty"},
	})

	req := httptest.NewRequest(http.MethodPut, "/projects/some-slug", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastUpdateInput)
}

func TestUpdateProjectStillBindsJSON(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	payload, err := json.Marshal(map[string]interface{}{"title": "From JSON"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/projects/some-slug", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastUpdateInput)
	require.NotNil(t, svc.lastUpdateInput.Title)
	assert.Equal(t, "From JSON", *svc.lastUpdateInput.Title)
}
