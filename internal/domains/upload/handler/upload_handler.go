package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/infrastructure/storage"
	"labsite-backend/internal/shared/apperrors"
	"labsite-backend/internal/shared/response"
	"labsite-backend/internal/shared/utils"
)

// 20 MB, enough for thesis PDFs.
const maxUploadSize = 20 << 20

// UploadHandler receives multipart files and hands them to the asset
// store. Records only ever reference the resulting URL.
type UploadHandler struct {
	storage *storage.MinIOStorage
}

func NewUploadHandler(storage *storage.MinIOStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// UploadFile handles POST /uploads. Expects a multipart form with
// "file" and an optional "folder" prefix.
func (h *UploadHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.BadRequest(c, fmt.Sprintf("file exceeds the %d MB limit", maxUploadSize>>20))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.FromError(c, apperrors.NewUploadFailed(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.FromError(c, apperrors.NewUploadFailed(err))
		return
	}

	folder := sanitizeFolder(c.PostForm("folder"))
	key := fmt.Sprintf("%s/%d-%s", folder, time.Now().UnixNano(), safeFilename(fileHeader.Filename))

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.storage.Upload(c.Request.Context(), key, data, contentType)
	if err != nil {
		response.FromError(c, apperrors.NewUploadFailed(err))
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"url":    url,
		"format": strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."),
		"size":   fileHeader.Size,
	})
}

func sanitizeFolder(folder string) string {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		return "uploads"
	}
	if slug, err := utils.GenerateSlug(folder); err == nil {
		return slug
	}
	return "uploads"
}

// safeFilename keeps the extension but slugs the base name so object
// keys stay URL-safe.
func safeFilename(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	slug, err := utils.GenerateSlug(base)
	if err != nil {
		slug = "file"
	}
	return slug + ext
}
