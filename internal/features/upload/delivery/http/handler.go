package http

import (
	"net/http"

	"current-backend/internal/common/middleware"
	"current-backend/internal/features/upload/models"
	"current-backend/internal/features/upload/service"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	service service.UploadService
	auth    middleware.CredentialVerifier
}

func NewUploadHandler(service service.UploadService, auth middleware.CredentialVerifier) *UploadHandler {
	return &UploadHandler{
		service: service,
		auth:    auth,
	}
}

func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	uploads := router.Group("/uploads")
	uploads.Use(middleware.RequireAuth(h.auth), middleware.RequireRole("Forbidden", "artist", "admin"))
	{
		uploads.POST("/init", h.initUpload)
		uploads.POST("/complete", h.completeUpload)
	}
}

// @Summary Start an upload
// @Description Returns presigned PUT URLs for the audio file, optional cover art and metadata document.
// @Tags uploads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.InitUploadRequest true "Track metadata and file names"
// @Success 200 {object} models.InitUploadResponse
// @Failure 400 {object} models.ErrorResponse "Missing required fields"
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse "Listener role"
// @Failure 500 {object} models.ErrorResponse
// @Router /uploads/init [post]
func (h *UploadHandler) initUpload(c *gin.Context) {
	var req models.InitUploadRequest
	// Unknown or malformed fields end up empty and fail the required check.
	_ = c.ShouldBindJSON(&req)

	resp, err := h.service.InitUpload(c.Request.Context(), c.GetString(middleware.UserIDKey), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Finish an upload
// @Description Queues an uploaded audio object for ingest into the catalog.
// @Tags uploads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CompleteUploadRequest true "Uploaded audio key"
// @Success 202 {object} models.CompleteUploadResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /uploads/complete [post]
func (h *UploadHandler) completeUpload(c *gin.Context) {
	var req models.CompleteUploadRequest
	_ = c.ShouldBindJSON(&req)

	resp, err := h.service.CompleteUpload(c.Request.Context(), c.GetString(middleware.UserIDKey), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusAccepted, resp)
}
