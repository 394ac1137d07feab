package http

import (
	"net/http"

	"current-backend/internal/features/track/models"
	"current-backend/internal/features/track/service"

	"github.com/gin-gonic/gin"
)

type TrackHandler struct {
	service service.TrackService
}

func NewTrackHandler(service service.TrackService) *TrackHandler {
	return &TrackHandler{service: service}
}

func (h *TrackHandler) RegisterRoutes(router *gin.RouterGroup) {
	tracks := router.Group("/tracks")
	{
		tracks.GET("", h.listTracks)
		tracks.GET("/:id/stream", h.getStreamURL)
	}
}

// @Summary List tracks
// @Description Every track in the catalog, newest first.
// @Tags tracks
// @Produce json
// @Success 200 {object} models.TracksResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /tracks [get]
func (h *TrackHandler) listTracks(c *gin.Context) {
	tracks, err := h.service.ListTracks(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.TracksResponse{Tracks: tracks})
}

// @Summary Get stream URL
// @Tags tracks
// @Produce json
// @Param id path string true "Track ID"
// @Success 200 {object} models.StreamResponse
// @Failure 404 {object} models.ErrorResponse "Track not found"
// @Failure 500 {object} models.ErrorResponse "Track has no stream path"
// @Router /tracks/{id}/stream [get]
func (h *TrackHandler) getStreamURL(c *gin.Context) {
	url, err := h.service.StreamURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.StreamResponse{StreamURL: url})
}
