package http

import (
	"errors"
	"io"
	"net/http"

	"current-backend/internal/common/logger"
	"current-backend/internal/common/middleware"
	"current-backend/internal/features/user/models"
	"current-backend/internal/features/user/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service service.UserService
	auth    middleware.CredentialVerifier
}

func NewUserHandler(service service.UserService, auth middleware.CredentialVerifier) *UserHandler {
	return &UserHandler{
		service: service,
		auth:    auth,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/google", h.loginWithGoogle)

	authed := router.Group("")
	authed.Use(middleware.RequireAuth(h.auth))
	{
		authed.GET("/me", h.getMe)
		authed.POST("/artist/apply", h.applyForArtist)
	}

	admin := router.Group("/admin/artist-applications")
	admin.Use(middleware.RequireAuth(h.auth), middleware.RequireAdmin())
	{
		admin.GET("", h.listPendingApplications)
		admin.POST("/:sub/approve", h.approveArtist)
		admin.POST("/:sub/reject", h.rejectArtist)
	}
}

// @Summary Sign in with Google
// @Description Exchange a Google ID token for a session credential. Creates the profile on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.GoogleLoginRequest true "Google credential"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} models.ErrorResponse "Missing credential"
// @Failure 401 {object} models.ErrorResponse "Verification failed"
// @Failure 500 {object} models.ErrorResponse "Server misconfigured"
// @Router /auth/google [post]
func (h *UserHandler) loginWithGoogle(c *gin.Context) {
	var input models.GoogleLoginRequest
	bindOptionalJSON(c, &input)

	resp, err := h.service.Login(c.Request.Context(), input.Credential)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserEnvelope
// @Failure 401 {object} models.ErrorResponse
// @Router /me [get]
func (h *UserHandler) getMe(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)

	user, err := h.service.GetProfile(c.Request.Context(), claims.SubjectID())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.UserEnvelope{User: user})
}

// @Summary Apply to become an artist
// @Description Puts the caller's application in the review queue and re-issues the credential. Artists and admins get their profile back unchanged.
// @Tags artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.ArtistApplyRequest true "Application"
// @Success 200 {object} models.ApplyResponse
// @Failure 400 {object} models.ErrorResponse "displayName is required"
// @Failure 401 {object} models.ErrorResponse
// @Router /artist/apply [post]
func (h *UserHandler) applyForArtist(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)

	var input models.ArtistApplyRequest
	bindOptionalJSON(c, &input)

	resp, err := h.service.ApplyForArtist(c.Request.Context(), claims.SubjectID(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List pending artist applications
// @Description Oldest submission first. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApplicationsResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse "Admin only"
// @Router /admin/artist-applications [get]
func (h *UserHandler) listPendingApplications(c *gin.Context) {
	items, err := h.service.ListPendingApplications(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.ApplicationsResponse{Items: items})
}

// @Summary Approve an artist application
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param sub path string true "Subject ID"
// @Success 200 {object} models.UserEnvelope
// @Failure 403 {object} models.ErrorResponse "Admin only"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Approve failed"
// @Router /admin/artist-applications/{sub}/approve [post]
func (h *UserHandler) approveArtist(c *gin.Context) {
	user, err := h.service.ApproveArtist(c.Request.Context(), c.Param("sub"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.UserEnvelope{User: user})
}

// @Summary Reject an artist application
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sub path string true "Subject ID"
// @Param body body models.RejectRequest false "Reason"
// @Success 200 {object} models.UserEnvelope
// @Failure 403 {object} models.ErrorResponse "Admin only"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Reject failed"
// @Router /admin/artist-applications/{sub}/reject [post]
func (h *UserHandler) rejectArtist(c *gin.Context) {
	var input models.RejectRequest
	bindOptionalJSON(c, &input)

	user, err := h.service.RejectArtist(c.Request.Context(), c.Param("sub"), input.Reason)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.UserEnvelope{User: user})
}

// bindOptionalJSON decodes the body when there is one. A malformed body is
// treated like an empty one and field validation is left to the service.
func bindOptionalJSON(c *gin.Context, dest interface{}) {
	if c.Request.Body == nil {
		return
	}
	if err := c.ShouldBindJSON(dest); err != nil && !errors.Is(err, io.EOF) {
		logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Ignoring malformed request body")
	}
}
