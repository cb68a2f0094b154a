package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vidshare-backend/internal/domains/video"
	"vidshare-backend/internal/shared/middleware"
	"vidshare-backend/internal/shared/response"
	"vidshare-backend/pkg/logger"
)

type VideoHandler struct {
	service video.Service
}

func NewVideoHandler(service video.Service) *VideoHandler {
	return &VideoHandler{service: service}
}

// Publish handles POST /api/v1/videos (auth required).
// The auth check runs before any body parsing: an anonymous caller
// never learns whether their payload was valid.
func (h *VideoHandler) Publish(c *gin.Context) {
	ownerID, err := middleware.GetUserID(c)
	if err != nil {
		response.Unauthorized(c, "Unauthorized User, please login")
		return
	}

	var req video.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	v, err := h.service.Publish(c.Request.Context(), ownerID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Video published successfully", v)
}

// List handles GET /api/v1/videos.
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.service.ListVideos(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", videos)
}

// GetByID handles GET /api/v1/videos/:id.
func (h *VideoHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid video id")
		return
	}

	v, err := h.service.GetVideo(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", v)
}

func (h *VideoHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.BadRequest(c, vErrs.Error())
		return
	}

	switch {
	case errors.Is(err, video.ErrVideoNotFound):
		response.NotFound(c, "Video not found")
	default:
		logger.Error("video handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
