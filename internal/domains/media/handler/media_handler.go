package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidshare-backend/internal/domains/media"
	"vidshare-backend/internal/shared/response"
	"vidshare-backend/pkg/logger"
)

type MediaHandler struct {
	service media.Service
}

func NewMediaHandler(service media.Service) *MediaHandler {
	return &MediaHandler{service: service}
}

// GetUploadAuth handles GET /api/v1/media/upload-auth.
// Intentionally unauthenticated: the credentials are short-lived and
// only authorize an upload, never a publish.
func (h *MediaHandler) GetUploadAuth(c *gin.Context) {
	creds, err := h.service.IssueUploadCredentials(c.Request.Context())
	if err != nil {
		logger.Error("failed to issue upload credentials", err)
		response.InternalServerError(c, "Upload authentication failed")
		return
	}

	response.Success(c, http.StatusOK, "", creds)
}
