package pitch

import (
	"strings"

	"github.com/foundrbox/core/internal/middleware"
	"github.com/foundrbox/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-pitch", h.GeneratePitch)
	rg.GET("/pitches", h.ListPitches)
}

func (h *Handler) GeneratePitch(c *gin.Context) {
	var dto GeneratePitchDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}
	dto.UserID = middleware.ResolveUserID(c, dto.UserID)
	if strings.TrimSpace(dto.UserID) == "" || strings.TrimSpace(dto.IdeaTitle) == "" {
		response.BadRequest(c, "Missing required fields")
		return
	}

	record, err := h.svc.Generate(c.Request.Context(), &dto)
	if err != nil {
		h.logger.Error("pitch generation failed", zap.Error(err))
		response.InternalError(c, "Failed to save pitch")
		return
	}

	response.Success(c, gin.H{
		"pitch_id":      record.ID,
		"pitch_content": record.PitchContent,
	})
}

func (h *Handler) ListPitches(c *gin.Context) {
	userID := middleware.ResolveUserID(c, c.Query("user_id"))
	if userID == "" {
		response.BadRequest(c, "Missing user_id")
		return
	}
	items, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("listing pitches failed", zap.Error(err))
		response.InternalError(c, "Failed to fetch pitches")
		return
	}
	response.OK(c, gin.H{"pitches": items})
}
