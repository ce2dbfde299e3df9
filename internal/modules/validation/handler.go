package validation

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
	rg.POST("/validate-idea", h.ValidateIdea)
	rg.GET("/validated-ideas", h.ListValidatedIdeas)
}

func (h *Handler) ValidateIdea(c *gin.Context) {
	var dto ValidateIdeaDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}
	dto.UserID = middleware.ResolveUserID(c, dto.UserID)
	if strings.TrimSpace(dto.UserID) == "" ||
		strings.TrimSpace(dto.IdeaTitle) == "" ||
		strings.TrimSpace(dto.IdeaDescription) == "" {
		response.BadRequest(c, "Missing required fields")
		return
	}

	record, err := h.svc.Validate(c.Request.Context(), &dto)
	if err != nil {
		h.logger.Error("idea validation failed", zap.Error(err))
		response.InternalError(c, "Failed to validate idea")
		return
	}

	response.Success(c, gin.H{
		"validation_id": record.ID,
		"result":        record.ValidationResult,
	})
}

func (h *Handler) ListValidatedIdeas(c *gin.Context) {
	userID := middleware.ResolveUserID(c, c.Query("user_id"))
	if userID == "" {
		response.BadRequest(c, "User ID is required")
		return
	}

	items, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("listing validations failed", zap.Error(err))
		response.InternalError(c, "Failed to fetch validated ideas")
		return
	}

	response.OK(c, gin.H{"ideas": items})
}
