package user

import (
	"context"
	"errors"
	"strings"

	"github.com/foundrbox/core/internal/models"
	"github.com/foundrbox/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SyncUserDTO mirrors the account payload sent by the SPA after sign-in.
// The id comes from the external identity provider.
type SyncUserDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Sync makes sure the account row exists. Existing rows are left untouched;
// the identity provider owns the profile, we only mirror it.
func (s *Service) Sync(ctx context.Context, dto *SyncUserDTO) error {
	var existing models.UserModel
	err := s.db.WithContext(ctx).Select("id").Where("id = ?", dto.ID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	record := models.UserModel{
		Base:     models.Base{ID: dto.ID},
		Email:    dto.Email,
		FullName: dto.FullName,
	}
	return s.db.WithContext(ctx).Create(&record).Error
}

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sync-user", h.SyncUser)
}

func (h *Handler) SyncUser(c *gin.Context) {
	var dto SyncUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}
	if strings.TrimSpace(dto.ID) == "" || strings.TrimSpace(dto.Email) == "" {
		response.BadRequest(c, "Missing required fields")
		return
	}

	if err := h.svc.Sync(c.Request.Context(), &dto); err != nil {
		h.logger.Error("user sync failed", zap.String("user_id", dto.ID), zap.Error(err))
		response.InternalError(c, "Failed to sync user")
		return
	}
	response.Success(c, gin.H{})
}
