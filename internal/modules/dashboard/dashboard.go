package dashboard

import (
	"context"
	"strings"

	"github.com/foundrbox/core/internal/middleware"
	"github.com/foundrbox/core/internal/models"
	"github.com/foundrbox/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaveDataDTO is the inbound body for POST /dashboard-data. One blob of
// dashboard state per (user_id, data_type) pair.
type SaveDataDTO struct {
	UserID   string                 `json:"user_id"`
	DataType string                 `json:"data_type"`
	Data     map[string]interface{} `json:"data"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Save upserts the blob on (user_id, data_type).
func (s *Service) Save(ctx context.Context, dto *SaveDataDTO) error {
	record := models.DashboardDataModel{
		UserID:   dto.UserID,
		DataType: dto.DataType,
		Data:     dto.Data,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "data_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&record).Error
}

// List returns the user's dashboard blobs, optionally filtered to one type.
func (s *Service) List(ctx context.Context, userID, dataType string) ([]models.DashboardDataModel, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if dataType != "" {
		q = q.Where("data_type = ?", dataType)
	}
	var items []models.DashboardDataModel
	err := q.Order("updated_at DESC").Find(&items).Error
	return items, err
}

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/dashboard-data", h.SaveData)
	rg.GET("/dashboard-data", h.ListData)
}

func (h *Handler) SaveData(c *gin.Context) {
	var dto SaveDataDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}
	dto.UserID = middleware.ResolveUserID(c, dto.UserID)
	if strings.TrimSpace(dto.UserID) == "" || strings.TrimSpace(dto.DataType) == "" {
		response.BadRequest(c, "Missing required fields")
		return
	}

	if err := h.svc.Save(c.Request.Context(), &dto); err != nil {
		h.logger.Error("saving dashboard data failed", zap.Error(err))
		response.InternalError(c, "Failed to save dashboard data")
		return
	}
	response.Success(c, gin.H{})
}

func (h *Handler) ListData(c *gin.Context) {
	userID := middleware.ResolveUserID(c, c.Query("user_id"))
	if userID == "" {
		response.BadRequest(c, "Missing user_id")
		return
	}
	items, err := h.svc.List(c.Request.Context(), userID, c.Query("data_type"))
	if err != nil {
		h.logger.Error("listing dashboard data failed", zap.Error(err))
		response.InternalError(c, "Failed to fetch dashboard data")
		return
	}
	response.OK(c, gin.H{"entries": items})
}
