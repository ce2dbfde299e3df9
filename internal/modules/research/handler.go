package research

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
	rg.POST("/market-research", h.RunResearch)
	rg.GET("/market-research", h.ListProjects)
	rg.GET("/market-trends", h.ListTrends)
	rg.GET("/competitors", h.ListCompetitors)
	rg.GET("/market-opportunities", h.ListOpportunities)
}

func (h *Handler) RunResearch(c *gin.Context) {
	var dto ResearchRequestDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}
	dto.UserID = middleware.ResolveUserID(c, dto.UserID)
	if strings.TrimSpace(dto.UserID) == "" ||
		strings.TrimSpace(dto.ProjectTitle) == "" ||
		strings.TrimSpace(dto.IndustrySector) == "" ||
		strings.TrimSpace(dto.TargetMarket) == "" {
		response.BadRequest(c, "Missing required fields")
		return
	}

	record, err := h.svc.Research(c.Request.Context(), &dto)
	if err != nil {
		h.logger.Error("market research failed", zap.Error(err))
		response.InternalError(c, "Failed to run market research")
		return
	}

	response.Success(c, gin.H{
		"research_id": record.ID,
		"result":      record.ResearchResult,
	})
}

func (h *Handler) ListProjects(c *gin.Context) {
	userID := middleware.ResolveUserID(c, c.Query("user_id"))
	if userID == "" {
		response.BadRequest(c, "Missing user_id")
		return
	}
	items, err := h.svc.ListProjects(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("listing research projects failed", zap.Error(err))
		response.InternalError(c, "Failed to fetch research projects")
		return
	}
	response.OK(c, gin.H{"research_projects": items})
}

func (h *Handler) ListTrends(c *gin.Context) {
	userID := middleware.ResolveUserID(c, c.Query("user_id"))
	if userID == "" {
		response.BadRequest(c, "Missing user_id")
		return
	}
	items, err := h.svc.ListTrends(c.Request.Context(), userID, c.Query("research_id"))
	if err != nil {
		h.logger.Error("listing market trends failed", zap.Error(err))
		response.InternalError(c, "Failed to fetch market trends")
		return
	}
	response.OK(c, gin.H{"trends": items})
}

func (h *Handler) ListCompetitors(c *gin.Context) {
	userID := middleware.ResolveUserID(c, c.Query("user_id"))
	if userID == "" {
		response.BadRequest(c, "Missing user_id")
		return
	}
	items, err := h.svc.ListCompetitors(c.Request.Context(), userID, c.Query("research_id"))
	if err != nil {
		h.logger.Error("listing competitors failed", zap.Error(err))
		response.InternalError(c, "Failed to fetch competitors")
		return
	}
	response.OK(c, gin.H{"competitors": items})
}

func (h *Handler) ListOpportunities(c *gin.Context) {
	userID := middleware.ResolveUserID(c, c.Query("user_id"))
	if userID == "" {
		response.BadRequest(c, "Missing user_id")
		return
	}
	items, err := h.svc.ListOpportunities(c.Request.Context(), userID, c.Query("research_id"))
	if err != nil {
		h.logger.Error("listing opportunities failed", zap.Error(err))
		response.InternalError(c, "Failed to fetch market opportunities")
		return
	}
	response.OK(c, gin.H{"opportunities": items})
}
