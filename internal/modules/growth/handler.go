package growth

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
	rg.POST("/growth-chat", h.Chat)
	rg.GET("/growth-messages", h.ListMessages)
	rg.GET("/growth-conversations", h.ListConversations)
	rg.GET("/growth-insights", h.ListInsights)
}

func (h *Handler) Chat(c *gin.Context) {
	var dto ChatDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}
	dto.UserID = middleware.ResolveUserID(c, dto.UserID)
	if strings.TrimSpace(dto.UserID) == "" || strings.TrimSpace(dto.Message) == "" {
		response.BadRequest(c, "Missing required fields")
		return
	}

	reply, err := h.svc.Chat(c.Request.Context(), &dto)
	if err != nil {
		h.logger.Error("growth chat failed", zap.Error(err))
		response.InternalError(c, "Failed to process chat message")
		return
	}

	response.Success(c, gin.H{
		"conversation_id": reply.ConversationID,
		"response":        reply.Response,
		"response_html":   reply.ResponseHTML,
		"insights":        reply.Insights,
	})
}

func (h *Handler) ListMessages(c *gin.Context) {
	userID := middleware.ResolveUserID(c, c.Query("user_id"))
	conversationID := c.Query("conversation_id")
	if userID == "" || conversationID == "" {
		response.BadRequest(c, "Missing user_id or conversation_id")
		return
	}
	items, err := h.svc.ListMessages(c.Request.Context(), userID, conversationID)
	if err != nil {
		h.logger.Error("listing messages failed", zap.Error(err))
		response.InternalError(c, "Failed to fetch messages")
		return
	}
	response.OK(c, gin.H{"messages": items})
}

func (h *Handler) ListConversations(c *gin.Context) {
	userID := middleware.ResolveUserID(c, c.Query("user_id"))
	if userID == "" {
		response.BadRequest(c, "Missing user_id")
		return
	}
	items, err := h.svc.ListConversations(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("listing conversations failed", zap.Error(err))
		response.InternalError(c, "Failed to fetch conversations")
		return
	}
	response.OK(c, gin.H{"conversations": items})
}

func (h *Handler) ListInsights(c *gin.Context) {
	userID := middleware.ResolveUserID(c, c.Query("user_id"))
	if userID == "" {
		response.BadRequest(c, "Missing user_id")
		return
	}
	items, err := h.svc.ListInsights(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("listing insights failed", zap.Error(err))
		response.InternalError(c, "Failed to fetch insights")
		return
	}
	response.OK(c, gin.H{"insights": items})
}
