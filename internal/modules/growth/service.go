package growth

import (
	"context"
	"fmt"
	"time"

	"github.com/foundrbox/core/internal/models"
	"github.com/foundrbox/core/internal/modules/completion"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db     *gorm.DB
	ai     completion.Client
	logger *zap.Logger
}

func NewService(db *gorm.DB, ai completion.Client, logger *zap.Logger) *Service {
	return &Service{db: db, ai: ai, logger: logger}
}

// Chat runs one conversation turn: ensure the thread exists, append the
// founder's message, continue the transcript through the persona, append the
// reply and refresh the thread counters. A completion failure never surfaces;
// the founder gets the apology reply instead.
func (s *Service) Chat(ctx context.Context, dto *ChatDTO) (*ChatReply, error) {
	conversationID := dto.ConversationID
	if conversationID == "" {
		title := dto.ConversationTitle
		if title == "" {
			title = defaultConversationTitle
		}
		conversation := models.GrowthConversationModel{
			UserID:            dto.UserID,
			ConversationTitle: title,
		}
		if err := s.db.WithContext(ctx).Create(&conversation).Error; err != nil {
			return nil, fmt.Errorf("%w: %v", errCreateConversation, err)
		}
		conversationID = conversation.ID
	}

	userMessage := models.GrowthMessageModel{
		ConversationID: conversationID,
		UserID:         dto.UserID,
		Role:           "user",
		Content:        dto.Message,
	}
	if err := s.db.WithContext(ctx).Create(&userMessage).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", errSaveMessage, err)
	}

	history, err := s.recentHistory(ctx, conversationID, userMessage.ID)
	if err != nil {
		s.logger.Warn("loading chat history failed, continuing without context",
			zap.String("conversation_id", conversationID), zap.Error(err))
		history = nil
	}

	reply := s.obtainReply(ctx, history, dto.Message)

	assistantMessage := models.GrowthMessageModel{
		ConversationID: conversationID,
		UserID:         dto.UserID,
		Role:           "assistant",
		Content:        reply,
	}
	if err := s.db.WithContext(ctx).Create(&assistantMessage).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", errSaveMessage, err)
	}

	s.refreshConversation(ctx, conversationID)

	insights := extractInsights(reply)
	s.saveInsights(ctx, dto.UserID, conversationID, insights)

	return &ChatReply{
		ConversationID: conversationID,
		Response:       reply,
		ResponseHTML:   renderHTML(reply),
		Insights:       insights,
	}, nil
}

func (s *Service) obtainReply(ctx context.Context, history []models.GrowthMessageModel, message string) string {
	reply, err := s.ai.Complete(ctx, systemInstruction, buildPrompt(history, message))
	if err != nil {
		s.logger.Warn("chat completion failed, using apology reply", zap.Error(err))
		return apologyReply
	}
	return reply
}

// recentHistory loads the last historyWindow turns before the current user
// message, oldest first.
func (s *Service) recentHistory(ctx context.Context, conversationID, excludeID string) ([]models.GrowthMessageModel, error) {
	var recent []models.GrowthMessageModel
	err := s.db.WithContext(ctx).
		Where("conversation_id = ? AND id <> ?", conversationID, excludeID).
		Order("created_at DESC").
		Limit(historyWindow).
		Find(&recent).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	return recent, nil
}

// refreshConversation recounts the thread's messages so message_count is
// exact after both turns of this exchange landed. Best-effort; the messages
// themselves are the source of truth.
func (s *Service) refreshConversation(ctx context.Context, conversationID string) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.GrowthMessageModel{}).
		Where("conversation_id = ?", conversationID).
		Count(&count).Error; err != nil {
		s.logger.Warn("counting messages failed", zap.String("conversation_id", conversationID), zap.Error(err))
		return
	}

	now := time.Now()
	err := s.db.WithContext(ctx).
		Model(&models.GrowthConversationModel{}).
		Where("id = ?", conversationID).
		Updates(map[string]interface{}{
			"message_count":   count,
			"last_message_at": now,
		}).Error
	if err != nil {
		s.logger.Warn("updating conversation failed", zap.String("conversation_id", conversationID), zap.Error(err))
	}
}

func (s *Service) saveInsights(ctx context.Context, userID, conversationID string, insights []Insight) {
	for _, insight := range insights {
		row := models.GrowthInsightModel{
			UserID:         userID,
			ConversationID: conversationID,
			InsightType:    insight.Type,
			Title:          insight.Title,
			Content:        insight.Content,
			Priority:       insight.Priority,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			s.logger.Warn("saving insight failed", zap.String("type", insight.Type), zap.Error(err))
		}
	}
}

// ListMessages returns a conversation's messages oldest first.
func (s *Service) ListMessages(ctx context.Context, userID, conversationID string) ([]models.GrowthMessageModel, error) {
	var items []models.GrowthMessageModel
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// ListConversations returns the user's threads, most recently active first.
func (s *Service) ListConversations(ctx context.Context, userID string) ([]models.GrowthConversationModel, error) {
	var items []models.GrowthConversationModel
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_message_at DESC").
		Find(&items).Error
	return items, err
}

// ListInsights returns the user's insights, newest first.
func (s *Service) ListInsights(ctx context.Context, userID string) ([]models.GrowthInsightModel, error) {
	var items []models.GrowthInsightModel
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
