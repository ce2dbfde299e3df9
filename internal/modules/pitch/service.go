package pitch

import (
	"context"
	"fmt"

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

// Generate produces a pitch-deck strategy for the idea and persists it.
// Unlike validation and research there is no processing row: the record is
// written once, after the content is ready.
func (s *Service) Generate(ctx context.Context, dto *GeneratePitchDTO) (*models.PitchModel, error) {
	content := s.obtainContent(ctx, dto)

	record := models.PitchModel{
		UserID:          dto.UserID,
		IdeaSource:      dto.IdeaSource,
		IdeaID:          dto.IdeaID,
		IdeaTitle:       dto.IdeaTitle,
		IdeaDescription: dto.IdeaDescription,
		PitchContent:    content,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", errSavePitch, err)
	}
	return &record, nil
}

func (s *Service) obtainContent(ctx context.Context, dto *GeneratePitchDTO) models.PitchContent {
	raw, err := s.ai.Complete(ctx, systemInstruction, buildPrompt(dto))
	if err != nil {
		s.logger.Warn("pitch completion failed, using fallback",
			zap.String("idea_title", dto.IdeaTitle), zap.Error(err))
		return fallbackPitch(dto.IdeaTitle)
	}

	var content models.PitchContent
	if err := completion.ParseResult(raw, requiredResultKeys, &content); err != nil {
		s.logger.Warn("pitch content unusable, using fallback",
			zap.String("idea_title", dto.IdeaTitle), zap.Error(err))
		return fallbackPitch(dto.IdeaTitle)
	}
	if len(content.Slides) == 0 {
		s.logger.Warn("pitch content has no slides, using fallback",
			zap.String("idea_title", dto.IdeaTitle))
		return fallbackPitch(dto.IdeaTitle)
	}
	return content
}

// List returns the user's pitches, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]models.PitchModel, error) {
	var items []models.PitchModel
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
