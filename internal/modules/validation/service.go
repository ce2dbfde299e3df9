package validation

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

// Validate runs the full ingestion pipeline for one idea: persist the
// request, call the completion provider, recover a schema-valid result (or
// substitute the fallback), and persist the outcome. The returned model
// always carries a schema-conformant result; only persistence errors
// propagate.
func (s *Service) Validate(ctx context.Context, dto *ValidateIdeaDTO) (*models.IdeaValidationModel, error) {
	record := models.IdeaValidationModel{
		UserID:                 dto.UserID,
		IdeaTitle:              dto.IdeaTitle,
		IdeaDescription:        dto.IdeaDescription,
		TargetAudience:         dto.TargetAudience,
		ProblemSolving:         dto.ProblemSolving,
		UniqueValueProposition: dto.UniqueValueProposition,
		BusinessModel:          dto.BusinessModel,
		TechnicalFeasibility:   dto.TechnicalFeasibility,
		ResourceRequirements:   dto.ResourceRequirements,
		Status:                 "processing",
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", errSaveIdea, err)
	}

	result := s.obtainResult(ctx, dto)

	updates := map[string]interface{}{
		"validation_result": result,
		"overall_score":     result.OverallScore,
		"status":            "completed",
	}
	if err := s.db.WithContext(ctx).Model(&record).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", errSaveResults, err)
	}

	record.ValidationResult = result
	record.OverallScore = result.OverallScore
	record.Status = "completed"
	return &record, nil
}

// obtainResult always returns a schema-valid result; every failure class
// routes to the deterministic fallback.
func (s *Service) obtainResult(ctx context.Context, dto *ValidateIdeaDTO) models.ValidationResult {
	raw, err := s.ai.Complete(ctx, systemInstruction, buildPrompt(dto))
	if err != nil {
		s.logger.Warn("validation completion failed, using fallback",
			zap.String("idea_title", dto.IdeaTitle), zap.Error(err))
		return fallbackResult(dto.IdeaTitle, dto.IdeaDescription)
	}

	var result models.ValidationResult
	if err := completion.ParseResult(raw, requiredResultKeys, &result); err != nil {
		s.logger.Warn("validation result unusable, using fallback",
			zap.String("idea_title", dto.IdeaTitle), zap.Error(err))
		return fallbackResult(dto.IdeaTitle, dto.IdeaDescription)
	}

	sanitizeResult(&result)
	return result
}

// sanitizeResult enforces the schema invariants the SPA relies on: scores
// inside [0,100], enum fields within their declared sets, arrays never nil.
func sanitizeResult(r *models.ValidationResult) {
	r.OverallScore = clampScore(r.OverallScore)
	r.CategoryScores.ProblemClarity = clampScore(r.CategoryScores.ProblemClarity)
	r.CategoryScores.SolutionFit = clampScore(r.CategoryScores.SolutionFit)
	r.CategoryScores.ValueProposition = clampScore(r.CategoryScores.ValueProposition)
	r.CategoryScores.TechnicalFeasibility = clampScore(r.CategoryScores.TechnicalFeasibility)
	r.CategoryScores.BusinessModel = clampScore(r.CategoryScores.BusinessModel)
	r.CategoryScores.ExecutionReadiness = clampScore(r.CategoryScores.ExecutionReadiness)

	r.SuccessLikelihood = coerceEnum(r.SuccessLikelihood, []string{"Low", "Medium", "High"}, "Medium")
	r.InnovationLevel = coerceEnum(r.InnovationLevel, []string{"Incremental", "Significant", "Breakthrough"}, "Significant")
	r.FeasibilityAssessment.TechnicalComplexity = coerceEnum(r.FeasibilityAssessment.TechnicalComplexity, []string{"Low", "Medium", "High"}, "Medium")
	r.FeasibilityAssessment.ResourceIntensity = coerceEnum(r.FeasibilityAssessment.ResourceIntensity, []string{"Low", "Medium", "High"}, "Medium")
	if r.FeasibilityAssessment.TimeToPrototype == "" {
		r.FeasibilityAssessment.TimeToPrototype = "1-2 months"
	}

	r.Strengths = ensureSlice(r.Strengths)
	r.Weaknesses = ensureSlice(r.Weaknesses)
	r.Opportunities = ensureSlice(r.Opportunities)
	r.Risks = ensureSlice(r.Risks)
	r.Recommendations = ensureSlice(r.Recommendations)
	r.NextSteps = ensureSlice(r.NextSteps)
	r.ValidationMethods = ensureSlice(r.ValidationMethods)
	r.ImprovementSuggestions = ensureSlice(r.ImprovementSuggestions)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func coerceEnum(v string, allowed []string, fallback string) string {
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return fallback
}

func ensureSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// List returns the user's validations, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]models.IdeaValidationModel, error) {
	var items []models.IdeaValidationModel
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
