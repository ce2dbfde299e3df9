package research

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

// Research runs the full pipeline for one project: persist the request, call
// the completion provider, recover a schema-valid analysis (or substitute the
// fallback), persist the outcome and fan the result out into the trend,
// competitor and opportunity tables.
func (s *Service) Research(ctx context.Context, dto *ResearchRequestDTO) (*models.MarketResearchModel, error) {
	record := models.MarketResearchModel{
		UserID:          dto.UserID,
		ProjectTitle:    dto.ProjectTitle,
		IndustrySector:  dto.IndustrySector,
		TargetMarket:    dto.TargetMarket,
		GeographicFocus: dto.GeographicFocus,
		ResearchGoals:   dto.ResearchGoals,
		Status:          "processing",
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", errSaveProject, err)
	}

	result := s.obtainResult(ctx, dto)

	updates := map[string]interface{}{
		"research_result": result,
		"status":          "completed",
	}
	if err := s.db.WithContext(ctx).Model(&record).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", errSaveResults, err)
	}

	s.fanOut(ctx, dto.UserID, record.ID, &result)

	record.ResearchResult = result
	record.Status = "completed"
	return &record, nil
}

func (s *Service) obtainResult(ctx context.Context, dto *ResearchRequestDTO) models.ResearchResult {
	raw, err := s.ai.Complete(ctx, systemInstruction, buildPrompt(dto))
	if err != nil {
		s.logger.Warn("research completion failed, using fallback",
			zap.String("project_title", dto.ProjectTitle), zap.Error(err))
		return fallbackResult(dto.ProjectTitle, dto.IndustrySector, dto.TargetMarket)
	}

	var result models.ResearchResult
	if err := completion.ParseResult(raw, requiredResultKeys, &result); err != nil {
		s.logger.Warn("research result unusable, using fallback",
			zap.String("project_title", dto.ProjectTitle), zap.Error(err))
		return fallbackResult(dto.ProjectTitle, dto.IndustrySector, dto.TargetMarket)
	}
	return result
}

// fanOut denormalizes the analysis into per-entity rows so the dashboard can
// query trends, competitors and opportunities without unpacking the blob.
// Failures here are logged and swallowed: the primary record already holds
// the full result.
func (s *Service) fanOut(ctx context.Context, userID, researchID string, result *models.ResearchResult) {
	for _, trend := range result.IndustryTrends {
		row := models.MarketTrendModel{
			UserID:      userID,
			ResearchID:  researchID,
			TrendName:   trend.TrendName,
			TrendData:   trend,
			ImpactScore: impactScore(trend.ImpactLevel),
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			s.logger.Warn("saving market trend failed", zap.String("trend", trend.TrendName), zap.Error(err))
		}
	}

	for _, player := range result.CompetitiveLandscape.KeyPlayers {
		row := models.CompetitorAnalysisModel{
			UserID:         userID,
			ResearchID:     researchID,
			CompetitorName: player.CompanyName,
			CompetitorData: player,
			ThreatLevel:    player.ThreatLevel,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			s.logger.Warn("saving competitor failed", zap.String("competitor", player.CompanyName), zap.Error(err))
		}
	}

	for _, opp := range result.MarketOpportunities {
		row := models.MarketOpportunityModel{
			UserID:           userID,
			ResearchID:       researchID,
			OpportunityTitle: opp.OpportunityTitle,
			OpportunityData:  opp,
			PotentialScore:   potentialScore(opp.SuccessProbability),
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			s.logger.Warn("saving opportunity failed", zap.String("opportunity", opp.OpportunityTitle), zap.Error(err))
		}
	}
}

func impactScore(level string) int {
	switch level {
	case "High":
		return 80
	case "Medium":
		return 60
	default:
		return 40
	}
}

func potentialScore(successProbability float64) int {
	if successProbability <= 0 {
		return 50
	}
	return int(successProbability)
}

// ListProjects returns the user's research projects, newest first.
func (s *Service) ListProjects(ctx context.Context, userID string) ([]models.MarketResearchModel, error) {
	var items []models.MarketResearchModel
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// ListTrends returns the user's trend rows ordered by impact, optionally
// scoped to one research project.
func (s *Service) ListTrends(ctx context.Context, userID, researchID string) ([]models.MarketTrendModel, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if researchID != "" {
		q = q.Where("research_id = ?", researchID)
	}
	var items []models.MarketTrendModel
	err := q.Order("impact_score DESC").Find(&items).Error
	return items, err
}

func (s *Service) ListCompetitors(ctx context.Context, userID, researchID string) ([]models.CompetitorAnalysisModel, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if researchID != "" {
		q = q.Where("research_id = ?", researchID)
	}
	var items []models.CompetitorAnalysisModel
	err := q.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *Service) ListOpportunities(ctx context.Context, userID, researchID string) ([]models.MarketOpportunityModel, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if researchID != "" {
		q = q.Where("research_id = ?", researchID)
	}
	var items []models.MarketOpportunityModel
	err := q.Order("potential_score DESC").Find(&items).Error
	return items, err
}
