package research

import "errors"

// ResearchRequestDTO is the inbound body for POST /market-research.
// user_id, project_title, industry_sector and target_market are required.
type ResearchRequestDTO struct {
	UserID          string `json:"user_id"`
	ProjectTitle    string `json:"project_title"`
	IndustrySector  string `json:"industry_sector"`
	TargetMarket    string `json:"target_market"`
	GeographicFocus string `json:"geographic_focus"`
	ResearchGoals   string `json:"research_goals"`
}

var requiredResultKeys = []string{"market_overview", "industry_trends"}

var (
	errSaveProject = errors.New("failed to save research project")
	errSaveResults = errors.New("failed to save results")
)
