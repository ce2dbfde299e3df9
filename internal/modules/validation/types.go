package validation

import "errors"

// ValidateIdeaDTO is the inbound body for POST /validate-idea.
// user_id, idea_title and idea_description are required; the rest is
// optional context woven into the prompt.
type ValidateIdeaDTO struct {
	UserID                 string `json:"user_id"`
	IdeaTitle              string `json:"idea_title"`
	IdeaDescription        string `json:"idea_description"`
	TargetAudience         string `json:"target_audience"`
	ProblemSolving         string `json:"problem_solving"`
	UniqueValueProposition string `json:"unique_value_proposition"`
	BusinessModel          string `json:"business_model"`
	TechnicalFeasibility   string `json:"technical_feasibility"`
	ResourceRequirements   string `json:"resource_requirements"`
}

// requiredResultKeys are the top-level keys a parsed validation result must
// carry before it is trusted.
var requiredResultKeys = []string{"overall_score", "category_scores"}

var (
	errSaveIdea    = errors.New("failed to save idea")
	errSaveResults = errors.New("failed to save results")
)
