package models

// IdeaValidationModel stores one idea-validation request and its result.
// The row is created before the completion call (status "processing") and
// updated once the result is ready.
type IdeaValidationModel struct {
	Base
	UserID                 string           `json:"user_id"                  gorm:"index;not null"`
	IdeaTitle              string           `json:"idea_title"               gorm:"not null"`
	IdeaDescription        string           `json:"idea_description"         gorm:"type:text;not null"`
	TargetAudience         string           `json:"target_audience"          gorm:"type:text"`
	ProblemSolving         string           `json:"problem_solving"          gorm:"type:text"`
	UniqueValueProposition string           `json:"unique_value_proposition" gorm:"type:text"`
	BusinessModel          string           `json:"business_model"           gorm:"type:text"`
	TechnicalFeasibility   string           `json:"technical_feasibility"    gorm:"type:text"`
	ResourceRequirements   string           `json:"resource_requirements"    gorm:"type:text"`
	ValidationResult       ValidationResult `json:"validation_result"        gorm:"type:longtext;serializer:json"`
	OverallScore           int              `json:"overall_score"`
	Status                 string           `json:"status"                   gorm:"default:'processing'"`
}

func (IdeaValidationModel) TableName() string { return "idea_validations" }

// ValidationResult is the structured payload of an idea validation. Every
// field is always present, whether the payload came from the model or from
// the deterministic fallback; the SPA destructures it without guards.
type ValidationResult struct {
	OverallScore           int                   `json:"overall_score"`
	CategoryScores         CategoryScores        `json:"category_scores"`
	Strengths              []string              `json:"strengths"`
	Weaknesses             []string              `json:"weaknesses"`
	Opportunities          []string              `json:"opportunities"`
	Risks                  []string              `json:"risks"`
	Recommendations        []string              `json:"recommendations"`
	NextSteps              []string              `json:"next_steps"`
	ValidationMethods      []string              `json:"validation_methods"`
	FeasibilityAssessment  FeasibilityAssessment `json:"feasibility_assessment"`
	ImprovementSuggestions []string              `json:"improvement_suggestions"`
	SuccessLikelihood      string                `json:"success_likelihood"` // Low | Medium | High
	InnovationLevel        string                `json:"innovation_level"`   // Incremental | Significant | Breakthrough
}

// CategoryScores holds the six 0-100 sub-scores.
type CategoryScores struct {
	ProblemClarity       int `json:"problem_clarity"`
	SolutionFit          int `json:"solution_fit"`
	ValueProposition     int `json:"value_proposition"`
	TechnicalFeasibility int `json:"technical_feasibility"`
	BusinessModel        int `json:"business_model"`
	ExecutionReadiness   int `json:"execution_readiness"`
}

type FeasibilityAssessment struct {
	TechnicalComplexity string `json:"technical_complexity"` // Low | Medium | High
	ResourceIntensity   string `json:"resource_intensity"`   // Low | Medium | High
	TimeToPrototype     string `json:"time_to_prototype"`
}
