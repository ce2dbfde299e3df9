package models

// PitchModel stores one generated pitch-deck strategy.
type PitchModel struct {
	Base
	UserID          string       `json:"user_id"          gorm:"index;not null"`
	IdeaSource      string       `json:"idea_source"`
	IdeaID          string       `json:"idea_id"`
	IdeaTitle       string       `json:"idea_title"       gorm:"not null"`
	IdeaDescription string       `json:"idea_description" gorm:"type:text"`
	PitchContent    PitchContent `json:"pitch_content"    gorm:"type:longtext;serializer:json"`
}

func (PitchModel) TableName() string { return "pitch_assistant" }

// PitchContent is the structured payload of a pitch-deck strategy.
type PitchContent struct {
	ExecutiveSummary         ExecutiveSummary          `json:"executive_summary"`
	Slides                   []PitchSlide              `json:"slides"`
	StorytellingFlow         StorytellingFlow          `json:"storytelling_flow"`
	DesignGuidelines         DesignGuidelines          `json:"design_guidelines"`
	PresenterTips            PresenterTips             `json:"presenter_tips"`
	CustomizationSuggestions []CustomizationSuggestion `json:"customization_suggestions"`
	SuccessMetrics           SuccessMetrics            `json:"success_metrics"`
}

type ExecutiveSummary struct {
	PitchTheme           string `json:"pitch_theme"`
	KeyNarrative         string `json:"key_narrative"`
	TargetAudience       string `json:"target_audience"`
	PresentationDuration string `json:"presentation_duration"`
	TotalSlides          int    `json:"total_slides"`
}

type PitchSlide struct {
	SlideNumber           int      `json:"slide_number"`
	Title                 string   `json:"title"`
	Purpose               string   `json:"purpose"`
	ContentStrategy       string   `json:"content_strategy"`
	KeyElements           []string `json:"key_elements"`
	VisualRecommendations string   `json:"visual_recommendations"`
	TalkingPoints         []string `json:"talking_points"`
	DurationSeconds       int      `json:"duration_seconds"`
	DesignTips            string   `json:"design_tips"`
}

type StorytellingFlow struct {
	Hook                 string `json:"hook"`
	ProblemNarrative     string `json:"problem_narrative"`
	SolutionReveal       string `json:"solution_reveal"`
	MarketOpportunity    string `json:"market_opportunity"`
	CompetitiveAdvantage string `json:"competitive_advantage"`
	TractionStory        string `json:"traction_story"`
	FinancialProjection  string `json:"financial_projection"`
	CallToAction         string `json:"call_to_action"`
}

type DesignGuidelines struct {
	ColorScheme               string   `json:"color_scheme"`
	TypographyRecommendations string   `json:"typography_recommendations"`
	VisualStyle               string   `json:"visual_style"`
	ImageSuggestions          []string `json:"image_suggestions"`
	ChartTypes                []string `json:"chart_types"`
	BrandingTips              string   `json:"branding_tips"`
}

type PresenterTips struct {
	OpeningStrategy      string   `json:"opening_strategy"`
	BodyLanguage         string   `json:"body_language"`
	TransitionTechniques []string `json:"transition_techniques"`
	HandlingQuestions    string   `json:"handling_questions"`
	ClosingStrategy      string   `json:"closing_strategy"`
}

type CustomizationSuggestion struct {
	AudienceType  string   `json:"audience_type"`
	Modifications string   `json:"modifications"`
	EmphasisAreas []string `json:"emphasis_areas"`
}

type SuccessMetrics struct {
	PitchEffectivenessScore int      `json:"pitch_effectiveness_score"`
	InvestorReadiness       string   `json:"investor_readiness"`
	Strengths               []string `json:"strengths"`
	ImprovementAreas        []string `json:"improvement_areas"`
}
