package models

// MarketResearchModel stores one market-research request and its result.
type MarketResearchModel struct {
	Base
	UserID          string         `json:"user_id"          gorm:"index;not null"`
	ProjectTitle    string         `json:"project_title"    gorm:"not null"`
	IndustrySector  string         `json:"industry_sector"  gorm:"not null"`
	TargetMarket    string         `json:"target_market"    gorm:"not null"`
	GeographicFocus string         `json:"geographic_focus"`
	ResearchGoals   string         `json:"research_goals"   gorm:"type:text"`
	ResearchResult  ResearchResult `json:"research_result"  gorm:"type:longtext;serializer:json"`
	Status          string         `json:"status"           gorm:"default:'processing'"`
}

func (MarketResearchModel) TableName() string { return "market_research" }

// MarketTrendModel is a fan-out row for one industry trend of a research result.
type MarketTrendModel struct {
	Base
	UserID      string        `json:"user_id"      gorm:"index;not null"`
	ResearchID  string        `json:"research_id"  gorm:"index;not null"`
	TrendName   string        `json:"trend_name"`
	TrendData   IndustryTrend `json:"trend_data"   gorm:"type:longtext;serializer:json"`
	ImpactScore int           `json:"impact_score" gorm:"index"`
}

func (MarketTrendModel) TableName() string { return "market_trends" }

// CompetitorAnalysisModel is a fan-out row for one key player.
type CompetitorAnalysisModel struct {
	Base
	UserID         string    `json:"user_id"         gorm:"index;not null"`
	ResearchID     string    `json:"research_id"     gorm:"index;not null"`
	CompetitorName string    `json:"competitor_name"`
	CompetitorData KeyPlayer `json:"competitor_data" gorm:"type:longtext;serializer:json"`
	ThreatLevel    string    `json:"threat_level"`
}

func (CompetitorAnalysisModel) TableName() string { return "competitor_analysis" }

// MarketOpportunityModel is a fan-out row for one market opportunity.
type MarketOpportunityModel struct {
	Base
	UserID           string            `json:"user_id"           gorm:"index;not null"`
	ResearchID       string            `json:"research_id"       gorm:"index;not null"`
	OpportunityTitle string            `json:"opportunity_title"`
	OpportunityData  MarketOpportunity `json:"opportunity_data"  gorm:"type:longtext;serializer:json"`
	PotentialScore   int               `json:"potential_score"`
}

func (MarketOpportunityModel) TableName() string { return "market_opportunities" }

// ResearchResult is the structured payload of a market-research analysis.
type ResearchResult struct {
	MarketOverview        MarketOverview           `json:"market_overview"`
	IndustryTrends        []IndustryTrend          `json:"industry_trends"`
	CompetitiveLandscape  CompetitiveLandscape     `json:"competitive_landscape"`
	CustomerAnalysis      CustomerAnalysis         `json:"customer_analysis"`
	MarketOpportunities   []MarketOpportunity      `json:"market_opportunities"`
	EntryBarriers         []EntryBarrier           `json:"entry_barriers"`
	RegulatoryEnvironment RegulatoryEnvironment    `json:"regulatory_environment"`
	TechnologyImpact      TechnologyImpact         `json:"technology_impact"`
	Recommendations       []ResearchRecommendation `json:"recommendations"`
	RiskAssessment        RiskAssessment           `json:"risk_assessment"`
}

type MarketOverview struct {
	MarketSizeUSD        float64  `json:"market_size_usd"`
	GrowthRatePercentage float64  `json:"growth_rate_percentage"`
	MarketMaturity       string   `json:"market_maturity"` // Emerging | Growth | Mature | Declining
	KeyDrivers           []string `json:"key_drivers"`
}

type IndustryTrend struct {
	TrendName     string   `json:"trend_name"`
	Description   string   `json:"description"`
	ImpactLevel   string   `json:"impact_level"`  // High | Medium | Low
	TimeHorizon   string   `json:"time_horizon"`  // Short-term | Medium-term | Long-term
	Opportunities []string `json:"opportunities"`
}

type CompetitiveLandscape struct {
	CompetitionIntensity string      `json:"competition_intensity"` // Low | Medium | High | Very High
	KeyPlayers           []KeyPlayer `json:"key_players"`
	MarketGaps           []string    `json:"market_gaps"`
}

type KeyPlayer struct {
	CompanyName string   `json:"company_name"`
	MarketShare float64  `json:"market_share"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	ThreatLevel string   `json:"threat_level"` // Low | Medium | High | Critical
}

type CustomerAnalysis struct {
	PrimarySegments []CustomerSegment `json:"primary_segments"`
	BuyingBehavior  string            `json:"buying_behavior"`
	DecisionFactors []string          `json:"decision_factors"`
}

type CustomerSegment struct {
	SegmentName     string   `json:"segment_name"`
	SizePercentage  float64  `json:"size_percentage"`
	Characteristics []string `json:"characteristics"`
	PainPoints      []string `json:"pain_points"`
	SpendingPower   string   `json:"spending_power"` // Low | Medium | High
}

type MarketOpportunity struct {
	OpportunityTitle   string  `json:"opportunity_title"`
	Description        string  `json:"description"`
	PotentialSizeUSD   float64 `json:"potential_size_usd"`
	DifficultyLevel    string  `json:"difficulty_level"` // Low | Medium | High
	TimeToMarket       string  `json:"time_to_market"`
	RequiredInvestment string  `json:"required_investment"` // Low | Medium | High
	SuccessProbability float64 `json:"success_probability"`
}

type EntryBarrier struct {
	BarrierType          string   `json:"barrier_type"`
	Severity             string   `json:"severity"` // Low | Medium | High
	Description          string   `json:"description"`
	MitigationStrategies []string `json:"mitigation_strategies"`
}

type RegulatoryEnvironment struct {
	RegulatoryComplexity   string   `json:"regulatory_complexity"` // Low | Medium | High
	KeyRegulations         []string `json:"key_regulations"`
	ComplianceRequirements []string `json:"compliance_requirements"`
	RegulatoryTrends       []string `json:"regulatory_trends"`
}

type TechnologyImpact struct {
	DisruptionLevel            string   `json:"disruption_level"` // Low | Medium | High
	EmergingTechnologies       []string `json:"emerging_technologies"`
	AdoptionTimeline           string   `json:"adoption_timeline"`
	ImpactOnTraditionalPlayers string   `json:"impact_on_traditional_players"`
}

type ResearchRecommendation struct {
	Priority       string `json:"priority"` // High | Medium | Low
	Recommendation string `json:"recommendation"`
	Rationale      string `json:"rationale"`
	ExpectedImpact string `json:"expected_impact"`
}

type RiskAssessment struct {
	OverallRiskLevel     string   `json:"overall_risk_level"` // Low | Medium | High
	KeyRisks             []string `json:"key_risks"`
	MitigationStrategies []string `json:"mitigation_strategies"`
}
