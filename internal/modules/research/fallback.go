package research

import (
	"fmt"

	"github.com/foundrbox/core/internal/models"
)

// fallbackResult substitutes a deterministic, schema-conformant analysis when
// the completion output cannot be trusted. The numbers are deliberately
// conservative placeholders; the narrative fields point the founder back at
// primary research.
func fallbackResult(projectTitle, industrySector, targetMarket string) models.ResearchResult {
	return models.ResearchResult{
		MarketOverview: models.MarketOverview{
			MarketSizeUSD:        0,
			GrowthRatePercentage: 0,
			MarketMaturity:       "Growth",
			KeyDrivers: []string{
				fmt.Sprintf("Demand signals in the %s sector", industrySector),
				"Shifting customer expectations",
				"Technology-driven cost reduction",
			},
		},
		IndustryTrends: []models.IndustryTrend{
			{
				TrendName:   "Digital adoption",
				Description: fmt.Sprintf("Buyers in %s increasingly expect digital-first solutions", targetMarket),
				ImpactLevel: "Medium",
				TimeHorizon: "Medium-term",
				Opportunities: []string{
					"Meet buyers where adoption is already happening",
					"Differentiate on ease of onboarding",
				},
			},
		},
		CompetitiveLandscape: models.CompetitiveLandscape{
			CompetitionIntensity: "Medium",
			KeyPlayers:           []models.KeyPlayer{},
			MarketGaps: []string{
				"Underserved smaller customers",
				"Integration gaps between incumbent tools",
				"Lack of transparent pricing",
			},
		},
		CustomerAnalysis: models.CustomerAnalysis{
			PrimarySegments: []models.CustomerSegment{
				{
					SegmentName:     targetMarket,
					SizePercentage:  100,
					Characteristics: []string{"Early majority", "Price sensitive"},
					PainPoints:      []string{"Fragmented tooling", "Manual workflows"},
					SpendingPower:   "Medium",
				},
			},
			BuyingBehavior:  "Research-driven with short evaluation cycles",
			DecisionFactors: []string{"Price", "Ease of use", "Integration support"},
		},
		MarketOpportunities: []models.MarketOpportunity{
			{
				OpportunityTitle:   fmt.Sprintf("Focused entry for %s", projectTitle),
				Description:        "Start with a narrow segment and expand after early traction",
				PotentialSizeUSD:   0,
				DifficultyLevel:    "Medium",
				TimeToMarket:       "6-12 months",
				RequiredInvestment: "Medium",
				SuccessProbability: 50,
			},
		},
		EntryBarriers: []models.EntryBarrier{
			{
				BarrierType: "Customer acquisition",
				Severity:    "Medium",
				Description: "Building trust with the first customers takes time",
				MitigationStrategies: []string{
					"Leverage design partners",
					"Publish credible early results",
				},
			},
		},
		RegulatoryEnvironment: models.RegulatoryEnvironment{
			RegulatoryComplexity:   "Medium",
			KeyRegulations:         []string{"Data protection requirements"},
			ComplianceRequirements: []string{"Customer data handling policies"},
			RegulatoryTrends:       []string{"Increasing privacy scrutiny"},
		},
		TechnologyImpact: models.TechnologyImpact{
			DisruptionLevel:            "Medium",
			EmergingTechnologies:       []string{"AI-assisted workflows", "API-first platforms"},
			AdoptionTimeline:           "1-3 years",
			ImpactOnTraditionalPlayers: "Incumbents will need to modernize or partner",
		},
		Recommendations: []models.ResearchRecommendation{
			{
				Priority:       "High",
				Recommendation: "Validate demand directly with target customers",
				Rationale:      "Automated analysis was unavailable for this request",
				ExpectedImpact: "Grounded go-to-market assumptions",
			},
			{
				Priority:       "Medium",
				Recommendation: "Map the top five competitors manually",
				Rationale:      "Competitive intensity drives positioning",
				ExpectedImpact: "Sharper differentiation",
			},
		},
		RiskAssessment: models.RiskAssessment{
			OverallRiskLevel: "Medium",
			KeyRisks: []string{
				"Market size assumptions unverified",
				"Competitive response unknown",
				"Adoption may be slower than expected",
			},
			MitigationStrategies: []string{
				"Run primary customer research",
				"Stage investment against validated milestones",
			},
		},
	}
}
