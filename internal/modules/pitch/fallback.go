package pitch

import (
	"fmt"

	"github.com/foundrbox/core/internal/models"
)

// fallbackPitch substitutes a deterministic two-slide deck when the
// completion output cannot be trusted. Effectiveness score 70 and readiness
// "Getting Ready" signal to the SPA that the deck is a starting point.
func fallbackPitch(ideaTitle string) models.PitchContent {
	return models.PitchContent{
		ExecutiveSummary: models.ExecutiveSummary{
			PitchTheme:           fmt.Sprintf("Investor presentation for %s", ideaTitle),
			KeyNarrative:         "A compelling startup opportunity with strong market potential",
			TargetAudience:       "VCs",
			PresentationDuration: "10 minutes",
			TotalSlides:          10,
		},
		Slides: []models.PitchSlide{
			{
				SlideNumber:           1,
				Title:                 "Problem",
				Purpose:               "Establish the pain point your startup solves",
				ContentStrategy:       "Start with a relatable problem that your target audience experiences",
				KeyElements:           []string{"Problem statement", "Market pain point", "Current solutions limitations"},
				VisualRecommendations: "Use compelling statistics or customer quotes",
				TalkingPoints:         []string{"Describe the problem clearly", "Show market size affected", "Explain why it matters now"},
				DurationSeconds:       60,
				DesignTips:            "Use bold, impactful visuals that resonate emotionally",
			},
			{
				SlideNumber:           2,
				Title:                 "Solution",
				Purpose:               "Present your unique solution to the identified problem",
				ContentStrategy:       "Show how your product/service elegantly solves the problem",
				KeyElements:           []string{"Core solution", "Key features", "Unique approach"},
				VisualRecommendations: "Product screenshots, demos, or mockups",
				TalkingPoints:         []string{"Explain your solution simply", "Highlight key differentiators", "Show ease of use"},
				DurationSeconds:       90,
				DesignTips:            "Make the solution feel tangible and achievable",
			},
		},
		StorytellingFlow: models.StorytellingFlow{
			Hook:                 "Start with a compelling problem that everyone can relate to",
			ProblemNarrative:     "Build urgency around the pain point",
			SolutionReveal:       "Present your solution as the obvious answer",
			MarketOpportunity:    "Show the massive potential",
			CompetitiveAdvantage: "Explain why you'll win",
			TractionStory:        "Prove early success and momentum",
			FinancialProjection:  "Demonstrate clear path to profitability",
			CallToAction:         "Make a specific, compelling ask",
		},
		DesignGuidelines: models.DesignGuidelines{
			ColorScheme:               "Professional blue and white with accent colors",
			TypographyRecommendations: "Clean, modern fonts like Helvetica or Arial",
			VisualStyle:               "Modern",
			ImageSuggestions:          []string{"High-quality product shots", "Customer testimonials"},
			ChartTypes:                []string{"Bar charts", "Line graphs"},
			BrandingTips:              "Keep consistent colors and fonts throughout",
		},
		PresenterTips: models.PresenterTips{
			OpeningStrategy:      "Start with a compelling hook or question",
			BodyLanguage:         "Maintain confident posture and eye contact",
			TransitionTechniques: []string{"Use connecting phrases", "Reference previous slides"},
			HandlingQuestions:    "Listen carefully and provide concise answers",
			ClosingStrategy:      "End with a clear call to action",
		},
		CustomizationSuggestions: []models.CustomizationSuggestion{
			{
				AudienceType:  "Angel Investors",
				Modifications: "Focus more on team and early traction",
				EmphasisAreas: []string{"Team experience", "Early customers"},
			},
		},
		SuccessMetrics: models.SuccessMetrics{
			PitchEffectivenessScore: 70,
			InvestorReadiness:       "Getting Ready",
			Strengths:               []string{"Clear problem definition", "Innovative solution", "Strong team"},
			ImprovementAreas:        []string{"Need more traction data", "Clearer financial projections", "Stronger competitive analysis"},
		},
	}
}
