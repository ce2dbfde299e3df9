package validation

import (
	"fmt"

	"github.com/foundrbox/core/internal/models"
)

// fallbackResult substitutes a deterministic, schema-conformant validation
// when the completion output cannot be trusted. Parameterized only by the
// request's title and description; repeated calls are byte-identical.
func fallbackResult(ideaTitle, ideaDescription string) models.ValidationResult {
	return models.ValidationResult{
		OverallScore: 70,
		CategoryScores: models.CategoryScores{
			ProblemClarity:       70,
			SolutionFit:          70,
			ValueProposition:     70,
			TechnicalFeasibility: 70,
			BusinessModel:        65,
			ExecutionReadiness:   65,
		},
		Strengths: []string{
			fmt.Sprintf("%s addresses a concrete problem space", ideaTitle),
			fmt.Sprintf("The concept is clearly articulated: %s", truncate(ideaDescription, 120)),
			"The solution can be validated incrementally",
		},
		Weaknesses: []string{
			"The differentiation from existing solutions needs sharpening",
			"Monetization assumptions are untested",
			"Execution complexity is not yet scoped",
		},
		Opportunities: []string{
			"Narrow the initial target segment to accelerate learning",
			"Prototype the riskiest assumption first",
			"Strengthen the value proposition with early user feedback",
		},
		Risks: []string{
			"Key technical assumptions remain unproven",
			"Early execution may outpace available resources",
			"The business model may need iteration after launch",
		},
		Recommendations: []string{
			fmt.Sprintf("Interview potential users about the problem %s solves", ideaTitle),
			"Define a minimal prototype scope",
			"Set measurable validation criteria before building",
		},
		NextSteps: []string{
			"Run problem-validation interviews",
			"Build a low-fidelity prototype",
			"Test willingness to pay with a landing page",
		},
		ValidationMethods: []string{
			"Customer discovery interviews",
			"Prototype usability sessions",
			"Smoke tests for the value proposition",
		},
		FeasibilityAssessment: models.FeasibilityAssessment{
			TechnicalComplexity: "Medium",
			ResourceIntensity:   "Medium",
			TimeToPrototype:     "1-2 months",
		},
		ImprovementSuggestions: []string{
			"Clarify the single most painful problem being solved",
			"Reduce scope to the core differentiating feature",
			"Document the riskiest assumptions explicitly",
		},
		SuccessLikelihood: "Medium",
		InnovationLevel:   "Significant",
	}
}

func truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
