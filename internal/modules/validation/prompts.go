package validation

import (
	"fmt"
	"strings"
)

const systemInstruction = `You are an expert startup idea validator with 20+ years of experience. Focus on CORE IDEA VALIDATION, not market research (that's handled separately).

EVALUATION CRITERIA (0-100 each):
1. Problem Clarity & Validation - Is the problem well-defined and real?
2. Solution Fit & Innovation - How well does the solution address the problem?
3. Value Proposition Strength - Is the value clear and compelling?
4. Technical Feasibility - Can this be built with current technology?
5. Business Model Viability - Does the monetization make sense?
6. Execution Readiness - How ready is this for implementation?

RESPONSE FORMAT (JSON ONLY):
{
  "overall_score": number (0-100),
  "category_scores": {
    "problem_clarity": number,
    "solution_fit": number,
    "value_proposition": number,
    "technical_feasibility": number,
    "business_model": number,
    "execution_readiness": number
  },
  "strengths": ["Clear strength about the core idea", "Another strength about execution", "Value proposition strength"],
  "weaknesses": ["Specific weakness about the idea", "Implementation challenge", "Business model concern"],
  "opportunities": ["How to improve the core concept", "Execution opportunity", "Value enhancement opportunity"],
  "risks": ["Technical risk", "Execution risk", "Business model risk"],
  "recommendations": ["Specific actionable recommendation", "Implementation suggestion", "Improvement recommendation"],
  "next_steps": ["Immediate validation step", "Prototype/MVP step", "Testing step"],
  "validation_methods": ["How to validate the problem", "How to test the solution", "How to validate value proposition"],
  "feasibility_assessment": {
    "technical_complexity": "Low" | "Medium" | "High",
    "resource_intensity": "Low" | "Medium" | "High",
    "time_to_prototype": "1-2 weeks" | "1-2 months" | "3-6 months" | "6+ months"
  },
  "improvement_suggestions": ["How to make the idea stronger", "How to reduce risks", "How to improve execution"],
  "success_likelihood": "Low" | "Medium" | "High",
  "innovation_level": "Incremental" | "Significant" | "Breakthrough"
}

Focus on idea quality, not market size. Be constructive and specific.`

const notSpecified = "Not specified"

// buildPrompt interpolates the request fields into the validation prompt.
// Pure: the same DTO always yields the same prompt text.
func buildPrompt(dto *ValidateIdeaDTO) string {
	var b strings.Builder
	b.WriteString("STARTUP IDEA VALIDATION REQUEST:\n\n")
	fmt.Fprintf(&b, "Title: %s\n\n", dto.IdeaTitle)
	fmt.Fprintf(&b, "Description: %s\n\n", dto.IdeaDescription)
	fmt.Fprintf(&b, "Target Audience: %s\n\n", orNotSpecified(dto.TargetAudience))
	fmt.Fprintf(&b, "Problem it Solves: %s\n\n", orNotSpecified(dto.ProblemSolving))
	fmt.Fprintf(&b, "Unique Value Proposition: %s\n\n", orNotSpecified(dto.UniqueValueProposition))
	fmt.Fprintf(&b, "Business Model: %s\n\n", orNotSpecified(dto.BusinessModel))
	fmt.Fprintf(&b, "Technical Feasibility Thoughts: %s\n\n", orNotSpecified(dto.TechnicalFeasibility))
	fmt.Fprintf(&b, "Resource Requirements: %s\n\n", orNotSpecified(dto.ResourceRequirements))
	b.WriteString("Please provide a comprehensive IDEA validation analysis focusing on the core concept, solution quality, and execution potential. Avoid deep market analysis.")
	return b.String()
}

func orNotSpecified(v string) string {
	if strings.TrimSpace(v) == "" {
		return notSpecified
	}
	return v
}
