package growth

import "strings"

// insightRule maps a keyword family in an assistant reply to one advisory
// annotation. Rules are checked in order; each fires at most once per reply.
type insightRule struct {
	insightType string
	title       string
	priority    string
	keywords    []string
}

var insightRules = []insightRule{
	{
		insightType: "strategy",
		title:       "Growth Strategy Discussed",
		priority:    "high",
		keywords:    []string{"strategy", "approach", "framework", "method"},
	},
	{
		insightType: "tactic",
		title:       "Actionable Tactic Shared",
		priority:    "medium",
		keywords:    []string{"tactic", "technique", "hack", "tip", "action"},
	},
	{
		insightType: "metric",
		title:       "Key Metric Highlighted",
		priority:    "low",
		keywords:    []string{"metric", "kpi", "measure", "track", "analyze"},
	},
}

const insightExcerptLen = 200

// extractInsights scans an assistant reply for keyword families and returns
// one insight per matching family, each carrying a 200-character excerpt.
func extractInsights(reply string) []Insight {
	lowered := strings.ToLower(reply)
	insights := make([]Insight, 0, len(insightRules))
	for _, rule := range insightRules {
		if !matchesAny(lowered, rule.keywords) {
			continue
		}
		insights = append(insights, Insight{
			Type:     rule.insightType,
			Title:    rule.title,
			Content:  excerpt(reply, insightExcerptLen),
			Priority: rule.priority,
		})
	}
	return insights
}

func matchesAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func excerpt(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
