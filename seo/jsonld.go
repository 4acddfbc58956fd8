package seo

import "encoding/json"

// Paths with a page-specific structured-data shape.
const (
	DecisionHelperPath = "/decision-helper"
	ComparisonPath     = "/comparison"
)

// StructuredData returns the schema.org payload for path. Every path gets the
// WebSite base; the decision helper and comparison pages override its type.
func StructuredData(path string, site Site) map[string]any {
	site = site.WithDefaults()
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        site.Name,
		"url":         site.URL,
		"description": siteDescription,
	}

	switch path {
	case DecisionHelperPath:
		data["@type"] = "FAQPage"
		data["mainEntity"] = []map[string]any{{
			"@type": "Question",
			"name":  "Should I choose React or Vue?",
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  "It depends on your project requirements, team experience, and preferences. Our interactive tool helps you make an informed decision based on your specific needs.",
			},
		}}
	case ComparisonPath:
		data["@type"] = "TechArticle"
		data["headline"] = "React vs Vue Code Comparison"
		data["author"] = map[string]any{
			"@type": "Organization",
			"name":  "VueVReact",
		}
	}
	return data
}

// JSON marshals v to a compact JSON string, or "{}" if v cannot be encoded.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
