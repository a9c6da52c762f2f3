// Package radar derives per-domain sub-scores from an overall match score
// for radar-chart display. It is a display heuristic, not a scoring
// authority: the values visualize a breakdown of an already-computed score
// and must never gate decisions.
package radar

import "strings"

// DomainScore is one spoke of the radar chart.
type DomainScore struct {
	Subject string  `json:"subject"`
	Value   float64 `json:"value"`
}

// Display domains in fixed order.
const (
	SubjectQualifications  = "Qualifications"
	SubjectExperience      = "Experience"
	SubjectTechnicalSkills = "Technical Skills"
	SubjectSoftSkills      = "Soft Skills"
	SubjectCulturalFit     = "Cultural Fit"
)

// neutralBonus is added when a domain has no relevant skills on either side.
const neutralBonus = 25

type domain struct {
	subject  string
	keywords []string
}

// The keyword buckets are fixed for reproducibility; a skill counts toward a
// domain when its lowercased text contains any bucket keyword.
var domains = []domain{
	{SubjectQualifications, []string{"certification", "qualification", "degree", "education"}},
	{SubjectExperience, []string{"experience", "years", "history", "background"}},
	{SubjectTechnicalSkills, []string{"skill", "technical", "program", "system"}},
	{SubjectSoftSkills, []string{"communication", "teamwork", "leadership", "interpersonal"}},
	{SubjectCulturalFit, []string{"culture", "values", "community", "care"}},
}

// Decompose maps an overall score plus matched/missing skill sets onto the
// five display domains. Always returns exactly five entries in fixed order;
// every value is clamped to [0,100].
//
// Per domain: base = score/2; if any matched or missing skill mentions the
// domain, add (matched ratio)*50, otherwise add the neutral midpoint of 25.
func Decompose(score int, matchedSkills, missingSkills []string) []DomainScore {
	base := float64(score) * 0.5

	out := make([]DomainScore, 0, len(domains))
	for _, d := range domains {
		matched := countRelevant(matchedSkills, d.keywords)
		missing := countRelevant(missingSkills, d.keywords)

		value := base
		if total := matched + missing; total > 0 {
			value += float64(matched) / float64(total) * 50
		} else {
			value += neutralBonus
		}

		out = append(out, DomainScore{Subject: d.subject, Value: clamp(value)})
	}
	return out
}

func countRelevant(skills []string, keywords []string) int {
	count := 0
	for _, skill := range skills {
		lowered := strings.ToLower(skill)
		for _, keyword := range keywords {
			if strings.Contains(lowered, keyword) {
				count++
				break
			}
		}
	}
	return count
}

func clamp(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
