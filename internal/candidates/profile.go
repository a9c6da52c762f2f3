package candidates

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseProfile decodes a provider payload into a Profile. Malformed JSON is a
// hard failure; there is no partial-parse recovery.
func ParseProfile(raw json.RawMessage) (Profile, error) {
	if len(raw) == 0 {
		return Profile{}, fmt.Errorf("empty profile payload")
	}

	var profile Profile
	decoder := json.NewDecoder(strings.NewReader(string(raw)))
	if err := decoder.Decode(&profile); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}

	profile.Skills = cleanStrings(profile.Skills)
	profile.Certifications = cleanStrings(profile.Certifications)
	profile.Summary = strings.TrimSpace(profile.Summary)
	return profile, nil
}

// Text serializes the profile for the scoring prompt.
func (p Profile) Text() string {
	var b strings.Builder

	if p.Summary != "" {
		b.WriteString("Summary: ")
		b.WriteString(p.Summary)
		b.WriteString("\n\n")
	}

	if len(p.Skills) > 0 {
		b.WriteString("Skills: ")
		b.WriteString(strings.Join(p.Skills, ", "))
		b.WriteString("\n\n")
	}

	if len(p.Experience) > 0 {
		b.WriteString("Experience:\n")
		for _, exp := range p.Experience {
			fmt.Fprintf(&b, "- %s at %s (%s - %s): %s\n", exp.Position, exp.Company, exp.StartDate, exp.EndDate, exp.Description)
		}
		b.WriteString("\n")
	}

	if len(p.Education) > 0 {
		b.WriteString("Education:\n")
		for _, edu := range p.Education {
			fmt.Fprintf(&b, "- %s in %s, %s (%s)\n", edu.Degree, edu.Field, edu.Institution, edu.GraduationDate)
		}
		b.WriteString("\n")
	}

	if len(p.Certifications) > 0 {
		b.WriteString("Certifications: ")
		b.WriteString(strings.Join(p.Certifications, ", "))
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

func cleanStrings(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
