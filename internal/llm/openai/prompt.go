package openai

import (
	"fmt"
	"strings"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const (
	systemPromptExtract = "You are a resume parsing engine. Respond with JSON only. No markdown. Never omit keys. Output must match the schema exactly."
	systemPromptScore   = "You are a recruiting analysis engine. Respond with JSON only. No markdown. Never omit keys. Output must match the schema exactly."
)

const extractSchemaPrompt = `Extract the candidate profile from the resume text.
Return a JSON object with exactly these keys:
{
  "skills": ["string"],
  "education": [{"institution": "string", "degree": "string", "field": "string", "graduationDate": "string"}],
  "experience": [{"company": "string", "position": "string", "startDate": "string", "endDate": "string", "description": "string"}],
  "certifications": ["string"],
  "summary": "string"
}
Use empty strings and empty arrays for anything the resume does not state. Never invent data.`

const scoreSchemaPrompt = `Assess how well the candidate matches the job requirements.
Return a JSON object with exactly these keys:
{
  "score": <integer 0-100>,
  "matchedSkills": ["string"],
  "missingSkills": ["string"],
  "comments": "string"
}
score is the overall fit. matchedSkills lists requirement skills the candidate has; missingSkills lists requirement skills the candidate lacks. comments is a short recruiter-facing assessment.`

// BuildExtractPrompt creates the chat messages for a profile extraction request.
func BuildExtractPrompt(resumeText string) []Message {
	return []Message{
		{Role: "system", Content: systemPromptExtract},
		{Role: "developer", Content: extractSchemaPrompt},
		{Role: "user", Content: fmt.Sprintf("Resume Text:\n%s", resumeText)},
	}
}

// BuildScorePrompt creates the chat messages for a match scoring request.
func BuildScorePrompt(jobTitle, profileText, requirementsText string) []Message {
	title := strings.TrimSpace(jobTitle)
	if title == "" {
		title = "N/A"
	}
	requirements := strings.TrimSpace(requirementsText)
	if requirements == "" {
		requirements = "N/A"
	}
	return []Message{
		{Role: "system", Content: systemPromptScore},
		{Role: "developer", Content: scoreSchemaPrompt},
		{Role: "user", Content: fmt.Sprintf("Job Title: %s\n\nJob Requirements:\n%s\n\nCandidate Profile:\n%s", title, requirements, profileText)},
	}
}
