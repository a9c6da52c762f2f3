package candidates

import "time"

// Extraction status of the candidate's structured profile.
const (
	ExtractionNone   = "none"
	ExtractionOK     = "ok"
	ExtractionFailed = "failed"
)

// Candidate is a person tracked in the hiring pipeline.
type Candidate struct {
	ID               string    `json:"id"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	ResumeKey        string    `json:"-"`
	ResumeFileName   string    `json:"resumeFileName,omitempty"`
	ResumeMimeType   string    `json:"resumeMimeType,omitempty"`
	Profile          Profile   `json:"profile"`
	ExtractionStatus string    `json:"extractionStatus"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Education is one entry of a candidate's education history.
type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduationDate"`
}

// Experience is one entry of a candidate's work history.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Profile is the structured data extracted from a candidate's resume.
// It is overwritten whenever a new resume is uploaded; last write wins.
type Profile struct {
	Skills         []string     `json:"skills"`
	Education      []Education  `json:"education"`
	Experience     []Experience `json:"experience"`
	Certifications []string     `json:"certifications"`
	Summary        string       `json:"summary"`
}

// IsEmpty reports whether the profile carries no extracted data.
func (p Profile) IsEmpty() bool {
	return len(p.Skills) == 0 &&
		len(p.Education) == 0 &&
		len(p.Experience) == 0 &&
		len(p.Certifications) == 0 &&
		p.Summary == ""
}
