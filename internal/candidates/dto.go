package candidates

type createCandidateRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
}

type listCandidatesResponse struct {
	Candidates []Candidate `json:"candidates"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}
