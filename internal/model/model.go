package model

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type SubmitRequest struct {
	RawText string `json:"rawText"`
	URL     string `json:"url"`
	Source  string `json:"source"`
}

type ListResponse struct {
	Transcripts []Transcript `json:"transcripts"`
}

// ExportRequest is the in-memory payload exports run against; adapters
// never re-read storage.
type ExportRequest struct {
	Summary     string       `json:"summary"`
	ActionItems []ActionItem `json:"actionItems"`
}
