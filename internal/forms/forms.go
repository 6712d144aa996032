// internal/forms/forms.go
// Package forms holds the types shared by every form pipeline.
package forms

// Receipt is the success payload returned to the submitter.
type Receipt struct {
	ApplicantName string `json:"applicant_name"`
	Position      string `json:"position"`
	SubmittedAt   string `json:"submitted_at"`
}
