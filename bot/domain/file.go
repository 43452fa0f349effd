package domain

// MaxUploadBytes is the declared-size ceiling for submitted documents.
// Larger documents are rejected before any storage call.
const MaxUploadBytes = 50 * 1024 * 1024

// SubmittedFile records one accepted assignment submission.
// SubmittedBy is the submitter's display name, not their Telegram id;
// file management lists and deletes entries by that name.
// Records are never mutated after creation.
type SubmittedFile struct {
	FileName       string `json:"file_name"`
	FileID         string `json:"file_id"`
	SubmittedBy    string `json:"submitted_by"`
	Subject        string `json:"subject"`
	SubmissionDate string `json:"submission_date"`
}
