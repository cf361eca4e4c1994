package entities

import "time"

// ProcessStatus is the generation lifecycle of a GeneratedProcess.
//
//	pending -> completed (DownloadURL set)
//	pending -> failed    (FailureReason set) -> pending (retry)
type ProcessStatus string

const (
	ProcessStatusPending   ProcessStatus = "pending"
	ProcessStatusCompleted ProcessStatus = "completed"
	ProcessStatusFailed    ProcessStatus = "failed"
)

// GeneratedProcess is a simulated legal document produced from a chat.
//
// DownloadURL is non-empty iff Status is completed.
type GeneratedProcess struct {
	ID            string        `json:"id"`
	OwnerID       string        `json:"owner_id"`
	Title         string        `json:"title"`
	ChatID        string        `json:"chat_id"`
	CreatedAt     time.Time     `json:"created_at"`
	FileName      string        `json:"file_name"`
	Status        ProcessStatus `json:"status"`
	Category      LegalCategory `json:"category"`
	Pages         int           `json:"pages"`
	DownloadURL   string        `json:"download_url,omitempty"`
	FailureReason string        `json:"failure_reason,omitempty"`
}
