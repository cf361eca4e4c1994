package response

import (
	"time"

	"assistente_juridico/internal/domain/entities"
)

type ProcessResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	ChatID        string    `json:"chat_id"`
	CreatedAt     time.Time `json:"created_at"`
	FileName      string    `json:"file_name"`
	Status        string    `json:"status"`
	Category      string    `json:"category"`
	Pages         int       `json:"pages"`
	DownloadURL   string    `json:"download_url,omitempty"`
	FailureReason string    `json:"failure_reason,omitempty"`
	Retryable     bool      `json:"retryable"`
}

func FromProcess(p entities.GeneratedProcess) ProcessResponse {
	return ProcessResponse{
		ID:            p.ID,
		Title:         p.Title,
		ChatID:        p.ChatID,
		CreatedAt:     p.CreatedAt,
		FileName:      p.FileName,
		Status:        string(p.Status),
		Category:      string(p.Category),
		Pages:         p.Pages,
		DownloadURL:   p.DownloadURL,
		FailureReason: p.FailureReason,
		Retryable:     p.Status == entities.ProcessStatusFailed,
	}
}

func FromProcesses(ps []entities.GeneratedProcess) []ProcessResponse {
	out := make([]ProcessResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProcess(p))
	}
	return out
}

type DownloadResponse struct {
	FileName    string `json:"file_name"`
	DownloadURL string `json:"download_url"`
}
