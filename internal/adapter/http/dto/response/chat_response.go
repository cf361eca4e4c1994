package response

import (
	"time"

	"assistente_juridico/internal/domain/entities"
)

type AttachmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

type MessageResponse struct {
	ID          string               `json:"id"`
	Content     string               `json:"content"`
	Role        string               `json:"role"`
	Timestamp   time.Time            `json:"timestamp"`
	Attachments []AttachmentResponse `json:"attachments,omitempty"`
}

type ChatResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Category  string            `json:"category"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	Messages  []MessageResponse `json:"messages"`
}

// ChatSummaryResponse is the sidebar entry; it omits the message bodies.
type ChatSummaryResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	MessageCount int       `json:"message_count"`
}

func FromAttachments(as []entities.Attachment) []AttachmentResponse {
	out := make([]AttachmentResponse, 0, len(as))
	for _, a := range as {
		out = append(out, AttachmentResponse{ID: a.ID, Name: a.Name, Type: a.Type, URL: a.URL, Size: a.Size})
	}
	return out
}

func FromChat(c entities.Chat) ChatResponse {
	msgs := make([]MessageResponse, 0, len(c.Messages))
	for _, m := range c.Messages {
		mr := MessageResponse{ID: m.ID, Content: m.Content, Role: string(m.Role), Timestamp: m.Timestamp}
		if len(m.Attachments) > 0 {
			mr.Attachments = FromAttachments(m.Attachments)
		}
		msgs = append(msgs, mr)
	}
	return ChatResponse{
		ID:        c.ID,
		Title:     c.Title,
		Category:  string(c.Category),
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		Messages:  msgs,
	}
}

func FromChatSummaries(cs []entities.Chat) []ChatSummaryResponse {
	out := make([]ChatSummaryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, ChatSummaryResponse{
			ID:           c.ID,
			Title:        c.Title,
			Category:     string(c.Category),
			Status:       string(c.Status),
			CreatedAt:    c.CreatedAt,
			MessageCount: len(c.Messages),
		})
	}
	return out
}

// StagedAttachmentsResponse is the current selection plus the limits it was checked against.
type StagedAttachmentsResponse struct {
	Files     []AttachmentResponse `json:"files"`
	TotalSize int64                `json:"total_size"`
	MaxFiles  int                  `json:"max_files"`
	MaxBytes  int64                `json:"max_bytes"`
}

func FromStaged(as []entities.Attachment, maxFiles int, maxBytes int64) StagedAttachmentsResponse {
	var total int64
	for _, a := range as {
		total += a.Size
	}
	return StagedAttachmentsResponse{Files: FromAttachments(as), TotalSize: total, MaxFiles: maxFiles, MaxBytes: maxBytes}
}
