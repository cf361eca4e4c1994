package entities

import "time"

// LegalCategory is the fixed practice-area enumeration a chat belongs to.
type LegalCategory string

const (
	CategoryCivil          LegalCategory = "civil"
	CategoryCriminal       LegalCategory = "criminal"
	CategoryLabor          LegalCategory = "labor"
	CategoryBusiness       LegalCategory = "business"
	CategoryTax            LegalCategory = "tax"
	CategoryAdministrative LegalCategory = "administrative"
	CategoryConstitutional LegalCategory = "constitutional"
	CategoryConsumer       LegalCategory = "consumer"
	CategoryVademecum      LegalCategory = "vademecum"
)

type ChatStatus string

const (
	ChatStatusActive   ChatStatus = "active"
	ChatStatusArchived ChatStatus = "archived"
)

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Attachment is a file the lawyer attached to a message.
//
// URL points at the object store copy of the upload; it is only valid for the
// lifetime of the session that produced it.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Message is append-only: once in a chat it is never edited or removed.
type Message struct {
	ID          string       `json:"id"`
	Content     string       `json:"content"`
	Role        MessageRole  `json:"role"`
	Timestamp   time.Time    `json:"timestamp"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Chat is a conversation opened from a legal module.
type Chat struct {
	ID        string        `json:"id"`
	OwnerID   string        `json:"owner_id"`
	Title     string        `json:"title"`
	Messages  []Message     `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
	Category  LegalCategory `json:"category"`
	Status    ChatStatus    `json:"status"`
}

// Clone returns a deep copy so callers never share the coordinator's slices.
func (c Chat) Clone() Chat {
	out := c
	out.Messages = make([]Message, len(c.Messages))
	for i, m := range c.Messages {
		out.Messages[i] = m
		if m.Attachments != nil {
			out.Messages[i].Attachments = append([]Attachment(nil), m.Attachments...)
		}
	}
	return out
}
