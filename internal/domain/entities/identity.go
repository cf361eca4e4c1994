package entities

// Identity is the authenticated principal behind a session token.
//
// OwnerID partitions chats, processes and staged attachments. Demo visitors get a
// fresh OwnerID per demo session.
type Identity struct {
	OwnerID string `json:"owner_id"`
	Email   string `json:"email,omitempty"`
	Demo    bool   `json:"demo"`
}
