package interfaces

import (
	"time"

	"assistente_juridico/internal/domain/entities"
)

// ITokenIssuer signs and verifies session tokens.
type ITokenIssuer interface {
	Issue(id entities.Identity) (token string, expiresAt time.Time, err error)
	Verify(raw string) (entities.Identity, error)
}
