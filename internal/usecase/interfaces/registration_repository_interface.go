package interfaces

import (
	"context"

	"assistente_juridico/internal/domain/entities"
)

// IRegistrationRepository keeps in-flight wizard sessions.
type IRegistrationRepository interface {
	Save(ctx context.Context, s entities.RegistrationSession) error
	GetByID(ctx context.Context, id string) (entities.RegistrationSession, error)
}
