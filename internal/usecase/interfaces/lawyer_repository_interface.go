package interfaces

import (
	"context"

	"assistente_juridico/internal/domain/entities"
)

// ILawyerRepository persists registered lawyer accounts.
//
// Lookups return a zero-value Lawyer (empty ID) when nothing matches.
type ILawyerRepository interface {
	Create(ctx context.Context, l entities.Lawyer) (entities.Lawyer, error)
	GetByID(ctx context.Context, id string) (entities.Lawyer, error)
	GetByEmail(ctx context.Context, email string) (entities.Lawyer, error)
	Update(ctx context.Context, l entities.Lawyer) (entities.Lawyer, error)
	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id string) error
}
