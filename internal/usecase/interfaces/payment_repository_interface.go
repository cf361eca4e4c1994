package interfaces

import (
	"context"

	"assistente_juridico/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for confirmed payments.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListByLawyerID(ctx context.Context, lawyerID string) ([]entities.Payment, error)
}
