package interfaces

import (
	"context"

	"assistente_juridico/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment collaborator (e.g. Mercado Pago).
//
// CreatePaymentIntent asks for a token to charge `amount` minor units (centavos).
type IPaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, description string) (entities.PaymentIntent, error)
}
