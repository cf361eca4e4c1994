package usecase

import (
	"context"
	"errors"
	"fmt"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidAmount             = errors.New("amount must be a positive integer in minor units")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway unavailable")
)

// IPaymentIntentUseCase is the payment-token boundary.
//
// Create is the raw `POST /api/create-payment-intent` contract. Request wraps it in a
// typed result the wizard and the profile keep, so a failure is visible and retryable.
type IPaymentIntentUseCase interface {
	Create(ctx context.Context, amount int64, description string) (entities.PaymentIntent, error)
	Request(ctx context.Context, amount int64, description string) entities.PaymentIntentResult
}

type PaymentIntentUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IPaymentIntentUseCase = (*PaymentIntentUseCase)(nil)

func NewPaymentIntentUseCase(gateway interfaces.IPaymentGateway) *PaymentIntentUseCase {
	return &PaymentIntentUseCase{gateway: gateway}
}

func (u *PaymentIntentUseCase) Create(ctx context.Context, amount int64, description string) (entities.PaymentIntent, error) {
	zap.L().Info("[payment-intent][usecase] create start", zap.Int64("amount", amount))
	if amount <= 0 {
		return entities.PaymentIntent{}, ErrInvalidAmount
	}
	if u.gateway == nil {
		return entities.PaymentIntent{}, fmt.Errorf("%w: gateway not configured", ErrPaymentGatewayUnavailable)
	}

	intent, err := u.gateway.CreatePaymentIntent(ctx, amount, description)
	if err != nil {
		zap.L().Error("[payment-intent][usecase] gateway failed", zap.Int64("amount", amount), zap.Error(err))
		return entities.PaymentIntent{}, fmt.Errorf("%w: %v", ErrPaymentGatewayUnavailable, err)
	}
	zap.L().Info("[payment-intent][usecase] create success",
		zap.Int64("amount", amount), zap.String("provider_id", intent.ProviderID))
	return intent, nil
}

func (u *PaymentIntentUseCase) Request(ctx context.Context, amount int64, description string) entities.PaymentIntentResult {
	intent, err := u.Create(ctx, amount, description)
	if err != nil {
		return entities.PaymentIntentResult{
			Status:    entities.PaymentIntentFailed,
			Reason:    err.Error(),
			Retryable: !errors.Is(err, ErrInvalidAmount),
		}
	}
	return entities.PaymentIntentResult{Status: entities.PaymentIntentReady, Intent: &intent}
}
