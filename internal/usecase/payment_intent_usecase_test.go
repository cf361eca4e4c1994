package usecase

import (
	"context"
	"errors"
	"testing"

	"assistente_juridico/internal/domain/entities"
	mock_interfaces "assistente_juridico/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentIntentUseCase_Create(t *testing.T) {
	t.Run("rejects non-positive amount", func(t *testing.T) {
		uc := NewPaymentIntentUseCase(nil)
		for _, amount := range []int64{0, -1} {
			if _, err := uc.Create(context.Background(), amount, ""); !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("amount %d: expected ErrInvalidAmount, got %v", amount, err)
			}
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentIntentUseCase(nil)
		if _, err := uc.Create(context.Background(), 100, ""); !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().CreatePaymentIntent(gomock.Any(), int64(37990), "Assinatura Pro").
			Return(entities.PaymentIntent{ClientSecret: "pi_1_secret", Amount: 37990, Currency: "BRL"}, nil)

		intent, err := NewPaymentIntentUseCase(gw).Create(context.Background(), 37990, "Assinatura Pro")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.ClientSecret != "pi_1_secret" {
			t.Fatalf("unexpected intent: %+v", intent)
		}
	})

	t.Run("gateway error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().CreatePaymentIntent(gomock.Any(), int64(100), "").Return(entities.PaymentIntent{}, errors.New("timeout"))

		_, err := NewPaymentIntentUseCase(gw).Create(context.Background(), 100, "")
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})
}

func TestPaymentIntentUseCase_Request(t *testing.T) {
	t.Run("failure is retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().CreatePaymentIntent(gomock.Any(), int64(19990), gomock.Any()).Return(entities.PaymentIntent{}, errors.New("boom"))

		res := NewPaymentIntentUseCase(gw).Request(context.Background(), 19990, "x")
		if res.Status != entities.PaymentIntentFailed || !res.Retryable || res.Reason == "" || res.Intent != nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("invalid amount is not retryable", func(t *testing.T) {
		res := NewPaymentIntentUseCase(nil).Request(context.Background(), 0, "x")
		if res.Status != entities.PaymentIntentFailed || res.Retryable {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().CreatePaymentIntent(gomock.Any(), int64(19990), gomock.Any()).Return(entities.PaymentIntent{ClientSecret: "s"}, nil)

		res := NewPaymentIntentUseCase(gw).Request(context.Background(), 19990, "x")
		if res.Status != entities.PaymentIntentReady || res.Intent == nil || res.Intent.ClientSecret != "s" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
