package payments

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway("", "", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	intent, err := g.CreatePaymentIntent(context.Background(), 37990, "Plano Profissional")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.Amount != 37990 || intent.Currency != "BRL" {
		t.Fatalf("unexpected intent: %+v", intent)
	}
	if !strings.HasPrefix(intent.ClientSecret, "pi_"+intent.ProviderID+"_secret_") {
		t.Fatalf("unexpected client secret: %q", intent.ClientSecret)
	}

	if _, err := g.CreatePaymentIntent(context.Background(), 0, ""); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestMercadoPagoGateway_MissingToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway("", "", false); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, err := g.CreatePaymentIntent(context.Background(), 100, ""); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
