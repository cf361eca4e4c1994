package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

const currencyBRL = "BRL"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidAmount = errors.New("invalid amount")

type MercadoPagoGateway struct {
	client     payment.Client
	mockMode   bool
	payerEmail string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the gateway. In mock mode no SDK client is created
// and every intent is approved locally.
func NewMercadoPagoGateway(accessToken, payerEmail string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		zap.L().Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		zap.L().Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		zap.L().Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	zap.L().Info("[payment][gateway] Mercado Pago client initialized")

	if payerEmail == "" && strings.HasPrefix(accessToken, "TEST-") {
		// Sandbox-safe fallback recommended by Mercado Pago examples.
		payerEmail = "test_user_br@testuser.com"
	}
	return &MercadoPagoGateway{client: payment.NewClient(cfg), payerEmail: payerEmail}, nil
}

func (g *MercadoPagoGateway) CreatePaymentIntent(ctx context.Context, amount int64, description string) (entities.PaymentIntent, error) {
	if amount <= 0 {
		return entities.PaymentIntent{}, ErrInvalidAmount
	}

	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		zap.L().Info("[payment][gateway] mock intent created", zap.String("provider_id", id), zap.Int64("amount", amount))
		return entities.PaymentIntent{
			ClientSecret: fmt.Sprintf("pi_%s_secret_%s", id, uuid.NewString()),
			ProviderID:   id,
			Amount:       amount,
			Currency:     currencyBRL,
			Status:       "approved",
		}, nil
	}

	if g == nil || g.client == nil {
		zap.L().Error("[payment][gateway] gateway not configured")
		return entities.PaymentIntent{}, ErrMercadoPagoGatewayNotConfigured
	}
	zap.L().Info("[payment][gateway] create start", zap.Int64("amount", amount))

	body := map[string]any{
		"transaction_amount": float64(amount) / 100,
		"description":        description,
		"payment_method_id":  "pix",
		"payer": map[string]any{
			"type":  "customer",
			"email": g.payerEmail,
		},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		zap.L().Error("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return entities.PaymentIntent{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		zap.L().Error("[payment][gateway] sdk create failed", zap.Error(err))
		return entities.PaymentIntent{}, err
	}

	providerID := fmt.Sprintf("%d", resp.ID)
	zap.L().Info("[payment][gateway] create success", zap.String("provider_id", providerID), zap.String("provider_status", resp.Status))

	return entities.PaymentIntent{
		ClientSecret: providerID,
		ProviderID:   providerID,
		Amount:       amount,
		Currency:     currencyBRL,
		Status:       resp.Status,
	}, nil
}
