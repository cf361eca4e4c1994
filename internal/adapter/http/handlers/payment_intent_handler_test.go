package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"assistente_juridico/internal/adapter/http/handlers/mocks"
	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentIntentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns client secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentIntentHandler(uc)

		uc.EXPECT().Create(gomock.Any(), int64(9990), "Licença Pro").
			Return(entities.PaymentIntent{ClientSecret: "pi_1_secret", Amount: 9990, Currency: "brl"}, nil)

		r := gin.New()
		r.POST("/api/create-payment-intent", h.Create)
		w := doJSON(r, http.MethodPost, "/api/create-payment-intent", `{"amount":9990,"description":"Licença Pro"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["clientSecret"] != "pi_1_secret" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	for _, payload := range []string{`{}`, `{"amount":12.5}`, `{"amount":"x"}`, `{`} {
		t.Run(fmt.Sprintf("rejects %s", payload), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPaymentIntentUseCase(ctrl)
			h := NewPaymentIntentHandler(uc)

			r := gin.New()
			r.POST("/api/create-payment-intent", h.Create)
			w := doJSON(r, http.MethodPost, "/api/create-payment-intent", payload)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}

	t.Run("non positive amount is mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentIntentHandler(uc)

		uc.EXPECT().Create(gomock.Any(), int64(0), "").Return(entities.PaymentIntent{}, usecase.ErrInvalidAmount)

		r := gin.New()
		r.POST("/api/create-payment-intent", h.Create)
		w := doJSON(r, http.MethodPost, "/api/create-payment-intent", `{"amount":0}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway failure is 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentIntentHandler(uc)

		uc.EXPECT().Create(gomock.Any(), int64(100), "").Return(entities.PaymentIntent{}, usecase.ErrPaymentGatewayUnavailable)

		r := gin.New()
		r.POST("/api/create-payment-intent", h.Create)
		w := doJSON(r, http.MethodPost, "/api/create-payment-intent", `{"amount":100}`)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
