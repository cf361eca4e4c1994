package handlers

import (
	"net/http"

	request "assistente_juridico/internal/adapter/http/dto/request"
	response "assistente_juridico/internal/adapter/http/dto/response"
	"assistente_juridico/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentIntentHandler struct {
	usecase usecase.IPaymentIntentUseCase
}

func NewPaymentIntentHandler(uc usecase.IPaymentIntentUseCase) *PaymentIntentHandler {
	return &PaymentIntentHandler{usecase: uc}
}

// Create godoc
// @Summary  Create a payment intent
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    body body request.CreatePaymentIntentRequest true "amount in centavos"
// @Success  200 {object} response.PaymentIntentResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /api/create-payment-intent [post]
func (h *PaymentIntentHandler) Create(c *gin.Context) {
	var payload request.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Amount == nil {
		writeError(c, mapPaymentIntentError(usecase.ErrInvalidAmount))
		return
	}

	intent, err := h.usecase.Create(c.Request.Context(), *payload.Amount, payload.Description)
	if err != nil {
		writeError(c, mapPaymentIntentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentIntent(intent))
}
