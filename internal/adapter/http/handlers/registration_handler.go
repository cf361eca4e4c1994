package handlers

import (
	"net/http"

	request "assistente_juridico/internal/adapter/http/dto/request"
	response "assistente_juridico/internal/adapter/http/dto/response"
	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegistrationHandler exposes the signup wizard.
type RegistrationHandler struct {
	usecase usecase.IRegistrationUseCase
}

func NewRegistrationHandler(uc usecase.IRegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{usecase: uc}
}

// Start godoc
// @Summary  Start a registration
// @Tags     registrations
// @Produce  json
// @Success  201 {object} response.RegistrationResponse
// @Router   /v1/registrations [post]
func (h *RegistrationHandler) Start(c *gin.Context) {
	s, err := h.usecase.Start(c.Request.Context())
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRegistration(s))
}

func (h *RegistrationHandler) Get(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRegistration(s))
}

// UpdateProfile godoc
// @Summary  Patch step-one fields; CPF and OAB come back masked
// @Tags     registrations
// @Accept   json
// @Produce  json
// @Param    id   path string true "registration id"
// @Param    body body request.RegistrationProfileRequest true "changed fields"
// @Success  200 {object} response.RegistrationResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /v1/registrations/{id}/profile [patch]
func (h *RegistrationHandler) UpdateProfile(c *gin.Context) {
	var payload request.RegistrationProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	s, err := h.usecase.UpdateProfile(c.Request.Context(), c.Param("id"), usecase.ProfilePatch{
		FullName: payload.FullName,
		Email:    payload.Email,
		CPF:      payload.CPF,
		OAB:      payload.OAB,
		OABState: payload.OABState,
		Password: payload.Password,
	})
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRegistration(s))
}

func (h *RegistrationHandler) Advance(c *gin.Context) {
	s, err := h.usecase.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRegistration(s))
}

// SelectLicense godoc
// @Summary  Select a tier and request its payment intent
// @Description A failed intent is reported in payment_intent with retryable=true.
// @Tags     registrations
// @Accept   json
// @Produce  json
// @Param    id   path string true "registration id"
// @Param    body body request.SelectLicenseRequest true "tier"
// @Success  200 {object} response.RegistrationResponse
// @Router   /v1/registrations/{id}/license [post]
func (h *RegistrationHandler) SelectLicense(c *gin.Context) {
	var payload request.SelectLicenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	s, err := h.usecase.SelectLicense(c.Request.Context(), c.Param("id"), entities.LicenseType(payload.LicenseType))
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRegistration(s))
}

func (h *RegistrationHandler) RetryPaymentIntent(c *gin.Context) {
	s, err := h.usecase.RetryPaymentIntent(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRegistration(s))
}

// ConfirmPayment godoc
// @Summary  Confirm payment and create the account
// @Tags     registrations
// @Accept   json
// @Produce  json
// @Param    id   path string true "registration id"
// @Param    body body request.ConfirmPaymentRequest false "optional card sub-form"
// @Success  200 {object} response.RegistrationResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /v1/registrations/{id}/payment/confirm [post]
func (h *RegistrationHandler) ConfirmPayment(c *gin.Context) {
	var payload request.ConfirmPaymentRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, errInvalidRequest)
			return
		}
	}

	s, err := h.usecase.ConfirmPayment(c.Request.Context(), c.Param("id"), payload.CardDetails())
	if err != nil {
		zap.L().Info("[registration][handler] confirm failed", zap.String("registration_id", c.Param("id")), zap.Error(err))
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRegistration(s))
}
