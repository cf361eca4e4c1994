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

// ProfileHandler serves the dashboard profile, subscription and credit pages.
type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// Me godoc
// @Summary  Signed-in lawyer with payment history
// @Tags     profile
// @Produce  json
// @Success  200 {object} response.ProfileResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /v1/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	p, err := h.usecase.Me(c.Request.Context(), id.OwnerID)
	if err != nil {
		writeError(c, mapProfileError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p.Lawyer, p.Payments))
}

func (h *ProfileHandler) Update(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	var payload request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	l, err := h.usecase.UpdateProfile(c.Request.Context(), id.OwnerID, payload.FullName, payload.Email)
	if err != nil {
		writeError(c, mapProfileError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLawyer(l))
}

func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	var payload request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	err := h.usecase.ChangePassword(c.Request.Context(), id.OwnerID, payload.CurrentPassword, payload.NewPassword, payload.ConfirmPassword)
	if err != nil {
		writeError(c, mapProfileError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) ChangeSubscription(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	var payload request.SubscriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	res, err := h.usecase.ChangeSubscription(c.Request.Context(), id.OwnerID, entities.LicenseType(payload.LicenseType))
	if err != nil {
		zap.L().Info("[profile][handler] subscription change failed", zap.String("lawyer_id", id.OwnerID), zap.Error(err))
		writeError(c, mapProfileError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPurchase(res.Lawyer, res.PaymentIntent, res.Payment))
}

func (h *ProfileHandler) AddCredits(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	var payload request.CreditsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	res, err := h.usecase.AddCredits(c.Request.Context(), id.OwnerID, payload.Amount)
	if err != nil {
		writeError(c, mapProfileError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPurchase(res.Lawyer, res.PaymentIntent, res.Payment))
}
