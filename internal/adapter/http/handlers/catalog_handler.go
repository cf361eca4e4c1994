package handlers

import (
	"net/http"

	request "assistente_juridico/internal/adapter/http/dto/request"
	response "assistente_juridico/internal/adapter/http/dto/response"
	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/pkg"

	"github.com/gin-gonic/gin"
)

var errUnknownFormatField = pkg.NewDomainErrorSimple("UNKNOWN_FIELD", "Campo de formatação desconhecido", http.StatusBadRequest)

// CatalogHandler serves the static catalogs and the input masks.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListLicenses godoc
// @Summary  License tiers with display prices
// @Tags     catalog
// @Produce  json
// @Success  200 {array} response.LicenseResponse
// @Router   /v1/licenses [get]
func (h *CatalogHandler) ListLicenses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"licenses":        response.FromLicenses(entities.Licenses()),
		"credit_packages": response.FromCreditPackages(entities.CreditPackages()),
	})
}

func (h *CatalogHandler) ListModules(c *gin.Context) {
	c.JSON(http.StatusOK, entities.Modules())
}

// Format godoc
// @Summary  Apply a form mask (card, expiry, cpf, oab)
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    body body request.FormatRequest true "field and raw value"
// @Success  200 {object} response.FormatResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /v1/format [post]
func (h *CatalogHandler) Format(c *gin.Context) {
	var payload request.FormatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	value, err := payload.Apply()
	if err != nil {
		writeError(c, errUnknownFormatField)
		return
	}
	c.JSON(http.StatusOK, response.FormatResponse{Field: payload.Field, Value: value})
}
