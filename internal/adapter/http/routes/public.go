package routes

import (
	"assistente_juridico/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLicenses            = "/licenses"
	PathModules             = "/modules"
	PathFormat              = "/format"
	PathAuth                = "/auth"
	PathRegistrations       = "/registrations"
	PathCreatePaymentIntent = "/create-payment-intent"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	rg.GET(PathLicenses, h.ListLicenses)
	rg.GET(PathModules, h.ListModules)
	rg.POST(PathFormat, h.Format)
}

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	a := rg.Group(PathAuth)
	{
		a.POST("/login", h.Login)
		a.POST("/demo", h.StartDemo)
	}
}

func addRegistrationRoutes(rg *gin.RouterGroup, h *handlers.RegistrationHandler) {
	registrations := rg.Group(PathRegistrations)
	{
		registrations.POST("", h.Start)
		registrations.GET("/:id", h.Get)
		registrations.PATCH("/:id/profile", h.UpdateProfile)
		registrations.POST("/:id/advance", h.Advance)
		registrations.POST("/:id/license", h.SelectLicense)
		registrations.POST("/:id/payment-intent/retry", h.RetryPaymentIntent)
		registrations.POST("/:id/payment/confirm", h.ConfirmPayment)
	}
}

// addPaymentIntentRoutes mounts the endpoint the payment form calls directly.
func addPaymentIntentRoutes(rg *gin.RouterGroup, h *handlers.PaymentIntentHandler) {
	rg.POST(PathCreatePaymentIntent, h.Create)
}
