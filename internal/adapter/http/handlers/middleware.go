package handlers

import (
	"net/http"
	"strings"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/usecase"
	"assistente_juridico/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "identity"

var errMissingIdentity = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sessão inválida ou expirada", http.StatusUnauthorized)

// RequireAuth verifies the bearer token and stores the identity on the context.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			writeError(c, errMissingIdentity)
			return
		}
		id, err := auth.Authenticate(token)
		if err != nil {
			zap.L().Debug("[auth][middleware] rejected token", zap.Error(err))
			writeError(c, mapAuthError(err))
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

func identityFrom(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return entities.Identity{}, false
	}
	id, ok := v.(entities.Identity)
	return id, ok && id.OwnerID != ""
}

// mustIdentity writes 401 and returns false when the route was mounted without RequireAuth.
func mustIdentity(c *gin.Context) (entities.Identity, bool) {
	id, ok := identityFrom(c)
	if !ok {
		writeError(c, errMissingIdentity)
	}
	return id, ok
}
