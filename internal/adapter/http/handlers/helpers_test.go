package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"assistente_juridico/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var signedIn = entities.Identity{OwnerID: "lawyer-1", Email: "ana@adv.br"}

// as injects an identity the way RequireAuth does.
func as(id entities.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, id)
		c.Next()
	}
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
