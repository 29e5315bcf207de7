package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"printshop/internal/adapter/http/middleware"
	"printshop/internal/domain/entities"
	"printshop/pkg"

	"github.com/gin-gonic/gin"
)

func withIdentity(who entities.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, who.UserID)
		c.Set(middleware.ContextRole, who.Role)
		c.Set(middleware.ContextUserEmail, who.Email)
		c.Next()
	}
}

func newTestRouter(who entities.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(withIdentity(who))
	return r
}

func student() entities.Identity {
	return entities.Identity{UserID: "u1", Role: entities.RoleStudent, Email: "u1@campus.edu"}
}

func admin() entities.Identity {
	return entities.Identity{UserID: "a1", Role: entities.RoleAdmin}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}
