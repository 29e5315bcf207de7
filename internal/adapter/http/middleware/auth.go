package middleware

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"printshop/internal/domain/entities"
	"printshop/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by JWTAuth.
const (
	ContextUserID    = "user_id"
	ContextRole      = "role"
	ContextUserEmail = "user_email"
)

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

// JWTAuth validates an HS256 Bearer token signed with secret and stores the
// caller identity in the gin context. The sub claim may be a string or a
// number; a missing role means student.
func JWTAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		if len(key) == 0 {
			log.Printf("[auth][middleware] JWT_SECRET not configured, rejecting request path=%s", c.FullPath())
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication is not configured", http.StatusUnauthorized))
			return
		}

		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized))
			return
		}

		claims := jwt.MapClaims{}
		tok, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errUnexpectedSigningMethod
			}
			return key, nil
		})
		if err != nil || !tok.Valid {
			log.Printf("[auth][middleware] invalid token path=%s err=%v", c.FullPath(), err)
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized))
			return
		}

		who, ok := identityFromClaims(claims)
		if !ok {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token subject", http.StatusUnauthorized))
			return
		}
		c.Set(ContextUserID, who.UserID)
		c.Set(ContextRole, who.Role)
		c.Set(ContextUserEmail, who.Email)
		c.Next()
	}
}

// RequireRole lets the request through only when JWTAuth stored the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != role {
			abort(c, pkg.NewDomainErrorSimple("FORBIDDEN", "You do not have permission to perform this action", http.StatusForbidden))
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the caller stored by JWTAuth; zero when unauthenticated.
func IdentityFrom(c *gin.Context) entities.Identity {
	return entities.Identity{
		UserID: c.GetString(ContextUserID),
		Role:   c.GetString(ContextRole),
		Email:  c.GetString(ContextUserEmail),
	}
}

func identityFromClaims(claims jwt.MapClaims) (entities.Identity, bool) {
	var userID string
	switch sub := claims["sub"].(type) {
	case string:
		userID = strings.TrimSpace(sub)
	case float64:
		userID = strconv.FormatFloat(sub, 'f', -1, 64)
	}
	if userID == "" {
		return entities.Identity{}, false
	}

	role, _ := claims["role"].(string)
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		role = entities.RoleStudent
	}
	email, _ := claims["email"].(string)

	return entities.Identity{UserID: userID, Role: role, Email: strings.TrimSpace(email)}, true
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
