package middleware

import (
	"errors"
	"net/http"
	"strings"

	"pma_workorders/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// OwnerContextKey is the gin context key under which RequireOwner stores
// the authenticated owner identifier.
const OwnerContextKey = "owner_id"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid credentials", http.StatusUnauthorized)

// RequireOwner validates the HS256 bearer token and stores the opaque owner
// identifier (the sub claim) in the request context. The service only uses
// the identifier for record scoping; everything else about the identity
// provider is outside its concern.
func RequireOwner(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		sub, err := subjectFromToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(OwnerContextKey, sub)
		c.Next()
	}
}

// OwnerID returns the owner identifier set by RequireOwner, or "" when the
// request carried no valid identity.
func OwnerID(c *gin.Context) string {
	return c.GetString(OwnerContextKey)
}

func subjectFromToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("token has no subject")
	}
	return sub, nil
}
