package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by the security-token header. The token is issued by the
// external authorization service; we only verify the shared-secret signature.
type Claims struct {
	UserID            string `json:"user_id"`
	UserApplicationID string `json:"user_application_id"`
	Name              string `json:"name"`
	Email             string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Credentials is the identity attached to the request context after a
// successful validation. Claims are trusted verbatim.
type Credentials struct {
	UserID          string
	UserApplication string
	UserName        string
	UserEmail       string
}

// ParseToken validates the HS256 signature and expiry of a security token.
func ParseToken(tokenStr string, secret []byte) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("could not extract claims")
	}
	return claims, nil
}
