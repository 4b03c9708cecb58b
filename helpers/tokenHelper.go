package helpers

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// SignedDetails is the JWT payload. Only the user id travels in the token;
// everything else is looked up on each request so stale data cannot leak.
type SignedDetails struct {
	ID int `json:"id"`
	jwt.StandardClaims
}

const tokenDuration = 30 * time.Minute

var ErrInvalidToken = errors.New("token inválido")

// GenerateToken signs a bearer token for the given user, valid for 30
// minutes. There is no refresh token and no server-side session: expiry is
// the only invalidation mechanism.
func GenerateToken(userID int, secret string) (string, error) {
	claims := SignedDetails{
		ID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenDuration).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ValidateToken parses and verifies a signed token, returning its claims.
// Expired, tampered or otherwise malformed tokens all come back as
// ErrInvalidToken.
func ValidateToken(signedToken, secret string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return []byte(secret), nil
		},
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || claims.ID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
