package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/voguevault/voguevault-backend-go/config"
)

// tokenTTL bounds how long a bearer token stays valid. The token is
// stateless; there is no server-side revocation before the expiry.
const tokenTTL = 72 * time.Hour

type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// GenerateToken issues a signed bearer token bound to the user's email.
func GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetEnv("JWT_SECRET", "")))
}

// ValidateToken checks signature and expiry and returns the claims.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.GetEnv("JWT_SECRET", "")), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	return claims, nil
}
