package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries standard and custom claims for employee tokens.
type Claims struct {
	EmployeeID string `json:"employee_id"`
	Email      string `json:"employee_email"`
	Role       string `json:"company_role"`
	jwt.RegisteredClaims
}

// SignJWT creates a signed access token for the given principal.
func SignJWT(secret string, principal *Principal, ttl time.Duration) (string, error) {
	claims := Claims{
		EmployeeID: principal.EmployeeID,
		Email:      principal.Email,
		Role:       principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.EmployeeID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			Issuer:    "garage-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidate parses a token and validates signature and expiry.
func ParseAndValidate(secret string, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
