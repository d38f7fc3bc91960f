package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func getJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "clave_secreta_dev" // fallback solo para desarrollo
	}
	return []byte(secret)
}

type JWTClaims struct {
	CatequistaID string `json:"catequistaId"`
	Email        string `json:"email"`
	Rol          string `json:"rol"`
	jwt.RegisteredClaims
}

// GenerateJWT firma un token de sesión para un catequista.
func GenerateJWT(catequistaID, email, rol string) (string, error) {
	claims := JWTClaims{
		CatequistaID: catequistaID,
		Email:        email,
		Rol:          rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTSecret())
}

func ParseJWT(tokenStr string) (*JWTClaims, error) {
	if tokenStr == "" {
		return nil, fmt.Errorf("empty token string")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		return getJWTSecret(), nil
	})

	if err != nil || token == nil {
		return nil, fmt.Errorf("token parsing failed: %v", err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
