package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type CustomClaims struct {
	UserID    string `json:"sub"`
	IsRefresh bool   `json:"isRefresh"`
	jwt.RegisteredClaims
}

// ParseJWT verifies an access token against the key named by its kid header.
// Refresh tokens are rejected; they are only good at the auth server.
func ParseJWT(store *PublicKeyStore, tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		kid, ok := token.Header["kid"].(string)
		if !ok {
			return nil, errors.New("kid not found in token header")
		}
		return store.GetKey(kid)
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.IsRefresh {
		return nil, errors.New("refresh token not accepted")
	}
	if claims.UserID == "" {
		return nil, errors.New("token missing subject")
	}
	return claims, nil
}
