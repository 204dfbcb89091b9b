package services

import (
	"oldcarhat/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func CreateAccessToken(secret, uid, email string, expiry time.Duration) (string, error) {
	claims := &model.AccessClaims{
		UID:   uid,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "oldcarhat",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
