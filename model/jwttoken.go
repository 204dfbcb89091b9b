package model

import "github.com/golang-jwt/jwt/v5"

type AccessClaims struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
