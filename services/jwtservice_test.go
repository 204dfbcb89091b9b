package services

import (
	"testing"
	"time"

	"oldcarhat/model"

	"github.com/golang-jwt/jwt/v5"
)

func TestCreateAccessTokenRoundTrip(t *testing.T) {
	token, err := CreateAccessToken("secret", "u1", "u1@example.com", time.Hour)
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}

	claims := &model.AccessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("expected valid token")
	}
	if claims.UID != "u1" {
		t.Errorf("expected uid u1, got %q", claims.UID)
	}
	if claims.Email != "u1@example.com" {
		t.Errorf("expected email u1@example.com, got %q", claims.Email)
	}
	if claims.Issuer != "oldcarhat" {
		t.Errorf("expected issuer oldcarhat, got %q", claims.Issuer)
	}
}

func TestCreateAccessTokenExpiry(t *testing.T) {
	token, err := CreateAccessToken("secret", "u1", "", -time.Minute)
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}

	_, err = jwt.ParseWithClaims(token, &model.AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err == nil {
		t.Fatal("expected expired token to fail parsing")
	}
}
