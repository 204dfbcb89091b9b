package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"oldcarhat/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestIssueToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	TokenController(router, "secret", time.Hour)

	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"uid":"u1","email":"u1@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	claims := &model.AccessClaims{}
	parsed, err := jwt.ParseWithClaims(body.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token failed to verify: %v", err)
	}
	if claims.UID != "u1" {
		t.Errorf("expected uid u1, got %q", claims.UID)
	}
}

func TestIssueTokenMissingUID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	TokenController(router, "secret", time.Hour)

	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"u1@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
