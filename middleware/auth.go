package middleware

import (
	"context"
	"fmt"
	"net/http"
	"oldcarhat/model"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	ClaimsKey = "claims"
	UIDKey    = "uid"
)

// RoleLookup resolves the identity record for a uid. A nil user with a nil
// error means no record exists.
type RoleLookup func(ctx context.Context, uid string) (*model.User, error)

// UserRoleLookup backs a RoleLookup with the users collection.
func UserRoleLookup(db *mongo.Database) RoleLookup {
	return func(ctx context.Context, uid string) (*model.User, error) {
		var user model.User
		err := db.Collection("users").FindOne(ctx, bson.M{"uid": uid}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &user, nil
	}
}

// Gate holds the stages of the authorization pipeline. Routes compose them in
// order (credential, role, ownership) and each stage short-circuits on the
// first failure.
type Gate struct {
	secret []byte
	users  RoleLookup

	// LegacyRoleCheck restores the historical role-gate behavior where a
	// caller with no identity record passed the role stage; only a record
	// with the wrong role was rejected. Off by default: unknown callers
	// are Forbidden.
	LegacyRoleCheck bool
}

func NewGate(secret string, users RoleLookup, legacyRoleCheck bool) *Gate {
	return &Gate{secret: []byte(secret), users: users, LegacyRoleCheck: legacyRoleCheck}
}

// AccessToken verifies the bearer credential and stashes the decoded claims
// and uid in the request context.
func (g *Gate) AccessToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims := &model.AccessClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return g.secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}
		if claims.UID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UIDKey, claims.UID)
		c.Next()
	}
}

// RequireRole checks the caller's identity record against the given role.
// Runs after AccessToken.
func (g *Gate) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString(UIDKey)
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access Forbidden"})
			return
		}

		user, err := g.users(c.Request.Context(), uid)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
			return
		}
		if user == nil {
			if g.LegacyRoleCheck {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access Forbidden"})
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access Forbidden"})
			return
		}

		c.Next()
	}
}

// RequireOwnership compares the :uid path parameter against the credential's
// uid. Runs after AccessToken, and after any role stage.
func (g *Gate) RequireOwnership() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString(UIDKey)
		if uid == "" || c.Param("uid") != uid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access Forbidden"})
			return
		}
		c.Next()
	}
}
