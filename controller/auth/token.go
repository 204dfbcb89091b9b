package auth

import (
	"net/http"
	"time"

	"oldcarhat/dto"
	"oldcarhat/services"

	"github.com/gin-gonic/gin"
)

func TokenController(router *gin.Engine, secret string, expiry time.Duration) {
	router.POST("/jwt", func(c *gin.Context) {
		IssueToken(c, secret, expiry)
	})
}

// IssueToken signs a credential for a user payload. The identity itself is
// established externally; this endpoint only turns a uid into a bearer token.
func IssueToken(c *gin.Context, secret string, expiry time.Duration) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	token, err := services.CreateAccessToken(secret, req.UID, req.Email, expiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
