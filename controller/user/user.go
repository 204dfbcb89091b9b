package user

import (
	"context"
	"errors"
	"net/http"

	"oldcarhat/dto"
	"oldcarhat/middleware"
	"oldcarhat/model"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrDuplicateUID = errors.New("uid already exists")

// UserStore is the slice of storage the user handlers need. The mongo
// implementation lives in user_mongo.go; tests substitute a fake.
type UserStore interface {
	// FindByUID returns nil, nil when no record exists.
	FindByUID(ctx context.Context, uid string) (*model.User, error)
	// Insert returns ErrDuplicateUID when a record for the uid already
	// exists, backed by the unique index.
	Insert(ctx context.Context, user model.User) (interface{}, error)
	FindByRole(ctx context.Context, role string) ([]model.User, error)
	Verify(ctx context.Context, id primitive.ObjectID) (matched, modified int64, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

func UserController(router *gin.Engine, db *mongo.Database, gate *middleware.Gate) {
	admin := []gin.HandlerFunc{gate.AccessToken(), gate.RequireRole(model.RoleAdmin), gate.RequireOwnership()}
	store := NewMongoUserStore(db)

	router.POST("/users", func(c *gin.Context) {
		UpsertUser(c, store)
	})

	// Public role probes; an unknown uid answers false rather than erroring.
	router.GET("/user/admin/:uid", func(c *gin.Context) {
		ProbeRole(c, store, model.RoleAdmin, "isAdmin")
	})
	router.GET("/user/buyer/:uid", func(c *gin.Context) {
		ProbeRole(c, store, model.RoleBuyer, "isBuyer")
	})
	router.GET("/user/seller/:uid", func(c *gin.Context) {
		ProbeRole(c, store, model.RoleSeller, "isSeller")
	})
	router.GET("/seller-verify/:uid", func(c *gin.Context) {
		ProbeSellerVerified(c, store)
	})

	router.GET("/users-by-role/:uid", append(admin, func(c *gin.Context) {
		ListUsersByRole(c, store)
	})...)
	router.PATCH("/seller-verify/:uid", append(admin, func(c *gin.Context) {
		VerifySeller(c, store)
	})...)
	router.DELETE("/user-delete/:uid", append(admin, func(c *gin.Context) {
		DeleteUser(c, store)
	})...)
}

// UpsertUser records a user on first sign-in. Submitting the same uid twice
// leaves exactly one document; the duplicate insert is a no-op. The unique
// index on uid backs this up when two first sign-ins race. A missing role
// defaults to buyer so the role probes always have something to answer.
func UpsertUser(c *gin.Context, store UserStore) {
	var req dto.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}
	if req.Role == "" {
		req.Role = model.RoleBuyer
	}

	existing, err := store.FindByUID(c.Request.Context(), req.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
		return
	}

	insertedID, err := store.Insert(c.Request.Context(), model.User{
		UID:   req.UID,
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if errors.Is(err, ErrDuplicateUID) {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": insertedID})
}

func ProbeRole(c *gin.Context, store UserStore, role, field string) {
	user, err := store.FindByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{field: user != nil && user.Role == role})
}

func ProbeSellerVerified(c *gin.Context, store UserStore) {
	user, err := store.FindByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isVerified": user != nil && user.Status == model.StatusVerified})
}

func ListUsersByRole(c *gin.Context, store UserStore) {
	users, err := store.FindByRole(c.Request.Context(), c.Query("role"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func VerifySeller(c *gin.Context, store UserStore) {
	id, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	matched, modified, err := store.Verify(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify seller"})
		return
	}
	if modified == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found or already verified"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matchedCount": matched, "modifiedCount": modified})
}

func DeleteUser(c *gin.Context, store UserStore) {
	id, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	deleted, err := store.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found or already deleted"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
