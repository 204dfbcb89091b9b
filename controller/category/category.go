package category

import (
	"net/http"

	"oldcarhat/dto"
	"oldcarhat/middleware"
	"oldcarhat/model"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CategoryController(router *gin.Engine, db *mongo.Database, gate *middleware.Gate) {
	router.GET("/categories", func(c *gin.Context) {
		ListCategories(c, db)
	})
	// Categories are seller-created; no uid in the path, so no ownership stage.
	router.POST("/categories", gate.AccessToken(), gate.RequireRole(model.RoleSeller), func(c *gin.Context) {
		CreateCategory(c, db)
	})
}

func ListCategories(c *gin.Context, db *mongo.Database) {
	cursor, err := db.Collection("categories").Find(c.Request.Context(),
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "category_name", Value: 1}}),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories"})
		return
	}

	categories := []model.Category{}
	if err := cursor.All(c.Request.Context(), &categories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to parse categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func CreateCategory(c *gin.Context, db *mongo.Database) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	result, err := db.Collection("categories").InsertOne(c.Request.Context(), model.Category{
		CategoryName: req.CategoryName,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID})
}
