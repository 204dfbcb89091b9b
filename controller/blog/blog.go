package blog

import (
	"net/http"
	"time"

	"oldcarhat/dto"
	"oldcarhat/model"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Blog routes are public on both ends.
func BlogController(router *gin.Engine, db *mongo.Database) {
	router.GET("/blogs", func(c *gin.Context) {
		ListBlogs(c, db)
	})
	router.POST("/blog", func(c *gin.Context) {
		CreateBlog(c, db)
	})
}

func ListBlogs(c *gin.Context, db *mongo.Database) {
	cursor, err := db.Collection("blogs").Find(c.Request.Context(),
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "createAt", Value: -1}}),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch blogs"})
		return
	}

	blogs := []model.Blog{}
	if err := cursor.All(c.Request.Context(), &blogs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to parse blogs"})
		return
	}

	c.JSON(http.StatusOK, blogs)
}

func CreateBlog(c *gin.Context, db *mongo.Database) {
	var req dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	result, err := db.Collection("blogs").InsertOne(c.Request.Context(), model.Blog{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Image:    req.Image,
		CreateAt: time.Now(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create blog"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID})
}
