package product

import (
	"net/http"
	"time"

	"oldcarhat/dto"
	"oldcarhat/middleware"
	"oldcarhat/model"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ProductController(router *gin.Engine, db *mongo.Database, gate *middleware.Gate) {
	seller := []gin.HandlerFunc{gate.AccessToken(), gate.RequireRole(model.RoleSeller), gate.RequireOwnership()}

	router.GET("/products/:uid", append(seller, func(c *gin.Context) {
		ListSellerProducts(c, db)
	})...)
	router.POST("/products/:uid", append(seller, func(c *gin.Context) {
		CreateProduct(c, db)
	})...)
	router.DELETE("/product-delete/:uid", append(seller, func(c *gin.Context) {
		DeleteProduct(c, db)
	})...)
	router.PATCH("/promote-product/:uid", append(seller, func(c *gin.Context) {
		PromoteProduct(c, db)
	})...)

	router.GET("/category/:id", func(c *gin.Context) {
		ListProductsByCategory(c, db)
	})
	router.GET("/promoted-product", func(c *gin.Context) {
		ListPromotedProducts(c, db)
	})
}

func ListSellerProducts(c *gin.Context, db *mongo.Database) {
	uid := c.Param("uid")

	cursor, err := db.Collection("products").Find(c.Request.Context(),
		bson.M{"seller_uid": uid},
		options.Find().SetSort(bson.D{{Key: "createAt", Value: -1}}),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}

	products := []model.Product{}
	if err := cursor.All(c.Request.Context(), &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to parse products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func CreateProduct(c *gin.Context, db *mongo.Database) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	product := model.Product{
		Name:          req.Name,
		Image:         req.Image,
		SellerUID:     c.Param("uid"),
		SellerName:    req.SellerName,
		CategoryID:    req.CategoryID,
		ResellPrice:   req.ResellPrice,
		OriginalPrice: req.OriginalPrice,
		YearsUsed:     req.YearsUsed,
		Location:      req.Location,
		Phone:         req.Phone,
		CreateAt:      time.Now(),
	}

	result, err := db.Collection("products").InsertOne(c.Request.Context(), product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID})
}

func ListProductsByCategory(c *gin.Context, db *mongo.Database) {
	id := c.Param("id")

	cursor, err := db.Collection("products").Find(c.Request.Context(),
		bson.M{"category_id": id},
		options.Find().SetSort(bson.D{{Key: "createAt", Value: -1}}),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}

	products := []model.Product{}
	if err := cursor.All(c.Request.Context(), &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to parse products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func ListPromotedProducts(c *gin.Context, db *mongo.Database) {
	cursor, err := db.Collection("products").Find(c.Request.Context(),
		bson.M{"promote": true},
		options.Find().SetSort(bson.D{{Key: "createAt", Value: -1}}),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}

	products := []model.Product{}
	if err := cursor.All(c.Request.Context(), &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to parse products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func DeleteProduct(c *gin.Context, db *mongo.Database) {
	id, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	result, err := db.Collection("products").DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not Found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}

func PromoteProduct(c *gin.Context, db *mongo.Database) {
	id, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	result, err := db.Collection("products").UpdateOne(c.Request.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"promote": true}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to promote product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}
