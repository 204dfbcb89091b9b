package order

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

func OrderController(router *gin.Engine, db *mongo.Database, gate *middleware.Gate) {
	owner := []gin.HandlerFunc{gate.AccessToken(), gate.RequireOwnership()}

	router.GET("/orders/:uid", append(owner, func(c *gin.Context) {
		ListOrders(c, db)
	})...)
	router.POST("/orders/:uid", append(owner, func(c *gin.Context) {
		CreateOrder(c, db)
	})...)
	router.GET("/order/:uid", append(owner, func(c *gin.Context) {
		GetOrder(c, db)
	})...)
}

func ListOrders(c *gin.Context, db *mongo.Database) {
	uid := c.Param("uid")

	cursor, err := db.Collection("orders").Find(c.Request.Context(),
		bson.M{"customer_info.customer_uid": uid},
		options.Find().SetSort(bson.D{{Key: "createAt", Value: -1}}),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}

	orders := []model.Order{}
	if err := cursor.All(c.Request.Context(), &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to parse orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func CreateOrder(c *gin.Context, db *mongo.Database) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	order := model.Order{
		CustomerInfo: model.CustomerInfo{
			CustomerUID: c.Param("uid"),
			Name:        req.CustomerName,
			Email:       req.CustomerEmail,
			Phone:       req.Phone,
			Address:     req.Address,
		},
		ProductInfo: model.ProductInfo{
			ProductID:   req.ProductID,
			Name:        req.ProductName,
			ResellPrice: req.ResellPrice,
		},
		OrderStatus: false,
		CreateAt:    time.Now(),
	}

	result, err := db.Collection("orders").InsertOne(c.Request.Context(), order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID})
}

func GetOrder(c *gin.Context, db *mongo.Database) {
	id, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order id"})
		return
	}

	var order model.Order
	err = db.Collection("orders").FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}
