package payment

import (
	"math"
	"net/http"
	"time"

	"oldcarhat/dto"
	"oldcarhat/middleware"
	"oldcarhat/model"
	"oldcarhat/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func PaymentController(router *gin.Engine, db *mongo.Database, gate *middleware.Gate, intents *services.PaymentIntents, checkout *services.Checkout) {
	owner := []gin.HandlerFunc{gate.AccessToken(), gate.RequireOwnership()}

	router.POST("/create-payment-intent/:uid", append(owner, func(c *gin.Context) {
		CreatePaymentIntent(c, db, intents)
	})...)
	router.POST("/payments/:uid", append(owner, func(c *gin.Context) {
		RecordPayment(c, checkout)
	})...)
}

// CreatePaymentIntent prices the intent from the stored product, not from the
// request, in USD cents.
func CreatePaymentIntent(c *gin.Context, db *mongo.Database, intents *services.PaymentIntents) {
	id, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	var product model.Product
	err = db.Collection("products").FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not Found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
		return
	}

	clientSecret, err := intents.Create(priceInCents(product.ResellPrice))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, dto.PaymentIntentResponse{ClientSecret: clientSecret})
}

// priceInCents converts a dollar price to whole cents. Rounding matters:
// plain truncation turns 19.99 * 100 into 1998.
func priceInCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// RecordPayment persists the completed checkout and cascades the order and
// product flags through the checkout saga.
func RecordPayment(c *gin.Context, checkout *services.Checkout) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}
	if req.TransactionID == "" {
		req.TransactionID = uuid.NewString()
	}

	result, err := checkout.Run(c.Request.Context(), model.Payment{
		OrderID:       req.OrderID,
		ProductID:     req.ProductID,
		BuyerUID:      c.GetString(middleware.UIDKey),
		Email:         req.Email,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		CreateAt:      time.Now(),
	})
	switch {
	case err == services.ErrInvalidID:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order or product id"})
		return
	case err == services.ErrOrderNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	case err == services.ErrProductNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not Found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"paymentResult": gin.H{"insertedId": result.PaymentID},
		"orderResult":   gin.H{"matchedCount": result.OrdersMatched},
		"productResult": gin.H{"matchedCount": result.ProductsMatched},
	})
}
