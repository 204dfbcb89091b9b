package product

import (
	"context"
	"net/http"

	"oldcarhat/middleware"
	"oldcarhat/model"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReportResult carries the driver's update summary without tying handlers to
// a concrete driver type.
type ReportResult struct {
	MatchedCount  int64
	ModifiedCount int64
	UpsertedID    interface{}
}

// ReportStore is the slice of storage the report handlers need. The mongo
// implementation lives in report_mongo.go; tests substitute a fake.
type ReportStore interface {
	// Report flags the product and atomically bumps its count, creating a
	// placeholder document when the id is unknown.
	Report(ctx context.Context, id primitive.ObjectID) (*ReportResult, error)
	// Clear resets the report state; no upsert, zero matches means the
	// product does not exist.
	Clear(ctx context.Context, id primitive.ObjectID) (*ReportResult, error)
	ListReported(ctx context.Context) ([]model.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

func ReportController(router *gin.Engine, db *mongo.Database, gate *middleware.Gate) {
	admin := []gin.HandlerFunc{gate.AccessToken(), gate.RequireRole(model.RoleAdmin), gate.RequireOwnership()}
	store := NewMongoReportStore(db)

	router.PATCH("/report-product/:uid", gate.AccessToken(), gate.RequireOwnership(), func(c *gin.Context) {
		ReportProduct(c, store)
	})
	router.GET("/reported-products/:uid", append(admin, func(c *gin.Context) {
		ListReportedProducts(c, store)
	})...)
	router.PATCH("/report-product-safe/:uid", append(admin, func(c *gin.Context) {
		ClearReport(c, store)
	})...)
	router.DELETE("/report-product-delete/:uid", append(admin, func(c *gin.Context) {
		DeleteReportedProduct(c, store)
	})...)
}

// ReportProduct flags a product and bumps its report count. The count is a
// server-side atomic increment; the caller does not supply the prior value,
// so concurrent reports cannot overwrite each other. Upsert is intentional:
// a report racing a fresh listing creates a placeholder instead of failing.
func ReportProduct(c *gin.Context, store ReportStore) {
	id, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	result, err := store.Report(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to report product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
		"upsertedId":    result.UpsertedID,
	})
}

func ListReportedProducts(c *gin.Context, store ReportStore) {
	products, err := store.ListReported(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch reported products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// ClearReport resets a product's report state. No upsert here: clearing a
// report on an id that does not exist is a NotFound, not a new document.
func ClearReport(c *gin.Context, store ReportStore) {
	id, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	result, err := store.Clear(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to clear report"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not Found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}

func DeleteReportedProduct(c *gin.Context, store ReportStore) {
	id, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	deleted, err := store.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not Found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
