package connection

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oldcarhat/controller/auth"
	"oldcarhat/controller/blog"
	"oldcarhat/controller/category"
	"oldcarhat/controller/order"
	"oldcarhat/controller/payment"
	"oldcarhat/controller/product"
	"oldcarhat/controller/user"
	"oldcarhat/middleware"
	"oldcarhat/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client, db, err := MongoConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MongoDB client: %v", err)
	}

	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome Everyone to OldCarHat!"})
	})

	gate := middleware.NewGate(cfg.JWTSecret, middleware.UserRoleLookup(db), cfg.LegacyRoleCheck)
	intents := services.NewPaymentIntents(cfg.StripeSecretKey)
	checkout := services.NewCheckout(services.NewMongoCheckoutStore(db))

	auth.TokenController(router, cfg.JWTSecret, cfg.JWTExpiry)
	product.ProductController(router, db, gate)
	product.ReportController(router, db, gate)
	category.CategoryController(router, db, gate)
	user.UserController(router, db, gate)
	order.OrderController(router, db, gate)
	blog.BlogController(router, db)
	payment.PaymentController(router, db, gate, intents, checkout)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("OldCarHat app listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect: %v", err)
	}
}
