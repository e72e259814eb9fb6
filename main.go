package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/orders"
	"storefront/internal/providers"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)
	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}

	providerClient := providers.NewClient(config.AppEnv.BrazilianURL, config.AppEnv.EuropeanURL)
	catalogService := catalog.NewService(providerClient)
	orderService := orders.NewService(catalogService, orders.NewMongoStore(db))

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{config.AppEnv.AllowedOrigin},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", middleware.RequestIDHeader},
	}))

	r.GET("/health", handlers.Health(db))

	r.GET("/products", handlers.GetProducts(catalogService))
	r.GET("/products/:provider/:id", handlers.GetProduct(catalogService))

	r.POST("/orders", handlers.CreateOrder(orderService))
	r.GET("/orders", handlers.GetOrders(orderService))
	r.GET("/orders/:id", handlers.GetOrder(orderService))

	log.Println("listening on :" + config.AppEnv.Port)
	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
