package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/basket"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/catalog"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/checkout"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/config"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/consumers"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/controllers"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/database"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/middlewares"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/orders"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/rabbitmq"
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
}

func main() {
	cfg := config.LoadConfig()

	if err := database.InitDB(cfg); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer database.CloseDB()

	rmq, err := rabbitmq.NewRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("RabbitMQ initialization failed: %v", err)
	}
	defer rmq.Close()

	if err := rmq.SetupQueues(); err != nil {
		log.Fatalf("Failed to setup RabbitMQ queues: %v", err)
	}

	go consumers.StartOrderConsumer(rmq.Channel, cfg)

	catalogStore := catalog.NewStore(database.DB)
	orderStore := orders.NewStore(database.DB)
	checkoutSvc := checkout.NewService(orderStore, rmq, cfg.WriteTimeout)
	basketManager := basket.NewManager()

	controllers.Configure(cfg, catalogStore, orderStore, checkoutSvc, basketManager, rmq)

	r := gin.Default()

	r.Use(middlewares.PrometheusMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/products", controllers.ListProducts)
		api.GET("/products/offers", controllers.ListOffers)
		api.GET("/products/:id", controllers.GetProduct)
		api.POST("/products/:id/quick-order", controllers.QuickOrder)

		api.GET("/basket", controllers.GetBasket)
		api.POST("/basket/items", controllers.AddBasketItem)
		api.PUT("/basket/items/:productId", controllers.UpdateBasketItem)
		api.DELETE("/basket/items/:productId", controllers.RemoveBasketItem)
		api.DELETE("/basket", controllers.ClearBasket)

		api.POST("/checkout", controllers.Checkout)
	}

	r.POST("/admin/login", controllers.AdminLogin)

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(cfg))
	{
		admin.GET("/orders", controllers.ListOrders)
		admin.GET("/orders/:id", controllers.GetOrderDetails)
		admin.PUT("/orders/:id/status", controllers.UpdateOrderStatus)

		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)
	}

	port := ":8080"
	log.Infof("Shop service starting on port %s", port)
	if err := r.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
