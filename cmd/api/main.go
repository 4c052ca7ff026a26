package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"medicare-backend/internal/config"
	"medicare-backend/internal/handler"
	"medicare-backend/internal/infrastructure/database/mongodb"
	"medicare-backend/internal/middleware"
	"medicare-backend/internal/repository"
	"medicare-backend/internal/service"
	"medicare-backend/pkg/recaptcha"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	conf, err := config.CreateNewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := mongodb.ConnectToMongoDB(conf.MongoDBConfig.URI, conf.MongoDBConfig.DatabaseName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer db.Client().Disconnect(context.Background())

	log.Info().Str("database", conf.MongoDBConfig.DatabaseName).Msg("connected to MongoDB")

	userRepo := repository.CreateNewUserRepository(db)
	productRepo := repository.CreateNewProductRepository(db)
	categoryRepo := repository.CreateNewCategoryRepository(db)
	cartRepo := repository.CreateNewCartRepository(db)
	orderRepo := repository.CreateNewOrderRepository(db)

	captcha := recaptcha.NewClient(conf.RecaptchaSecret)

	authService := service.CreateAuthService(userRepo, captcha, conf.JWTSecret)
	catalogService := service.CreateCatalogService(productRepo, categoryRepo)
	cartService := service.CreateCartService(cartRepo, productRepo)
	orderService := service.CreateOrderService(orderRepo)
	userService := service.CreateUserService(userRepo)
	adminService := service.CreateAdminService(productRepo, categoryRepo, orderRepo, userRepo, conf.UploadDir)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     conf.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Static("/static/uploads", conf.UploadDir)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Medicare API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"auth":       "/api/auth/register, /api/auth/login",
				"products":   "/api/products",
				"categories": "/api/categories",
				"cart":       "/api/cart",
				"orders":     "/api/orders",
			},
		})
	})

	api := r.Group("/api")
	handler.CreateAuthHandler(api, authService)
	handler.CreateCatalogHandler(api, catalogService)

	auth := api.Group("", middleware.TokenRequired(userRepo, conf.JWTSecret))
	handler.CreateCartHandler(auth, cartService)
	handler.CreateOrderHandler(auth, orderService)
	handler.CreateUserHandler(auth, userService)

	admin := api.Group("/admin", middleware.TokenRequired(userRepo, conf.JWTSecret), middleware.AdminRequired())
	handler.CreateAdminHandler(admin, adminService)

	addr := fmt.Sprintf("%s:%s", conf.Host, conf.Port)
	log.Info().Str("addr", addr).Msg("starting Medicare API server")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
