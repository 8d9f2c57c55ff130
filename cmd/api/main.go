package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/danielmek/hotelhub/internal/handler/http"
	redisclient "github.com/danielmek/hotelhub/internal/infrastructure/cache"
	"github.com/danielmek/hotelhub/internal/infrastructure/config"
	database "github.com/danielmek/hotelhub/internal/infrastructure/database"
	"github.com/danielmek/hotelhub/internal/infrastructure/jwt"
	"github.com/danielmek/hotelhub/internal/infrastructure/logger"
	passwordservice "github.com/danielmek/hotelhub/internal/infrastructure/password_service"
	"github.com/danielmek/hotelhub/internal/infrastructure/repository/mongodb"
	"github.com/danielmek/hotelhub/internal/infrastructure/storage"
	"github.com/danielmek/hotelhub/internal/infrastructure/store"
	"github.com/danielmek/hotelhub/internal/infrastructure/uuidgen"
	"github.com/danielmek/hotelhub/internal/infrastructure/validator"
	"github.com/danielmek/hotelhub/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if appConfig.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	if appConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(appConfig.MongoDBName)

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	hotelRepo := mongodb.NewHotelRepository(db)
	mediaRepo := mongodb.NewMediaRepository(db)

	ctx := context.Background()
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	if err := hotelRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create hotel indexes: %v", err)
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret, appConfig.GetAccessTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger("api")
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	fileStorage, err := storage.NewLocalStorage(appConfig.GetUploadDir(), appConfig.GetUploadBaseURL())
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, appLogger, appValidator, uuidGenerator)
	hotelUsecase := usecase.NewHotelUsecase(hotelRepo, uuidGenerator, appLogger)

	// Optional Dependency Injection: Redis stats cache
	if appConfig.RedisURL != "" {
		rdb := redisclient.NewRedisFromURL(ctx, appConfig.RedisURL)
		if rdb != nil {
			defer redisclient.Close(rdb)
			hotelUsecase.SetHotelCache(store.NewHotelCacheStore(rdb))
		}
	}

	// Setup API routes
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(userUsecase, hotelUsecase, fileStorage, mediaRepo, uuidGenerator, appConfig)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
