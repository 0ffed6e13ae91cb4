package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	handlerHttp "github.com/peiwenliu/sharecircle/internal/handler/http"
	"github.com/peiwenliu/sharecircle/internal/infrastructure/cache"
	"github.com/peiwenliu/sharecircle/internal/infrastructure/config"
	"github.com/peiwenliu/sharecircle/internal/infrastructure/database"
	"github.com/peiwenliu/sharecircle/internal/infrastructure/jwt"
	"github.com/peiwenliu/sharecircle/internal/infrastructure/logger"
	passwordservice "github.com/peiwenliu/sharecircle/internal/infrastructure/password_service"
	"github.com/peiwenliu/sharecircle/internal/infrastructure/repository/mongodb"
	minioStorage "github.com/peiwenliu/sharecircle/internal/infrastructure/storage/minio"
	"github.com/peiwenliu/sharecircle/internal/infrastructure/store"
	"github.com/peiwenliu/sharecircle/internal/infrastructure/validator"
	"github.com/peiwenliu/sharecircle/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.NewConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	ctx := context.Background()

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	db := mongoClient.Database(cfg.MongoDBName)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db)
	eventRepo := mongodb.NewMongoEventRepository(mongoClient, db)
	materialRepo := mongodb.NewMongoMaterialRepository(mongoClient, db)
	landmarkRepo := mongodb.NewMongoLandmarkRepository(mongoClient, db)
	commentRepo := mongodb.NewMongoCommentRepository(mongoClient, db)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	tokenIssuer := jwt.NewManager(cfg.JWTSecret, cfg.TokenExpiry)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()

	imageStorage, err := minioStorage.NewUploader(ctx, minioStorage.Config{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
		PublicURL: cfg.MinioPublicURL,
	})
	if err != nil {
		log.Fatalf("Failed to set up image storage: %v", err)
	}

	// Optional Dependency Injection: Redis landmark cache
	var landmarkCache contract.ILandmarkCache
	if cfg.RedisURL != "" {
		if rdb := cache.NewRedisFromURL(ctx, cfg.RedisURL); rdb != nil {
			defer cache.Close(rdb)
			landmarkCache = store.NewLandmarkCacheStore(rdb, cfg.LandmarkCacheTTL)
		}
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUseCase(userRepo, eventRepo, hasher, tokenIssuer, appValidator, appLogger)
	eventUsecase := usecase.NewEventUseCase(eventRepo, appValidator, appLogger)
	materialUsecase := usecase.NewMaterialUseCase(materialRepo, appValidator, appLogger)
	landmarkUsecase := usecase.NewLandmarkUseCase(landmarkRepo, landmarkCache, appValidator, appLogger)
	commentUsecase := usecase.NewCommentUseCase(commentRepo, materialRepo, appValidator, appLogger)

	// Setup API routes
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(
		userUsecase, eventUsecase, materialUsecase, landmarkUsecase, commentUsecase,
		imageStorage,
	)
	appRouter.SetupRoutes(router)

	log.Printf("Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
