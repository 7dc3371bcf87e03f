package main

import (
	"context"
	"healthpilot-service/internal/app/config"
	"healthpilot-service/internal/app/delivery/http/controllers"
	"healthpilot-service/internal/app/delivery/http/middlewares"
	"healthpilot-service/internal/app/delivery/http/routers"
	"healthpilot-service/internal/app/drivers/database"
	"healthpilot-service/internal/app/drivers/logger"
	"healthpilot-service/internal/app/drivers/messaging"
	"healthpilot-service/internal/app/drivers/storage"
	"healthpilot-service/internal/app/services/core/auth"
	"healthpilot-service/internal/app/services/core/checklists"
	"healthpilot-service/internal/app/services/core/devices"
	"healthpilot-service/internal/app/services/core/ehrimport"
	"healthpilot-service/internal/app/services/core/mealplans"
	"healthpilot-service/internal/app/services/core/onboarding"
	"healthpilot-service/internal/app/services/core/profiles"
	"healthpilot-service/internal/app/services/core/users"
	"healthpilot-service/internal/app/services/core/vitals"
	"healthpilot-service/internal/app/services/shared/chat"
	"healthpilot-service/internal/app/services/shared/events"
	"healthpilot-service/internal/app/services/shared/redis"
	"healthpilot-service/internal/app/services/shared/session"
	sharedstorage "healthpilot-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	eventPublisher := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQEventExchange, bootstrap.Logger)
	chatService := chat.NewChatService(bootstrap.InternalConfig.Chat, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Users and auth
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Profiles
	profileMongoRepository := profiles.NewProfileMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	profileUsecase := profiles.NewProfileUsecase(profileMongoRepository, userMongoRepository, eventPublisher, bootstrap.Logger)
	profileController := controllers.NewProfileController(bootstrap.Logger, profileUsecase, sessionService)

	// Onboarding wizard
	onboardingRepository := onboarding.NewOnboardingRedisRepository(redisRepository, bootstrap.InternalConfig.App.OnboardingExpiryTimeInHour)
	onboardingUsecase := onboarding.NewOnboardingUsecase(sessionService, onboardingRepository, profileUsecase)
	onboardingController := controllers.NewOnboardingController(bootstrap.Logger, onboardingUsecase)

	// EHR import
	ehrImportUsecase := ehrimport.NewEHRImportUsecase(sessionService, onboardingRepository, minioStorage, bootstrap.InternalConfig.App.EHRUploadMaxSizeInMB)
	ehrController := controllers.NewEHRController(bootstrap.Logger, ehrImportUsecase, bootstrap.InternalConfig)

	// Care data
	vitalMongoRepository := vitals.NewVitalMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	vitalUsecase := vitals.NewVitalUsecase(sessionService, vitalMongoRepository, bootstrap.InternalConfig)
	vitalController := controllers.NewVitalController(bootstrap.Logger, vitalUsecase)

	checklistMongoRepository := checklists.NewChecklistMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	checklistUsecase := checklists.NewChecklistUsecase(sessionService, checklistMongoRepository)
	checklistController := controllers.NewChecklistController(bootstrap.Logger, checklistUsecase)

	deviceMongoRepository := devices.NewDeviceMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	deviceUsecase := devices.NewDeviceUsecase(sessionService, deviceMongoRepository)
	deviceController := controllers.NewDeviceController(bootstrap.Logger, deviceUsecase)

	// Meal plans
	mealPlanRepository := mealplans.NewMealPlanPostgresRepository(bootstrap.PostgresDB)
	mealPlanUsecase := mealplans.NewMealPlanUsecase(sessionService, mealPlanRepository)
	mealPlanController := controllers.NewMealPlanController(bootstrap.Logger, mealPlanUsecase)

	// Chat
	chatController := controllers.NewChatController(bootstrap.Logger, chatService)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		onboardingController,
		ehrController,
		profileController,
		vitalController,
		checklistController,
		deviceController,
		mealPlanController,
		chatController,
	)
}
