package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"staffportal-service/internal/app/config"
	"staffportal-service/internal/app/delivery/http/middlewares"
	"staffportal-service/internal/app/delivery/http/routers"
	"staffportal-service/internal/app/drivers/database"
	"staffportal-service/internal/app/drivers/logger"
	"staffportal-service/internal/app/drivers/messaging"
	"staffportal-service/internal/app/drivers/storage"
	"staffportal-service/internal/app/services/auth"
	"staffportal-service/internal/app/services/patients"
	"staffportal-service/internal/app/services/shared/alerts"
	sharedredis "staffportal-service/internal/app/services/shared/redis"
	"staffportal-service/internal/app/services/shared/stepup"
	sharedstorage "staffportal-service/internal/app/services/shared/storage"
	"staffportal-service/internal/app/services/shared/tokens"
	"staffportal-service/internal/app/services/staff"
	"staffportal-service/internal/app/services/system"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
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
	zapLogger.Info("server started", zap.String("address", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("waiting for pending requests to finish before shutting down")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	zapLogger.Info("server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	tokenDenylist := sharedredis.NewTokenDenylist(redisRepository)
	tokenService := tokens.NewTokenService(bootstrap.InternalConfig)
	stepUpVerifier := stepup.NewBackupCodeVerifier(stepup.DefaultBackupCodes)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)

	alertPublisher, err := alerts.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.PatientAlertQueue, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize alert publisher: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, tokenService, tokenDenylist)

	// Staff
	staffMongoRepository := staff.NewStaffMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	staffUsecase := staff.NewStaffUsecase(bootstrap.Logger, staffMongoRepository)
	staffController := staff.NewStaffController(bootstrap.Logger, staffUsecase)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	patientUsecase := patients.NewPatientUsecase(
		bootstrap.Logger,
		patientMongoRepository,
		minioStorage,
		alertPublisher,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig,
	)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(bootstrap.Logger, staffMongoRepository, tokenService, stepUpVerifier, tokenDenylist)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// System
	systemUsecase := system.NewSystemUsecase(staffMongoRepository, patientMongoRepository)
	systemController := system.NewSystemController(bootstrap.Logger, systemUsecase)

	if bootstrap.InternalConfig.App.SeedTestAccounts {
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := staffUsecase.SeedTestAccounts(seedCtx); err != nil {
			bootstrap.Logger.Warn("failed to seed staff accounts", zap.Error(err))
		}
	}

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		staffController,
		patientController,
		systemController,
	)
}
