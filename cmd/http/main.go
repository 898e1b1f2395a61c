package main

import (
	"context"
	"fmt"
	"log"
	"medintake-service/internal/app/config"
	"medintake-service/internal/app/delivery/http/controllers"
	"medintake-service/internal/app/delivery/http/middlewares"
	"medintake-service/internal/app/delivery/http/routers"
	"medintake-service/internal/app/drivers/database"
	"medintake-service/internal/app/drivers/logger"
	"medintake-service/internal/app/drivers/messaging"
	"medintake-service/internal/app/drivers/storage"
	"medintake-service/internal/app/services/core/auth"
	"medintake-service/internal/app/services/core/bulletins"
	"medintake-service/internal/app/services/core/couriers"
	"medintake-service/internal/app/services/core/documents"
	"medintake-service/internal/app/services/core/prescriptions"
	"medintake-service/internal/app/services/core/uploads"
	"medintake-service/internal/app/services/core/users"
	authClient "medintake-service/internal/app/services/ocr_backend/auth"
	courierClient "medintake-service/internal/app/services/ocr_backend/couriers"
	"medintake-service/internal/app/services/ocr_backend/files"
	"medintake-service/internal/app/services/ocr_backend/parser"
	prescriptionClient "medintake-service/internal/app/services/ocr_backend/prescriptions"
	"medintake-service/internal/app/services/ocr_backend/records"
	"medintake-service/internal/app/services/ocr_backend/requester"
	userClient "medintake-service/internal/app/services/ocr_backend/users"
	"medintake-service/internal/app/services/shared/events"
	"medintake-service/internal/app/services/shared/exporter"
	"medintake-service/internal/app/services/shared/locker"
	"medintake-service/internal/app/services/shared/ratelimiter"
	"medintake-service/internal/app/services/shared/redis"
	sharedStorage "medintake-service/internal/app/services/shared/storage"
	"medintake-service/internal/pkg/mapper"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version and Tag are set at build time with -ldflags.
var (
	Version = "develop"
	Tag     = "0.0.1-rc"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	stopWorkers, err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server starting",
			zap.String("address", server.Addr),
			zap.String("version", Version),
			zap.String("tag", Tag),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	stopWorkers()

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) (stopWorkers func(), err error) {
	internalConfig := bootstrap.InternalConfig
	zapLogger := bootstrap.Logger

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio, internalConfig.Minio.BucketName)
	lockerService := locker.NewLockService(redisRepository, zapLogger)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, zapLogger)
	workbookExporter := exporter.NewExcelExporter(zapLogger)
	eventPublisher, err := events.NewEventPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.DocumentEventsQueue, zapLogger)
	if err != nil {
		return nil, err
	}
	fieldMapper := mapper.New(internalConfig.Intake.TrimHeaderTables)

	// OCR backend
	backendRequester := requester.NewRequester(internalConfig, zapLogger)
	documentParserClient := parser.NewDocumentParserClient(backendRequester, zapLogger)
	bulletinClient := records.NewRecordBackendClient(backendRequester, records.BulletinPaths, zapLogger)
	ordonnanceClient := records.NewRecordBackendClient(backendRequester, records.OrdonnancePaths, zapLogger)
	prescriptionBackendClient := prescriptionClient.NewPrescriptionBackendClient(backendRequester, zapLogger)
	courierBackendClient := courierClient.NewCourierBackendClient(backendRequester, zapLogger)
	fileBackendClient := files.NewFileBackendClient(backendRequester, zapLogger)
	authBackendClient := authClient.NewAuthBackendClient(backendRequester, zapLogger)
	userBackendClient := userClient.NewUserBackendClient(backendRequester, zapLogger)

	// Usecases
	bulletinEditorUsecase := bulletins.NewBulletinEditorUsecase(redisRepository, bulletinClient, eventPublisher, workbookExporter, fieldMapper, internalConfig, zapLogger)
	prescriptionEditorUsecase := prescriptions.NewPrescriptionEditorUsecase(redisRepository, ordonnanceClient, eventPublisher, workbookExporter, fieldMapper, internalConfig, zapLogger)
	uploadUsecase := uploads.NewUploadUsecase(uploads.UploadDependencies{
		RedisRepository:    redisRepository,
		Storage:            minioStorage,
		LockerService:      lockerService,
		ResourceLimiter:    resourceLimiter,
		ParserClient:       documentParserClient,
		BulletinClient:     bulletinClient,
		OrdonnanceClient:   ordonnanceClient,
		BulletinEditor:     bulletinEditorUsecase,
		PrescriptionEditor: prescriptionEditorUsecase,
		EventPublisher:     eventPublisher,
		Mapper:             fieldMapper,
	}, internalConfig, zapLogger)
	courierUsecase := couriers.NewCourierUsecase(courierBackendClient, bulletinClient, ordonnanceClient, bulletinEditorUsecase, prescriptionEditorUsecase, fieldMapper, internalConfig, zapLogger)
	documentUsecase := documents.NewDocumentUsecase(documentParserClient, bulletinClient, ordonnanceClient, prescriptionBackendClient, fileBackendClient, eventPublisher, fieldMapper, zapLogger)
	authUsecase := auth.NewAuthUsecase(authBackendClient, zapLogger)
	userUsecase := users.NewUserUsecase(userBackendClient, zapLogger)

	// Delivery
	middlewares := middlewares.NewMiddlewares(zapLogger, internalConfig)
	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, &routers.Controllers{
		Auth:               controllers.NewAuthController(zapLogger, authUsecase),
		Upload:             controllers.NewUploadController(zapLogger, uploadUsecase, internalConfig),
		BulletinEditor:     controllers.NewBulletinEditorController(zapLogger, bulletinEditorUsecase),
		PrescriptionEditor: controllers.NewPrescriptionEditorController(zapLogger, prescriptionEditorUsecase),
		Courier:            controllers.NewCourierController(zapLogger, courierUsecase, internalConfig),
		Document:           controllers.NewDocumentController(zapLogger, documentUsecase, internalConfig),
		User:               controllers.NewUserController(zapLogger, userUsecase),
		Health: controllers.NewHealthController(zapLogger, Version, map[string]controllers.HealthCheck{
			"redis": func(ctx context.Context) error {
				return bootstrap.Redis.Ping(ctx).Err()
			},
			"minio": func(ctx context.Context) error {
				_, err := bootstrap.Minio.BucketExists(ctx, internalConfig.Minio.BucketName)
				return err
			},
		}),
	})

	// Workers
	stagingJanitor := uploads.NewStagingJanitor(zapLogger, internalConfig, lockerService, redisRepository, minioStorage)
	return stagingJanitor.Start(context.Background()), nil
}
