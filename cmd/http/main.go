package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"care4u-service/internal/app/config"
	"care4u-service/internal/app/delivery/http/middlewares"
	"care4u-service/internal/app/delivery/http/routers"
	"care4u-service/internal/app/drivers/database"
	"care4u-service/internal/app/drivers/logger"
	"care4u-service/internal/app/drivers/messaging"
	"care4u-service/internal/app/drivers/storage"
	"care4u-service/internal/app/services/core/appointments"
	"care4u-service/internal/app/services/core/auth"
	"care4u-service/internal/app/services/core/doctors"
	"care4u-service/internal/app/services/core/medicalrecords"
	"care4u-service/internal/app/services/core/schedules"
	"care4u-service/internal/app/services/core/session"
	"care4u-service/internal/app/services/core/triage"
	"care4u-service/internal/app/services/core/users"
	"care4u-service/internal/app/services/shared/audit"
	"care4u-service/internal/app/services/shared/notifications"
	"care4u-service/internal/app/services/shared/ratelimiter"
	sharedRedis "care4u-service/internal/app/services/shared/redis"
	minioStorage "care4u-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	requestLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitConn,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapTheApp(&bootstrap, requestLog); err != nil {
		logrus.Fatalf("Failed to bootstrap the application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
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

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server shutdown failed: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Cleanup of resources failed: %v", err)
	}

	logrus.Println("Server gracefully stopped")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, requestLog *logrus.Logger) error {
	driverConfig := bootstrap.DriverConfig
	internalConfig := bootstrap.InternalConfig
	dbName := driverConfig.MongoDB.DbName

	userRepository := users.NewUserMongoRepository(bootstrap.MongoClient, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoClient, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, dbName)
	medicalRecordRepository := medicalrecords.NewMedicalRecordMongoRepository(bootstrap.MongoClient, dbName)
	auditRepository := audit.NewAuditMongoRepository(bootstrap.MongoClient, dbName)

	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	auditService := audit.NewAuditService(auditRepository, bootstrap.Logger)
	loginLimiter := ratelimiter.NewResourceLimiter(
		redisRepository,
		bootstrap.Logger,
		internalConfig.Auth.LoginWindowInMinutes*60,
		internalConfig.Auth.LoginMaxAttempts,
	)
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio, driverConfig.Minio.BucketName)

	notificationQueue, err := notifications.NewService(bootstrap.RabbitMQ, bootstrap.Logger, internalConfig.App.NotificationQueue)
	if err != nil {
		return err
	}
	notificationWorker := notifications.NewWorker(bootstrap.RabbitMQ, bootstrap.Logger, internalConfig.App.NotificationQueue)
	if err := notificationWorker.Start(); err != nil {
		return err
	}
	bootstrap.WorkerStop = notificationWorker.Stop

	authUsecase := auth.NewAuthUsecase(userRepository, doctorRepository, sessionService, loginLimiter, auditService, internalConfig, bootstrap.Logger)
	userUsecase := users.NewUserUsecase(userRepository, sessionService, bootstrap.Logger)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, userRepository, auditService, bootstrap.Logger)
	scheduleUsecase := schedules.NewScheduleUsecase(doctorRepository, sessionService, notificationQueue, auditService, internalConfig, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, doctorRepository, notificationQueue, auditService, bootstrap.Logger)
	medicalRecordUsecase := medicalrecords.NewMedicalRecordUsecase(medicalRecordRepository, objectStorage, auditService, internalConfig, bootstrap.Logger)
	triageUsecase := triage.NewTriageUsecase(doctorRepository, bootstrap.Logger)

	controllers := &routers.Controllers{
		Auth:     auth.NewAuthController(authUsecase, bootstrap.Logger),
		User:     users.NewUserController(userUsecase, bootstrap.Logger),
		Doctor:   doctors.NewDoctorController(doctorUsecase, bootstrap.Logger),
		Schedule: schedules.NewScheduleController(scheduleUsecase, bootstrap.Logger),
		Appointment: appointments.NewAppointmentController(
			appointmentUsecase,
			bootstrap.Logger,
		),
		MedicalRecord: medicalrecords.NewMedicalRecordController(
			medicalRecordUsecase,
			internalConfig.Uploads.MaxUploadSizeInMB*1024*1024,
			bootstrap.Logger,
		),
		Triage: triage.NewTriageController(triageUsecase, bootstrap.Logger),
	}

	appMiddlewares := middlewares.NewMiddlewares(sessionService, internalConfig, bootstrap.Logger)

	routers.SetupRoutes(bootstrap.Router, internalConfig, appMiddlewares, bootstrap.Logger, requestLog, controllers)

	return nil
}
