package main

import (
	"context"
	"log"
	"time"

	"care4u-service/internal/app/config"
	"care4u-service/internal/app/contracts"
	"care4u-service/internal/app/drivers/database"
	"care4u-service/internal/app/models"
	"care4u-service/internal/app/services/core/doctors"
	"care4u-service/internal/app/services/core/users"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/utils"
)

// Seeds the admin account and a handful of doctors with working schedules so
// a fresh environment is usable without manual registration.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	mongoClient := database.NewMongoDB(driverConfig)
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting MongoDB: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userRepository := users.NewUserMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
	doctorRepository := doctors.NewDoctorMongoRepository(mongoClient, driverConfig.MongoDB.DbName)

	seedAdmin(ctx, userRepository, internalConfig)
	seedDoctors(ctx, userRepository, doctorRepository)

	log.Println("Seeding finished")
}

func seedAdmin(ctx context.Context, userRepository contracts.UserRepository, internalConfig *config.InternalConfig) {
	email := internalConfig.Auth.SeedAdminEmail
	password := internalConfig.Auth.SeedAdminPassword
	if password == "" {
		log.Println("APP_SEED_ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	existing, err := userRepository.FindByEmail(ctx, email)
	if err != nil {
		log.Fatalf("Error checking admin user: %v", err)
	}
	if existing != nil {
		log.Printf("Admin user %s already exists, skipping", email)
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Error hashing admin password: %v", err)
	}

	admin := &models.User{
		Email:    email,
		Username: "admin",
		Password: hashed,
		Role:     constvars.RoleAdmin,
	}
	admin.SetCreatedAtUpdatedAt()

	if _, err := userRepository.CreateUser(ctx, admin); err != nil {
		log.Fatalf("Error creating admin user: %v", err)
	}
	log.Printf("Seeded admin user %s", email)
}

type seedDoctor struct {
	email          string
	username       string
	fullName       string
	specialization string
	days           []string
	start          string
	end            string
	fee            string
}

func seedDoctors(ctx context.Context, userRepository contracts.UserRepository, doctorRepository contracts.DoctorRepository) {
	samples := []seedDoctor{
		{
			email:          "a.wijaya@care4u.local",
			username:       "a.wijaya",
			fullName:       "Dr. Andini Wijaya",
			specialization: "Cardiology",
			days:           []string{"Monday", "Wednesday", "Friday"},
			start:          "09:00",
			end:            "15:00",
			fee:            "350000",
		},
		{
			email:          "b.santoso@care4u.local",
			username:       "b.santoso",
			fullName:       "Dr. Budi Santoso",
			specialization: "Dermatology",
			days:           []string{"Tuesday", "Thursday"},
			start:          "10:00",
			end:            "17:00",
			fee:            "250000",
		},
		{
			email:          "c.lestari@care4u.local",
			username:       "c.lestari",
			fullName:       "Dr. Citra Lestari",
			specialization: "General Medicine",
			days:           []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			start:          "08:00",
			end:            "12:00",
			fee:            "150000",
		},
	}

	for _, sample := range samples {
		existing, err := userRepository.FindByEmail(ctx, sample.email)
		if err != nil {
			log.Fatalf("Error checking doctor user %s: %v", sample.email, err)
		}
		if existing != nil {
			log.Printf("Doctor %s already exists, skipping", sample.email)
			continue
		}

		hashed, err := utils.HashPassword("ChangeMe123!")
		if err != nil {
			log.Fatalf("Error hashing doctor password: %v", err)
		}

		doctor := &models.DoctorProfile{
			FullName:        sample.fullName,
			Specialization:  sample.specialization,
			AvailableDays:   sample.days,
			AvailableStart:  sample.start,
			AvailableEnd:    sample.end,
			ConsultationFee: sample.fee,
			IsAvailable:     true,
		}
		doctor.SetCreatedAtUpdatedAt()

		doctorID, err := doctorRepository.CreateDoctor(ctx, doctor)
		if err != nil {
			log.Fatalf("Error creating doctor profile %s: %v", sample.fullName, err)
		}

		user := &models.User{
			Email:    sample.email,
			Username: sample.username,
			Password: hashed,
			Role:     constvars.RoleDoctor,
			DoctorID: doctorID,
		}
		user.SetCreatedAtUpdatedAt()

		if _, err := userRepository.CreateUser(ctx, user); err != nil {
			log.Fatalf("Error creating doctor user %s: %v", sample.email, err)
		}
		log.Printf("Seeded doctor %s (%s)", sample.fullName, sample.specialization)
	}
}
