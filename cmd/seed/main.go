package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielmek/hotelhub/internal/domain/apperr"
	"github.com/danielmek/hotelhub/internal/domain/contract"
	"github.com/danielmek/hotelhub/internal/domain/entity"
	"github.com/danielmek/hotelhub/internal/infrastructure/config"
	"github.com/danielmek/hotelhub/internal/infrastructure/database"
	passwordservice "github.com/danielmek/hotelhub/internal/infrastructure/password_service"
	"github.com/danielmek/hotelhub/internal/infrastructure/repository/mongodb"
	"github.com/danielmek/hotelhub/internal/infrastructure/uuidgen"
)

// Seeds the super admin account and, with SEED_SAMPLE_DATA=true, a few
// sample merchant hotels for local development.
func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if appConfig.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}

	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()
	log.Println("Connected to database")

	db := mongoClient.Client.Database(appConfig.MongoDBName)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	hotelRepo := mongodb.NewHotelRepository(db)

	ctx := context.Background()
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	if err := hotelRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create hotel indexes: %v", err)
	}

	hasher := passwordservice.NewHasher()
	uuidGenerator := uuidgen.NewGenerator()

	username := getEnv("SUPER_ADMIN_USERNAME", "superadmin")
	password := getEnv("SUPER_ADMIN_PASSWORD", "")
	if password == "" {
		log.Fatal("SUPER_ADMIN_PASSWORD environment variable not set")
	}

	existing, err := userRepo.GetUserByUsername(ctx, username)
	if err != nil && !apperr.IsKind(err, apperr.KindNotFound) {
		log.Fatalf("Failed to check for existing super admin: %v", err)
	}
	if existing != nil {
		log.Printf("Super admin %q already exists, skipping", username)
	} else {
		hash, err := hasher.HashPassword(password)
		if err != nil {
			log.Fatalf("Failed to hash super admin password: %v", err)
		}
		now := time.Now()
		superAdmin := &entity.User{
			ID:           uuidGenerator.NewUUID(),
			Username:     username,
			PasswordHash: hash,
			Role:         entity.UserRoleSuperAdmin,
			Status:       entity.UserStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.CreateUser(ctx, superAdmin); err != nil {
			log.Fatalf("Failed to create super admin: %v", err)
		}
		log.Printf("Created super admin %q", username)
	}

	if getEnv("SEED_SAMPLE_DATA", "false") != "true" {
		log.Println("Seed completed")
		return
	}

	merchantID, err := seedMerchant(ctx, userRepo, hasher, uuidGenerator)
	if err != nil {
		log.Fatalf("Failed to seed sample merchant: %v", err)
	}

	created := 0
	for _, hotel := range sampleHotels(merchantID, uuidGenerator) {
		if err := hotelRepo.CreateHotel(ctx, hotel); err != nil {
			log.Fatalf("Failed to create sample hotel %q: %v", hotel.Name, err)
		}
		created++
	}
	log.Printf("Created %d sample hotels", created)
	log.Println("Seed completed")
}

func seedMerchant(ctx context.Context, userRepo contract.IUserRepository, hasher contract.IHasher, uuidGenerator contract.IUUIDGenerator) (string, error) {
	existing, err := userRepo.GetUserByUsername(ctx, "demomerchant")
	if err != nil && !apperr.IsKind(err, apperr.KindNotFound) {
		return "", err
	}
	if existing != nil {
		log.Println("Sample merchant already exists, reusing")
		return existing.ID, nil
	}

	hash, err := hasher.HashPassword("merchant123")
	if err != nil {
		return "", err
	}
	now := time.Now()
	merchant := &entity.User{
		ID:           uuidGenerator.NewUUID(),
		Username:     "demomerchant",
		PasswordHash: hash,
		Role:         entity.UserRoleMerchant,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.CreateUser(ctx, merchant); err != nil {
		return "", err
	}
	log.Println("Created sample merchant \"demomerchant\"")
	return merchant.ID, nil
}

func sampleHotels(creatorID string, uuidGenerator contract.IUUIDGenerator) []*entity.Hotel {
	now := time.Now()
	base := entity.Hotel{
		Images:            []string{},
		RoomTypes:         []entity.RoomType{},
		NearbyAttractions: []entity.NearbyAttraction{},
		Transportations:   []entity.Transportation{},
		ShoppingMalls:     []entity.ShoppingMall{},
		Discounts:         []entity.Discount{},
		Facilities:        []string{},
		CreatorID:         creatorID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	draft := base
	draft.ID = uuidGenerator.NewUUID()
	draft.Name = "Riverside Boutique Hotel"
	draft.Address = "12 River Walk"
	draft.StarRating = 3
	draft.Phone = "555-0101"
	draft.Description = "A small boutique hotel by the river."
	draft.Status = entity.HotelStatusDraft
	draft.Facilities = []string{"wifi", "parking"}

	pending := base
	pending.ID = uuidGenerator.NewUUID()
	pending.Name = "City Central Suites"
	pending.Address = "88 Market Square"
	pending.StarRating = 4
	pending.Phone = "555-0102"
	pending.Description = "Serviced suites in the city center."
	pending.Status = entity.HotelStatusPending

	online := base
	online.ID = uuidGenerator.NewUUID()
	online.Name = "Grand Harbor Resort"
	online.Address = "1 Harbor View Road"
	online.StarRating = 5
	online.Phone = "555-0103"
	online.Description = "Full-service resort overlooking the harbor."
	online.Status = entity.HotelStatusOnline
	online.AuditStatus = entity.AuditStatusPassed
	online.RoomTypes = []entity.RoomType{
		{Name: "Deluxe King", Price: 240, BedType: "king", MaxOccupancy: 2, Breakfast: true},
		{Name: "Harbor Suite", Price: 420, BedType: "king", MaxOccupancy: 4, Breakfast: true},
	}
	online.Transportations = []entity.Transportation{
		{Type: entity.TransportSubway, Name: "Harbor Station", Distance: "300m"},
	}

	return []*entity.Hotel{&draft, &pending, &online}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
