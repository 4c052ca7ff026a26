// Seeds the database with sample users, categories and products.
// Wipes those collections first; carts and orders are left alone.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"medicare-backend/internal/config"
	"medicare-backend/internal/domain"
	"medicare-backend/internal/infrastructure/database/mongodb"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Logger()
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

	ctx := context.Background()

	for _, name := range []string{"users", "products", "categories"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("failed to clear collection")
		}
	}
	log.Info().Msg("cleared existing data")

	now := time.Now().UTC()

	users := []interface{}{
		domain.User{
			Email:    "user@example.com",
			Password: mustHash("password123"),
			Name:     "John Doe",
			Phone:    "0123456789",
			Address: map[string]interface{}{
				"street":   "123 Main Street",
				"ward":     "Ward 1",
				"district": "District 1",
				"city":     "Ho Chi Minh City",
			},
			Role:      domain.RoleCustomer,
			CreatedAt: now,
			UpdatedAt: now,
		},
		domain.User{
			Email:    "admin@medicare.com",
			Password: mustHash("Admin@123"),
			Name:     "Admin User",
			Phone:    "0987654321",
			Address: map[string]interface{}{
				"street":   "456 Admin Road",
				"ward":     "Ward 2",
				"district": "District 3",
				"city":     "Ho Chi Minh City",
			},
			Role:      domain.RoleAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	categories := []interface{}{
		domain.Category{Name: "Pain Relief", Slug: "pain-relief", Description: "Medications for pain management", Icon: "fas fa-pills", CreatedAt: now},
		domain.Category{Name: "Vitamins", Slug: "vitamins", Description: "Vitamin and mineral supplements", Icon: "fas fa-leaf", CreatedAt: now},
		domain.Category{Name: "Skin Care", Slug: "skin-care", Description: "Products for skin health", Icon: "fas fa-hand-sparkles", CreatedAt: now},
		domain.Category{Name: "Heart Health", Slug: "heart-health", Description: "Medications for cardiovascular health", Icon: "fas fa-heartbeat", CreatedAt: now},
		domain.Category{Name: "Mental Health", Slug: "mental-health", Description: "Medications for mental wellbeing", Icon: "fas fa-brain", CreatedAt: now},
		domain.Category{Name: "Respiratory", Slug: "respiratory", Description: "Medications for breathing and lung health", Icon: "fas fa-lungs", CreatedAt: now},
	}

	products := []interface{}{
		domain.Product{
			Name:        "Paracetamol 500mg",
			Slug:        "paracetamol-500mg",
			Category:    "pain-relief",
			Price:       7.00,
			Discount:    12,
			Stock:       100,
			Images:      []string{"https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?auto=format&fit=crop&w=800&q=80"},
			Description: "Pain relief tablets for headaches and fever with fast-acting ingredients.",
			Specifications: []domain.Specification{
				{Key: "Dosage", Value: "500mg"},
				{Key: "Pack Size", Value: "10 tablets"},
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		domain.Product{
			Name:        "Vitamin C 1000mg",
			Slug:        "vitamin-c-1000mg",
			Category:    "vitamins",
			Price:       24.99,
			Stock:       75,
			Images:      []string{"https://images.unsplash.com/photo-1545239351-1141bd82e8a6?auto=format&fit=crop&w=800&q=80"},
			Description: "High potency Vitamin C supplement for immune support.",
			Specifications: []domain.Specification{
				{Key: "Serving Size", Value: "1 tablet"},
				{Key: "Form", Value: "Time release"},
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		domain.Product{
			Name:        "Omega-3 Fish Oil",
			Slug:        "omega-3-fish-oil",
			Category:    "heart-health",
			Price:       32.99,
			Discount:    15,
			Stock:       50,
			Images:      []string{"https://images.unsplash.com/photo-1587854692152-cbe660dbde88?auto=format&fit=crop&w=800&q=80"},
			Description: "Heart health capsules with essential fatty acids EPA and DHA.",
			Specifications: []domain.Specification{
				{Key: "EPA", Value: "360mg"},
				{Key: "DHA", Value: "240mg"},
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		domain.Product{
			Name:        "Daily Multivitamin",
			Slug:        "daily-multivitamin",
			Category:    "vitamins",
			Price:       19.99,
			Discount:    5,
			Stock:       60,
			Images:      []string{"https://images.unsplash.com/photo-1550572017-edd951aa0b0a?auto=format&fit=crop&w=800&q=80"},
			Description: "Complete daily nutrition supplement supporting overall wellness.",
			Specifications: []domain.Specification{
				{Key: "Tablets", Value: "60"},
				{Key: "Recommended Use", Value: "Take 1 tablet daily"},
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if _, err := db.Collection("users").InsertMany(ctx, users); err != nil {
		log.Fatal().Err(err).Msg("failed to insert users")
	}
	log.Info().Int("count", len(users)).Msg("inserted users")

	if _, err := db.Collection("categories").InsertMany(ctx, categories); err != nil {
		log.Fatal().Err(err).Msg("failed to insert categories")
	}
	log.Info().Int("count", len(categories)).Msg("inserted categories")

	if _, err := db.Collection("products").InsertMany(ctx, products); err != nil {
		log.Fatal().Err(err).Msg("failed to insert products")
	}
	log.Info().Int("count", len(products)).Msg("inserted products")

	log.Info().Str("database", conf.MongoDBConfig.DatabaseName).Msg("database seeding completed")
}

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}
	return string(hashed)
}
