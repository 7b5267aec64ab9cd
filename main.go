package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	invoiceControllers "github.com/haleemzahid/pos-ticket-api/controllers/invoice"
	ticketControllers "github.com/haleemzahid/pos-ticket-api/controllers/ticket"
	"github.com/haleemzahid/pos-ticket-api/models"
	"github.com/haleemzahid/pos-ticket-api/routes"
)

func main() {
	log.Println("✅ Starting POS ticket API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.TaxGroup{},
		&models.Product{},
		&models.ProductSize{},
		&models.ProductType{},
		&models.ProductPortion{},
		&models.ToppingGroup{},
		&models.Topping{},
		&models.Affix{},
		&models.Discount{},
		&models.ServiceMethod{},
		&models.HeldInvoice{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings for the terminal frontends
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-REGISTER-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// In-memory terminal sessions
	store := ticketControllers.NewStore()

	// Setup routes
	routes.SetupRoutes(r, db, store)

	// Purge stale held invoices at 3 AM daily, keep 7 days
	go startDailyPurgeAtFixedTime(db, 7*24*time.Hour, 3, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func initDatabase() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "pos"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	return db
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// startDailyPurgeAtFixedTime waits until the next hh:mm, purges held
// invoices older than maxAge, then repeats every 24h.
func startDailyPurgeAtFixedTime(db *gorm.DB, maxAge time.Duration, hour, minute int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		time.Sleep(time.Until(next))

		purged, err := invoiceControllers.PurgeHeldInvoices(db, maxAge)
		if err != nil {
			log.Printf("❌ Held invoice purge failed: %v", err)
			continue
		}
		log.Printf("🧹 Purged %d stale held invoices", purged)
	}
}
