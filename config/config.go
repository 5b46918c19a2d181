package config

import (
	"log"
	"os"

	"foodexpress/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign session tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "foodexpress_demo_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens an in-memory database and loads the catalog. Nothing
// survives a restart: durability is an explicit non-goal of the demo.
func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to open in-memory database:", err)
	}

	err = DB.AutoMigrate(
		&models.Restaurant{},
		&models.MenuItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate catalog schema:", err)
	}

	seedCatalog(DB)

	log.Println("✅ In-memory catalog loaded")
}
