package seeds

import (
	"log"

	"eventhub_backend/internals/seeds/lookups"

	"gorm.io/gorm"
)

// RunAllSeeds populates the lookup tables. Safe to run repeatedly.
func RunAllSeeds(db *gorm.DB) {
	log.Println("🌱 Running seeds...")
	lookups.SeedLookups(db)
	log.Println("🌱 Seeds done.")
}
