package lookups

import (
	"log"

	eventsModel "eventhub_backend/internals/features/events/model"
	orgModel "eventhub_backend/internals/features/org/model"

	"gorm.io/gorm"
)

var defaultRoles = []string{"student", "organizer", "admin"}

var defaultCategories = []string{"Technical", "Cultural", "Sports", "Workshop"}

// SeedLookups inserts the baseline lookup rows, skipping ones that exist.
func SeedLookups(db *gorm.DB) {
	for _, name := range defaultRoles {
		var existing orgModel.RoleModel
		if err := db.Where("role_name = ?", name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Role %q already present, skipping", name)
			continue
		}
		if err := db.Create(&orgModel.RoleModel{RoleName: name}).Error; err != nil {
			log.Printf("❌ Failed to seed role %q: %v", name, err)
		} else {
			log.Printf("✅ Seeded role %q", name)
		}
	}

	for _, name := range defaultCategories {
		var existing eventsModel.CategoryModel
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Category %q already present, skipping", name)
			continue
		}
		if err := db.Create(&eventsModel.CategoryModel{Name: name, ActiveStatus: true}).Error; err != nil {
			log.Printf("❌ Failed to seed category %q: %v", name, err)
		} else {
			log.Printf("✅ Seeded category %q", name)
		}
	}
}
