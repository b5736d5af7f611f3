package migration

import (
	"daidokoro-note/entities"
	"fmt"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.KVEntry{}); err != nil {
		return fmt.Errorf("error migrating kv entries: %w", err)
	}

	fmt.Println("Database migration complete")
	return nil
}
