package migration

import (
	"fmt"
	"log"

	"pantrypal-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.User{},
		&entities.Household{},
		&entities.HouseholdMember{},
		&entities.PantryItem{},
		&entities.ShoppingListItem{},
		&entities.MealPlan{},
		&entities.SavedRecipe{},
		&entities.RecipeHistory{},
		&entities.Feedback{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
