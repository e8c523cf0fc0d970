package migration

import (
	"fmt"
	"log"

	"FoodBook-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserUniqueToken{}); err != nil {
		log.Fatalf("Error migrating token database: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.IngredientRecipe{}); err != nil {
		log.Fatalf("Error migrating ingredient recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CommentRecipe{}); err != nil {
		log.Fatalf("Error migrating comment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeLike{}); err != nil {
		log.Fatalf("Error migrating recipe like database: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities.Schedule{}); err != nil {
		log.Fatalf("Error migrating schedule database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeSchedule{}); err != nil {
		log.Fatalf("Error migrating recipe schedule database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ScheduleLike{}); err != nil {
		log.Fatalf("Error migrating schedule like database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
