package entities

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name            string     `gorm:"size:128;not null" json:"name"`
	Description     string     `gorm:"type:text" json:"description,omitempty"`
	Preparing       string     `gorm:"type:text;not null" json:"preparing"`
	PreparationTime int        `gorm:"not null" json:"preparation_time_minutes"`
	Calories        *int       `json:"calories,omitempty"`
	ImageURL        string     `json:"image_url,omitempty"`
	CreateByID      *uuid.UUID `gorm:"type:uuid" json:"create_by_id,omitempty"`

	CreateBy    *User              `gorm:"foreignKey:CreateByID;constraint:OnDelete:SET NULL"`
	Ingredients []IngredientRecipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}

// IngredientRecipe joins a recipe to one ingredient with its free-text
// quantity. RESTRICT on the ingredient side blocks deleting an ingredient
// any recipe still uses.
type IngredientRecipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	IngredientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ingredient_recipe" json:"ingredient_id"`
	RecipeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ingredient_recipe" json:"recipe_id"`
	Quantity     string    `gorm:"size:64" json:"quantity"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT"`
	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

type CommentRecipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	DateAdded time.Time `gorm:"type:timestamp" json:"date_added"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type RecipeLike struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_like" json:"recipe_id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_like" json:"user_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
