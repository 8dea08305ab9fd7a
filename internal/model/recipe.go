package model

import "time"

// Recipe belongs to a recipe book. UserID is denormalized from the owning
// book so ownership checks never need a join.
type Recipe struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Name         string       `json:"name" gorm:"size:255;not null"`
	Description  string       `json:"description" gorm:"size:1024"`
	Instructions string       `json:"instructions" gorm:"type:text"`
	ImageURL     string       `json:"image_url,omitempty" gorm:"size:512"`
	RecipeBookID uint         `json:"recipe_book_id" gorm:"not null;index"`
	UserID       uint         `json:"user_id" gorm:"not null;index"`
	Allergens    AllergenList `json:"allergens" gorm:"type:text"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// Relations
	Ingredients []Ingredient `json:"ingredients" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}
