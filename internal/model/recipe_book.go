package model

import "time"

// RecipeBook groups a user's recipes under a title, author and optional cover.
type RecipeBook struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"size:255;not null"`
	Author        string    `json:"author" gorm:"size:255;not null"`
	CoverImageURL string    `json:"cover_image_url,omitempty" gorm:"size:512"`
	UserID        uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	Recipes []Recipe `json:"recipes,omitempty" gorm:"foreignKey:RecipeBookID;constraint:OnDelete:CASCADE"`
}
