package model

import "time"

// User represents a registered user owning recipe books.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	RecipeBooks []RecipeBook `json:"recipe_books,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
