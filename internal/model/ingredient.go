package model

// Ingredient is a single entry of a recipe's ingredient list. It never
// exists independently of its recipe.
type Ingredient struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:255;not null"`
	Quantity string `json:"quantity" gorm:"size:255;not null"` // free text, e.g. "200g", "1 cup"
	RecipeID uint   `json:"recipe_id" gorm:"not null;index"`
}
