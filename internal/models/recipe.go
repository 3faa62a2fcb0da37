package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Difficulty levels a recipe may declare. The field is optional.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// CategoryTrending is the sentinel category meaning "no category filter".
const CategoryTrending = "Trending"

// DietaryOptions is the closed set of dietary restriction tags.
var DietaryOptions = []string{
	"Vegetarian",
	"Vegan",
	"Gluten-Free",
	"Dairy-Free",
	"Keto",
	"Paleo",
	"Low-Carb",
}

// UnitOptions lists the measurement units an ingredient may use.
var UnitOptions = []string{"g", "kg", "ml", "l", "tsp", "tbsp", "cup", "piece"}

// Ingredient is a single entry of a recipe's ingredient list.
// Name and Amount are required at submission time.
type Ingredient struct {
	Name        string `json:"name"`
	Amount      string `json:"amount"`
	Unit        string `json:"unit"`
	Substitutes string `json:"substitutes,omitempty"`
}

// IngredientList stores ingredients as a JSON array column.
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// StringList stores an ordered string sequence as a JSON array column.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Recipe is the canonical recipe resource. JSON field names follow the
// wire format the REST mock serves.
type Recipe struct {
	ID                  string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID              string         `gorm:"type:varchar(36);not null;index" json:"userId"`
	Title               string         `gorm:"size:255;not null" json:"title"`
	Description         string         `gorm:"type:text" json:"description"`
	CookingTime         int            `gorm:"not null" json:"cookingTime"`
	Rating              float64        `gorm:"default:0" json:"rating"`
	ImageURL            string         `gorm:"size:255" json:"imageUrl,omitempty"`
	Ingredients         IngredientList `gorm:"type:json;not null;default:'[]'" json:"ingredients"`
	Instructions        StringList     `gorm:"type:json;not null;default:'[]'" json:"instructions"`
	DietaryRestrictions StringList     `gorm:"type:json;default:'[]'" json:"dietaryRestrictions,omitempty"`
	Difficulty          string         `gorm:"size:20" json:"difficulty,omitempty"`
	Category            string         `gorm:"size:50" json:"category,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// HasDietary reports whether the recipe carries the given dietary tag.
func (r *Recipe) HasDietary(tag string) bool {
	for _, d := range r.DietaryRestrictions {
		if d == tag {
			return true
		}
	}
	return false
}
