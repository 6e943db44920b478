package models

import (
	"errors"
	"time"
)

// FoodCategories is the fixed set of menu sections the client renders.
// Category stays optional so records created before the field existed
// keep loading.
var FoodCategories = map[string]bool{
	"Starter":     true,
	"Main Course": true,
	"Dessert":     true,
	"Beverages":   true,
}

var (
	ErrFoodNameRequired  = errors.New("food name is required")
	ErrFoodPriceRequired = errors.New("food price is required")
	ErrFoodPriceNegative = errors.New("food price must be >= 0")
	ErrFoodImageRequired = errors.New("food image is required")
	ErrUnknownCategory   = errors.New("unknown food category")
)

type Food struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Category  *string   `gorm:"type:varchar(50)" json:"category,omitempty"`
	Image     string    `gorm:"type:varchar(255);not null" json:"image"`
	IsVeg     *bool     `json:"isVeg,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Validate enforces the invariant that a food record is never persisted
// without a name, a non-negative price and an image reference.
func (f *Food) Validate() error {
	if f.Name == "" {
		return ErrFoodNameRequired
	}
	if f.Price < 0 {
		return ErrFoodPriceNegative
	}
	if f.Image == "" {
		return ErrFoodImageRequired
	}
	if f.Category != nil && !FoodCategories[*f.Category] {
		return ErrUnknownCategory
	}
	return nil
}
