package database

import (
	"gorm.io/gorm"

	"github.com/dinehub/restaurant-backend/models"
)

var sampleFoods = []models.Food{
	{Name: "Sandwich", Price: 90, Image: "/images/Sandwich.png"},
	{Name: "Burger", Price: 150, Image: "/images/burger.png"},
	{Name: "Pizza", Price: 120, Image: "/images/pizza.png"},
	{Name: "Pasta", Price: 110, Image: "/images/pasta.png"},
	{Name: "Spring Roll", Price: 70, Image: "/images/spring_roll.png"},
	{Name: "Hakka Noodles", Price: 200, Image: "/images/Hakka_Noodles.png"},
	{Name: "Pav Bhaji", Price: 130, Image: "/images/PavBhaji.png"},
	{Name: "French Fries", Price: 130, Image: "/images/french_fries.png"},
	{Name: "Pumpkin Soup", Price: 90, Image: "/images/Pumpkin_Soup.png"},
	{Name: "Gulab Jamun", Price: 130, Image: "/images/Gulab_Jamun.png"},
	{Name: "Ratatouille", Price: 150, Image: "/images/Ratatouille.png"},
	{Name: "Rasgulla", Price: 80, Image: "/images/Rasgulla.png"},
	{Name: "Shawarma", Price: 120, Image: "/images/Shawarma.png"},
	{Name: "Dosa", Price: 100, Image: "/images/Dosa.png"},
	{Name: "Croissant", Price: 70, Image: "/images/Croissant.png"},
	{Name: "Samosa", Price: 20, Image: "/images/Samosa.png"},
	{Name: "Jalebi", Price: 50, Image: "/images/Jalebi.png"},
	{Name: "Gupchup", Price: 40, Image: "/images/Gupchup.png"},
	{Name: "Manchurian", Price: 100, Image: "/images/Manchurian.png"},
	{Name: "Chilli Potato", Price: 80, Image: "/images/ChilliPotato.png"},
	{Name: "Bhel Puri", Price: 50, Image: "/images/BhelPuri.png"},
	{Name: "Dabeli", Price: 40, Image: "/images/Dabeli.png"},
	{Name: "Garlic Bread", Price: 60, Image: "/images/GarlicBread.png"},
	{Name: "Idli", Price: 30, Image: "/images/idli.png"},
	{Name: "Mozzarella Stick", Price: 70, Image: "/images/Mozzarella_stick.png"},
	{Name: "Pancake", Price: 90, Image: "/images/Pancake.png"},
	{Name: "Vada", Price: 20, Image: "/images/Vada.png"},
}

// SeedFoods fills an empty foods table with the sample menu so a fresh
// deployment renders a populated menu page. Existing data is left alone.
func SeedFoods(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Food{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	foods := make([]models.Food, len(sampleFoods))
	copy(foods, sampleFoods)
	return db.Create(&foods).Error
}
