package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinehub/restaurant-backend/models"
	"github.com/dinehub/restaurant-backend/utils"
)

var errFoodNotFound = errors.New("food item not found")

type FoodController struct {
	DB *gorm.DB
}

func NewFoodController(db *gorm.DB) *FoodController {
	return &FoodController{DB: db}
}

// foodPayload is the wire form of a food record. Price is a Number so
// that a client posting "120" instead of 120 still works; pointer fields
// distinguish absent from zero.
type foodPayload struct {
	Name     string         `json:"name"`
	Price    *models.Number `json:"price"`
	Category *string        `json:"category"`
	Image    string         `json:"image"`
	IsVeg    *bool          `json:"isVeg"`
}

func (p *foodPayload) toFood() (models.Food, error) {
	food := models.Food{
		Name:     p.Name,
		Category: p.Category,
		Image:    p.Image,
		IsVeg:    p.IsVeg,
	}
	if p.Price == nil {
		return food, models.ErrFoodPriceRequired
	}
	food.Price = p.Price.Float64()
	return food, food.Validate()
}

// GetAllFoods returns every food record in store order. No pagination,
// no sort key.
func (fc *FoodController) GetAllFoods(c *gin.Context) {
	var foods []models.Food
	if err := fc.DB.Find(&foods).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	// An empty table still serializes as [] rather than null.
	if foods == nil {
		foods = []models.Food{}
	}
	utils.RespondJSON(c, http.StatusOK, foods)
}

func (fc *FoodController) GetFoodByID(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errFoodNotFound)
		return
	}

	var food models.Food
	if err := fc.DB.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errFoodNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, food)
}

func (fc *FoodController) CreateFood(c *gin.Context) {
	var payload foodPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	food, err := payload.toFood()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := fc.DB.Create(&food).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Food created (ID=%d, name=%q)", food.ID, food.Name)
	utils.RespondJSON(c, http.StatusCreated, food)
}

// UpdateFood replaces the whole record. Fields missing from the body are
// not preserved, so a body without an image fails validation instead of
// silently keeping the old one.
func (fc *FoodController) UpdateFood(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errFoodNotFound)
		return
	}

	var existing models.Food
	if err := fc.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errFoodNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var payload foodPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	food, err := payload.toFood()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	food.ID = existing.ID
	food.CreatedAt = existing.CreatedAt

	// Save writes every column, which clears optional fields the caller
	// omitted. That is the documented replace semantics.
	if err := fc.DB.Save(&food).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, food)
}

func (fc *FoodController) DeleteFood(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errFoodNotFound)
		return
	}

	var food models.Food
	if err := fc.DB.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errFoodNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := fc.DB.Delete(&food).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Food item deleted successfully")
}

// parseID treats unparseable path ids as unknown records: an id the
// service never issued cannot be found.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
