package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dinehub/restaurant-backend/controllers"
	"github.com/dinehub/restaurant-backend/models"
	"github.com/dinehub/restaurant-backend/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Food{}, &models.Staff{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupFoodRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	foodCtrl := controllers.NewFoodController(db)
	r.GET("/api/foods", foodCtrl.GetAllFoods)
	r.POST("/api/foods", foodCtrl.CreateFood)
	r.GET("/api/foods/:id", foodCtrl.GetFoodByID)
	r.PUT("/api/foods/:id", foodCtrl.UpdateFood)
	r.DELETE("/api/foods/:id", foodCtrl.DeleteFood)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestFoodCreateThenGetThenDelete(t *testing.T) {
	utils.InitLogger()
	r := setupFoodRouter(setupTestDB(t))

	w := doJSON(t, r, "POST", "/api/foods", map[string]interface{}{
		"name":  "Pizza",
		"price": 120,
		"image": "/images/pizza.png",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody(t, w)
	assert.Equal(t, "Pizza", created["name"])
	assert.Equal(t, 120.0, created["price"])
	assert.Equal(t, "/images/pizza.png", created["image"])
	id := int(created["id"].(float64))
	assert.NotZero(t, id)

	url := "/api/foods/" + strconv.Itoa(id)
	w = doJSON(t, r, "GET", url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	fetched := decodeBody(t, w)
	assert.Equal(t, created, fetched)

	w = doJSON(t, r, "DELETE", url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeBody(t, w)["message"], "deleted")

	w = doJSON(t, r, "GET", url, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFoodCreateCoercesStringPrice(t *testing.T) {
	utils.InitLogger()
	r := setupFoodRouter(setupTestDB(t))

	w := doJSON(t, r, "POST", "/api/foods", map[string]interface{}{
		"name":  "Dosa",
		"price": "100",
		"image": "/images/Dosa.png",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 100.0, decodeBody(t, w)["price"])

	w = doJSON(t, r, "POST", "/api/foods", map[string]interface{}{
		"name":  "Dosa",
		"price": "cheap",
		"image": "/images/Dosa.png",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFoodCreateValidation(t *testing.T) {
	utils.InitLogger()
	r := setupFoodRouter(setupTestDB(t))

	cases := []map[string]interface{}{
		{"price": 120, "image": "/images/pizza.png"},                                   // no name
		{"name": "Pizza", "image": "/images/pizza.png"},                                // no price
		{"name": "Pizza", "price": 120},                                                // no image
		{"name": "Pizza", "price": -1, "image": "/images/p.png"},                       // negative price
		{"name": "Pizza", "price": 120, "image": "/images/p.png", "category": "Snacks"}, // unknown category
	}
	for i, payload := range cases {
		w := doJSON(t, r, "POST", "/api/foods", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "case %d", i)
	}
}

func TestFoodUpdateReplacesWholeRecord(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	r := setupFoodRouter(db)

	w := doJSON(t, r, "POST", "/api/foods", map[string]interface{}{
		"name":     "Paneer Tikka",
		"price":    180,
		"image":    "/images/paneer.png",
		"category": "Starter",
		"isVeg":    true,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	id := int(decodeBody(t, w)["id"].(float64))
	url := "/api/foods/" + strconv.Itoa(id)

	// Replace without category/isVeg: the omitted fields must not be
	// preserved.
	w = doJSON(t, r, "PUT", url, map[string]interface{}{
		"name":  "Paneer Tikka Masala",
		"price": 220,
		"image": "/images/paneer_masala.png",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	fetched := decodeBody(t, w)
	assert.Equal(t, "Paneer Tikka Masala", fetched["name"])
	assert.Equal(t, 220.0, fetched["price"])
	assert.Equal(t, "/images/paneer_masala.png", fetched["image"])
	assert.NotContains(t, fetched, "category")
	assert.NotContains(t, fetched, "isVeg")
}

func TestFoodUpdateRequiresImage(t *testing.T) {
	utils.InitLogger()
	r := setupFoodRouter(setupTestDB(t))

	w := doJSON(t, r, "POST", "/api/foods", map[string]interface{}{
		"name": "Burger", "price": 150, "image": "/images/burger.png",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	id := int(decodeBody(t, w)["id"].(float64))

	w = doJSON(t, r, "PUT", "/api/foods/"+strconv.Itoa(id), map[string]interface{}{
		"name": "Burger", "price": 150,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFoodUnknownIDsReturn404(t *testing.T) {
	utils.InitLogger()
	r := setupFoodRouter(setupTestDB(t))

	w := doJSON(t, r, "GET", "/api/foods/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, "PUT", "/api/foods/999", map[string]interface{}{
		"name": "Ghost", "price": 1, "image": "/images/ghost.png",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, "DELETE", "/api/foods/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Ids the service never issued include unparseable ones.
	w = doJSON(t, r, "GET", "/api/foods/not-an-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFoodListNeverIncludesDeleted(t *testing.T) {
	utils.InitLogger()
	r := setupFoodRouter(setupTestDB(t))

	ids := make([]int, 0, 3)
	for _, name := range []string{"Idli", "Vada", "Jalebi"} {
		w := doJSON(t, r, "POST", "/api/foods", map[string]interface{}{
			"name": name, "price": 30, "image": "/images/" + name + ".png",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
		ids = append(ids, int(decodeBody(t, w)["id"].(float64)))
	}

	w := doJSON(t, r, "DELETE", "/api/foods/"+strconv.Itoa(ids[1]), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/api/foods", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var foods []models.Food
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &foods))
	assert.Len(t, foods, 2)
	for _, food := range foods {
		assert.NotEqual(t, uint(ids[1]), food.ID)
	}
}

func TestFoodListEmptyIsArray(t *testing.T) {
	utils.InitLogger()
	r := setupFoodRouter(setupTestDB(t))

	w := doJSON(t, r, "GET", "/api/foods", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
