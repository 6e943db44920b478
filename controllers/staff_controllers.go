package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinehub/restaurant-backend/models"
	"github.com/dinehub/restaurant-backend/utils"
)

var errStaffNotFound = errors.New("staff member not found")

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

// staffPayload accepts full or partial bodies. The payment toggle in the
// client PUTs {"paymentStatus": ...} alone, so update merges present
// fields instead of replacing the document. A supplied salary is ignored:
// salary always comes from the role table.
type staffPayload struct {
	Name          *string        `json:"name"`
	Role          *string        `json:"role"`
	Age           *models.Number `json:"age"`
	Salary        *models.Number `json:"salary"`
	PaymentStatus *string        `json:"paymentStatus"`
}

func (sc *StaffController) GetAllStaff(c *gin.Context) {
	var staff []models.Staff
	if err := sc.DB.Find(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if staff == nil {
		staff = []models.Staff{}
	}
	utils.RespondJSON(c, http.StatusOK, staff)
}

func (sc *StaffController) GetStaffByID(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errStaffNotFound)
		return
	}

	var staff models.Staff
	if err := sc.DB.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errStaffNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, staff)
}

func (sc *StaffController) CreateStaff(c *gin.Context) {
	var payload staffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	staff := models.Staff{}
	if payload.Name != nil {
		staff.Name = *payload.Name
	}
	if payload.Role != nil {
		staff.Role = *payload.Role
	}
	if payload.Age == nil {
		utils.RespondError(c, http.StatusBadRequest, models.ErrStaffAgeRequired)
		return
	}
	age, err := payload.Age.Int()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, models.ErrStaffAgeOutOfRange)
		return
	}
	staff.Age = age

	salary, ok := models.SalaryForRole(staff.Role)
	if !ok {
		if staff.Role == "" {
			utils.RespondError(c, http.StatusBadRequest, models.ErrStaffRoleRequired)
		} else {
			utils.RespondError(c, http.StatusBadRequest, models.ErrUnknownRole)
		}
		return
	}
	staff.Salary = salary

	if payload.PaymentStatus != nil {
		staff.PaymentStatus = *payload.PaymentStatus
	} else {
		staff.PaymentStatus = models.DefaultPaymentStatus(salary)
	}

	if err := staff.Validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Roster cap. The old client only disabled the Add button at 4
	// members; the boundary is enforced here as well since the network
	// edge is trivially bypassable.
	var count int64
	if err := sc.DB.Model(&models.Staff{}).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count >= models.MaxStaffCount {
		utils.RespondError(c, http.StatusBadRequest, models.ErrStaffLimitReached)
		return
	}

	if err := sc.DB.Create(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Staff created (ID=%d, role=%s)", staff.ID, staff.Role)
	utils.RespondJSON(c, http.StatusCreated, staff)
}

// UpdateStaff merges the supplied fields into the stored record. A role
// change re-derives salary from the table; paymentStatus moves freely
// between Paid and Non-Paid regardless of salary.
func (sc *StaffController) UpdateStaff(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errStaffNotFound)
		return
	}

	var staff models.Staff
	if err := sc.DB.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errStaffNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var payload staffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if payload.Name != nil {
		staff.Name = *payload.Name
	}
	if payload.Role != nil {
		salary, ok := models.SalaryForRole(*payload.Role)
		if !ok {
			utils.RespondError(c, http.StatusBadRequest, models.ErrUnknownRole)
			return
		}
		staff.Role = *payload.Role
		staff.Salary = salary
	}
	if payload.Age != nil {
		age, err := payload.Age.Int()
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, models.ErrStaffAgeOutOfRange)
			return
		}
		staff.Age = age
	}
	if payload.PaymentStatus != nil {
		staff.PaymentStatus = *payload.PaymentStatus
	}

	if err := staff.Validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := sc.DB.Save(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, staff)
}

func (sc *StaffController) DeleteStaff(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errStaffNotFound)
		return
	}

	var staff models.Staff
	if err := sc.DB.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errStaffNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := sc.DB.Delete(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Staff member deleted successfully")
}
