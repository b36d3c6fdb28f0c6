package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careermap_backend/internals/features/core/model"
	helper "careermap_backend/internals/helpers"
)

// CoreController serves the public lookup tables used while filling the
// profile form.
type CoreController struct {
	DB *gorm.DB
}

func NewCoreController(db *gorm.DB) *CoreController {
	return &CoreController{DB: db}
}

func (ctrl *CoreController) ListStates(c *fiber.Ctx) error {
	var states []model.StateModel
	if err := ctrl.DB.Order("name ASC").Find(&states).Error; err != nil {
		log.Printf("[CORE] list states failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch states")
	}
	return helper.JsonOK(c, "States fetched", states)
}

// ListCities optionally narrows to one state via ?state_id=.
func (ctrl *CoreController) ListCities(c *fiber.Ctx) error {
	q := ctrl.DB.Table("cities").
		Select("cities.id, cities.name").
		Order("cities.name ASC")

	if stateID := c.Query("state_id"); stateID != "" {
		q = q.Joins("JOIN city_states ON city_states.city_id = cities.id").
			Where("city_states.state_id = ?", stateID)
	}

	var cities []model.CityModel
	if err := q.Find(&cities).Error; err != nil {
		log.Printf("[CORE] list cities failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cities")
	}
	return helper.JsonOK(c, "Cities fetched", cities)
}

func (ctrl *CoreController) ListColleges(c *fiber.Ctx) error {
	var colleges []model.CollegeModel
	if err := ctrl.DB.Order("name ASC").Find(&colleges).Error; err != nil {
		log.Printf("[CORE] list colleges failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch colleges")
	}
	return helper.JsonOK(c, "Colleges fetched", colleges)
}

func (ctrl *CoreController) ListBranches(c *fiber.Ctx) error {
	var branches []model.BranchModel
	if err := ctrl.DB.Order("name ASC").Find(&branches).Error; err != nil {
		log.Printf("[CORE] list branches failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch branches")
	}
	return helper.JsonOK(c, "Branches fetched", branches)
}

func (ctrl *CoreController) ListDegrees(c *fiber.Ctx) error {
	var degrees []model.DegreeModel
	if err := ctrl.DB.Order("name ASC").Find(&degrees).Error; err != nil {
		log.Printf("[CORE] list degrees failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch degrees")
	}
	return helper.JsonOK(c, "Degrees fetched", degrees)
}
