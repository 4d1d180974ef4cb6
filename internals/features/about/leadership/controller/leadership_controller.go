package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/about/leadership/dto"
	"newgate_backend/internals/features/about/leadership/model"
	helper "newgate_backend/internals/helpers"
)

var leadershipListSpec = helper.ListSpec{
	OrderFields: map[string]string{
		"order": "ord",
		"name":  "name",
	},
	DefaultOrder: "ord ASC, name ASC",
}

type LeadershipController struct {
	DB *gorm.DB
}

func NewLeadershipController(db *gorm.DB) *LeadershipController {
	return &LeadershipController{DB: db}
}

// =============================
// 📄 List Leadership
// =============================
func (ctrl *LeadershipController) List(c *fiber.Ctx) error {
	var rows []model.LeadershipModel
	if err := ctrl.DB.Model(&model.LeadershipModel{}).
		Scopes(leadershipListSpec.Scope(c)).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve leadership")
	}
	return helper.JsonList(c, "", dto.ToLeadershipDTOs(c, rows), nil)
}

// =============================
// 🔍 Get Leader By ID
// =============================
func (ctrl *LeadershipController) GetByID(c *fiber.Ctx) error {
	var row model.LeadershipModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Leader not found")
	}
	return helper.JsonOK(c, "", dto.ToLeadershipDTO(c, row))
}

// =============================
// ➕ Create Leader
// =============================
func (ctrl *LeadershipController) Create(c *fiber.Ctx) error {
	var body dto.CreateLeadershipRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.LeadershipModel
	body.Apply(&row)
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create leader")
	}
	return helper.JsonCreated(c, "Leader created", dto.ToLeadershipDTO(c, row))
}

// =============================
// 🔄 Update Leader (PUT/PATCH)
// =============================
func (ctrl *LeadershipController) Update(c *fiber.Ctx) error {
	var body dto.UpdateLeadershipRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.LeadershipModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Leader not found")
	}
	body.Apply(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update leader")
	}
	return helper.JsonUpdated(c, "Leader updated", dto.ToLeadershipDTO(c, row))
}

// =============================
// 🗑️ Delete Leader
// =============================
func (ctrl *LeadershipController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.Delete(&model.LeadershipModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete leader")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Leader not found")
	}
	return helper.JsonDeleted(c, "Leader deleted", nil)
}
