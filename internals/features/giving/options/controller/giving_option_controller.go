package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/giving/options/dto"
	"newgate_backend/internals/features/giving/options/model"
	helper "newgate_backend/internals/helpers"
)

var givingOptionListSpec = helper.ListSpec{
	OrderFields: map[string]string{
		"order": "ord",
		"title": "title",
	},
	DefaultOrder: "ord ASC, title ASC",
}

type GivingOptionController struct {
	DB *gorm.DB
}

func NewGivingOptionController(db *gorm.DB) *GivingOptionController {
	return &GivingOptionController{DB: db}
}

// =============================
// 📄 List Giving Options
// =============================
func (ctrl *GivingOptionController) List(c *fiber.Ctx) error {
	var rows []model.GivingOptionModel
	if err := ctrl.DB.Model(&model.GivingOptionModel{}).
		Scopes(givingOptionListSpec.Scope(c)).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve giving options")
	}
	return helper.JsonList(c, "", dto.ToGivingOptionDTOs(rows), nil)
}

// =============================
// 🔍 Get Giving Option By ID
// =============================
func (ctrl *GivingOptionController) GetByID(c *fiber.Ctx) error {
	var row model.GivingOptionModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Giving option not found")
	}
	return helper.JsonOK(c, "", dto.ToGivingOptionDTO(row))
}

// =============================
// ➕ Create Giving Option
// =============================
func (ctrl *GivingOptionController) Create(c *fiber.Ctx) error {
	var body dto.CreateGivingOptionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.GivingOptionModel
	body.Apply(&row)
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create giving option")
	}
	return helper.JsonCreated(c, "Giving option created", dto.ToGivingOptionDTO(row))
}

// =============================
// 🔄 Update Giving Option (PUT/PATCH)
// =============================
func (ctrl *GivingOptionController) Update(c *fiber.Ctx) error {
	var body dto.UpdateGivingOptionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.GivingOptionModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Giving option not found")
	}
	body.Apply(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update giving option")
	}
	return helper.JsonUpdated(c, "Giving option updated", dto.ToGivingOptionDTO(row))
}

// =============================
// 🗑️ Delete Giving Option
// =============================
func (ctrl *GivingOptionController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.Delete(&model.GivingOptionModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete giving option")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Giving option not found")
	}
	return helper.JsonDeleted(c, "Giving option deleted", nil)
}
