package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/about/values/dto"
	"newgate_backend/internals/features/about/values/model"
	helper "newgate_backend/internals/helpers"
)

var valueListSpec = helper.ListSpec{
	OrderFields: map[string]string{
		"order": "ord",
		"title": "title",
	},
	DefaultOrder: "ord ASC, title ASC",
}

type ValueController struct {
	DB *gorm.DB
}

func NewValueController(db *gorm.DB) *ValueController {
	return &ValueController{DB: db}
}

// =============================
// 📄 List Values
// =============================
func (ctrl *ValueController) List(c *fiber.Ctx) error {
	var rows []model.ValueModel
	if err := ctrl.DB.Model(&model.ValueModel{}).
		Scopes(valueListSpec.Scope(c)).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve values")
	}
	return helper.JsonList(c, "", dto.ToValueDTOs(rows), nil)
}

// =============================
// 🔍 Get Value By ID
// =============================
func (ctrl *ValueController) GetByID(c *fiber.Ctx) error {
	var row model.ValueModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Value not found")
	}
	return helper.JsonOK(c, "", dto.ToValueDTO(row))
}

// =============================
// ➕ Create Value
// =============================
func (ctrl *ValueController) Create(c *fiber.Ctx) error {
	var body dto.CreateValueRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.ValueModel
	body.Apply(&row)
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create value")
	}
	return helper.JsonCreated(c, "Value created", dto.ToValueDTO(row))
}

// =============================
// 🔄 Update Value (PUT/PATCH)
// =============================
func (ctrl *ValueController) Update(c *fiber.Ctx) error {
	var body dto.UpdateValueRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.ValueModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Value not found")
	}
	body.Apply(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update value")
	}
	return helper.JsonUpdated(c, "Value updated", dto.ToValueDTO(row))
}

// =============================
// 🗑️ Delete Value
// =============================
func (ctrl *ValueController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.Delete(&model.ValueModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete value")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Value not found")
	}
	return helper.JsonDeleted(c, "Value deleted", nil)
}
