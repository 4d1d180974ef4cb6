package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/site/homefeatures/dto"
	"newgate_backend/internals/features/site/homefeatures/model"
	helper "newgate_backend/internals/helpers"
)

var homeFeatureListSpec = helper.ListSpec{
	OrderFields: map[string]string{
		"order": "ord",
		"title": "title",
	},
	DefaultOrder: "ord ASC, title ASC",
}

type HomeFeatureController struct {
	DB *gorm.DB
}

func NewHomeFeatureController(db *gorm.DB) *HomeFeatureController {
	return &HomeFeatureController{DB: db}
}

// =============================
// 📄 List Home Features
// =============================
func (ctrl *HomeFeatureController) List(c *fiber.Ctx) error {
	var rows []model.HomeFeatureModel
	if err := ctrl.DB.Model(&model.HomeFeatureModel{}).
		Scopes(homeFeatureListSpec.Scope(c)).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve home features")
	}
	return helper.JsonList(c, "", dto.ToHomeFeatureDTOs(rows), nil)
}

// =============================
// 🔍 Get Home Feature By ID
// =============================
func (ctrl *HomeFeatureController) GetByID(c *fiber.Ctx) error {
	var row model.HomeFeatureModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Home feature not found")
	}
	return helper.JsonOK(c, "", dto.ToHomeFeatureDTO(row))
}

// =============================
// ➕ Create Home Feature
// =============================
func (ctrl *HomeFeatureController) Create(c *fiber.Ctx) error {
	var body dto.CreateHomeFeatureRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.HomeFeatureModel
	body.Apply(&row)
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create home feature")
	}
	return helper.JsonCreated(c, "Home feature created", dto.ToHomeFeatureDTO(row))
}

// =============================
// 🔄 Update Home Feature (PUT/PATCH)
// =============================
func (ctrl *HomeFeatureController) Update(c *fiber.Ctx) error {
	var body dto.UpdateHomeFeatureRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.HomeFeatureModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Home feature not found")
	}
	body.Apply(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update home feature")
	}
	return helper.JsonUpdated(c, "Home feature updated", dto.ToHomeFeatureDTO(row))
}

// =============================
// 🗑️ Delete Home Feature
// =============================
func (ctrl *HomeFeatureController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.Delete(&model.HomeFeatureModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete home feature")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Home feature not found")
	}
	return helper.JsonDeleted(c, "Home feature deleted", nil)
}
