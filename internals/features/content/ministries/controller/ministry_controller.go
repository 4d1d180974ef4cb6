package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/content/ministries/dto"
	"newgate_backend/internals/features/content/ministries/model"
	helper "newgate_backend/internals/helpers"
)

var ministryListSpec = helper.ListSpec{
	SearchFields: []string{"title", "description"},
	OrderFields: map[string]string{
		"order": "ord",
		"title": "title",
	},
	DefaultOrder: "ord ASC, title ASC",
}

type MinistryController struct {
	DB *gorm.DB
}

func NewMinistryController(db *gorm.DB) *MinistryController {
	return &MinistryController{DB: db}
}

// =============================
// 📄 List Ministries (active only)
// =============================
func (ctrl *MinistryController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	// Inactive ministries never show up in the listing.
	q := ctrl.DB.Model(&model.MinistryModel{}).
		Where("is_active = ?", true).
		Scopes(ministryListSpec.Scope(c))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count ministries")
	}

	var rows []model.MinistryModel
	if err := q.Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve ministries")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PageSize)
	return helper.JsonList(c, "", dto.ToMinistryDTOs(c, rows), &pagination)
}

// =============================
// 🔍 Get Ministry By ID
// =============================
func (ctrl *MinistryController) GetByID(c *fiber.Ctx) error {
	var row model.MinistryModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Ministry not found")
	}
	return helper.JsonOK(c, "", dto.ToMinistryDTO(c, row))
}

// =============================
// ➕ Create Ministry
// =============================
func (ctrl *MinistryController) Create(c *fiber.Ctx) error {
	var body dto.CreateMinistryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.MinistryModel
	body.Apply(&row)
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create ministry")
	}
	return helper.JsonCreated(c, "Ministry created", dto.ToMinistryDTO(c, row))
}

// =============================
// 🔄 Update Ministry (PUT/PATCH)
// =============================
func (ctrl *MinistryController) Update(c *fiber.Ctx) error {
	var body dto.UpdateMinistryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.MinistryModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Ministry not found")
	}
	body.Apply(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update ministry")
	}
	return helper.JsonUpdated(c, "Ministry updated", dto.ToMinistryDTO(c, row))
}

// =============================
// 🗑️ Delete Ministry
// =============================
func (ctrl *MinistryController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.Delete(&model.MinistryModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete ministry")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Ministry not found")
	}
	return helper.JsonDeleted(c, "Ministry deleted", nil)
}
