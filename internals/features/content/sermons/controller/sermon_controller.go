package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/content/sermons/dto"
	"newgate_backend/internals/features/content/sermons/model"
	helper "newgate_backend/internals/helpers"
)

var sermonListSpec = helper.ListSpec{
	SearchFields: []string{"title", "speaker", "description", "series"},
	OrderFields: map[string]string{
		"date":    "date",
		"title":   "title",
		"speaker": "speaker",
	},
	DefaultOrder: "date DESC, created_at DESC",
}

type SermonController struct {
	DB *gorm.DB
}

func NewSermonController(db *gorm.DB) *SermonController {
	return &SermonController{DB: db}
}

// =============================
// 📄 List Sermons
// =============================
func (ctrl *SermonController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	q := ctrl.DB.Model(&model.SermonModel{}).Scopes(sermonListSpec.Scope(c))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count sermons")
	}

	var rows []model.SermonModel
	if err := q.Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve sermons")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PageSize)
	return helper.JsonList(c, "", dto.ToSermonDTOs(c, rows), &pagination)
}

// =============================
// 🔍 Get Sermon By ID
// =============================
func (ctrl *SermonController) GetByID(c *fiber.Ctx) error {
	var row model.SermonModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sermon not found")
	}
	return helper.JsonOK(c, "", dto.ToSermonDTO(c, row))
}

// =============================
// ➕ Create Sermon
// =============================
func (ctrl *SermonController) Create(c *fiber.Ctx) error {
	var body dto.CreateSermonRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.SermonModel
	body.Apply(&row)
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create sermon")
	}
	return helper.JsonCreated(c, "Sermon created", dto.ToSermonDTO(c, row))
}

// =============================
// 🔄 Update Sermon (PUT/PATCH)
// =============================
func (ctrl *SermonController) Update(c *fiber.Ctx) error {
	var body dto.UpdateSermonRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.SermonModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sermon not found")
	}
	body.Apply(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update sermon")
	}
	return helper.JsonUpdated(c, "Sermon updated", dto.ToSermonDTO(c, row))
}

// =============================
// 🗑️ Delete Sermon
// =============================
func (ctrl *SermonController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.Delete(&model.SermonModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete sermon")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sermon not found")
	}
	return helper.JsonDeleted(c, "Sermon deleted", nil)
}
