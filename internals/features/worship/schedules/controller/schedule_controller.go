package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/worship/schedules/dto"
	"newgate_backend/internals/features/worship/schedules/model"
	helper "newgate_backend/internals/helpers"
)

// No client search for schedules; ordering is whitelist-only.
var scheduleListSpec = helper.ListSpec{
	OrderFields: map[string]string{
		"order": "ord",
		"day":   "day",
	},
	DefaultOrder: "ord ASC, day ASC",
}

type ServiceScheduleController struct {
	DB *gorm.DB
}

func NewServiceScheduleController(db *gorm.DB) *ServiceScheduleController {
	return &ServiceScheduleController{DB: db}
}

// =============================
// 📄 List Schedules (active only)
// =============================
func (ctrl *ServiceScheduleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	q := ctrl.DB.Model(&model.ServiceScheduleModel{}).
		Where("is_active = ?", true).
		Scopes(scheduleListSpec.Scope(c))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schedules")
	}

	var rows []model.ServiceScheduleModel
	if err := q.Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve schedules")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PageSize)
	return helper.JsonList(c, "", dto.ToServiceScheduleDTOs(rows), &pagination)
}

// =============================
// 🔍 Get Schedule By ID
// =============================
func (ctrl *ServiceScheduleController) GetByID(c *fiber.Ctx) error {
	var row model.ServiceScheduleModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}
	return helper.JsonOK(c, "", dto.ToServiceScheduleDTO(row))
}

// =============================
// ➕ Create Schedule
// =============================
func (ctrl *ServiceScheduleController) Create(c *fiber.Ctx) error {
	var body dto.CreateServiceScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.ServiceScheduleModel
	body.Apply(&row)
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create schedule")
	}
	return helper.JsonCreated(c, "Schedule created", dto.ToServiceScheduleDTO(row))
}

// =============================
// 🔄 Update Schedule (PUT/PATCH)
// =============================
func (ctrl *ServiceScheduleController) Update(c *fiber.Ctx) error {
	var body dto.UpdateServiceScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.ServiceScheduleModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}
	body.Apply(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update schedule")
	}
	return helper.JsonUpdated(c, "Schedule updated", dto.ToServiceScheduleDTO(row))
}

// =============================
// 🗑️ Delete Schedule
// =============================
func (ctrl *ServiceScheduleController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.Delete(&model.ServiceScheduleModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete schedule")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}
	return helper.JsonDeleted(c, "Schedule deleted", nil)
}
