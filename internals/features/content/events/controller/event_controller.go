package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/content/events/dto"
	"newgate_backend/internals/features/content/events/model"
	helper "newgate_backend/internals/helpers"
)

// Search and ordering whitelist; unknown fields in the request are ignored.
var eventListSpec = helper.ListSpec{
	SearchFields: []string{"title", "description", "category", "location"},
	OrderFields: map[string]string{
		"date":       "date",
		"title":      "title",
		"created_at": "created_at",
	},
	DefaultOrder: "date DESC, created_at DESC",
}

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// =============================
// 📄 List Events
// =============================
func (ctrl *EventController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	q := ctrl.DB.Model(&model.EventModel{}).Scopes(eventListSpec.Scope(c))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var rows []model.EventModel
	if err := q.Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve events")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PageSize)
	return helper.JsonList(c, "", dto.ToEventDTOs(c, rows), &pagination)
}

// =============================
// 🔍 Get Event By ID
// =============================
func (ctrl *EventController) GetByID(c *fiber.Ctx) error {
	var row model.EventModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonOK(c, "", dto.ToEventDTO(c, row))
}

// =============================
// ➕ Create Event
// =============================
func (ctrl *EventController) Create(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.EventModel
	body.Apply(&row)
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event created", dto.ToEventDTO(c, row))
}

// =============================
// 🔄 Update Event (PUT/PATCH)
// =============================
func (ctrl *EventController) Update(c *fiber.Ctx) error {
	var body dto.UpdateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.EventModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	body.Apply(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonUpdated(c, "Event updated", dto.ToEventDTO(c, row))
}

// =============================
// 🗑️ Delete Event
// =============================
func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.Delete(&model.EventModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonDeleted(c, "Event deleted", nil)
}
