package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/contact/messages/dto"
	"newgate_backend/internals/features/contact/messages/model"
	helper "newgate_backend/internals/helpers"
)

var contactMessageListSpec = helper.ListSpec{
	OrderFields: map[string]string{
		"created_at": "created_at",
	},
	DefaultOrder: "created_at DESC",
}

type ContactMessageController struct {
	DB *gorm.DB
}

func NewContactMessageController(db *gorm.DB) *ContactMessageController {
	return &ContactMessageController{DB: db}
}

// =============================
// 📄 List Messages
// =============================
func (ctrl *ContactMessageController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	q := ctrl.DB.Model(&model.ContactMessageModel{}).
		Scopes(contactMessageListSpec.Scope(c))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count messages")
	}

	var rows []model.ContactMessageModel
	if err := q.Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve messages")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PageSize)
	return helper.JsonList(c, "", dto.ToContactMessageDTOs(rows), &pagination)
}

// =============================
// 🔍 Get Message By ID
// =============================
func (ctrl *ContactMessageController) GetByID(c *fiber.Ctx) error {
	var row model.ContactMessageModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}
	return helper.JsonOK(c, "", dto.ToContactMessageDTO(row))
}

// =============================
// ➕ Create Message (public contact form)
// =============================
func (ctrl *ContactMessageController) Create(c *fiber.Ctx) error {
	var body dto.CreateContactMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.ContactMessageModel
	body.Apply(&row)
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit message")
	}
	return helper.JsonCreated(c, "Message submitted", dto.ToContactMessageDTO(row))
}

// =============================
// 🔄 Update Message (read state / reply)
// =============================
func (ctrl *ContactMessageController) Update(c *fiber.Ctx) error {
	var body dto.UpdateContactMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var row model.ContactMessageModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}
	body.Apply(&row, time.Now().UTC())
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update message")
	}
	return helper.JsonUpdated(c, "Message updated", dto.ToContactMessageDTO(row))
}

// =============================
// 🗑️ Delete Message
// =============================
func (ctrl *ContactMessageController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.Delete(&model.ContactMessageModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete message")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}
	return helper.JsonDeleted(c, "Message deleted", nil)
}
