package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/site/churchinfo/dto"
	"newgate_backend/internals/features/site/churchinfo/model"
	helper "newgate_backend/internals/helpers"
)

type ChurchInfoController struct {
	DB *gorm.DB
}

func NewChurchInfoController(db *gorm.DB) *ChurchInfoController {
	return &ChurchInfoController{DB: db}
}

// =============================
// 📄 List Church Info (singleton)
// =============================
// Always returns a one-element array. Provisions the default row on a cold
// read; the check-then-create is not atomic, which is an accepted cold-start
// edge case (extra rows are ignored, only the oldest is served).
func (ctrl *ChurchInfoController) List(c *fiber.Ctx) error {
	var count int64
	if err := ctrl.DB.Model(&model.ChurchInfoModel{}).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read church info")
	}
	if count == 0 {
		seed := model.DefaultChurchInfo()
		if err := ctrl.DB.Create(&seed).Error; err != nil {
			log.Println("[WARN] church info auto-provision:", err)
		}
	}

	var row model.ChurchInfoModel
	if err := ctrl.DB.Order("created_at ASC").First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve church info")
	}
	return helper.JsonList(c, "", []dto.ChurchInfoDTO{dto.ToChurchInfoDTO(row)}, nil)
}

// =============================
// 🔍 Get Church Info By ID
// =============================
func (ctrl *ChurchInfoController) GetByID(c *fiber.Ctx) error {
	var row model.ChurchInfoModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Church info not found")
	}
	return helper.JsonOK(c, "", dto.ToChurchInfoDTO(row))
}

// =============================
// ➕ Create Church Info
// =============================
func (ctrl *ChurchInfoController) Create(c *fiber.Ctx) error {
	var body dto.CreateChurchInfoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.ChurchInfoModel
	body.Apply(&row)
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create church info")
	}
	return helper.JsonCreated(c, "Church info created", dto.ToChurchInfoDTO(row))
}

// =============================
// 🔄 Update Church Info (PUT/PATCH)
// =============================
func (ctrl *ChurchInfoController) Update(c *fiber.Ctx) error {
	var body dto.UpdateChurchInfoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var row model.ChurchInfoModel
	if err := ctrl.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Church info not found")
	}
	body.Apply(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update church info")
	}
	return helper.JsonUpdated(c, "Church info updated", dto.ToChurchInfoDTO(row))
}

// =============================
// 🗑️ Delete Church Info
// =============================
func (ctrl *ChurchInfoController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.Delete(&model.ChurchInfoModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete church info")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Church info not found")
	}
	return helper.JsonDeleted(c, "Church info deleted", nil)
}
