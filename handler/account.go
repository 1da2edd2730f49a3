package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAccounts lists staff accounts. Admin only.
func GetAccounts(c *fiber.Ctx) error {
	db := database.DB

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	var accounts []model.Account
	if err := db.Order("username ASC").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, accounts)
}

func CreateAccount(c *fiber.Ctx) error {
	db := database.DB

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	input, ok := c.Locals("createAccountInput").(model.CreateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	existing, err := helper.GetAccountByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Username already taken", nil, "username")
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	account := model.Account{
		Username: input.Username,
		Password: hash,
		Role:     input.Role,
		Active:   true,
	}
	if err := db.Create(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create account", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, account)
}

func AdminChangePassword(c *fiber.Ctx) error {
	db := database.DB

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	input, ok := c.Locals("adminChangePasswordInput").(model.AdminChangePassword)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if input.NewPassword != input.RepeatPassword {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Passwords do not match", nil, "repeatPassword")
	}

	var account model.Account
	if err := db.First(&account, input.AccountId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := db.Model(&account).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password changed"})
}

// ActiveAccount toggles the active flag, locking or unlocking a login.
func ActiveAccount(c *fiber.Ctx) error {
	db := database.DB

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	accountId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var account model.Account
	if err := db.First(&account, accountId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Model(&account).Update("active", !account.Active).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	account.Active = !account.Active
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}
