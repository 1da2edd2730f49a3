package handler

import (
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/jordan-wright/email"
)

func RegisterClient(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("registerInput").(model.RegisterClientInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	existing, err := helper.GetClientByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Email already registered", nil, "email")
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	client := model.Client{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  &hash,
	}
	if input.DateOfBirth != "" {
		dob, _ := utils.ParseDateYMD(input.DateOfBirth)
		client.DateOfBirth = &dob
	}

	if err := db.Create(&client).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create account", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, client)
}

func ClientLogin(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	loginInput := new(LoginInput)
	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}
	if loginInput.Email == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("email and password are required"))
	}

	client, err := helper.GetClientByEmail(loginInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if client == nil || client.Password == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_USERNAME, errors.New("email not registered"))
	}
	if !helper.CheckPasswordHash(loginInput.Password, *client.Password) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVALID_PASSWORD, errors.New("password does not match email"))
	}

	tokenClaim := model.TokenClaim{
		ClientId: client.ID,
		Username: client.Email,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setTokenCookies(c, token, refreshToken)

	return c.JSON(fiber.Map{
		"message": "login success",
		"client": fiber.Map{
			"id":        client.ID,
			"email":     client.Email,
			"firstname": client.FirstName,
			"lastname":  client.LastName,
		},
	})
}

func GetCurrentClient(c *fiber.Ctx) error {
	client, ok := c.Locals("client").(*model.Client)
	if !ok || client == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.CLIENT_NOT_SET_UP, errors.New("no client"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":          client.ID,
		"firstname":   client.FirstName,
		"lastname":    client.LastName,
		"email":       client.Email,
		"phone":       client.Phone,
		"address":     client.Address,
		"dateOfBirth": client.DateOfBirth,
		"age":         client.Age(),
	})
}

// EditProfile patches only the submitted fields onto the client row.
func EditProfile(c *fiber.Ctx) error {
	db := database.DB
	client, ok := c.Locals("client").(*model.Client)
	if !ok || client == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.CLIENT_NOT_SET_UP, errors.New("no client"))
	}
	input, ok := c.Locals("profileInput").(model.EditProfileInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if err := copier.CopyWithOption(client, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	if input.DateOfBirth != nil {
		dob, _ := utils.ParseDateYMD(*input.DateOfBirth)
		client.DateOfBirth = &dob
	}

	if err := db.Save(client).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, client)
}

func ChangePasswordClient(c *fiber.Ctx) error {
	db := database.DB
	client, ok := c.Locals("client").(*model.Client)
	if !ok || client == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.CLIENT_NOT_SET_UP, errors.New("no client"))
	}
	input, ok := c.Locals("changePasswordInput").(model.ClientChangePassword)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if client.Password == nil || !helper.CheckPasswordHash(input.CurrentPassword, *client.Password) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_PASSWORD, nil, "currentPassword")
	}
	if input.NewPassword != input.RepeatPassword {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Passwords do not match", nil, "repeatPassword")
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := db.Model(client).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password changed"})
}

// ForgotPassword answers identically on every path so the response never
// reveals whether the email is registered. The mail goes out asynchronously.
func ForgotPassword(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("forgotPasswordInput").(model.ForgotPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	neutral := fiber.Map{"message": "If the email is registered, a reset link has been sent"}

	client, err := helper.GetClientByEmail(input.Email)
	if err != nil {
		log.Printf("forgot password lookup failed: %v", err)
		return c.JSON(neutral)
	}
	if client == nil {
		return c.JSON(neutral)
	}

	token := uuid.NewString()
	resetToken := model.PasswordResetToken{
		ClientId:  client.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := db.Create(&resetToken).Error; err != nil {
		log.Printf("failed to store reset token: %v", err)
		return c.JSON(neutral)
	}

	go sendResetEmail(input.Email, token)

	return c.JSON(neutral)
}

func sendResetEmail(to, token string) {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("APP_BASE_URL"), token)
	e := email.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = []string{to}
	e.Subject = "Password reset"
	e.Text = []byte(fmt.Sprintf("Follow this link to reset your password: %s", resetLink))
	smtpAddr := os.Getenv("SMTP_HOST") + ":" + os.Getenv("SMTP_PORT")
	if err := e.Send(smtpAddr, smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST"))); err != nil {
		log.Printf("failed to send reset email: %v", err)
	}
}

func ResetPassword(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("resetPasswordInput").(model.ResetPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var resetToken model.PasswordResetToken
	if err := db.Where("token = ? AND expires_at > ?", input.Token, time.Now()).First(&resetToken).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Token is invalid or expired"})
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := db.Model(&model.Client{}).Where("id = ?", resetToken.ClientId).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	db.Delete(&resetToken)

	return c.JSON(fiber.Map{"message": "Password has been reset"})
}
