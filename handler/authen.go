package handler

import (
	"errors"
	"time"

	"hotel_manager/constants"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		UserName string `json:"username"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)

	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if loginInput.UserName == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("username and password are required"))
	}

	account, err := helper.GetAccountByUsername(loginInput.UserName)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_USERNAME, errors.New("username not exists"))
	}

	if !helper.CheckPasswordHash(loginInput.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVALID_PASSWORD, errors.New("password does not match username"))
	}

	if !account.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	tokenClaim := model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
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
		"account": fiber.Map{
			"id":       account.ID,
			"username": account.Username,
			"role":     account.Role,
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		type RefreshInput struct {
			RefreshToken string `json:"refreshToken"`
		}
		input := new(RefreshInput)
		if err := c.BodyParser(input); err == nil {
			refreshToken = input.RefreshToken
		}
	}
	if refreshToken == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing refresh token", errors.New("no refresh token"))
	}

	token, err := helper.ParseToken(refreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", errors.New("bad claims"))
	}

	accountId, _ := claims["accountId"].(float64)
	username, _ := claims["username"].(string)
	clientId, _ := claims["clientId"].(float64)

	tokenClaim := model.TokenClaim{
		AccountId: uint(accountId),
		ClientId:  uint(clientId),
		Username:  username,
	}
	newToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	newRefresh, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setTokenCookies(c, newToken, newRefresh)

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{
		AccessToken:  newToken,
		RefreshToken: newRefresh,
	})
}

func Me(c *fiber.Ctx) error {
	info, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_STAFF, errors.New("not staff"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, info)
}

func setTokenCookies(c *fiber.Ctx, access, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
		Expires:  time.Now().Add(time.Hour),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})
}
