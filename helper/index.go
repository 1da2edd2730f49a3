package helper

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAccountByUsername(u string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Username: u}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func GetClientByEmail(e string) (*model.Client, error) {
	db := database.DB
	var client model.Client
	if err := db.Where(&model.Client{Email: e}).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["clientId"] = tokenClaim.ClientId
	claims["accountId"] = tokenClaim.AccountId
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["clientId"] = tokenClaim.ClientId
	claims["accountId"] = tokenClaim.AccountId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetInfoAccountFromToken resolves the staff account behind the request
// token. Returns the claim plus isAdmin / isStaff flags.
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false, false
	}
	tokenClaim, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false, false
	}
	accountIdRaw, ok := tokenClaim["accountId"].(float64)
	if !ok || accountIdRaw == 0 {
		return model.TokenClaim{}, false, false
	}
	accountId := uint(accountIdRaw)
	username, _ := tokenClaim["username"].(string)

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return model.TokenClaim{}, false, false
	}
	if !account.Active {
		return model.TokenClaim{}, false, false
	}

	info := model.TokenClaim{
		AccountId: accountId,
		Username:  username,
	}
	isAdmin := account.Role == constants.ROLE_ADMIN
	isStaff := account.Role == constants.ROLE_STAFF
	return info, isAdmin, isStaff
}

// GetInfoClientFromToken resolves the client behind an optional token. The
// zero claim means an anonymous request.
func GetInfoClientFromToken(c *fiber.Ctx) (model.TokenClaim, model.Client) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, model.Client{}
	}
	tokenClaim, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, model.Client{}
	}
	clientIdRaw, _ := tokenClaim["clientId"].(float64)
	if clientIdRaw == 0 {
		return model.TokenClaim{}, model.Client{}
	}
	username, _ := tokenClaim["username"].(string)
	claim := model.TokenClaim{ClientId: uint(clientIdRaw), Username: username}

	var client model.Client
	if err := database.DB.First(&client, claim.ClientId).Error; err != nil {
		return claim, model.Client{}
	}
	return claim, client
}
