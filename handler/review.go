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

// GetReviews lists published reviews, newest first.
func GetReviews(c *fiber.Ctx) error {
	db := database.DB

	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid pagination", err)
	}

	query := db.Model(&model.Review{}).
		Preload("Client").
		Where("is_published = ?", true).
		Order("created_at DESC")

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var reviews []model.Review
	if err := utils.ApplyPagination(query, pagination.Limit, pagination.Page).Find(&reviews).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":       reviews,
		"totalCount": totalCount,
	})
}

// CreateReview stores a new review pending moderation. Submissions never
// appear publicly until staff publishes them.
func CreateReview(c *fiber.Ctx) error {
	db := database.DB

	client, ok := c.Locals("client").(*model.Client)
	if !ok || client == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.CLIENT_NOT_SET_UP, errors.New("no client"))
	}

	input, ok := c.Locals("reviewInput").(model.CreateReviewInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	review := model.Review{
		ClientId:    client.ID,
		Rating:      input.Rating,
		Text:        input.Text,
		IsPublished: false,
	}
	if err := db.Create(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": constants.REVIEW_THANKS,
		"review":  review,
	})
}

// GetAllReviews is the moderation queue, published or not.
func GetAllReviews(c *fiber.Ctx) error {
	db := database.DB

	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, nil)
	}

	var reviews []model.Review
	if err := db.Preload("Client").Order("created_at DESC").Find(&reviews).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reviews)
}

// PublishReview toggles a review onto the public page.
func PublishReview(c *fiber.Ctx) error {
	db := database.DB

	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, nil)
	}

	reviewId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var review model.Review
	if err := db.First(&review, reviewId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Review not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Model(&review).Update("is_published", !review.IsPublished).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	review.IsPublished = !review.IsPublished
	return utils.SuccessResponse(c, fiber.StatusOK, review)
}
