package handler

import (
	"errors"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Home aggregates the landing page: active banners, partners, the latest
// article, a service teaser, plus the cached daily quote and exchange rates.
func Home(c *fiber.Ctx) error {
	db := database.DB

	var banners []model.Banner
	db.Where("is_active = ?", true).Order(`"order" ASC`).Find(&banners)

	var partners []model.Partner
	db.Find(&partners)

	var latestArticle model.Article
	hasArticle := db.Where("is_published = ?", true).
		Order("published_date DESC").
		First(&latestArticle).Error == nil

	var services []model.Service
	db.Where("is_available = ?", true).Limit(6).Find(&services)

	payload := fiber.Map{
		"banners":       banners,
		"partners":      partners,
		"services":      services,
		"dailyQuote":    helper.CachedDailyQuote(c.Context()),
		"exchangeRates": helper.CachedExchangeRates(c.Context()),
	}
	if hasArticle {
		payload["latestArticle"] = latestArticle
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payload)
}

// About returns the company profile with history and legal details.
func About(c *fiber.Ctx) error {
	db := database.DB

	var info model.CompanyInfo
	if err := db.First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Company info is not set up", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, info)
}

// GetArticles is the public news list, newest first, with optional tag
// filter.
func GetArticles(c *fiber.Ctx) error {
	db := database.DB

	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid pagination", err)
	}
	tagSlug := c.Query("tag")

	query := db.Model(&model.Article{}).
		Preload("Tags").
		Where("is_published = ?", true).
		Order("published_date DESC")
	if tagSlug != "" {
		query = query.
			Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.slug = ?", tagSlug)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var articles []model.Article
	if err := utils.ApplyPagination(query, pagination.Limit, pagination.Page).Find(&articles).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":       articles,
		"totalCount": totalCount,
	})
}

func GetArticleBySlug(c *fiber.Ctx) error {
	db := database.DB

	slug := c.Params("slug")
	var article model.Article
	if err := db.Preload("Tags").
		Where("slug = ? AND is_published = ?", slug, true).
		First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Article not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, article)
}

type ArticleInput struct {
	Title       string   `validate:"required" json:"title"`
	Content     string   `validate:"required" json:"content"`
	Summary     string   `json:"summary"`
	ImageURL    *string  `json:"imageUrl"`
	IsPublished bool     `json:"isPublished"`
	Tags        []string `json:"tags"`
}

// CreateArticle is the staff news editor. Slugs are derived from the title
// and deduplicated, tags are created on first use.
func CreateArticle(c *fiber.Ctx) error {
	db := database.DB

	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, nil)
	}

	var input ArticleInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not parse article", err)
	}
	if input.Title == "" || input.Content == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Title and content are required", errors.New("missing fields"))
	}

	article := model.Article{
		Title:         input.Title,
		Slug:          helper.GenerateUniqueArticleSlug(db, input.Title),
		Content:       input.Content,
		Summary:       input.Summary,
		ImageURL:      input.ImageURL,
		IsPublished:   input.IsPublished,
		PublishedDate: time.Now(),
	}

	for _, name := range input.Tags {
		var tag model.Tag
		if err := db.Where("name = ?", name).First(&tag).Error; err != nil {
			tag = model.Tag{Name: name, Slug: helper.GenerateUniqueTagSlug(db, name)}
			if err := db.Create(&tag).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}
		article.Tags = append(article.Tags, tag)
	}

	if err := db.Create(&article).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create article", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, article)
}

// GetFAQ returns questions in their configured display order.
func GetFAQ(c *fiber.Ctx) error {
	db := database.DB

	var faqs []model.FAQ
	if err := db.Order(`"order" ASC, date_added ASC`).Find(&faqs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, faqs)
}

// GetStaffMembers returns the public team page bios.
func GetStaffMembers(c *fiber.Ctx) error {
	db := database.DB

	var members []model.StaffMember
	if err := db.Order(`"order" ASC`).Find(&members).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, members)
}

func GetVacancies(c *fiber.Ctx) error {
	db := database.DB

	var vacancies []model.Vacancy
	if err := db.Where("is_active = ?", true).
		Order("date_posted DESC").
		Find(&vacancies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, vacancies)
}

// GetPromoCodes splits codes into current and expired lists for the promo
// page.
func GetPromoCodes(c *fiber.Ctx) error {
	db := database.DB

	var codes []model.PromoCode
	if err := db.Order("valid_to ASC").Find(&codes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Active soonest-to-expire first, expired most recent first.
	active := make([]model.PromoCode, 0)
	expired := make([]model.PromoCode, 0)
	for _, code := range codes {
		if code.IsValid() {
			active = append(active, code)
		} else {
			expired = append([]model.PromoCode{code}, expired...)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"active":  active,
		"expired": expired,
	})
}

func GetServices(c *fiber.Ctx) error {
	db := database.DB

	var services []model.Service
	if err := db.Order("name ASC").Find(&services).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, services)
}

func GetServiceById(c *fiber.Ctx) error {
	db := database.DB

	serviceId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var service model.Service
	if err := db.First(&service, serviceId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Service not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, service)
}
