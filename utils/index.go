package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func ErrorResponseHaveKey(c *fiber.Ctx, status int, message string, err error, keyError string) error {
	var errMsg string
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"status":   "error",
		"message":  message,
		"errors":   errMsg,
		"keyError": keyError,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}
	return query
}

// ParseDateYMD parses a YYYY-MM-DD date string.
func ParseDateYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func CalculateGrowth(today, yesterday float64) float64 {
	if yesterday == 0 {
		if today == 0 {
			return 0
		}
		return 100
	}
	return ((today - yesterday) / yesterday) * 100
}

func Ptr[T any](v T) *T {
	return &v
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
