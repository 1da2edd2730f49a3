package helper

import (
	"fmt"

	"hotel_manager/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func GenerateUniqueArticleSlug(tx *gorm.DB, title string) string {
	base := slug.Make(title)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Article{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}

func GenerateUniqueTagSlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Tag{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
