package model

type Review struct {
	DTO
	ClientId    uint   `gorm:"not null" json:"clientId"`
	Client      Client `gorm:"foreignKey:ClientId" json:"client"`
	Rating      int    `gorm:"not null" json:"rating"`
	Text        string `gorm:"not null" json:"text"`
	IsPublished bool   `gorm:"default:false" json:"isPublished"`
}

type CreateReviewInput struct {
	Rating int    `validate:"required,min=1,max=5" json:"rating"`
	Text   string `validate:"required" json:"text"`
}
