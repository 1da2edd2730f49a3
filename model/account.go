package model

type Account struct {
	DTO
	Username string `gorm:"unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null" json:"role"`
	Active   bool   `gorm:"default:true" json:"active"`
}

type CreateAccountInput struct {
	Username string `validate:"required" json:"username"`
	Password string `validate:"required,min=8" json:"password"`
	Role     string `validate:"required,oneof=ADMIN STAFF" json:"role"`
}

type AdminChangePassword struct {
	AccountId      uint   `json:"accountId"`
	NewPassword    string `validate:"required,min=8" json:"newPassword"`
	RepeatPassword string `validate:"required" json:"repeatPassword"`
}
