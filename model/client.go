package model

import "time"

// Client is a guest profile. Password may be empty for profiles created by
// staff that were never linked to a login.
type Client struct {
	DTO
	FirstName   string     `gorm:"size:50;not null" json:"firstname"`
	LastName    string     `gorm:"size:50;not null" json:"lastname"`
	Email       string     `gorm:"unique;not null" json:"email"`
	Phone       string     `gorm:"size:15;not null" json:"phone"`
	Password    *string    `json:"-"`
	Address     *string    `json:"address"`
	DateOfBirth *time.Time `json:"dateOfBirth"`

	Reservations []Reservation `gorm:"foreignKey:ClientId" json:"reservations,omitempty"`
	Reviews      []Review      `gorm:"foreignKey:ClientId" json:"reviews,omitempty"`
}

// Age is derived from the date of birth at read time, never stored.
func (c *Client) Age() *int {
	return AgeAt(c.DateOfBirth, time.Now())
}

func AgeAt(dob *time.Time, now time.Time) *int {
	if dob == nil {
		return nil
	}
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return &age
}

type RegisterClientInput struct {
	FirstName   string `validate:"required" json:"firstname"`
	LastName    string `validate:"required" json:"lastname"`
	Email       string `validate:"required,email" json:"email"`
	Phone       string `validate:"required" json:"phone"`
	Password    string `validate:"required,min=8" json:"password"`
	DateOfBirth string `json:"dateOfBirth"` // YYYY-MM-DD, optional
}

type EditProfileInput struct {
	FirstName   *string `json:"firstname"`
	LastName    *string `json:"lastname"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	DateOfBirth *string `copier:"-" json:"dateOfBirth"`
}

type ClientChangePassword struct {
	CurrentPassword string `validate:"required" json:"currentPassword"`
	NewPassword     string `validate:"required,min=8" json:"newPassword"`
	RepeatPassword  string `validate:"required" json:"repeatPassword"`
}

type ForgotPasswordRequest struct {
	Email string `validate:"required,email" json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `validate:"required" json:"token"`
	NewPassword string `validate:"required,min=8" json:"newPassword"`
}

type PasswordResetToken struct {
	DTO
	ClientId  uint      `gorm:"not null" json:"clientId"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Client    Client    `gorm:"foreignKey:ClientId" json:"client"`
}
