package model

import "time"

type Tag struct {
	DTO
	Name string `gorm:"size:50;unique;not null" json:"name"`
	Slug string `gorm:"size:50;unique;not null" json:"slug"`
}

type Article struct {
	DTO
	Title         string    `gorm:"size:200;not null" json:"title"`
	Slug          string    `gorm:"size:200;unique;not null" json:"slug"`
	Content       string    `json:"content"`
	Summary       string    `gorm:"size:500" json:"summary"`
	ImageURL      *string   `json:"imageUrl"`
	PublishedDate time.Time `json:"publishedDate"`
	IsPublished   bool      `gorm:"default:false" json:"isPublished"`
	Tags          []Tag     `gorm:"many2many:article_tags;" json:"tags,omitempty"`
}

type CompanyInfo struct {
	DTO
	Name           string  `gorm:"size:200;not null" json:"name"`
	Description    string  `json:"description"`
	LogoURL        *string `json:"logoUrl"`
	History        *string `json:"history"`
	FoundationYear *int    `json:"foundationYear"`
	LegalInfo      *string `json:"legalInfo"`
}

type FAQ struct {
	DTO
	Question  string    `gorm:"size:300;not null" json:"question"`
	Answer    string    `gorm:"not null" json:"answer"`
	DateAdded time.Time `gorm:"type:date" json:"dateAdded"`
	Order     int       `gorm:"default:0" json:"order"`
}

// StaffMember is a public staff bio, not a login identity.
type StaffMember struct {
	DTO
	Name        string  `gorm:"size:100;not null" json:"name"`
	Position    string  `gorm:"size:100;not null" json:"position"`
	PhotoURL    *string `json:"photoUrl"`
	Description string  `json:"description"`
	Email       *string `json:"email"`
	Phone       *string `gorm:"size:20" json:"phone"`
	Order       int     `gorm:"default:0" json:"order"`
}

type Vacancy struct {
	DTO
	Title        string    `gorm:"size:200;not null" json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Salary       *string   `gorm:"size:100" json:"salary"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	DatePosted   time.Time `gorm:"type:date" json:"datePosted"`
}

type PromoCode struct {
	DTO
	Code            string    `gorm:"size:20;unique;not null" json:"code"`
	Description     string    `json:"description"`
	DiscountPercent int       `gorm:"default:0" json:"discountPercent"`
	DiscountAmount  float64   `gorm:"default:0" json:"discountAmount"`
	ValidFrom       time.Time `gorm:"type:date;not null" json:"validFrom"`
	ValidTo         time.Time `gorm:"type:date;not null" json:"validTo"`
	IsActive        bool      `gorm:"default:true" json:"isActive"`
}

// IsValid reports whether the code is active and today falls inside its
// validity window.
func (p *PromoCode) IsValid() bool {
	return p.IsValidAt(time.Now())
}

func (p *PromoCode) IsValidAt(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := time.Date(p.ValidFrom.Year(), p.ValidFrom.Month(), p.ValidFrom.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(p.ValidTo.Year(), p.ValidTo.Month(), p.ValidTo.Day(), 0, 0, 0, 0, time.UTC)
	return p.IsActive && !today.Before(from) && !today.After(to)
}

type Banner struct {
	DTO
	Title    string  `gorm:"size:200;not null" json:"title"`
	ImageURL string  `gorm:"not null" json:"imageUrl"`
	Link     *string `json:"link"`
	IsActive bool    `gorm:"default:true" json:"isActive"`
	Order    int     `gorm:"default:0" json:"order"`
}

type Partner struct {
	DTO
	Name        string  `gorm:"size:100;not null" json:"name"`
	LogoURL     string  `gorm:"not null" json:"logoUrl"`
	WebsiteURL  string  `gorm:"not null" json:"websiteUrl"`
	Description *string `json:"description"`
}
