package model

type Amenity struct {
	DTO
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description *string `json:"description"`
	Icon        *string `gorm:"size:50" json:"icon"`
}

type RoomCategory struct {
	DTO
	Name        string    `gorm:"size:50;not null" json:"name"`
	Description string    `json:"description"`
	BasePrice   float64   `gorm:"not null" json:"basePrice"`
	Amenities   []Amenity `gorm:"many2many:room_category_amenities;" json:"amenities,omitempty"`
	Rooms       []Room    `gorm:"foreignKey:CategoryId" json:"rooms,omitempty"`
}

type Room struct {
	DTO
	RoomNumber  string       `gorm:"size:10;unique;not null" json:"roomNumber"`
	CategoryId  uint         `gorm:"not null" json:"categoryId"`
	Category    RoomCategory `gorm:"foreignKey:CategoryId" json:"category"`
	Status      string       `gorm:"size:15;not null;default:available" json:"status"`
	Capacity    int          `gorm:"default:1" json:"capacity"`
	Description *string      `json:"description"`
	Images      []RoomImage  `gorm:"foreignKey:RoomId;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

type RoomImage struct {
	DTO
	RoomId  uint    `gorm:"not null" json:"roomId"`
	URL     string  `gorm:"not null" json:"url"`
	Caption *string `gorm:"size:100" json:"caption"`
}

type CreateRoomInput struct {
	RoomNumber  string           `validate:"required" json:"roomNumber"`
	CategoryId  uint             `validate:"required" json:"categoryId"`
	Status      string           `validate:"omitempty,oneof=available occupied maintenance reserved" json:"status"`
	Capacity    int              `validate:"required,min=1" json:"capacity"`
	Description *string          `json:"description"`
	Images      []RoomImageInput `validate:"omitempty,dive" json:"images"`
}

type RoomImageInput struct {
	URL     string  `validate:"required,url" json:"url"`
	Caption *string `json:"caption"`
}

type EditRoomInput struct {
	RoomNumber  *string           `json:"roomNumber"`
	CategoryId  *uint             `json:"categoryId"`
	Status      *string           `validate:"omitempty,oneof=available occupied maintenance reserved" json:"status"`
	Capacity    *int              `validate:"omitempty,min=1" json:"capacity"`
	Description *string           `json:"description"`
	Images      *[]RoomImageInput `validate:"omitempty,dive" json:"images"`
}

// FilterRoom mirrors the public listing query string.
type FilterRoom struct {
	Pagination
	Category      *uint    `query:"category"`
	MinPrice      *float64 `query:"min_price"`
	MaxPrice      *float64 `query:"max_price"`
	Capacity      *int     `query:"capacity"`
	AvailableOnly bool     `query:"available_only"`
	Search        string   `query:"search"`
	SortBy        string   `query:"sort_by"`
}
