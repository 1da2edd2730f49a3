package model

type Service struct {
	DTO
	Name        string   `gorm:"size:100;not null" json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	IsAvailable bool     `gorm:"default:true" json:"isAvailable"`
}

type Cart struct {
	DTO
	ClientId   *uint      `json:"clientId,omitempty"`
	SessionKey *string    `gorm:"size:40" json:"sessionKey,omitempty"`
	Items      []CartItem `gorm:"foreignKey:CartId;constraint:OnDelete:CASCADE" json:"items"`
}

// TotalPrice sums over the loaded items. Computed per read, never stored.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.TotalPrice()
	}
	return total
}

func (c *Cart) ItemsCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

type CartItem struct {
	DTO
	CartId    uint    `gorm:"not null;index:idx_cart_service,unique" json:"cartId"`
	ServiceId uint    `gorm:"not null;index:idx_cart_service,unique" json:"serviceId"`
	Service   Service `gorm:"foreignKey:ServiceId" json:"service"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
}

func (i *CartItem) TotalPrice() float64 {
	if i.Service.Price == nil {
		return 0
	}
	return *i.Service.Price * float64(i.Quantity)
}

type Order struct {
	DTO
	PublicCode  string      `gorm:"unique;size:20" json:"publicCode"`
	ClientId    *uint       `json:"clientId,omitempty"`
	Email       string      `gorm:"not null" json:"email"`
	TotalAmount float64     `gorm:"not null" json:"totalAmount"`
	Status      string      `gorm:"size:20;not null;default:pending" json:"status"`
	Items       []OrderItem `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE" json:"items"`
}

type OrderItem struct {
	DTO
	OrderId   uint    `gorm:"not null" json:"orderId"`
	ServiceId uint    `gorm:"not null" json:"serviceId"`
	Service   Service `gorm:"foreignKey:ServiceId" json:"service"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	// Price is copied from the service at order time so later price changes
	// never touch historical orders.
	Price float64 `gorm:"not null" json:"price"`
}

func (i *OrderItem) TotalPrice() float64 {
	return i.Price * float64(i.Quantity)
}

// Quantity is a pointer so an explicit zero survives validation; zero or
// negative removes the line.
type UpdateCartItemInput struct {
	Quantity *int `validate:"required" json:"quantity"`
}

type PaymentInput struct {
	Email string `validate:"omitempty,email" json:"email"`
}
