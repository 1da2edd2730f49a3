package database

import (
	"log"
	"time"

	"hotel_manager/constants"
	"hotel_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin12345"), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}
	hashPassword := string(bytes)
	accounts := []model.Account{
		{Username: "Administration", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
		{Username: "Reception", Password: hashPassword, Active: true, Role: constants.ROLE_STAFF},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	amenities := []model.Amenity{
		{Name: "WiFi", Icon: strPtr("fa-wifi")},
		{Name: "Breakfast", Icon: strPtr("fa-utensils")},
		{Name: "Air conditioning", Icon: strPtr("fa-snowflake")},
		{Name: "Mini bar", Icon: strPtr("fa-glass-martini")},
	}
	for _, a := range amenities {
		if err := db.Where(model.Amenity{Name: a.Name}).FirstOrCreate(&a).Error; err != nil {
			log.Println("failed to seed amenity:", a.Name, "error:", err)
		}
	}

	categories := []model.RoomCategory{
		{Name: "Standard", Description: "Standard room", BasePrice: 100.00},
		{Name: "Comfort", Description: "Comfort room with a view", BasePrice: 150.00},
		{Name: "Luxury Suite", Description: "Luxurious suite with all amenities", BasePrice: 200.00},
	}
	for _, c := range categories {
		if err := db.Where(model.RoomCategory{Name: c.Name}).FirstOrCreate(&c).Error; err != nil {
			log.Println("failed to seed room category:", c.Name, "error:", err)
		}
	}

	services := []model.Service{
		{Name: "Spa access", Description: "Full day spa access", Price: floatPtr(45.00), IsAvailable: true},
		{Name: "Dinner for two", Description: "Three course dinner at the restaurant", Price: floatPtr(80.00), IsAvailable: true},
		{Name: "Airport transfer", Description: "One way airport transfer", Price: floatPtr(30.00), IsAvailable: true},
		{Name: "Late checkout", Description: "Checkout until 16:00", Price: floatPtr(25.00), IsAvailable: true},
	}
	for _, s := range services {
		if err := db.Where(model.Service{Name: s.Name}).FirstOrCreate(&s).Error; err != nil {
			log.Println("failed to seed service:", s.Name, "error:", err)
		}
	}

	faqs := []model.FAQ{
		{Question: "What time is check-in?", Answer: "Check-in starts at 14:00.", DateAdded: parseDate("2024-01-10"), Order: 1},
		{Question: "Is breakfast included?", Answer: "Breakfast is included for Comfort and Luxury Suite categories.", DateAdded: parseDate("2024-01-10"), Order: 2},
	}
	for _, f := range faqs {
		if err := db.Where(model.FAQ{Question: f.Question}).FirstOrCreate(&f).Error; err != nil {
			log.Println("failed to seed faq:", f.Question, "error:", err)
		}
	}

	var companyCount int64
	db.Model(&model.CompanyInfo{}).Count(&companyCount)
	if companyCount == 0 {
		info := model.CompanyInfo{
			Name:           "Grand Plaza Hotel",
			Description:    "City centre hotel with 120 rooms, a spa and a restaurant.",
			FoundationYear: intPtr(1998),
		}
		if err := db.Create(&info).Error; err != nil {
			log.Println("failed to seed company info:", err)
		}
	}
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
