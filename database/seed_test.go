package database

import (
	"fmt"
	"testing"

	"hotel_manager/constants"
	"hotel_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func seedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Account{},
		&model.Client{},
		&model.Amenity{},
		&model.RoomCategory{},
		&model.Room{},
		&model.RoomImage{},
		&model.Reservation{},
		&model.Review{},
		&model.Service{},
		&model.FAQ{},
		&model.CompanyInfo{},
	))
	return db
}

func TestSeedData(t *testing.T) {
	db := seedTestDB(t)

	SeedData(db)

	var admin model.Account
	require.NoError(t, db.Where("username = ?", "Administration").First(&admin).Error)
	assert.Equal(t, constants.ROLE_ADMIN, admin.Role)
	assert.True(t, admin.Active)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin12345")))

	var categories int64
	db.Model(&model.RoomCategory{}).Count(&categories)
	assert.Equal(t, int64(3), categories)

	var standard model.RoomCategory
	require.NoError(t, db.Where("name = ?", "Standard").First(&standard).Error)
	assert.Equal(t, 100.00, standard.BasePrice)

	// Re-running must not duplicate anything.
	SeedData(db)
	var accounts int64
	db.Model(&model.Account{}).Count(&accounts)
	assert.Equal(t, int64(2), accounts)
	db.Model(&model.RoomCategory{}).Count(&categories)
	assert.Equal(t, int64(3), categories)

	var companies int64
	db.Model(&model.CompanyInfo{}).Count(&companies)
	assert.Equal(t, int64(1), companies)
}
