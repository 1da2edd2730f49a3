package helper

import (
	"fmt"
	"testing"
	"time"

	"hotel_manager/constants"
	"hotel_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func bookingDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Client{},
		&model.Amenity{},
		&model.RoomCategory{},
		&model.Room{},
		&model.RoomImage{},
		&model.Reservation{},
		&model.Review{},
	))
	return db
}

func seedBookableRoom(t *testing.T, db *gorm.DB) (model.Client, model.Room) {
	t.Helper()
	category := model.RoomCategory{Name: "Standard", BasePrice: 100.00}
	require.NoError(t, db.Create(&category).Error)
	room := model.Room{RoomNumber: "101", CategoryId: category.ID, Status: constants.ROOM_AVAILABLE, Capacity: 2}
	require.NoError(t, db.Create(&room).Error)
	client := model.Client{FirstName: "Anna", LastName: "Petrova", Email: "anna@example.com", Phone: "555-0101"}
	require.NoError(t, db.Create(&client).Error)
	return client, room
}

func TestBookRoomClaimsRoomAndPricesStay(t *testing.T) {
	db := bookingDB(t)
	client, room := seedBookableRoom(t, db)

	checkIn := time.Now().AddDate(0, 0, 7)
	checkOut := time.Now().AddDate(0, 0, 9)

	reservation, err := BookRoom(db, client, room.ID, checkIn, checkOut, false, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.RESERVATION_CONFIRMED, reservation.Status)
	assert.Equal(t, 200.00, reservation.TotalPrice)
	assert.Equal(t, client.ID, reservation.ClientId)
	assert.Equal(t, "Standard", reservation.Room.Category.Name)

	var updated model.Room
	require.NoError(t, db.First(&updated, room.ID).Error)
	assert.Equal(t, constants.ROOM_RESERVED, updated.Status)
}

func TestBookRoomRejectsClaimedRoom(t *testing.T) {
	db := bookingDB(t)
	client, room := seedBookableRoom(t, db)

	checkIn := time.Now().AddDate(0, 0, 7)
	checkOut := time.Now().AddDate(0, 0, 9)

	_, err := BookRoom(db, client, room.ID, checkIn, checkOut, false, nil)
	require.NoError(t, err)

	// The first booking flipped the room to reserved; a second attempt must
	// not create anything.
	_, err = BookRoom(db, client, room.ID, checkIn, checkOut, false, nil)
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	var count int64
	db.Model(&model.Reservation{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestBookRoomRejectsOverlappingDates(t *testing.T) {
	db := bookingDB(t)
	client, room := seedBookableRoom(t, db)

	checkIn := time.Now().AddDate(0, 0, 7)
	checkOut := time.Now().AddDate(0, 0, 9)

	_, err := BookRoom(db, client, room.ID, checkIn, checkOut, false, nil)
	require.NoError(t, err)

	// Even with the status released, the confirmed reservation still blocks
	// intersecting date ranges.
	require.NoError(t, db.Model(&model.Room{}).
		Where("id = ?", room.ID).
		Update("status", constants.ROOM_AVAILABLE).Error)

	_, err = BookRoom(db, client, room.ID, checkIn.AddDate(0, 0, 1), checkOut.AddDate(0, 0, 1), false, nil)
	assert.ErrorIs(t, err, ErrDatesOverlap)

	var count int64
	db.Model(&model.Reservation{}).Count(&count)
	assert.Equal(t, int64(1), count)

	// Back-to-back stays share a boundary day and are allowed.
	backIn := checkOut
	backOut := checkOut.AddDate(0, 0, 2)
	reservation, err := BookRoom(db, client, room.ID, backIn, backOut, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 200.00, reservation.TotalPrice)

	db.Model(&model.Reservation{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestBookRoomUnknownRoom(t *testing.T) {
	db := bookingDB(t)
	client, _ := seedBookableRoom(t, db)

	_, err := BookRoom(db, client, 9999,
		time.Now().AddDate(0, 0, 7), time.Now().AddDate(0, 0, 9), false, nil)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
