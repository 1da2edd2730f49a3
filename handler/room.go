package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetRooms is the public room catalog with the filter and sort options of
// the listing page.
func GetRooms(c *fiber.Ctx) error {
	db := database.DB

	var filter model.FilterRoom
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter parameters", err)
	}

	query := db.Model(&model.Room{}).
		Joins("JOIN room_categories ON room_categories.id = rooms.category_id").
		Preload("Category").
		Preload("Category.Amenities").
		Preload("Images")

	if filter.Category != nil {
		query = query.Where("rooms.category_id = ?", *filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("room_categories.base_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("room_categories.base_price <= ?", *filter.MaxPrice)
	}
	if filter.Capacity != nil {
		query = query.Where("rooms.capacity >= ?", *filter.Capacity)
	}
	if filter.AvailableOnly {
		query = query.Where("rooms.status = ?", constants.ROOM_AVAILABLE)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("rooms.room_number ILIKE ? OR rooms.description ILIKE ? OR room_categories.name ILIKE ?", like, like, like)
	}

	switch filter.SortBy {
	case "price_asc":
		query = query.Order("room_categories.base_price ASC")
	case "price_desc":
		query = query.Order("room_categories.base_price DESC")
	case "capacity":
		query = query.Order("rooms.capacity DESC")
	default:
		query = query.Order("rooms.room_number ASC")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch rooms", err)
	}

	var rooms []model.Room
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch rooms", err)
	}

	// Price bounds feed the listing filter widget.
	var priceBounds struct {
		Min float64
		Max float64
	}
	db.Model(&model.RoomCategory{}).Select("COALESCE(MIN(base_price),0) as min, COALESCE(MAX(base_price),1000) as max").Scan(&priceBounds)

	var categories []model.RoomCategory
	db.Find(&categories)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":         rooms,
		"totalCount":   totalCount,
		"limit":        filter.Limit,
		"page":         filter.Page,
		"categories":   categories,
		"minRoomPrice": priceBounds.Min,
		"maxRoomPrice": priceBounds.Max,
	})
}

func GetRoomById(c *fiber.Ctx) error {
	db := database.DB

	roomIdStr := c.Params("roomId")
	roomId, err := strconv.ParseUint(roomIdStr, 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var room model.Room
	if err := db.
		Preload("Category").
		Preload("Category.Amenities").
		Preload("Images").
		First(&room, roomId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func CreateRoom(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateRoom").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	status := input.Status
	if status == "" {
		status = constants.ROOM_AVAILABLE
	}

	newRoom := &model.Room{
		RoomNumber:  input.RoomNumber,
		CategoryId:  input.CategoryId,
		Status:      status,
		Capacity:    input.Capacity,
		Description: input.Description,
	}
	for _, img := range input.Images {
		newRoom.Images = append(newRoom.Images, model.RoomImage{URL: img.URL, Caption: img.Caption})
	}

	if err := db.Create(newRoom).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create room", err)
	}

	var createdRoom model.Room
	if err := db.Preload("Category").Preload("Images").First(&createdRoom, newRoom.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not load created room", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, createdRoom)
}

func EditRoom(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("editRoomInput").(model.EditRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	roomId, ok := c.Locals("roomId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	tx := db.Begin()
	var room model.Room
	if err := tx.Preload("Images").First(&room, roomId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.RoomNumber != nil && *input.RoomNumber != "" {
		room.RoomNumber = *input.RoomNumber
	}
	if input.CategoryId != nil {
		var category model.RoomCategory
		if err := tx.First(&category, *input.CategoryId).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Room category does not exist", err, "categoryId")
		}
		room.CategoryId = *input.CategoryId
	}
	statusChanged := false
	if input.Status != nil {
		statusChanged = room.Status != *input.Status
		room.Status = *input.Status
	}
	if input.Capacity != nil {
		room.Capacity = *input.Capacity
	}
	if input.Description != nil {
		room.Description = input.Description
	}

	if input.Images != nil {
		if err := tx.Where("room_id = ?", room.ID).Delete(&model.RoomImage{}).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not replace room images", err)
		}
		room.Images = nil
		for _, img := range *input.Images {
			if err := tx.Create(&model.RoomImage{RoomId: room.ID, URL: img.URL, Caption: img.Caption}).Error; err != nil {
				tx.Rollback()
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not replace room images", err)
			}
		}
	}

	if err := tx.Save(&room).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	var updatedRoom model.Room
	if err := tx.Preload("Category").Preload("Images").First(&updatedRoom, room.ID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not load updated room", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	if statusChanged {
		PublishRoomStatus(updatedRoom.ID, updatedRoom.RoomNumber, updatedRoom.Status)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, updatedRoom)
}

func DeleteRoom(c *fiber.Ctx) error {
	db := database.DB
	arrayId, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	ids := arrayId.IDs

	tx := db.Begin()

	// Rooms with active reservations cannot be removed.
	var activeReservations int64
	if err := tx.Model(&model.Reservation{}).
		Where("room_id IN ? AND status IN ?", ids,
			[]string{constants.RESERVATION_CONFIRMED, constants.RESERVATION_CHECKED_IN}).
		Count(&activeReservations).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check reservations", err)
	}
	if activeReservations > 0 {
		tx.Rollback()
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
			"Cannot delete rooms with active reservations",
			errors.New("active reservations exist"), "ids")
	}

	var images []model.RoomImage
	if err := tx.Where("room_id IN ?", ids).Find(&images).Error; err == nil && len(images) > 0 {
		destroyRoomImages(images)
	}
	if err := tx.Where("room_id IN ?", ids).Delete(&model.RoomImage{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete room images", err)
	}

	if err := tx.Where("id IN ?", ids).Delete(&model.Room{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete rooms", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	log.Printf("ADMIN DELETE ROOM SUCCESS: roomIds=%v", ids)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Rooms deleted",
		"ids":     ids,
		"deleted": true,
	})
}

// destroyRoomImages removes hosted copies asynchronously; DB rows go with
// the transaction either way.
func destroyRoomImages(images []model.RoomImage) {
	cld := helper.InitCloudinary()
	invalidate := true
	for _, img := range images {
		publicID := publicIDFromURL(img.URL)
		if publicID == "" {
			continue
		}
		go func(id string) {
			_, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
				PublicID:     id,
				ResourceType: "image",
				Invalidate:   &invalidate,
			})
			if err != nil {
				log.Printf("Failed to delete Cloudinary image %s: %v", id, err)
			}
		}(publicID)
	}
}

func publicIDFromURL(url string) string {
	idx := strings.Index(url, "/upload/")
	if idx == -1 {
		return ""
	}
	rest := url[idx+len("/upload/"):]
	if slash := strings.Index(rest, "/"); slash != -1 {
		rest = rest[slash+1:]
	}
	if dot := strings.LastIndex(rest, "."); dot != -1 {
		rest = rest[:dot]
	}
	return rest
}

// GenerateSignature signs direct-to-Cloudinary upload parameters for room
// and article images.
func GenerateSignature(c *fiber.Ctx) error {
	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, nil)
	}

	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid params", err)
	}

	timestamp := time.Now().Unix()
	paramMap := map[string]string{
		"timestamp": fmt.Sprintf("%d", timestamp),
	}
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}
