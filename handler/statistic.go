package handler

import (
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

type categoryStat struct {
	CategoryId   uint    `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Bookings     int64   `json:"bookings"`
	Revenue      float64 `json:"revenue"`
}

type monthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// GetStatistics is the staff reporting view. Everything is recomputed from
// current rows on each request.
func GetStatistics(c *fiber.Ctx) error {
	db := database.DB

	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, nil)
	}

	var reservations []model.Reservation
	if err := db.Preload("Room").Preload("Room.Category").Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	prices := make([]float64, 0, len(reservations))
	stays := make([]float64, 0, len(reservations))
	var totalRevenue float64
	statusCounts := make(map[string]int64)
	for i := range reservations {
		r := &reservations[i]
		prices = append(prices, r.TotalPrice)
		stays = append(stays, float64(r.Nights()))
		totalRevenue += r.TotalPrice
		statusCounts[r.Status]++
	}

	var categoryStats []categoryStat
	if err := db.Model(&model.Reservation{}).
		Select("room_categories.id as category_id, room_categories.name as category_name, COUNT(reservations.id) as bookings, COALESCE(SUM(reservations.total_price),0) as revenue").
		Joins("JOIN rooms ON rooms.id = reservations.room_id").
		Joins("JOIN room_categories ON room_categories.id = rooms.category_id").
		Group("room_categories.id, room_categories.name").
		Order("revenue DESC").
		Scan(&categoryStats).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var monthly []monthlyRevenue
	if err := db.Model(&model.Reservation{}).
		Select("to_char(check_in_date, 'YYYY-MM') as month, COALESCE(SUM(total_price),0) as revenue").
		Group("month").
		Order("month ASC").
		Scan(&monthly).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var totalRooms, busyRooms int64
	db.Model(&model.Room{}).Count(&totalRooms)
	db.Model(&model.Room{}).
		Where("status IN ?", []string{constants.ROOM_OCCUPIED, constants.ROOM_RESERVED}).
		Count(&busyRooms)
	var occupancyRate float64
	if totalRooms > 0 {
		occupancyRate = float64(busyRooms) / float64(totalRooms) * 100
	}

	var totalClients int64
	db.Model(&model.Client{}).Count(&totalClients)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"totalReservations": len(reservations),
		"totalClients":      totalClients,
		"statusCounts":      statusCounts,
		"revenue": fiber.Map{
			"total":  totalRevenue,
			"mean":   helper.Mean(prices),
			"median": helper.Median(prices),
			"mode":   helper.Mode(prices),
		},
		"stayNights": fiber.Map{
			"mean":   helper.Mean(stays),
			"median": helper.Median(stays),
			"mode":   helper.Mode(stays),
		},
		"categoryStats":  categoryStats,
		"monthlyRevenue": monthly,
		"occupancy": fiber.Map{
			"totalRooms": totalRooms,
			"busyRooms":  busyRooms,
			"rate":       occupancyRate,
		},
	})
}

// RoomBookingDistribution returns the per-category booking counts that feed
// the distribution chart. The client renders the chart itself.
func RoomBookingDistribution(c *fiber.Ctx) error {
	db := database.DB

	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, nil)
	}

	var distribution []categoryStat
	if err := db.Model(&model.Reservation{}).
		Select("room_categories.id as category_id, room_categories.name as category_name, COUNT(reservations.id) as bookings, COALESCE(SUM(reservations.total_price),0) as revenue").
		Joins("JOIN rooms ON rooms.id = reservations.room_id").
		Joins("JOIN room_categories ON room_categories.id = rooms.category_id").
		Group("room_categories.id, room_categories.name").
		Order("bookings DESC").
		Scan(&distribution).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	labels := make([]string, 0, len(distribution))
	counts := make([]int64, 0, len(distribution))
	for _, d := range distribution {
		labels = append(labels, d.CategoryName)
		counts = append(counts, d.Bookings)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"labels": labels,
		"counts": counts,
		"rows":   distribution,
	})
}
