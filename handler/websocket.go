package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"

	"github.com/gofiber/contrib/websocket"
)

const roomStatusChannel = "rooms:status"

var (
	statusConnections = make(map[*websocket.Conn]bool)
	fanOutRunning     bool
	statusMu          sync.Mutex
)

// claimFanOut marks the subscriber loop as running. Exactly one loop may hold
// the claim at a time; the connection count alone cannot tell whether the
// previous loop has exited yet.
func claimFanOut() bool {
	statusMu.Lock()
	defer statusMu.Unlock()
	if fanOutRunning {
		return false
	}
	fanOutRunning = true
	return true
}

type roomStatusEvent struct {
	RoomId     uint   `json:"roomId"`
	RoomNumber string `json:"roomNumber"`
	Status     string `json:"status"`
}

// PublishRoomStatus pushes a room status change onto the feed. Failures are
// logged and ignored, the feed is advisory.
func PublishRoomStatus(roomId uint, roomNumber, status string) {
	event := roomStatusEvent{RoomId: roomId, RoomNumber: roomNumber, Status: status}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := helper.Redis.Publish(context.Background(), roomStatusChannel, payload).Err(); err != nil {
		log.Printf("room status publish failed: %v", err)
	}
}

// RoomStatusWebsocket streams live room status changes to the reception
// dashboard. The current board is sent once on connect, then every change
// published on the Redis channel is fanned out to all connections.
func RoomStatusWebsocket(c *websocket.Conn) {
	defer func() {
		statusMu.Lock()
		delete(statusConnections, c)
		statusMu.Unlock()
		c.Close()
	}()

	statusMu.Lock()
	statusConnections[c] = true
	statusMu.Unlock()

	var rooms []model.Room
	if err := database.DB.Preload("Category").Order("room_number ASC").Find(&rooms).Error; err == nil {
		board := make([]roomStatusEvent, 0, len(rooms))
		for _, room := range rooms {
			board = append(board, roomStatusEvent{
				RoomId:     room.ID,
				RoomNumber: room.RoomNumber,
				Status:     room.Status,
			})
		}
		c.WriteJSON(board)
	}

	// One subscriber loop per process handles the fan-out.
	if claimFanOut() {
		go fanOutRoomStatus()
	}

	// Keep the connection open until the client goes away.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

func fanOutRoomStatus() {
	pubsub := helper.Redis.Subscribe(context.Background(), roomStatusChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		statusMu.Lock()
		for conn := range statusConnections {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(statusConnections, conn)
			}
		}
		// Releasing the claim and observing the empty set happen under the
		// same lock, so a connection arriving now either sees the claim still
		// held (this loop keeps serving it) or starts a fresh loop.
		if len(statusConnections) == 0 {
			fanOutRunning = false
			statusMu.Unlock()
			return
		}
		statusMu.Unlock()
	}

	// Subscription channel closed underneath us; let the next connection
	// start a fresh loop.
	statusMu.Lock()
	fanOutRunning = false
	statusMu.Unlock()
}
