package constants

const (
	ROLE_ADMIN = "ADMIN"
	ROLE_STAFF = "STAFF"
)

// Room statuses
const (
	ROOM_AVAILABLE   = "available"
	ROOM_OCCUPIED    = "occupied"
	ROOM_MAINTENANCE = "maintenance"
	ROOM_RESERVED    = "reserved"
)

// Reservation statuses
const (
	RESERVATION_PENDING     = "pending"
	RESERVATION_CONFIRMED   = "confirmed"
	RESERVATION_CHECKED_IN  = "checked_in"
	RESERVATION_CHECKED_OUT = "checked_out"
	RESERVATION_CANCELLED   = "cancelled"
)

// Order statuses
const (
	ORDER_PENDING    = "pending"
	ORDER_PAID       = "paid"
	ORDER_PROCESSING = "processing"
	ORDER_COMPLETED  = "completed"
	ORDER_CANCELLED  = "cancelled"
)

const (
	MISSING_LOGIN_INPUT        = "Username and password are required"
	INVALID_USERNAME           = "Username does not exist"
	INVALID_PASSWORD           = "Incorrect password"
	ACCOUNT_NOT_ACTIVE         = "Account is disabled"
	NOT_ADMIN                  = "You do not have permission to perform this action"
	NOT_STAFF                  = "Staff access required"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not read validated input"
	ERROR_EDIT                 = "Update failed"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"

	ROOM_NOT_AVAILABLE   = "This room is not available for booking"
	ROOM_NOT_FOUND       = "Room not found"
	INVALID_DATE_RANGE   = "Invalid date range"
	CLIENT_NOT_SET_UP    = "Your account is not set up as a client. Please contact support"
	CART_EMPTY           = "Your cart is empty"
	REVIEW_THANKS        = "Thanks for the feedback"
	BOOKING_SUCCESS      = "Room booked successfully"
	ORDER_PAID_MESSAGE   = "Order successfully paid. Thank you for your purchase"
	RESERVATION_CONFLICT = "The room is already reserved for the selected dates"
)
