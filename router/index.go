package router

import (
	"hotel_manager/handler"
	"hotel_manager/middleware"
	"hotel_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), validate.AdminChangePassword(), handler.AdminChangePassword)
	account.Patch("/:accountId/active", middleware.Protected(), validate.GetById("accountId"), handler.ActiveAccount)

	// Public site
	v1.Get("/home", handler.Home)
	v1.Get("/about", handler.About)
	v1.Get("/faq", handler.GetFAQ)
	v1.Get("/team", handler.GetStaffMembers)
	v1.Get("/vacancies", handler.GetVacancies)
	v1.Get("/promo-codes", handler.GetPromoCodes)

	news := v1.Group("/news")
	news.Get("/", handler.GetArticles)
	news.Get("/:slug", handler.GetArticleBySlug)
	news.Post("/", middleware.Protected(), handler.CreateArticle)

	service := v1.Group("/services")
	service.Get("/", handler.GetServices)
	service.Get("/:serviceId", validate.GetById("serviceId"), handler.GetServiceById)

	room := v1.Group("/rooms", logger.New())
	room.Get("/", handler.GetRooms)
	room.Get("/:roomId", handler.GetRoomById)
	room.Post("/", middleware.Protected(), validate.CreateRoom(), handler.CreateRoom)
	room.Put("/:roomId", middleware.Protected(), validate.EditRoom("roomId"), handler.EditRoom)
	room.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteRoom)
	room.Post("/:roomId/book", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.BookRoom("roomId"), handler.BookRoom)
	room.Get("/status/live", websocket.New(handler.RoomStatusWebsocket))

	reservation := v1.Group("/reservations", logger.New())
	reservation.Get("/", middleware.Protected(), handler.GetReservations)
	reservation.Get("/my", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.MyReservations)
	reservation.Patch("/:reservationId/status", middleware.Protected(), validate.UpdateReservationStatus("reservationId"), handler.UpdateReservationStatus)
	reservation.Post("/:reservationId/cancel", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("reservationId"), handler.CancelReservation)

	cart := v1.Group("/cart", middleware.OptionalJWT(), middleware.OptionalAuth(), middleware.CartSession())
	cart.Get("/", handler.GetCart)
	cart.Post("/add/:serviceId", validate.GetById("serviceId"), handler.AddToCart)
	cart.Post("/update/:cartItemId", validate.UpdateCartItem("cartItemId"), handler.UpdateCartItem)
	cart.Post("/remove/:cartItemId", validate.GetById("cartItemId"), handler.RemoveFromCart)

	order := v1.Group("/orders", middleware.OptionalJWT(), middleware.OptionalAuth(), middleware.CartSession())
	order.Post("/payment", validate.Payment(), handler.Checkout)
	order.Get("/my", handler.MyOrders)
	order.Get("/:code", handler.GetOrderByCode)
	order.Get("/:code/qr", handler.OrderQRCode)

	review := v1.Group("/reviews")
	review.Get("/", handler.GetReviews)
	review.Post("/", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.CreateReview(), handler.CreateReview)
	review.Get("/all", middleware.Protected(), handler.GetAllReviews)
	review.Patch("/:reviewId/publish", middleware.Protected(), validate.GetById("reviewId"), handler.PublishReview)

	statistic := v1.Group("/statistics", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetStatistics)
	statistic.Get("/room-booking-distribution", middleware.Protected(), handler.RoomBookingDistribution)

	client := v1.Group("/clients")
	client.Post("/register", validate.RegisterClient(), handler.RegisterClient)
	client.Post("/login", handler.ClientLogin)
	client.Post("/refresh-token", handler.RefreshToken)
	client.Get("/me", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetCurrentClient)
	client.Put("/me", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.EditProfile(), handler.EditProfile)
	client.Post("/change-password", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.ChangePassword(), handler.ChangePasswordClient)
	client.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	client.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)
}
