package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/seat-booking/pkg/auth"
	"github.com/Astemirdum/seat-booking/pkg/metrics"
	md "github.com/Astemirdum/seat-booking/pkg/middleware"
	"github.com/Astemirdum/seat-booking/pkg/validate"
	_ "github.com/Astemirdum/seat-booking/swagger"
)

type Handler struct {
	bookingSvc BookingService
	tokens     md.TokenParser
	log        *zap.Logger
}

func New(bookingSvc BookingService, tokens md.TokenParser, log *zap.Logger) *Handler {
	return &Handler{
		bookingSvc: bookingSvc,
		tokens:     tokens,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.HTTPErrorHandler = h.errorHandler
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	h.routes(api)

	return e
}

func (h *Handler) routes(api *echo.Group) {
	authn := md.JwtAuthentication(h.tokens)
	admin := requireRoles(auth.RoleAdmin)
	staff := requireRoles(auth.RoleAdmin, auth.RoleLibrarian)
	owner := h.requireLibraryOwner

	users := api.Group("/users")
	users.POST("/register", h.Register)
	users.POST("/login", h.Login)
	users.GET("/profile", h.Profile, authn)
	users.PATCH("/profile", h.UpdateProfile, authn)
	users.POST("/:userId/librarian", h.AssignLibrarian, authn, admin)
	users.DELETE("/:userId/librarian", h.RevokeLibrarian, authn, admin)
	users.GET("/me/reservations", h.ListMyReservations, authn)
	users.POST("/me/reservations", h.CreateReservation, authn)
	users.DELETE("/me/reservations/:reservationId", h.CancelReservation, authn)

	libs := api.Group("/libraries")
	libs.GET("", h.ListLibraries)
	libs.POST("", h.CreateLibrary, authn, admin)
	libs.GET("/code/:code", h.GetLibraryByCode)
	libs.GET("/:libraryId", h.GetLibrary)
	libs.PUT("/:libraryId", h.UpdateLibrary, authn, staff, owner)
	libs.DELETE("/:libraryId", h.DeleteLibrary, authn, admin)
	libs.PATCH("/:libraryId/status", h.SetLibraryStatus, authn, admin)

	libs.GET("/:libraryId/seats", h.ListSeats)
	libs.POST("/:libraryId/seats", h.CreateSeat, authn, staff, owner)
	libs.GET("/:libraryId/seats/:seatId", h.GetSeat)
	libs.PUT("/:libraryId/seats/:seatId", h.UpdateSeat, authn, staff, owner)
	libs.PATCH("/:libraryId/seats/:seatId", h.PatchSeat, authn, staff, owner)
	libs.DELETE("/:libraryId/seats/:seatId", h.DeleteSeat, authn, staff, owner)

	libs.GET("/:libraryId/schedule", h.GetSchedule)
	libs.POST("/:libraryId/schedule", h.CreateSchedule, authn, admin)
	libs.PUT("/:libraryId/schedule", h.UpdateSchedule, authn, staff, owner)
	libs.DELETE("/:libraryId/schedule", h.DeleteSchedule, authn, admin)

	libs.GET("/:libraryId/reservations", h.ListLibraryReservations, authn, staff, owner)
	libs.DELETE("/:libraryId/reservations/:reservationId", h.AdminCancelReservation, authn, staff, owner)

	api.GET("/seats/:seatId/reservations", h.ListSeatReservations, authn, staff, owner)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
