package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"kaineetam/internal/config"
	"kaineetam/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	blessingHandler *handler.BlessingHandler,
	kaineetamHandler *handler.KaineetamHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Sender profile routes (optional; blessings work without a profile)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Public blessing flow: create, view, pay, confirm, dashboard
	api.POST("/blessings", blessingHandler.Create)
	api.GET("/blessings/:code", blessingHandler.Get)
	api.GET("/blessings/:code/qr", blessingHandler.QR)
	api.POST("/blessings/:code/kaineetam", kaineetamHandler.Confirm)
	api.GET("/blessings/:code/dashboard", kaineetamHandler.Dashboard)
	api.GET("/blessings/:code/dashboard/export", kaineetamHandler.Export)

	// Secured routes (require JWT authentication)
	secured := api.Group("/me", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/blessings", blessingHandler.MyBlessings)
	secured.POST("/blessings", blessingHandler.Create)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
