package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"safarihub/internal/config"
	apperrors "safarihub/internal/errors"
	"safarihub/internal/handler"
)

// resourceHandler is the route surface every catalog kind exposes. The
// concrete handlers are generic, so the router sees them through this
// interface.
type resourceHandler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth    *handler.AuthHandler
	Tours   resourceHandler
	Rentals resourceHandler
	Packs   resourceHandler
	Gallery resourceHandler
}

// Register wires routes and middleware. Reads are public; every mutating
// route of every kind goes through the same bearer-token check.
func Register(e *echo.Echo, cfg *config.Config, h Handlers, uploadsDir string) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded media is served from the same origin under a fixed prefix.
	e.Static("/uploads", uploadsDir)

	e.POST("/admin/register", h.Auth.Register)
	e.POST("/admin/login", h.Auth.Login)

	// Signature and expiry checks only: a valid token is full mutation
	// rights, there is no finer-grained authorization to resolve. The third
	// lookup segment strips the Bearer scheme from the header value.
	requireAdmin := echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUnauthorized)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	})

	mount(e, "/tours", h.Tours, requireAdmin)
	mount(e, "/rentals", h.Rentals, requireAdmin)
	mount(e, "/packages", h.Packs, requireAdmin)
	mount(e, "/gallery", h.Gallery, requireAdmin)
}

func mount(e *echo.Echo, base string, h resourceHandler, requireAdmin echo.MiddlewareFunc) {
	g := e.Group(base)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create, requireAdmin)
	g.PUT("/:id", h.Update, requireAdmin)
	g.DELETE("/:id", h.Delete, requireAdmin)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
