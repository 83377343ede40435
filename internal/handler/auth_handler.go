package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "safarihub/internal/errors"
	"safarihub/internal/service"
)

// AuthHandler handles admin registration and login.
type AuthHandler struct {
	adminService service.AdminService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(adminService service.AdminService) *AuthHandler {
	return &AuthHandler{adminService: adminService}
}

// RegisterRequest represents an admin registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Register godoc
// @Summary Register a new admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: err.Error(),
			Code:    "VALIDATION_ERROR",
		})
	}

	admin, err := h.adminService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "admin registered successfully",
		"admin":   admin,
	})
}

// Login godoc
// @Summary Login admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: err.Error(),
			Code:    "VALIDATION_ERROR",
		})
	}

	token, admin, err := h.adminService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Email: admin.Email,
	})
}

// toHTTPError translates a domain error through the gateway taxonomy.
func toHTTPError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
