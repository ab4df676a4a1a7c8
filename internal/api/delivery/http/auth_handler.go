package http

import (
	"errors"
	"net/http"

	"golang-stock-catalog/internal/api/dto"
	"golang-stock-catalog/internal/api/service"
	"golang-stock-catalog/internal/entity"
	"golang-stock-catalog/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// RegisterRoutes registers the auth routes to the Echo group.
func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/login", h.Login)
}

// Login godoc
// @Summary Check login credentials
// @Description Static credential check; no session or token is issued
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials  body    dto.LoginRequest   true    "Credential pair"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: err.Error()})
	}

	if err := h.authService.Login(req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, entity.ErrEmailNotFound):
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		case errors.Is(err, entity.ErrInvalidPassword):
			return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: err.Error()})
		default:
			h.logger.Error("Unexpected error handling login", logger.ErrorField(err))
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "Internal server error"})
		}
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Good!"})
}
