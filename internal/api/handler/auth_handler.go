package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/segurosapi/auth-service/internal/api/metrics"
	"github.com/segurosapi/auth-service/internal/core/domain"
	"github.com/segurosapi/auth-service/internal/core/ports"
)

// Failure messages are deliberately generic. Registration never reveals
// whether the email or the role was the problem, and login never reveals
// whether the account exists.
const (
	msgRegistrationFailed = "registration failed"
	msgInvalidLogin       = "invalid email or password"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Email     string `json:"email"      validate:"required,email,max=256"`
	Password  string `json:"password"   validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	RoleName  string `json:"role_name"  validate:"required,max=50"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Email     string    `json:"email"`
	RoleName  string    `json:"role_name"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type meResponse struct {
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
	RoleName  string `json:"role_name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Register creates a new account. role_name must be one of: Admin, Client,
// Agent (case-insensitive).
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleName:  req.RoleName,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRole):
			metrics.RegistrationFailuresTotal.WithLabelValues("invalid_role").Inc()
		case errors.Is(err, domain.ErrEmailTaken):
			metrics.RegistrationFailuresTotal.WithLabelValues("email_taken").Inc()
		default:
			metrics.RegistrationFailuresTotal.WithLabelValues("error").Inc()
			return err
		}
		// Same status and body for every policy failure.
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msgRegistrationFailed})
	}

	metrics.RegistrationsTotal.WithLabelValues(result.RoleName).Inc()
	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, toAuthResponse(result))
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": msgInvalidLogin})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, toAuthResponse(result))
}

// Me returns the profile of the authenticated account, resolved from the
// store rather than from token claims.
//
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	account, err := h.authService.WhoAmI(c.Request().Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
		}
		return err
	}

	return c.JSON(http.StatusOK, meResponse{
		AccountID: account.ID,
		Email:     account.Email,
		RoleName:  account.RoleName,
		FirstName: account.FirstName,
		LastName:  account.LastName,
	})
}

func toAuthResponse(result *ports.AuthResult) authResponse {
	return authResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		Email:     result.Email,
		RoleName:  result.RoleName,
		FirstName: result.FirstName,
		LastName:  result.LastName,
	}
}
