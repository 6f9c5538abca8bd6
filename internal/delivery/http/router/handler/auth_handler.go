// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"plateful/config"
	"plateful/internal/delivery/http/response"
	"plateful/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the session lifecycle endpoints.
type AuthHandler struct {
	uc      usecase.AuthUsecase
	session *config.SessionConfig
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		session: cfg.Session,
		logger:  logger,
	}
}

// Signup handles account creation. On success the session cookie is set and
// the sanitized user is returned with 201.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid signup payload")
	}

	output, err := h.uc.Signup(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.session, output.Token)

	return response.JSON(c, http.StatusCreated, output.User)
}

// CheckSession resolves the session cookie to the logged-in user.
func (h *AuthHandler) CheckSession(c echo.Context) error {
	user, err := h.uc.CheckSession(c.Request().Context(), sessionToken(c, h.session))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, user)
}

// Login verifies credentials, sets the session cookie and returns the
// sanitized user.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid login payload")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.session, output.Token)

	return response.JSON(c, http.StatusOK, output.User)
}

// Logout clears the server-side session and expires the cookie. A caller
// without a live session gets 401.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context(), sessionToken(c, h.session)); err != nil {
		return errors.WithStack(err)
	}

	clearSessionCookie(c, h.session)

	return response.NoContent(c)
}

// sessionToken reads the opaque token from the session cookie; absent cookie
// means anonymous.
func sessionToken(c echo.Context, cfg *config.SessionConfig) string {
	cookie, err := c.Cookie(cfg.CookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func setSessionCookie(c echo.Context, cfg *config.SessionConfig, token string) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context, cfg *config.SessionConfig) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
