// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"clinicdesk/internal/delivery/http/cookie"
	"clinicdesk/internal/delivery/http/response"
	domainerrors "clinicdesk/internal/domain/errors"
	"clinicdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the wire shape of the registration request.
type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginRequest is the wire shape of the login request.
type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	credentials usecase.CredentialUsecase
	sessions    usecase.SessionUsecase
	cookies     *cookie.Policy
	logger      *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	credentials usecase.CredentialUsecase,
	sessions usecase.SessionUsecase,
	cookies *cookie.Policy,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		sessions:    sessions,
		cookies:     cookies,
		logger:      logger,
	}
}

// Register handles the account registration request. A successful
// registration signs the account in immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed registration body")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("incomplete registration body")
	}

	user, err := h.credentials.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.installSession(c, user.ID); err != nil {
		return err
	}

	return response.User(c, http.StatusCreated, response.NewProfile(user))
}

// Login handles the login request. Every credential failure surfaces as the
// same 401; the response never reveals whether the account exists.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed login body")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("incomplete login body")
	}

	user, err := h.credentials.Authenticate(c.Request().Context(), usecase.AuthenticateInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.installSession(c, user.ID); err != nil {
		return err
	}

	return response.User(c, http.StatusOK, response.NewProfile(user))
}

// Logout clears the session cookie. It succeeds whether or not a session was
// present, so repeated logouts are harmless.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.cookies.Clear())

	return response.Ack(c, http.StatusOK)
}

// Me reports the account behind the request's session cookie, as the full
// stored record minus the password hash. It always answers 200; an absent or
// rejected session reads as {"user": null} so polling clients never see an
// auth error here.
func (h *AuthHandler) Me(c echo.Context) error {
	token := h.cookies.Read(c.Request())

	user, err := h.sessions.ResolveCurrentUser(c.Request().Context(), token)
	if err != nil {
		h.logger.Error("Failed to resolve session", slog.Any("error", err))

		return response.User(c, http.StatusOK, nil)
	}
	if user == nil {
		return response.User(c, http.StatusOK, nil)
	}

	return response.User(c, http.StatusOK, response.NewAccount(user))
}

// installSession mints a token for the account and stamps it onto the
// response as the session cookie.
func (h *AuthHandler) installSession(c echo.Context, userID uuid.UUID) error {
	token, ttl, err := h.sessions.Issue(userID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.cookies.Session(token, ttl))

	return nil
}
