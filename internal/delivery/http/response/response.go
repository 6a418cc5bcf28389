// Package response holds the wire format shared by every endpoint.
package response

import (
	"time"

	"clinicdesk/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Profile is the slim account view returned after registration and login.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Account is the full record view returned by the session endpoint, the
// stored user minus its credential. The password hash never appears on the wire.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProfile maps an entity to its registration and login view.
func NewProfile(user *entity.User) *Profile {
	return &Profile{Name: user.Name, Email: user.Email}
}

// NewAccount maps an entity to its session view.
func NewAccount(user *entity.User) *Account {
	return &Account{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// User writes a {"user": ...} body. A nil view serializes as {"user": null},
// which is how the session endpoint reports "not signed in".
func User(c echo.Context, statusCode int, user any) error {
	return c.JSON(statusCode, map[string]any{"user": user})
}

// Ack writes the {"ok": true} acknowledgement body.
func Ack(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, map[string]any{"ok": true})
}

// Error writes an {"error": message} body.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]any{"error": message})
}
