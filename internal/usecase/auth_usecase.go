// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a new account.
// ImageURL and Bio are optional.
type SignupInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// UserView is the sanitized serialization of a User: the public fields only.
// It deliberately has no password hash field and no recipe list, so nesting
// it inside a RecipeView can never leak credentials or recurse.
type UserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	ImageURL string    `json:"image_url"`
	Bio      string    `json:"bio"`
}

// NewUserView builds the sanitized view of a user entity.
func NewUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:       user.ID,
		Username: user.Username,
		ImageURL: user.ImageURL,
		Bio:      user.Bio,
	}
}

// AuthOutput returns the session token and sanitized user after a successful
// signup or login. The token travels to the client as a cookie; it is never
// part of the JSON body.
type AuthOutput struct {
	Token string
	User  *UserView
}

// AuthUsecase is the state machine over session identity: each call either
// runs as Anonymous or resolves the presented token to an Authenticated user.
type AuthUsecase interface {
	// Signup creates an account and starts a session for it.
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)

	// CheckSession resolves a session token to the sanitized user it belongs to.
	CheckSession(ctx context.Context, token string) (*UserView, error)

	// Login verifies credentials and starts a session. Unknown username and
	// wrong password fail identically.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout clears an authenticated session. Logging out while anonymous is
	// an error.
	Logout(ctx context.Context, token string) error
}
