// Package service contains the business logic layer of the application.
//
// The layering follows the usual three-layer shape:
//
//	Handler (HTTP)      → parses requests, writes responses
//	Service (business)  → validates, enforces rules, orchestrates
//	Repository (data)   → whole-collection snapshots over the store
//
// Services take repository INTERFACES, not concrete types, so tests inject
// in-memory fakes and the composition root decides the real backend.
//
// STORAGE DISCIPLINE:
// Every mutation here is an explicit read-modify-write of a full collection:
// load the snapshot, change a working copy, write the whole thing back. The
// repositories never cache, so what a service reads is always what the store
// holds. There is no cross-writer locking — per the product's single-session
// model, concurrent writers race and the last write wins.
package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/marketplace/internal/apperror"
	"github.com/sakif/marketplace/internal/model"
	"github.com/sakif/marketplace/internal/repository"
)

// MinPasswordLength is the registration password policy.
const MinPasswordLength = 6

// AuthService is the session/favorites manager: registration, login, logout,
// the current-user record, and favorite toggling.
//
// The session record is a full COPY of the user, stored separately from the
// users collection. Any mutation of a logged-in user must rewrite both, and
// this service is the only writer of either, so that invariant lives here.
type AuthService struct {
	users   repository.UserRepository
	session repository.SessionRepository
	logger  *slog.Logger
}

// NewAuthService creates an AuthService with all required dependencies.
func NewAuthService(
	users repository.UserRepository,
	session repository.SessionRepository,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:   users,
		session: session,
		logger:  logger,
	}
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// Register validates the input, appends the new user to the users collection,
// and opens a session for them.
//
// Rejections (all apperror.ErrValidation, reported synchronously, no state
// change): missing required field, password shorter than MinPasswordLength,
// password/confirmation mismatch, email already registered. Email uniqueness
// is only checked here, at registration time.
func (s *AuthService) Register(in RegisterInput) (*model.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" {
		return nil, apperror.ValidationFailed("name", "name is required")
	}
	if in.Email == "" {
		return nil, apperror.ValidationFailed("email", "email is required")
	}
	if in.Phone == "" {
		return nil, apperror.ValidationFailed("phone", "phone is required")
	}
	if len(in.Password) < MinPasswordLength {
		return nil, apperror.ValidationFailed("password",
			fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	if in.Password != in.ConfirmPassword {
		return nil, apperror.ValidationFailed("confirmPassword", "passwords do not match")
	}

	users, err := s.users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}

	for _, u := range users {
		if u.Email == in.Email {
			return nil, apperror.ValidationFailed("email", "this email is already registered")
		}
	}

	user := model.User{
		ID:        xid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Password:  in.Password,
		CreatedAt: time.Now(),
		Favorites: []string{},
	}

	if err := s.users.ReplaceAll(append(users, user)); err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}
	if err := s.session.Set(&user); err != nil {
		return nil, fmt.Errorf("opening session: %w", err)
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID),
		slog.String("email", user.Email),
	)

	return &user, nil
}

// Login matches email and password exactly against the stored users and, on
// success, sets the session to a copy of the matched user.
//
// A mismatch returns apperror.ErrAuth and leaves the session untouched —
// a failed login never logs the previous user out.
func (s *AuthService) Login(email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)

	users, err := s.users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			user := u
			if err := s.session.Set(&user); err != nil {
				return nil, fmt.Errorf("opening session: %w", err)
			}
			s.logger.Info("user logged in", slog.String("userID", user.ID))
			return &user, nil
		}
	}

	return nil, apperror.AuthFailed()
}

// Logout clears the session pointer. The users collection is untouched.
func (s *AuthService) Logout() error {
	if err := s.session.Clear(); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	return nil
}

// CurrentUser returns the active session's user copy, or (nil, nil) when
// nobody is logged in.
func (s *AuthService) CurrentUser() (*model.User, error) {
	user, err := s.session.Get()
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return user, nil
}

// ToggleFavorite adds the listing id to the user's favorites if absent and
// removes it if present. Toggling twice restores the original set.
//
// Both the canonical record in the users collection AND the session copy are
// rewritten, so the two never diverge on favorites.
func (s *AuthService) ToggleFavorite(userID, listingID string) (*model.User, error) {
	if listingID == "" {
		return nil, apperror.ValidationFailed("listingId", "listing id is required")
	}

	users, err := s.users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("toggling favorite: %w", err)
	}

	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperror.NotFound("user", userID)
	}

	users[idx].Favorites = toggle(users[idx].Favorites, listingID)
	updated := users[idx]

	if err := s.users.ReplaceAll(users); err != nil {
		return nil, fmt.Errorf("toggling favorite: %w", err)
	}

	// Keep the session copy consistent with the canonical record. A session
	// belonging to a different user (or none) is left alone.
	current, err := s.session.Get()
	if err != nil {
		return nil, fmt.Errorf("toggling favorite: %w", err)
	}
	if current != nil && current.ID == userID {
		if err := s.session.Set(&updated); err != nil {
			return nil, fmt.Errorf("toggling favorite: %w", err)
		}
	}

	s.logger.Info("favorite toggled",
		slog.String("userID", userID),
		slog.String("listingID", listingID),
		slog.Int("favorites", len(updated.Favorites)),
	)

	return &updated, nil
}

// toggle removes id if present (preserving the order of the rest) or appends
// it if absent.
func toggle(favorites []string, id string) []string {
	out := make([]string, 0, len(favorites)+1)
	found := false
	for _, f := range favorites {
		if f == id {
			found = true
			continue
		}
		out = append(out, f)
	}
	if !found {
		out = append(out, id)
	}
	return out
}
