package service

import (
	"log/slog"
	"os"
	"testing"

	"github.com/sakif/marketplace/internal/model"
)

// In-memory fakes for the repository interfaces. Slices are copied on every
// read and write, mirroring the real snapshot repositories: mutating what
// GetAll returned must never change the "stored" state until ReplaceAll.

type fakeListings struct {
	stored []model.Listing
	writes int // how many times ReplaceAll ran
}

func (f *fakeListings) GetAll() ([]model.Listing, error) {
	out := make([]model.Listing, len(f.stored))
	copy(out, f.stored)
	return out, nil
}

func (f *fakeListings) ReplaceAll(listings []model.Listing) error {
	f.stored = make([]model.Listing, len(listings))
	copy(f.stored, listings)
	f.writes++
	return nil
}

type fakeUsers struct {
	stored []model.User
}

func (f *fakeUsers) GetAll() ([]model.User, error) {
	out := make([]model.User, len(f.stored))
	copy(out, f.stored)
	return out, nil
}

func (f *fakeUsers) ReplaceAll(users []model.User) error {
	f.stored = make([]model.User, len(users))
	copy(f.stored, users)
	return nil
}

type fakeSession struct {
	current *model.User
}

func (f *fakeSession) Get() (*model.User, error) {
	if f.current == nil {
		return nil, nil
	}
	u := *f.current
	return &u, nil
}

func (f *fakeSession) Set(user *model.User) error {
	u := *user
	f.current = &u
	return nil
}

func (f *fakeSession) Clear() error {
	f.current = nil
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeUsers, *fakeSession) {
	t.Helper()
	users := &fakeUsers{}
	session := &fakeSession{}
	return NewAuthService(users, session, testLogger()), users, session
}

func newTestListingService(t *testing.T) (*ListingService, *fakeListings) {
	t.Helper()
	listings := &fakeListings{}
	return NewListingService(listings, testLogger()), listings
}
