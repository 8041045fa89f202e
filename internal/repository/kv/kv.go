// Package kv implements the repository interfaces over a store.KV, persisting
// each collection as one JSON snapshot under a well-known key.
//
// Keys and layout:
//
//	listings    → JSON array of model.Listing
//	users       → JSON array of model.User
//	currentUser → JSON object, one model.User (absent when logged out)
//
// ERROR POLICY:
// A missing key reads as an empty collection (or no session) — first boot and
// "logged out" are normal states. A key that exists but fails to parse is
// surfaced as apperror.ErrStorage instead of being treated as empty: silently
// reading a corrupt snapshot as [] would let the next ReplaceAll wipe whatever
// data is still recoverable in the store.
package kv

import (
	"encoding/json"
	"fmt"

	"github.com/sakif/marketplace/internal/apperror"
	"github.com/sakif/marketplace/internal/model"
	"github.com/sakif/marketplace/internal/repository"
	"github.com/sakif/marketplace/internal/store"
)

const (
	keyListings    = "listings"
	keyUsers       = "users"
	keyCurrentUser = "currentUser"
)

// compile-time checks that the repositories satisfy their interfaces
var (
	_ repository.ListingRepository = (*Listings)(nil)
	_ repository.UserRepository    = (*Users)(nil)
	_ repository.SessionRepository = (*Session)(nil)
)

// Listings persists the listings collection.
type Listings struct {
	kv store.KV
}

func NewListings(kv store.KV) *Listings {
	return &Listings{kv: kv}
}

// GetAll loads the full listings snapshot, or an empty slice if none exists.
func (r *Listings) GetAll() ([]model.Listing, error) {
	raw, ok, err := r.kv.Get(keyListings)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", keyListings, err)
	}
	if !ok {
		return []model.Listing{}, nil
	}

	var listings []model.Listing
	if err := json.Unmarshal([]byte(raw), &listings); err != nil {
		return nil, apperror.StorageCorrupt(keyListings, err)
	}
	if listings == nil {
		listings = []model.Listing{}
	}
	return listings, nil
}

// ReplaceAll overwrites the entire listings collection.
func (r *Listings) ReplaceAll(listings []model.Listing) error {
	raw, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", keyListings, err)
	}
	if err := r.kv.Set(keyListings, string(raw)); err != nil {
		return fmt.Errorf("saving %s: %w", keyListings, err)
	}
	return nil
}

// Users persists the users collection.
type Users struct {
	kv store.KV
}

func NewUsers(kv store.KV) *Users {
	return &Users{kv: kv}
}

func (r *Users) GetAll() ([]model.User, error) {
	raw, ok, err := r.kv.Get(keyUsers)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", keyUsers, err)
	}
	if !ok {
		return []model.User{}, nil
	}

	var users []model.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, apperror.StorageCorrupt(keyUsers, err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (r *Users) ReplaceAll(users []model.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", keyUsers, err)
	}
	if err := r.kv.Set(keyUsers, string(raw)); err != nil {
		return fmt.Errorf("saving %s: %w", keyUsers, err)
	}
	return nil
}

// Session persists the current-user record.
type Session struct {
	kv store.KV
}

func NewSession(kv store.KV) *Session {
	return &Session{kv: kv}
}

// Get returns the current user, or (nil, nil) when nobody is logged in.
func (r *Session) Get() (*model.User, error) {
	raw, ok, err := r.kv.Get(keyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", keyCurrentUser, err)
	}
	if !ok {
		return nil, nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, apperror.StorageCorrupt(keyCurrentUser, err)
	}
	return &user, nil
}

// Set stores a full copy of the user as the active session.
func (r *Session) Set(user *model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", keyCurrentUser, err)
	}
	if err := r.kv.Set(keyCurrentUser, string(raw)); err != nil {
		return fmt.Errorf("saving %s: %w", keyCurrentUser, err)
	}
	return nil
}

// Clear removes the session pointer. The users collection is untouched.
func (r *Session) Clear() error {
	if err := r.kv.Delete(keyCurrentUser); err != nil {
		return fmt.Errorf("clearing %s: %w", keyCurrentUser, err)
	}
	return nil
}
