// Package repository defines the data-access contracts between the service
// layer and the persistence adapter.
//
// The storage model is whole-collection read-modify-write: a repository loads
// the full snapshot, the caller mutates a working copy, and ReplaceAll writes
// the entire collection back. There is deliberately no per-record update and
// no caching — every GetAll goes to the store, so nothing can desynchronize
// from it.
package repository

import "github.com/sakif/marketplace/internal/model"

// ListingRepository reads and writes the full listings collection.
// GetAll returns an empty slice when nothing has been stored yet.
type ListingRepository interface {
	GetAll() ([]model.Listing, error)
	ReplaceAll(listings []model.Listing) error
}

// UserRepository reads and writes the full users collection.
type UserRepository interface {
	GetAll() ([]model.User, error)
	ReplaceAll(users []model.User) error
}

// SessionRepository holds the "current user" record — a full copy of the
// User, not a reference, so callers that mutate the canonical user record
// must rewrite the session too to keep the two consistent.
//
// Get returns (nil, nil) when no session is active.
type SessionRepository interface {
	Get() (*model.User, error)
	Set(user *model.User) error
	Clear() error
}
