// Package store defines the persistence adapter contract.
//
// The application persists whole collections as serialized string snapshots
// under well-known keys ("listings", "users", "currentUser"). This package
// exposes exactly that shape: a string key-value store where every Set is a
// full overwrite of the named entry. There is no append, no patch, and no
// locking above a single Set — callers own read-modify-write correctness,
// and two concurrent writers race with last-write-wins.
package store

// KV is a string key-value store holding serialized collection snapshots.
//
// Get returns (value, true, nil) when the key exists and ("", false, nil)
// when it does not — an absent key is a normal condition, not an error.
// Set overwrites the entire value for the key. Delete removes the key;
// deleting an absent key is a no-op.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
