package model

import "time"

// User represents a registered account.
//
// Email is the login key; uniqueness is checked at registration time only.
// Password is stored as the literal string the user typed — the persisted
// snapshot format holds it verbatim and login compares it directly.
//
// Favorites is an ordered slice of listing identifiers. The toggle operation
// appends on add and preserves the relative order of the remaining entries
// on remove.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
	Favorites []string  `json:"favorites"`
}

// HasFavorite reports whether the listing id is in the user's favorites.
func (u *User) HasFavorite(listingID string) bool {
	for _, id := range u.Favorites {
		if id == listingID {
			return true
		}
	}
	return false
}
