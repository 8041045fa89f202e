package kv

import (
	"errors"
	"testing"
	"time"

	"github.com/sakif/marketplace/internal/apperror"
	"github.com/sakif/marketplace/internal/model"
	"github.com/sakif/marketplace/internal/store/sqlite"
)

func newTestKV(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestListings_EmptyStore(t *testing.T) {
	repo := NewListings(newTestKV(t))

	listings, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("GetAll() on empty store = %d listings, want 0", len(listings))
	}
}

// Round-trip: ReplaceAll then GetAll preserves order, field values, and the
// variant payloads.
func TestListings_RoundTrip(t *testing.T) {
	repo := NewListings(newTestKV(t))

	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	in := []model.Listing{
		{
			ID:          "a1",
			Title:       "2018 Golf",
			Description: "single owner",
			Price:       850000,
			Category:    "vehicles",
			Location:    "İstanbul",
			Images:      []string{"/img/golf-1.jpg", "/img/golf-2.jpg"},
			UserID:      "u1",
			UserName:    "Ayşe",
			UserPhone:   "0532 123 45 67",
			CreatedAt:   created,
			Views:       12,
			Vehicle: &model.VehicleDetails{
				Brand:        "volkswagen",
				Model:        "Golf",
				Year:         "2018",
				Transmission: "automatic",
				Mileage:      64000,
			},
		},
		{
			ID:         "a2",
			Title:      "3+1 in Kadıköy",
			Price:      4200000,
			Category:   "real-estate",
			Location:   "İstanbul, Kadıköy",
			Images:     []string{"/img/flat.jpg"},
			CreatedAt:  created.Add(time.Hour),
			IsFeatured: true,
			Property: &model.PropertyDetails{
				City:         "istanbul",
				District:     "kadikoy",
				Neighborhood: "Moda",
				RoomCount:    "3+1",
			},
		},
		{ID: "a3", Title: "desk lamp", Price: 250, Category: "home-living", CreatedAt: created},
	}

	if err := repo.ReplaceAll(in); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}

	out, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("GetAll() = %d listings, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i].ID != in[i].ID {
			t.Errorf("listing %d: ID = %q, want %q (order must be preserved)", i, out[i].ID, in[i].ID)
		}
	}
	if out[0].Vehicle == nil || out[0].Vehicle.Model != "Golf" {
		t.Errorf("vehicle payload lost in round-trip: %+v", out[0].Vehicle)
	}
	if out[1].Property == nil || out[1].Property.Neighborhood != "Moda" {
		t.Errorf("property payload lost in round-trip: %+v", out[1].Property)
	}
	if out[2].Vehicle != nil || out[2].Property != nil || out[2].Gaming != nil {
		t.Error("general-goods listing grew a variant payload in round-trip")
	}
	if !out[0].CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", out[0].CreatedAt, created)
	}
}

func TestListings_CorruptSnapshot(t *testing.T) {
	kv := newTestKV(t)
	if err := kv.Set("listings", `{"this is": "not an array`); err != nil {
		t.Fatal(err)
	}

	repo := NewListings(kv)
	_, err := repo.GetAll()
	if !errors.Is(err, apperror.ErrStorage) {
		t.Errorf("GetAll() on corrupt snapshot error = %v, want ErrStorage", err)
	}
}

func TestUsers_RoundTrip(t *testing.T) {
	repo := NewUsers(newTestKV(t))

	in := []model.User{
		{
			ID:        "u1",
			Name:      "Mehmet Yılmaz",
			Email:     "mehmet@example.com",
			Phone:     "0532 111 22 33",
			Password:  "hunter2!",
			CreatedAt: time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
			Favorites: []string{"a2", "a1"},
		},
	}

	if err := repo.ReplaceAll(in); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}
	out, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("GetAll() = %d users, want 1", len(out))
	}
	if out[0].Password != "hunter2!" {
		t.Errorf("Password = %q, want stored verbatim", out[0].Password)
	}
	if len(out[0].Favorites) != 2 || out[0].Favorites[0] != "a2" {
		t.Errorf("Favorites = %v, order must be preserved", out[0].Favorites)
	}
}

func TestSession_Lifecycle(t *testing.T) {
	repo := NewSession(newTestKV(t))

	// No session yet
	user, err := repo.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if user != nil {
		t.Fatalf("Get() = %+v, want nil before login", user)
	}

	// Set, then read back
	if err := repo.Set(&model.User{ID: "u1", Email: "a@b.c", Favorites: []string{}}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	user, err = repo.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if user == nil || user.ID != "u1" {
		t.Fatalf("Get() = %+v, want the stored user", user)
	}

	// Clear, then absent again
	if err := repo.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	user, err = repo.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if user != nil {
		t.Errorf("Get() = %+v after Clear, want nil", user)
	}
}
