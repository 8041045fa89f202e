package service

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/marketplace/internal/apperror"
	"github.com/sakif/marketplace/internal/filter"
	"github.com/sakif/marketplace/internal/model"
	"github.com/sakif/marketplace/internal/repository"
)

// Home page rail sizes.
const (
	FeaturedLimit = 3
	RecentLimit   = 6
	GamingLimit   = 3
)

// placeholderImage is substituted when a listing is posted without images.
const placeholderImage = "/placeholder.svg"

// ListingService handles listing creation, detail views, and the filtered /
// derived collection views.
type ListingService struct {
	listings repository.ListingRepository
	logger   *slog.Logger
}

// NewListingService creates a ListingService.
func NewListingService(listings repository.ListingRepository, logger *slog.Logger) *ListingService {
	return &ListingService{
		listings: listings,
		logger:   logger,
	}
}

// CreateInput carries the new-listing form fields. Price arrives as the raw
// form string and is parsed here. At most one variant payload is honored —
// the one matching the chosen category.
type CreateInput struct {
	Title       string
	Description string
	Price       string
	Category    string
	Subcategory string
	Location    string
	Images      []string
	IsFeatured  bool

	// Optional contact overrides; the owner's profile values are the default.
	ContactName  string
	ContactPhone string

	Vehicle  *model.VehicleDetails
	Property *model.PropertyDetails
	Gaming   *model.GamingDetails
}

// Create validates the input and prepends the new listing to the collection
// (the listings snapshot is kept newest-first).
//
// The owner must be the session user — there is no anonymous posting. The
// listing id comes from xid, which embeds the creation timestamp in its
// leading bytes, and the view counter starts at zero.
func (s *ListingService) Create(owner *model.User, in CreateInput) (*model.Listing, error) {
	if owner == nil {
		return nil, apperror.ValidationFailed("owner", "a logged-in user is required to post a listing")
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)

	if in.Title == "" {
		return nil, apperror.ValidationFailed("title", "title is required")
	}
	if in.Description == "" {
		return nil, apperror.ValidationFailed("description", "description is required")
	}
	if in.Category == "" {
		return nil, apperror.ValidationFailed("category", "category is required")
	}
	if in.Location == "" {
		return nil, apperror.ValidationFailed("location", "location is required")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
	if err != nil {
		return nil, apperror.ValidationFailed("price", "price must be a number")
	}
	if price < 0 {
		return nil, apperror.ValidationFailed("price", "price must not be negative")
	}

	if len(in.Images) > model.MaxListingImages {
		return nil, apperror.ValidationFailed("images",
			fmt.Sprintf("a listing can have at most %d images", model.MaxListingImages))
	}
	images := in.Images
	if len(images) == 0 {
		images = []string{placeholderImage}
	}

	contactName := strings.TrimSpace(in.ContactName)
	if contactName == "" {
		contactName = owner.Name
	}
	contactPhone := strings.TrimSpace(in.ContactPhone)
	if contactPhone == "" {
		contactPhone = owner.Phone
	}

	listing := model.Listing{
		ID:          xid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Price:       price,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Location:    in.Location,
		Images:      images,
		UserID:      owner.ID,
		UserName:    contactName,
		UserPhone:   contactPhone,
		CreatedAt:   time.Now(),
		Views:       0,
		IsFeatured:  in.IsFeatured,
	}

	// The variant payload rides along only when it matches the category;
	// a vehicle payload on a furniture listing is silently dropped.
	switch in.Category {
	case "vehicles":
		listing.Vehicle = in.Vehicle
	case "real-estate":
		listing.Property = in.Property
	case "gaming":
		listing.Gaming = in.Gaming
	}

	all, err := s.listings.GetAll()
	if err != nil {
		return nil, fmt.Errorf("creating listing: %w", err)
	}
	if err := s.listings.ReplaceAll(append([]model.Listing{listing}, all...)); err != nil {
		return nil, fmt.Errorf("creating listing: %w", err)
	}

	s.logger.Info("listing created",
		slog.String("listingID", listing.ID),
		slog.String("category", listing.Category),
		slog.String("userID", owner.ID),
	)

	return &listing, nil
}

// View loads a listing for its detail page, incrementing the view counter and
// persisting the bump. The counter only ever goes up.
//
// Returns apperror.ErrNotFound when the id is unknown — the caller renders an
// empty/placeholder view, not a hard failure.
func (s *ListingService) View(id string) (*model.Listing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "listing id is required")
	}

	all, err := s.listings.GetAll()
	if err != nil {
		return nil, fmt.Errorf("loading listing %s: %w", id, err)
	}

	for i := range all {
		if all[i].ID == id {
			all[i].Views++
			if err := s.listings.ReplaceAll(all); err != nil {
				return nil, fmt.Errorf("recording view for %s: %w", id, err)
			}
			listing := all[i]
			return &listing, nil
		}
	}

	return nil, apperror.NotFound("listing", id)
}

// List runs the full collection through the filter/sort pipeline.
func (s *ListingService) List(c filter.Criteria, key filter.SortKey) ([]model.Listing, error) {
	all, err := s.listings.GetAll()
	if err != nil {
		return nil, fmt.Errorf("listing listings: %w", err)
	}
	return filter.Apply(all, c, key), nil
}

// HomeView bundles the derived rails the home page renders.
type HomeView struct {
	Featured []model.Listing `json:"featured"`
	Recent   []model.Listing `json:"recent"`
	Gaming   []model.Listing `json:"gaming"`
}

// Home derives the featured/recent/gaming rails from the full collection.
func (s *ListingService) Home() (*HomeView, error) {
	all, err := s.listings.GetAll()
	if err != nil {
		return nil, fmt.Errorf("loading home view: %w", err)
	}
	return &HomeView{
		Featured: filter.Featured(all, FeaturedLimit),
		Recent:   filter.Recent(all, RecentLimit),
		Gaming:   filter.ByCategory(all, "gaming", GamingLimit),
	}, nil
}

// ListingsOf returns the listings owned by the given user, in collection
// order. Ownership is an identifier lookup resolved at read time.
func (s *ListingService) ListingsOf(userID string) ([]model.Listing, error) {
	all, err := s.listings.GetAll()
	if err != nil {
		return nil, fmt.Errorf("loading listings of %s: %w", userID, err)
	}

	mine := []model.Listing{}
	for _, l := range all {
		if l.UserID == userID {
			mine = append(mine, l)
		}
	}
	return mine, nil
}

// FavoritesOf resolves the user's favorite ids against the live collection.
// Favorites pointing at ids that no longer resolve are skipped, not errors.
func (s *ListingService) FavoritesOf(user *model.User) ([]model.Listing, error) {
	all, err := s.listings.GetAll()
	if err != nil {
		return nil, fmt.Errorf("loading favorites: %w", err)
	}

	favorites := []model.Listing{}
	for _, l := range all {
		if user.HasFavorite(l.ID) {
			favorites = append(favorites, l)
		}
	}
	return favorites, nil
}
