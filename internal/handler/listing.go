package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/marketplace/internal/auth"
	"github.com/sakif/marketplace/internal/filter"
	"github.com/sakif/marketplace/internal/model"
	"github.com/sakif/marketplace/internal/service"
)

// ListingHandler serves the listing pages' API: browse with filters, detail
// views, posting, favorites, and the profile's own-listings/favorites tabs.
type ListingHandler struct {
	listings *service.ListingService
	auth     *service.AuthService
	logger   *slog.Logger
}

// NewListingHandler creates a ListingHandler.
func NewListingHandler(listings *service.ListingService, authSvc *service.AuthService, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		listings: listings,
		auth:     authSvc,
		logger:   logger,
	}
}

// HandleList returns listings matching the query parameters.
//
// HTTP: GET /api/listings?category=&minPrice=&maxPrice=&location=&search=&sort=
//
// All parameters are optional; an empty query returns the whole collection in
// stored order. An empty result is 200 with [], never an error.
func (h *ListingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := filter.Criteria{
		Category: q.Get("category"),
		MinPrice: q.Get("minPrice"),
		MaxPrice: q.Get("maxPrice"),
		Location: q.Get("location"),
		Search:   q.Get("search"),
	}

	result, err := h.listings.List(criteria, filter.SortKey(q.Get("sort")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleHome returns the featured/recent/gaming rails for the home page.
//
// HTTP: GET /api/home
func (h *ListingHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	home, err := h.listings.Home()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, home)
}

// HandleGet returns one listing by id, counting the detail view.
//
// HTTP: GET /api/listings/{id}
func (h *ListingHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	listing, err := h.listings.View(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

type createListingRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        string   `json:"price"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory"`
	Location     string   `json:"location"`
	Images       []string `json:"images"`
	IsFeatured   bool     `json:"isFeatured"`
	ContactName  string   `json:"contactName"`
	ContactPhone string   `json:"contactPhone"`

	Vehicle  *model.VehicleDetails  `json:"vehicle"`
	Property *model.PropertyDetails `json:"property"`
	Gaming   *model.GamingDetails   `json:"gaming"`
}

// HandleCreate posts a new listing owned by the session user.
//
// HTTP: POST /api/listings  (requires auth)
func (h *ListingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.sessionUser(w, r)
	if !ok {
		return
	}

	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: "invalid JSON body"})
		return
	}

	listing, err := h.listings.Create(owner, service.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Subcategory:  req.Subcategory,
		Location:     req.Location,
		Images:       req.Images,
		IsFeatured:   req.IsFeatured,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		Vehicle:      req.Vehicle,
		Property:     req.Property,
		Gaming:       req.Gaming,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, listing)
}

// HandleToggleFavorite flips the listing in the session user's favorites.
//
// HTTP: POST /api/listings/{id}/favorite  (requires auth)
//
// Responds with the updated favorites so the client can re-render without a
// second round trip.
func (h *ListingHandler) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "auth_error", Message: "not logged in"})
		return
	}

	user, err := h.auth.ToggleFavorite(userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"favorites": user.Favorites})
}

// HandleMyListings returns the session user's own listings.
//
// HTTP: GET /api/me/listings  (requires auth)
func (h *ListingHandler) HandleMyListings(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionUser(w, r)
	if !ok {
		return
	}

	mine, err := h.listings.ListingsOf(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mine)
}

// HandleMyFavorites resolves the session user's favorites to full listings.
//
// HTTP: GET /api/me/favorites  (requires auth)
func (h *ListingHandler) HandleMyFavorites(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionUser(w, r)
	if !ok {
		return
	}

	favorites, err := h.listings.FavoritesOf(user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

// sessionUser loads the current session record and checks it belongs to the
// request's authenticated identity. Responds 401 and reports false when the
// session is missing or stale.
func (h *ListingHandler) sessionUser(w http.ResponseWriter, r *http.Request) (*model.User, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "auth_error", Message: "not logged in"})
		return nil, false
	}

	user, err := h.auth.CurrentUser()
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	if user == nil || user.ID != userID {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "auth_error", Message: "session expired"})
		return nil, false
	}
	return user, true
}
