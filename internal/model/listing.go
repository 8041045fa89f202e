// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// MaxListingImages is the upper bound on image references per listing.
const MaxListingImages = 6

// Listing represents a single marketplace post.
//
// The base fields apply to every listing regardless of category. Category-specific
// details live in the variant payload pointers below (Vehicle, Property, Gaming) —
// at most one of them is non-nil, keyed by Category. Modelling the variants as
// typed payloads (rather than merging arbitrary extra fields onto the record)
// means each category's optional fields are statically known, and a listing
// round-trips through JSON without losing or inventing fields.
//
// WHY POINTERS WITH omitempty?
// A nil payload serializes to nothing at all, so a general-goods listing stored
// as JSON carries only the base fields — same shape the filter pipeline and the
// persisted snapshots expect. A non-nil pointer marshals as a nested object.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Location    string    `json:"location"`
	Images      []string  `json:"images"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`  // denormalized owner display name
	UserPhone   string    `json:"userPhone"` // denormalized owner phone
	CreatedAt   time.Time `json:"createdAt"`
	Views       int       `json:"views"` // never decreases
	IsFeatured  bool      `json:"isFeatured"`

	Vehicle  *VehicleDetails  `json:"vehicle,omitempty"`
	Property *PropertyDetails `json:"property,omitempty"`
	Gaming   *GamingDetails   `json:"gaming,omitempty"`
}

// VehicleDetails is the variant payload for listings in the "vehicles" category.
// All fields are optional form selections; Year is a string because the form
// offers it as a picked option, not a parsed number.
type VehicleDetails struct {
	VehicleType  string `json:"vehicleType,omitempty"`
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"model,omitempty"`
	Year         string `json:"year,omitempty"`
	EngineSize   string `json:"engineSize,omitempty"`
	EngineType   string `json:"engineType,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	FuelType     string `json:"fuelType,omitempty"`
	Mileage      int    `json:"mileage,omitempty"`
	Color        string `json:"color,omitempty"`
}

// PropertyDetails is the variant payload for the "real-estate" category.
// City/District/Neighborhood hold catalog identifiers resolved through the
// cascading location tables, not free text.
type PropertyDetails struct {
	PropertyType string `json:"propertyType,omitempty"`
	City         string `json:"city,omitempty"`
	District     string `json:"district,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	RoomCount    string `json:"roomCount,omitempty"`
	SquareMeters int    `json:"squareMeters,omitempty"`
	BuildingAge  string `json:"buildingAge,omitempty"`
	Floor        string `json:"floor,omitempty"`
	HeatingType  string `json:"heatingType,omitempty"`
}

// GamingDetails is the variant payload for the "gaming" category.
type GamingDetails struct {
	Game       string  `json:"game,omitempty"`
	ItemType   string  `json:"itemType,omitempty"` // skin, weapon, character, currency, account, other
	Rarity     string  `json:"rarity,omitempty"`   // common through mythic
	Condition  string  `json:"condition,omitempty"`
	FloatValue float64 `json:"floatValue,omitempty"`
	TradeLink  string  `json:"tradeLink,omitempty"`
	SteamID    string  `json:"steamId,omitempty"`
}
