package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/marketplace/internal/catalog"
)

// CatalogHandler serves the static reference data behind the posting form's
// cascading selects and the category navigation. Every endpoint is a plain
// read of in-memory tables; unknown parents return an empty list with 200,
// matching the resolver contract.
type CatalogHandler struct{}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// HandleCategories returns all categories with their subcategories.
//
// HTTP: GET /api/categories
func (h *CatalogHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Categories)
}

// HandleBrands returns all vehicle brands.
//
// HTTP: GET /api/catalog/brands
func (h *CatalogHandler) HandleBrands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Brands)
}

// HandleBrandModels returns the models of one brand.
//
// HTTP: GET /api/catalog/brands/{brand}/models
func (h *CatalogHandler) HandleBrandModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.ModelsForBrand(chi.URLParam(r, "brand")))
}

// HandleCities returns all cities.
//
// HTTP: GET /api/catalog/cities
func (h *CatalogHandler) HandleCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Cities)
}

// HandleCityDistricts returns the districts of one city.
//
// HTTP: GET /api/catalog/cities/{city}/districts
func (h *CatalogHandler) HandleCityDistricts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.DistrictsForCity(chi.URLParam(r, "city")))
}

// HandleDistrictNeighborhoods returns the neighborhoods of one district.
//
// HTTP: GET /api/catalog/cities/{city}/districts/{district}/neighborhoods
func (h *CatalogHandler) HandleDistrictNeighborhoods(w http.ResponseWriter, r *http.Request) {
	neighborhoods := catalog.NeighborhoodsForDistrict(
		chi.URLParam(r, "city"),
		chi.URLParam(r, "district"),
	)
	writeJSON(w, http.StatusOK, neighborhoods)
}

// HandleVehicleOptions returns the flat option lists of the vehicle form.
//
// HTTP: GET /api/catalog/vehicle-options
func (h *CatalogHandler) HandleVehicleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"types":         catalog.VehicleTypes,
		"years":         catalog.Years,
		"engineSizes":   catalog.EngineSizes,
		"engineTypes":   catalog.EngineTypes,
		"transmissions": catalog.TransmissionTypes,
		"colors":        catalog.Colors,
	})
}

// HandlePropertyOptions returns the flat option lists of the property form.
//
// HTTP: GET /api/catalog/property-options
func (h *CatalogHandler) HandlePropertyOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"types":        catalog.PropertyTypes,
		"roomCounts":   catalog.RoomCounts,
		"buildingAges": catalog.BuildingAges,
		"heatingTypes": catalog.HeatingTypes,
	})
}
