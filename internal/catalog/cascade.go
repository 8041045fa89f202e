package catalog

// Cascading selection: a parent choice determines the valid child option set,
// and changing the parent invalidates every downstream choice. Two chains
// exist — brand → model (two levels) and city → district → neighborhood
// (three levels). The resolvers below return the child options for a parent;
// the Selection types carry form state and enforce the resets.

// ModelsForBrand returns the model options for a brand id, or an empty slice
// when the brand is unset or unknown.
func ModelsForBrand(brandID string) []string {
	for _, b := range Brands {
		if b.ID == brandID {
			return b.Models
		}
	}
	return []string{}
}

// DistrictsForCity returns the district options for a city id, or an empty
// slice when the city is unset or unknown.
func DistrictsForCity(cityID string) []District {
	for _, c := range Cities {
		if c.ID == cityID {
			return c.Districts
		}
	}
	return []District{}
}

// NeighborhoodsForDistrict returns the neighborhood options for a district
// within a city. Both levels must resolve; otherwise the result is empty.
func NeighborhoodsForDistrict(cityID, districtID string) []string {
	for _, d := range DistrictsForCity(cityID) {
		if d.ID == districtID {
			return d.Neighborhoods
		}
	}
	return []string{}
}

// VehicleSelection is the two-level brand → model form state.
type VehicleSelection struct {
	Brand string
	Model string
}

// SetBrand selects a brand. If the brand actually changed, the dependent
// model selection is cleared.
func (s *VehicleSelection) SetBrand(brandID string) {
	if s.Brand == brandID {
		return
	}
	s.Brand = brandID
	s.Model = ""
}

// ModelOptions returns the valid models for the current brand.
func (s *VehicleSelection) ModelOptions() []string {
	return ModelsForBrand(s.Brand)
}

// LocationSelection is the three-level city → district → neighborhood form
// state. Changing the city clears BOTH descendants; changing the district
// clears only the neighborhood.
type LocationSelection struct {
	City         string
	District     string
	Neighborhood string
}

func (s *LocationSelection) SetCity(cityID string) {
	if s.City == cityID {
		return
	}
	s.City = cityID
	s.District = ""
	s.Neighborhood = ""
}

func (s *LocationSelection) SetDistrict(districtID string) {
	if s.District == districtID {
		return
	}
	s.District = districtID
	s.Neighborhood = ""
}

// SetNeighborhood selects the leaf level; nothing depends on it.
func (s *LocationSelection) SetNeighborhood(name string) {
	s.Neighborhood = name
}

// DistrictOptions returns the valid districts for the current city.
func (s *LocationSelection) DistrictOptions() []District {
	return DistrictsForCity(s.City)
}

// NeighborhoodOptions returns the valid neighborhoods for the current
// city + district pair.
func (s *LocationSelection) NeighborhoodOptions() []string {
	return NeighborhoodsForDistrict(s.City, s.District)
}
