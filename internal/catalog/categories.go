// Package catalog holds the static reference data the marketplace browses and
// posts against: the category taxonomy, the vehicle brand → model table, and
// the Turkish city → district → neighborhood table, plus the cascading
// selection resolvers over them.
//
// Everything here is ordered slice data, not maps — lookups scan in display
// order so resolver output never depends on map iteration order.
package catalog

import "github.com/sakif/marketplace/internal/model"

// Categories is the browsing taxonomy. Counts are display copy for the
// category cards, not live aggregates.
var Categories = []model.Category{
	{
		ID: "vehicles", Name: "Vasıta", Icon: "🚗", Count: 12450,
		Subcategories: []model.Subcategory{
			{ID: "cars", Name: "Otomobil", Count: 8200},
			{ID: "motorcycles", Name: "Motosiklet", Count: 1850},
			{ID: "commercial", Name: "Ticari Araçlar", Count: 1400},
			{ID: "parts", Name: "Yedek Parça", Count: 1000},
		},
	},
	{
		ID: "real-estate", Name: "Emlak", Icon: "🏠", Count: 9320,
		Subcategories: []model.Subcategory{
			{ID: "for-sale", Name: "Satılık", Count: 5100},
			{ID: "for-rent", Name: "Kiralık", Count: 3400},
			{ID: "land", Name: "Arsa", Count: 820},
		},
	},
	{
		ID: "gaming", Name: "Gaming", Icon: "🎮", Count: 6780,
		Subcategories: []model.Subcategory{
			{ID: "skins", Name: "Skinler", Count: 3200},
			{ID: "accounts", Name: "Hesaplar", Count: 2100},
			{ID: "currency", Name: "Oyun Parası", Count: 1480},
		},
	},
	{
		ID: "electronics", Name: "Elektronik", Icon: "📱", Count: 15200,
		Subcategories: []model.Subcategory{
			{ID: "phones", Name: "Telefon", Count: 6800},
			{ID: "computers", Name: "Bilgisayar", Count: 5200},
			{ID: "tv-audio", Name: "TV & Ses", Count: 3200},
		},
	},
	{
		ID: "home-living", Name: "Ev & Yaşam", Icon: "🛋️", Count: 8640,
		Subcategories: []model.Subcategory{
			{ID: "furniture", Name: "Mobilya", Count: 4100},
			{ID: "appliances", Name: "Beyaz Eşya", Count: 2700},
			{ID: "garden", Name: "Bahçe", Count: 1840},
		},
	},
}

// CategoryByID returns the category with the given id, or nil if unknown.
func CategoryByID(id string) *model.Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}
