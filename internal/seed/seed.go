// Package seed populates an empty store with sample listings.
//
// On first run the home page would otherwise be blank. Seeding only happens
// when the listings collection is empty, so user-created data is never
// overwritten on restart.
package seed

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sakif/marketplace/internal/model"
	"github.com/sakif/marketplace/internal/repository"
)

// Listings writes the sample listings if the store holds none.
// Returns the number of listings seeded (0 when the store already has data).
func Listings(repo repository.ListingRepository, logger *slog.Logger) (int, error) {
	existing, err := repo.GetAll()
	if err != nil {
		return 0, fmt.Errorf("reading listings: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	samples := sampleListings()
	if err := repo.ReplaceAll(samples); err != nil {
		return 0, fmt.Errorf("writing seed listings: %w", err)
	}

	logger.Info("seeded sample listings", slog.Int("count", len(samples)))
	return len(samples), nil
}

// sampleListings returns the demo inventory. IDs are fixed strings so the
// seed is deterministic and detail-page URLs are stable across restarts.
func sampleListings() []model.Listing {
	now := time.Now()
	return []model.Listing{
		{
			ID:          "1",
			Title:       "2021 BMW 320i - Temiz Araç",
			Description: "Tek elden, hatasız, boyasız. Tüm bakımları yetkili serviste yapıldı.",
			Price:       1850000,
			Category:    "vehicles",
			Subcategory: "cars",
			Location:    "İstanbul, Kadıköy",
			Images:      []string{"/placeholder.svg"},
			UserID:      "seed",
			UserName:    "Ahmet Yılmaz",
			UserPhone:   "0532 111 22 33",
			CreatedAt:   now.Add(-2 * time.Hour),
			Views:       245,
			IsFeatured:  true,
			Vehicle: &model.VehicleDetails{
				VehicleType:  "car",
				Brand:        "bmw",
				Model:        "3 Serisi",
				Year:         "2021",
				EngineSize:   "2.0",
				EngineType:   "Benzin",
				Transmission: "Otomatik",
				Mileage:      45000,
				Color:        "Siyah",
			},
		},
		{
			ID:          "2",
			Title:       "Kadıköy'de Satılık 3+1 Daire",
			Description: "Metroya 5 dakika, güney cephe, ebeveyn banyolu, site içinde.",
			Price:       8500000,
			Category:    "real-estate",
			Subcategory: "for-sale",
			Location:    "İstanbul, Kadıköy",
			Images:      []string{"/placeholder.svg"},
			UserID:      "seed",
			UserName:    "Zeynep Demir",
			UserPhone:   "0533 222 33 44",
			CreatedAt:   now.Add(-6 * time.Hour),
			Views:       512,
			IsFeatured:  true,
			Property: &model.PropertyDetails{
				PropertyType: "apartment",
				City:         "istanbul",
				District:     "kadikoy",
				Neighborhood: "Moda",
				RoomCount:    "3+1",
				SquareMeters: 135,
				BuildingAge:  "6-10",
				Floor:        "4",
				HeatingType:  "Doğalgaz (Kombi)",
			},
		},
		{
			ID:          "3",
			Title:       "CS2 Karambit Fade - Factory New",
			Description: "Float 0.008, full fade. Takas düşünülmez, sadece satış.",
			Price:       28000,
			Category:    "gaming",
			Subcategory: "skins",
			Location:    "Ankara, Çankaya",
			Images:      []string{"/placeholder.svg"},
			UserID:      "seed",
			UserName:    "Mert Kaya",
			UserPhone:   "0535 333 44 55",
			CreatedAt:   now.Add(-12 * time.Hour),
			Views:       189,
			IsFeatured:  true,
			Gaming: &model.GamingDetails{
				Game:       "CS2",
				ItemType:   "skin",
				Rarity:     "legendary",
				Condition:  "Factory New",
				FloatValue: 0.008,
			},
		},
		{
			ID:          "4",
			Title:       "iPhone 15 Pro 256GB",
			Description: "Ekran ve kasa çiziksiz, batarya sağlığı %98.",
			Price:       62000,
			Category:    "electronics",
			Subcategory: "phones",
			Location:    "İzmir, Bornova",
			Images:      []string{"/placeholder.svg"},
			UserID:      "seed",
			UserName:    "Elif Şahin",
			UserPhone:   "0536 444 55 66",
			CreatedAt:   now.Add(-24 * time.Hour),
			Views:       97,
		},
		{
			ID:          "5",
			Title:       "Köşe Koltuk Takımı - Gri",
			Description: "2 yıllık, evcil hayvan yok, sigara içilmeyen evden.",
			Price:       15500,
			Category:    "home-living",
			Subcategory: "furniture",
			Location:    "Bursa, Nilüfer",
			Images:      []string{"/placeholder.svg"},
			UserID:      "seed",
			UserName:    "Canan Öztürk",
			UserPhone:   "0537 555 66 77",
			CreatedAt:   now.Add(-48 * time.Hour),
			Views:       41,
		},
		{
			ID:          "6",
			Title:       "Valorant Hesabı - Radiant, Full Skin",
			Description: "İlk mail, tüm bilgiler değişir. Fatura kesilir.",
			Price:       55000,
			Category:    "gaming",
			Subcategory: "accounts",
			Location:    "İstanbul, Beşiktaş",
			Images:      []string{"/placeholder.svg"},
			UserID:      "seed",
			UserName:    "Burak Aydın",
			UserPhone:   "0538 666 77 88",
			CreatedAt:   now.Add(-72 * time.Hour),
			Views:       73,
			Gaming: &model.GamingDetails{
				Game:     "Valorant",
				ItemType: "account",
				Rarity:   "mythic",
			},
		},
	}
}
