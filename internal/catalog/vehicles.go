package catalog

import "strconv"

// Brand pairs a vehicle brand with the models offered for it. Selecting a
// brand in the listing form narrows the model options to this list.
type Brand struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Models []string `json:"models"`
}

// Brands is the static brand → models reference table, in display order.
var Brands = []Brand{
	{ID: "volkswagen", Name: "Volkswagen", Models: []string{"Golf", "Passat", "Polo", "Tiguan", "T-Roc", "Caddy"}},
	{ID: "renault", Name: "Renault", Models: []string{"Clio", "Megane", "Symbol", "Captur", "Kadjar", "Talisman"}},
	{ID: "fiat", Name: "Fiat", Models: []string{"Egea", "Panda", "500", "Doblo", "Fiorino"}},
	{ID: "toyota", Name: "Toyota", Models: []string{"Corolla", "Yaris", "C-HR", "RAV4", "Hilux"}},
	{ID: "ford", Name: "Ford", Models: []string{"Focus", "Fiesta", "Kuga", "Puma", "Ranger", "Transit"}},
	{ID: "bmw", Name: "BMW", Models: []string{"1 Serisi", "2 Serisi", "3 Serisi", "5 Serisi", "X1", "X3", "X5"}},
	{ID: "mercedes", Name: "Mercedes-Benz", Models: []string{"A Serisi", "C Serisi", "E Serisi", "CLA", "GLA", "GLC"}},
	{ID: "audi", Name: "Audi", Models: []string{"A3", "A4", "A6", "Q2", "Q3", "Q5"}},
	{ID: "hyundai", Name: "Hyundai", Models: []string{"i10", "i20", "i30", "Tucson", "Kona", "Bayon"}},
	{ID: "honda", Name: "Honda", Models: []string{"Civic", "Jazz", "CR-V", "HR-V", "City"}},
	{ID: "peugeot", Name: "Peugeot", Models: []string{"208", "301", "308", "2008", "3008", "5008"}},
	{ID: "opel", Name: "Opel", Models: []string{"Corsa", "Astra", "Insignia", "Mokka", "Crossland"}},
}

type VehicleType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var VehicleTypes = []VehicleType{
	{ID: "car", Name: "Otomobil"},
	{ID: "suv", Name: "SUV / Arazi"},
	{ID: "motorcycle", Name: "Motosiklet"},
	{ID: "van", Name: "Minivan / Panelvan"},
	{ID: "truck", Name: "Kamyon / Kamyonet"},
	{ID: "bus", Name: "Otobüs / Midibüs"},
}

var EngineSizes = []string{
	"1.0", "1.2", "1.3", "1.4", "1.5", "1.6", "1.8", "2.0", "2.5", "3.0", "3.0+",
}

var EngineTypes = []string{"Benzin", "Dizel", "Hibrit", "Elektrik", "LPG"}

var TransmissionTypes = []string{"Manuel", "Otomatik", "Yarı Otomatik"}

var Colors = []string{
	"Beyaz", "Siyah", "Gri", "Gümüş", "Kırmızı", "Mavi", "Lacivert",
	"Yeşil", "Kahverengi", "Bej", "Turuncu", "Sarı",
}

// Years lists model years newest-first, 1990 through the current catalog year.
var Years = buildYears(2025, 1990)

func buildYears(newest, oldest int) []string {
	years := make([]string, 0, newest-oldest+1)
	for y := newest; y >= oldest; y-- {
		years = append(years, strconv.Itoa(y))
	}
	return years
}
