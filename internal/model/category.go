package model

// Category is a static taxonomy node used for browsing and filtering.
// Count is display-only marketing copy — it is NOT derived from the live
// listing collection.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Icon          string        `json:"icon"` // emoji glyph shown on category cards
	Count         int           `json:"count"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

// Subcategory is a second-level taxonomy node under a Category.
type Subcategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
