package view

// ProductCard is the listing representation used on the home and catalog
// pages.
type ProductCard struct {
	ID       int
	Title    string
	Category string
	Price    string
	ImageURL string
}

type CategoryGroup struct {
	Name     string
	Products []ProductCard
}

type HomePage struct {
	Groups []CategoryGroup
}

type CatalogPage struct {
	Products    []ProductCard
	Categories  []string
	Query       string
	SelectedCat string
}

type ProductDetail struct {
	ID          int
	Title       string
	Category    string
	Description string
	Price       string
	ImageURL    string
	RatingRate  float64
	RatingCount int
}

type ProductDetailPage struct {
	Product ProductDetail
}
