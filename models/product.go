package models

type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Price            float64  `json:"price"`
	OriginalPrice    float64  `json:"originalPrice,omitempty"`
	IsDiscounted     bool     `json:"isDiscounted,omitempty"`
	Category         string   `json:"category,omitempty"`
	SubCategory      string   `json:"subCategory,omitempty"`
	Brand            string   `json:"brand,omitempty"`
	Images           []string `json:"images,omitempty"`
	Features         []string `json:"features,omitempty"`
	Rating           float64  `json:"rating,omitempty"`
	ReviewsCount     int      `json:"reviewsCount,omitempty"`
	InStock          int      `json:"inStock"`
	SKU              string   `json:"sku,omitempty"`
	Shipping         string   `json:"shipping,omitempty"`
	WaitingPeriod    string   `json:"waitingPeriod,omitempty"`
	MinOrderQuantity int      `json:"minOrderQuantity,omitempty"`
	MaxOrderQuantity int      `json:"maxOrderQuantity,omitempty"`
	Colors           []string `json:"colors,omitempty"`
}

// Discount is the amount saved against the original price.
func (p Product) Discount() float64 {
	return p.OriginalPrice - p.Price
}

type Brand struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

type Category struct {
	Name          string   `json:"name"`
	SubCategories []string `json:"subCategories"`
}

// ProductQuery is a catalog listing request. Repeating brand selects any of
// several brands; nil bounds are unset.
type ProductQuery struct {
	Category    string   `form:"category"`
	SubCategory string   `form:"subCategory"`
	Brands      []string `form:"brand"`
	Search      string   `form:"search"`
	Section     string   `form:"section"`
	Sort        string   `form:"sort"`
	Page        int      `form:"page"`
	MinPrice    *float64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice    *float64 `form:"maxPrice" binding:"omitempty,gte=0"`
	MinRating   *float64 `form:"minRating" binding:"omitempty,gte=0,lte=5"`
}

// BrandFilter returns the selected brands, ignoring blanks and "all".
func (q ProductQuery) BrandFilter() []string {
	var brands []string
	for _, b := range q.Brands {
		if b != "" && b != "all" {
			brands = append(brands, b)
		}
	}
	return brands
}

type HomeSections struct {
	TopBrands        []Brand   `json:"topBrands"`
	HotPicks         []Product `json:"hotPicks"`
	FeaturedProducts []Product `json:"featuredProducts"`
}

type ProductPage struct {
	Products []Product `json:"products"`
	Title    string    `json:"title"`
	Meta     MetaData  `json:"meta"`
}
