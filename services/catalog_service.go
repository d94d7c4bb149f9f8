package services

import (
	"context"
	"math/rand/v2"
	"slices"
	"sort"
	"strings"

	"lafamilia/models"
	"lafamilia/repositories"
	"lafamilia/utils"
)

const (
	ProductsPerPage     = 12
	productsPerSection  = 8
	brandsPerHomepage   = 6
	suggestionLimit     = 5
	defaultMaxLineQty   = 10
	placeholderBrandURL = "https://placehold.co/80x80/CCCCCC/FFFFFF?text=Brand"
)

type CatalogService struct {
	content *repositories.ContentStore
}

func NewCatalogService(content *repositories.ContentStore) *CatalogService {
	return &CatalogService{content: content}
}

func catalogTitle(q models.ProductQuery) string {
	switch {
	case q.Search != "":
		return `Search Results for "` + q.Search + `"`
	case q.Section == "deals":
		return "Today's Deals"
	case q.Section == "new-arrivals":
		return "New Arrivals"
	case q.Section == "brands":
		return "All Brands"
	case q.Category != "" && q.Category != "all":
		return q.Category
	case len(q.BrandFilter()) == 1:
		return q.BrandFilter()[0]
	}
	return "All Products"
}

// FilterProducts applies a listing query to products without paging.
// Only in-stock products are returned.
func FilterProducts(products []models.Product, q models.ProductQuery) []models.Product {
	filtered := append([]models.Product(nil), products...)

	switch q.Section {
	case "deals":
		kept := filtered[:0]
		for _, p := range filtered {
			if p.IsDiscounted && p.InStock > 0 {
				kept = append(kept, p)
			}
		}
		filtered = kept
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Discount() > filtered[j].Discount() })
	case "new-arrivals":
		sort.SliceStable(filtered, func(i, j int) bool { return utils.CompareNames(filtered[i].ID, filtered[j].ID) > 0 })
	}

	kept := make([]models.Product, 0, len(filtered))
	term := strings.ToLower(q.Search)
	brands := q.BrandFilter()
	for _, p := range filtered {
		if p.InStock <= 0 {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		if q.MinRating != nil && p.Rating < *q.MinRating {
			continue
		}
		if term != "" {
			if !utils.ContainsFold(term, p.Name, p.Description, p.Brand, p.Category, p.SubCategory) {
				continue
			}
		} else {
			if q.Category != "" && q.Category != "all" && p.Category != q.Category {
				continue
			}
			if q.SubCategory != "" && q.SubCategory != "all" && p.SubCategory != q.SubCategory {
				continue
			}
			if len(brands) > 0 && !slices.Contains(brands, p.Brand) {
				continue
			}
		}
		kept = append(kept, p)
	}

	switch q.Sort {
	case "price-asc":
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].Price < kept[j].Price })
	case "price-desc":
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].Price > kept[j].Price })
	case "name-asc":
		sort.SliceStable(kept, func(i, j int) bool { return utils.CompareNames(kept[i].Name, kept[j].Name) < 0 })
	case "name-desc":
		sort.SliceStable(kept, func(i, j int) bool { return utils.CompareNames(kept[i].Name, kept[j].Name) > 0 })
	case "rating-desc":
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].Rating > kept[j].Rating })
	}
	return kept
}

func (s *CatalogService) List(ctx context.Context, q models.ProductQuery) (*models.ProductPage, error) {
	products, err := s.content.Products(ctx)
	if err != nil {
		return nil, err
	}
	filtered := FilterProducts(products, q)

	page := q.Page
	if page < 1 {
		page = 1
	}
	total := len(filtered)
	totalPages := (total + ProductsPerPage - 1) / ProductsPerPage

	start := (page - 1) * ProductsPerPage
	if start > total {
		start = total
	}
	end := start + ProductsPerPage
	if end > total {
		end = total
	}

	return &models.ProductPage{
		Products: filtered[start:end],
		Title:    catalogTitle(q),
		Meta: models.MetaData{
			Page:       page,
			Limit:      ProductsPerPage,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *CatalogService) Product(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.content.Products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, models.NewNotFoundError("product", id)
}

// Suggestions returns up to five products for a search box query of more
// than two characters.
func (s *CatalogService) Suggestions(ctx context.Context, query string) ([]models.Product, error) {
	term := strings.ToLower(strings.TrimSpace(query))
	if len(term) <= 2 {
		return []models.Product{}, nil
	}
	products, err := s.content.Products(ctx)
	if err != nil {
		return nil, err
	}
	matches := []models.Product{}
	for _, p := range products {
		if utils.ContainsFold(term, p.Name, p.Description, p.Brand, p.Category) {
			matches = append(matches, p)
			if len(matches) == suggestionLimit {
				break
			}
		}
	}
	return matches, nil
}

// BuildBrands derives one brand per distinct product brand, sorted by name.
func BuildBrands(products []models.Product) []models.Brand {
	seen := map[string]bool{}
	brands := []models.Brand{}
	for _, p := range products {
		if p.Brand == "" || seen[p.Brand] {
			continue
		}
		seen[p.Brand] = true
		logo := placeholderBrandURL
		if len(p.Images) > 0 {
			logo = p.Images[0]
		}
		brands = append(brands, models.Brand{
			ID:          "brd-" + utils.Slug(p.Brand),
			Name:        p.Brand,
			Logo:        logo,
			Description: "Products from " + p.Brand,
		})
	}
	sort.SliceStable(brands, func(i, j int) bool { return utils.CompareNames(brands[i].Name, brands[j].Name) < 0 })
	return brands
}

func (s *CatalogService) Brands(ctx context.Context) ([]models.Brand, error) {
	products, err := s.content.Products(ctx)
	if err != nil {
		return nil, err
	}
	return BuildBrands(products), nil
}

// Categories lists categories in first-seen order with their sorted
// sub-categories.
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	products, err := s.content.Products(ctx)
	if err != nil {
		return nil, err
	}

	index := map[string]int{}
	subs := map[string]map[string]bool{}
	categories := []models.Category{}
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := index[p.Category]; !ok {
			index[p.Category] = len(categories)
			categories = append(categories, models.Category{Name: p.Category, SubCategories: []string{}})
			subs[p.Category] = map[string]bool{}
		}
		if p.SubCategory != "" && !subs[p.Category][p.SubCategory] {
			subs[p.Category][p.SubCategory] = true
			c := &categories[index[p.Category]]
			c.SubCategories = append(c.SubCategories, p.SubCategory)
		}
	}
	for i := range categories {
		sort.Strings(categories[i].SubCategories)
	}
	return categories, nil
}

// Home builds the storefront sections: top brands, hot picks (rated 4+ and
// most reviewed) and featured deals. Featured falls back to the newest
// in-stock products when nothing is discounted.
func (s *CatalogService) Home(ctx context.Context) (*models.HomeSections, error) {
	products, err := s.content.Products(ctx)
	if err != nil {
		return nil, err
	}

	brands := BuildBrands(products)
	if len(brands) > brandsPerHomepage {
		brands = brands[:brandsPerHomepage]
	}

	hot := []models.Product{}
	featured := []models.Product{}
	inStock := []models.Product{}
	for _, p := range products {
		if p.InStock <= 0 {
			continue
		}
		inStock = append(inStock, p)
		if p.Rating >= 4.0 {
			hot = append(hot, p)
		}
		if p.IsDiscounted {
			featured = append(featured, p)
		}
	}
	sort.SliceStable(hot, func(i, j int) bool { return hot[i].ReviewsCount > hot[j].ReviewsCount })

	if len(featured) > 0 {
		rand.Shuffle(len(featured), func(i, j int) { featured[i], featured[j] = featured[j], featured[i] })
	} else {
		featured = inStock
		sort.SliceStable(featured, func(i, j int) bool { return utils.CompareNames(featured[i].ID, featured[j].ID) > 0 })
	}

	return &models.HomeSections{
		TopBrands:        brands,
		HotPicks:         firstN(hot, productsPerSection),
		FeaturedProducts: firstN(featured, productsPerSection),
	}, nil
}

func firstN(products []models.Product, n int) []models.Product {
	if len(products) > n {
		return products[:n]
	}
	return products
}

// LineTotal prices quantity units of a product after clamping the quantity
// to the product's order limits (max defaults to 10 on the detail page).
func LineTotal(product models.Product, quantity int) (int, float64) {
	minQty := product.MinOrderQuantity
	if minQty <= 0 {
		minQty = 1
	}
	maxQty := product.MaxOrderQuantity
	if maxQty <= 0 {
		maxQty = defaultMaxLineQty
	}
	if quantity < minQty {
		quantity = minQty
	}
	if quantity > maxQty {
		quantity = maxQty
	}
	return quantity, product.Price * float64(quantity)
}
