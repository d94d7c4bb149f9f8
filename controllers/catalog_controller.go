package controllers

import (
	"strconv"

	"lafamilia/models"
	"lafamilia/services"
	"lafamilia/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// @Summary List iMall products
// @Description Filter, search, sort and page the product catalog. Only in-stock products are returned.
// @Tags Catalog
// @Produce json
// @Param category query string false "Category, all for every category"
// @Param subCategory query string false "Sub-category"
// @Param brand query []string false "Brands, repeat for several" collectionFormat(multi)
// @Param minPrice query number false "Lowest price"
// @Param maxPrice query number false "Highest price"
// @Param minRating query number false "Lowest rating"
// @Param search query string false "Search term"
// @Param section query string false "deals, new-arrivals or brands"
// @Param sort query string false "price-asc, price-desc, name-asc, name-desc, rating-desc"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.PaginationResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *CatalogController) ListProducts(c *gin.Context) {
	var q models.ProductQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	page, err := ctrl.catalog.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": page.Title,
		"data":    page.Products,
		"meta":    page.Meta,
	})
}

// @Summary Get product detail
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *CatalogController) GetProduct(c *gin.Context) {
	product, err := ctrl.catalog.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// @Summary Product line total
// @Description Price for a quantity of the product, clamped to its order limits
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Param quantity query int false "Quantity" default(1)
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/total [get]
func (ctrl *CatalogController) LineTotal(c *gin.Context) {
	product, err := ctrl.catalog.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	qty, _ := strconv.Atoi(c.DefaultQuery("quantity", "1"))
	qty, total := services.LineTotal(*product, qty)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Line total calculated",
		"data": gin.H{
			"quantity":   qty,
			"total":      total,
			"totalLabel": utils.FormatPrice(total),
		},
	})
}

// @Summary Search suggestions
// @Tags Catalog
// @Produce json
// @Param q query string true "Search term, more than two characters"
// @Success 200 {object} models.Response
// @Router /products/suggestions [get]
func (ctrl *CatalogController) Suggestions(c *gin.Context) {
	products, err := ctrl.catalog.Suggestions(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Suggestions retrieved", "data": products})
}

// @Summary List brands
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /brands [get]
func (ctrl *CatalogController) ListBrands(c *gin.Context) {
	brands, err := ctrl.catalog.Brands(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Brands retrieved", "data": brands})
}

// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CatalogController) ListCategories(c *gin.Context) {
	categories, err := ctrl.catalog.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// @Summary iMall home sections
// @Description Top brands, hot picks and featured products
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /home [get]
func (ctrl *CatalogController) Home(c *gin.Context) {
	sections, err := ctrl.catalog.Home(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Home sections retrieved", "data": sections})
}
