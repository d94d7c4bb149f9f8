package routes

import (
	"lafamilia/controllers"
	"lafamilia/libs"
	"lafamilia/middleware"
	"lafamilia/repositories"
	"lafamilia/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the wired services the HTTP layer serves.
type Dependencies struct {
	Content     *repositories.ContentStore
	Catalog     *services.CatalogService
	Directory   *services.DirectoryService
	Cart        *services.CartStore
	Orders      *services.OrderService
	Checkout    *services.CheckoutService
	Pricing     *services.PricingService
	AdOrders    *services.AdOrderService
	Submissions *services.SubmissionService
	Visitors    *services.VisitorService
	Uploader    libs.CreativeUploader
	Admin       controllers.AdminSettings
	UploadDir   string
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	catalogCtrl := controllers.NewCatalogController(deps.Catalog)
	cartCtrl := controllers.NewCartController(deps.Catalog, deps.Cart)
	checkoutCtrl := controllers.NewCheckoutController(deps.Checkout, deps.Orders)
	adCtrl := controllers.NewAdvertiseController(deps.Pricing, deps.AdOrders, deps.Uploader)
	directoryCtrl := controllers.NewDirectoryController(deps.Directory)
	submissionCtrl := controllers.NewSubmissionController(deps.Submissions, deps.Directory)
	visitorCtrl := controllers.NewVisitorController(deps.Visitors)
	adminCtrl := controllers.NewAdminController(deps.Admin, deps.Submissions, deps.Content)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/products", catalogCtrl.ListProducts)
	router.GET("/products/suggestions", catalogCtrl.Suggestions)
	router.GET("/products/:id", catalogCtrl.GetProduct)
	router.GET("/products/:id/total", catalogCtrl.LineTotal)
	router.GET("/brands", catalogCtrl.ListBrands)
	router.GET("/categories", catalogCtrl.ListCategories)
	router.GET("/home", catalogCtrl.Home)

	router.GET("/members", directoryCtrl.ListMembers)
	router.GET("/members/facets", directoryCtrl.MemberFacets)
	router.GET("/members/spotlights", directoryCtrl.Spotlights)
	router.GET("/members/:id", directoryCtrl.GetMember)
	router.GET("/clubs", directoryCtrl.ListClubs)
	router.GET("/clubs/suggestions", directoryCtrl.ClubSuggestions)
	router.GET("/clubs/:id", directoryCtrl.GetClub)
	router.GET("/clubs/:id/fee", submissionCtrl.EstimateClubFee)
	router.GET("/events", directoryCtrl.ListEvents)
	router.GET("/events/:id", directoryCtrl.GetEvent)
	router.POST("/events/:id/quote", submissionCtrl.QuoteRegistration)
	router.GET("/blog", directoryCtrl.ListBlogPosts)
	router.GET("/blog/:id", directoryCtrl.GetBlogPost)
	router.GET("/news", directoryCtrl.ListNews)
	router.GET("/news/:id", directoryCtrl.GetNewsArticle)
	router.GET("/board", directoryCtrl.Board)
	router.GET("/discover", directoryCtrl.Discover)
	router.GET("/awards", directoryCtrl.ListAwards)
	router.GET("/awards/facets", directoryCtrl.AwardFacets)
	router.GET("/awards/suggestions", directoryCtrl.AwardSuggestions)
	router.GET("/reviews", directoryCtrl.ListReviews)

	router.GET("/advertise/packages", adCtrl.ListPackages)
	router.GET("/advertise/quote", adCtrl.Quote)
	router.GET("/checkout/shipping-companies", checkoutCtrl.ShippingCompanies)

	router.POST("/admin/login", adminCtrl.Login)

	session := router.Group("/")
	session.Use(middleware.SessionMiddleware())
	{
		session.POST("/visit", visitorCtrl.Visit)
		session.GET("/theme", visitorCtrl.GetTheme)
		session.PUT("/theme", visitorCtrl.SetTheme)

		session.GET("/cart", cartCtrl.GetCart)
		session.POST("/cart", cartCtrl.AddToCart)
		session.DELETE("/cart", cartCtrl.ClearCart)
		session.DELETE("/cart/:productId", cartCtrl.RemoveFromCart)
		session.GET("/wishlist", cartCtrl.GetWishlist)
		session.POST("/wishlist", cartCtrl.AddToWishlist)
		session.DELETE("/wishlist/:productId", cartCtrl.RemoveFromWishlist)

		session.POST("/checkout", checkoutCtrl.Open)
		session.GET("/checkout", checkoutCtrl.Get)
		session.PUT("/checkout/details", checkoutCtrl.SetDetails)
		session.PUT("/checkout/shipping", checkoutCtrl.SetShipping)
		session.PUT("/checkout/payment", checkoutCtrl.SetPayment)
		session.POST("/checkout/next", checkoutCtrl.Next)
		session.POST("/checkout/previous", checkoutCtrl.Previous)
		session.POST("/checkout/place-order", checkoutCtrl.PlaceOrder)
		session.GET("/orders", checkoutCtrl.History)

		session.POST("/advertise/order", adCtrl.Start)
		session.GET("/advertise/order", adCtrl.Get)
		session.PUT("/advertise/order/selection", adCtrl.Select)
		session.PUT("/advertise/order/content", adCtrl.UpdateContent)
		session.POST("/advertise/order/creative", adCtrl.UploadCreative)
		session.PUT("/advertise/order/consent", adCtrl.SetConsent)
		session.PUT("/advertise/order/payment", adCtrl.SetPaymentMethod)
		session.POST("/advertise/order/next", adCtrl.Next)
		session.POST("/advertise/order/previous", adCtrl.Previous)
		session.GET("/advertise/order/summary", adCtrl.Summary)
		session.POST("/advertise/order/submit", adCtrl.Submit)

		session.POST("/events/:id/register", submissionCtrl.RegisterForEvent)
		session.POST("/clubs/:id/join", submissionCtrl.JoinClub)
		session.POST("/reviews", submissionCtrl.SubmitReview)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(deps.Admin.JWTSecret), middleware.AdminMiddleware())
	{
		admin.GET("/submissions", adminCtrl.ListSubmissions)
		admin.POST("/content/reload", adminCtrl.ReloadContent)
	}

	if deps.UploadDir != "" {
		router.Static("/uploads", deps.UploadDir)
	}
}
