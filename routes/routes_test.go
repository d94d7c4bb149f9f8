package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lafamilia/controllers"
	"lafamilia/libs"
	"lafamilia/middleware"
	"lafamilia/repositories"
	"lafamilia/services"
	"lafamilia/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testAdminEmail    = "admin@lafamilia.test"
	testAdminPassword = "s3cret-pass"
	testJWTSecret     = "test-secret-that-is-long-enough-123"
)

var testFiles = map[string]string{
	repositories.FileProducts: `[
	  {"id":"p1","name":"Wireless Mouse","description":"Ergonomic mouse","price":20,"originalPrice":25,"isDiscounted":true,"category":"Electronics","subCategory":"Accessories","brand":"Logi Tech","rating":4.5,"reviewsCount":120,"inStock":3,"colors":["black","white"]},
	  {"id":"p2","name":"Coffee Mug","description":"Ceramic mug","price":8,"category":"Home","subCategory":"Kitchen","brand":"Acme","rating":3.9,"reviewsCount":10,"inStock":50,"minOrderQuantity":2,"maxOrderQuantity":6},
	  {"id":"p3","name":"Sold Out Lamp","description":"Desk lamp","price":30,"category":"Home","subCategory":"Lighting","brand":"Acme","inStock":0}
	]`,
	repositories.FileMembers: `[
	  {"id":"m1","name":"Zeta Foods","category":"Food","location":"Nairobi","size":"Small","popularity":"high","membershipLevel":"Gold",
	   "awards":[{"name":"Best Caterer","year":2022}],"reviews":[{"author":"Ann","rating":5,"date":"2024-03-01","text":"Great"}]},
	  {"id":"m2","name":"alpha Tech","category":"Technology","location":"Mombasa","size":"Large","popularity":"low","membershipLevel":"Silver",
	   "awards":[{"name":"Innovation Award","year":2023}]}
	]`,
	repositories.FileClubs:     `[{"id":"c1","name":"Golf Club","description":"Weekend golf","details":{"membersCount":40},"joiningFees":{"gold":50}}]`,
	repositories.FileEvents:    `[{"id":"e1","name":"Annual Gala Dinner","date":"2025-12-01","location":"Serena Hotel","description":"Black tie","pricing":{"member":3000},"transportOptions":[{"type":"Bus","fee":500}],"snacksAvailable":[{"name":"Samosa","price":100}]}]`,
	repositories.FileBlogPosts: `[{"id":"b1","title":"Export Tips","excerpt":"How to ship","author":"Jane","category":"Trade"}]`,
	repositories.FileNews:      `[{"id":"n1","title":"Chamber opens","summary":"s","date":"2024-01-01","isFeaturedOnHomepage":true}]`,
	repositories.FileBoard:     `{"boardMembers":[{"id":"bm1","name":"Chair","title":"Chairperson","social":{}}],"executiveTeam":[]}`,
	repositories.FileDiscover:  `[{"name":"Old Town","description":"Historic"}]`,
}

type testServer struct {
	router      *gin.Engine
	submissions *repositories.MemorySubmissionRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	for name, body := range testFiles {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	hash, err := utils.HashPassword(testAdminPassword)
	require.NoError(t, err)

	log := zap.NewNop()
	content := repositories.NewContentStore(dir, nil, log)
	state := repositories.NewMemoryStateStore()
	subRepo := repositories.NewMemorySubmissionRepository()

	cart := services.NewCartStore(state)
	orders := services.NewOrderService(state, cart, nil, log)
	submissions := services.NewSubmissionService(content, subRepo, log)
	pricing := services.NewPricingService(repositories.DefaultAdPackages(), log)
	uploadDir := t.TempDir()

	router := gin.New()
	SetupRoutes(router, Dependencies{
		Content:     content,
		Catalog:     services.NewCatalogService(content),
		Directory:   services.NewDirectoryService(content),
		Cart:        cart,
		Orders:      orders,
		Checkout:    services.NewCheckoutService(state, cart, orders),
		Pricing:     pricing,
		AdOrders:    services.NewAdOrderService(state, pricing, submissions, nil, log),
		Submissions: submissions,
		Visitors:    services.NewVisitorService(state),
		Uploader:    libs.NewLocalUploader(uploadDir, 1<<20),
		Admin: controllers.AdminSettings{
			Email:        testAdminEmail,
			PasswordHash: hash,
			JWTSecret:    testJWTSecret,
			TokenExpiry:  time.Hour,
		},
		UploadDir: uploadDir,
	})
	return &testServer{router: router, submissions: subRepo}
}

type response struct {
	Code int
	Body map[string]interface{}
	SID  string
}

func (r response) data() map[string]interface{} {
	d, _ := r.Body["data"].(map[string]interface{})
	return d
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, sid string, headers ...string) response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.Header.Set(middleware.SessionHeader, sid)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	out := response{Code: w.Code, SID: w.Header().Get(middleware.SessionHeader)}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out.Body), w.Body.String())
	}
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	res := s.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "ok", res.Body["status"])
}

func TestSessionIssuedAndKept(t *testing.T) {
	s := newTestServer(t)

	res := s.do(t, http.MethodGet, "/cart", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	_, err := uuid.Parse(res.SID)
	require.NoError(t, err)

	again := s.do(t, http.MethodGet, "/cart", nil, res.SID)
	assert.Equal(t, res.SID, again.SID)

	bogus := s.do(t, http.MethodGet, "/cart", nil, "not-a-uuid")
	assert.NotEqual(t, "not-a-uuid", bogus.SID)
}

func TestCatalogRoutes(t *testing.T) {
	s := newTestServer(t)

	res := s.do(t, http.MethodGet, "/products?category=Electronics", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	products := res.Body["data"].([]interface{})
	assert.Len(t, products, 1)
	meta := res.Body["meta"].(map[string]interface{})
	assert.Equal(t, float64(1), meta["total_items"])

	res = s.do(t, http.MethodGet, "/products/p2", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Coffee Mug", res.data()["name"])

	res = s.do(t, http.MethodGet, "/products/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "NOT_FOUND", res.Body["error"])

	res = s.do(t, http.MethodGet, "/products/p2/total?quantity=1", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, float64(2), res.data()["quantity"])
	assert.Equal(t, "$16.00", res.data()["totalLabel"])

	res = s.do(t, http.MethodGet, "/products/suggestions?q=mou", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Len(t, res.Body["data"], 1)

	res = s.do(t, http.MethodGet, "/brands", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Len(t, res.Body["data"], 2)

	res = s.do(t, http.MethodGet, "/products?brand=Acme&brand=Logi+Tech&minPrice=10&minRating=4", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	products = res.Body["data"].([]interface{})
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].(map[string]interface{})["id"])

	res = s.do(t, http.MethodGet, "/products?minRating=9", nil, "")
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestCartRoutes(t *testing.T) {
	s := newTestServer(t)
	sid := uuid.NewString()

	res := s.do(t, http.MethodPost, "/cart", gin.H{"productId": "p1", "quantity": 2, "color": "black"}, sid)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, float64(2), res.data()["count"])

	res = s.do(t, http.MethodPost, "/cart", gin.H{"productId": "p1", "quantity": 2, "color": "black"}, sid)
	assert.Equal(t, http.StatusConflict, res.Code)
	assert.Equal(t, "stock", res.Body["error"])
	assert.Equal(t, float64(2), res.data()["count"], "rejected add leaves the cart unchanged")

	res = s.do(t, http.MethodPost, "/cart", gin.H{"productId": "p3", "quantity": 1}, sid)
	assert.Equal(t, http.StatusConflict, res.Code)
	assert.Equal(t, "out_of_stock", res.Body["error"])

	res = s.do(t, http.MethodPost, "/cart", gin.H{"quantity": 1}, sid)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = s.do(t, http.MethodDelete, "/cart/p1?color=black", nil, sid)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, float64(0), res.data()["count"])

	res = s.do(t, http.MethodPost, "/wishlist", gin.H{"productId": "p2"}, sid)
	require.Equal(t, http.StatusOK, res.Code)
	res = s.do(t, http.MethodPost, "/wishlist", gin.H{"productId": "p2"}, sid)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Len(t, res.Body["data"], 1)
}

func TestCheckoutFlow(t *testing.T) {
	s := newTestServer(t)
	sid := uuid.NewString()

	res := s.do(t, http.MethodPost, "/checkout", nil, sid)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code, "empty cart")

	s.do(t, http.MethodPost, "/cart", gin.H{"productId": "p2", "quantity": 2}, sid)
	res = s.do(t, http.MethodPost, "/checkout", nil, sid)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Details", res.data()["step"])

	res = s.do(t, http.MethodPost, "/checkout/next", nil, sid)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	assert.Equal(t, "Details", res.data()["step"])

	res = s.do(t, http.MethodPut, "/checkout/details", gin.H{"fullName": "Ann Doe", "email": "ann@example.com", "shippingAddress": "1 Main St"}, sid)
	require.Equal(t, http.StatusOK, res.Code)
	res = s.do(t, http.MethodPost, "/checkout/next", nil, sid)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Shipping", res.data()["step"])

	res = s.do(t, http.MethodPost, "/checkout/place-order", nil, sid)
	assert.Equal(t, http.StatusConflict, res.Code)

	res = s.do(t, http.MethodPut, "/checkout/shipping", gin.H{"shippingMethod": "delivery", "shippingCompany": "G4S"}, sid)
	require.Equal(t, http.StatusOK, res.Code)
	data := res.data()["data"].(map[string]interface{})
	assert.Equal(t, float64(26), data["finalTotal"])

	s.do(t, http.MethodPost, "/checkout/next", nil, sid)
	res = s.do(t, http.MethodPost, "/checkout/place-order", nil, sid)
	require.Equal(t, http.StatusCreated, res.Code)
	assert.Regexp(t, `^IMALL-\d{8}-[0-9A-Z]{4}$`, res.data()["orderId"])

	res = s.do(t, http.MethodGet, "/orders", nil, sid)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Len(t, res.Body["data"], 1)

	res = s.do(t, http.MethodGet, "/cart", nil, sid)
	assert.Equal(t, float64(0), res.data()["count"])
}

func TestAdvertiseFlow(t *testing.T) {
	s := newTestServer(t)
	sid := uuid.NewString()

	res := s.do(t, http.MethodGet, "/advertise/quote?type=Banner+Ad&runtime=2+Weeks&detailsLevel=Standard", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "$135.00", res.data()["priceLabel"])

	res = s.do(t, http.MethodGet, "/advertise/quote?type=Banner+Ad&runtime=Forever&detailsLevel=Standard", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)

	res = s.do(t, http.MethodGet, "/advertise/order", nil, sid)
	assert.Equal(t, http.StatusConflict, res.Code)

	res = s.do(t, http.MethodPost, "/advertise/order", gin.H{"type": "Banner Ad"}, sid)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Details", res.data()["step"])
	assert.Equal(t, "Confirm", res.data()["subStep"])

	res = s.do(t, http.MethodPut, "/advertise/order/selection", gin.H{"runtime": "Forever", "detailsLevel": "Basic"}, sid)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	res = s.do(t, http.MethodPost, "/advertise/order/next", nil, sid)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	assert.Equal(t, "Confirm", res.data()["subStep"])

	s.do(t, http.MethodPut, "/advertise/order/selection", gin.H{"runtime": "2 Weeks", "detailsLevel": "Standard"}, sid)
	res = s.do(t, http.MethodPost, "/advertise/order/next", nil, sid)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Input", res.data()["subStep"])

	s.do(t, http.MethodPut, "/advertise/order/content", gin.H{"title": "Sale", "description": "Big sale", "targetUrl": "https://shop.example.com"}, sid)
	res = s.do(t, http.MethodPost, "/advertise/order/next", nil, sid)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Consent", res.data()["step"])

	res = s.do(t, http.MethodPost, "/advertise/order/submit", nil, sid)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	assert.Equal(t, "Consent", res.data()["step"])

	s.do(t, http.MethodPut, "/advertise/order/consent", gin.H{"agreed": true}, sid)
	res = s.do(t, http.MethodPost, "/advertise/order/submit", nil, sid)
	assert.Equal(t, http.StatusConflict, res.Code, "submit is only allowed from the summary")
	assert.Equal(t, "Consent", res.data()["step"])

	res = s.do(t, http.MethodPost, "/advertise/order/next", nil, sid)
	require.Equal(t, http.StatusOK, res.Code)
	s.do(t, http.MethodPut, "/advertise/order/payment", gin.H{"paymentMethod": "mpesa"}, sid)
	res = s.do(t, http.MethodPost, "/advertise/order/next", nil, sid)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Summary", res.data()["step"])

	res = s.do(t, http.MethodGet, "/advertise/order/summary", nil, sid)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Mpesa", res.data()["paymentMethod"])
	assert.Equal(t, "Yes", res.data()["consentAgreed"])

	res = s.do(t, http.MethodPost, "/advertise/order/submit", nil, sid)
	require.Equal(t, http.StatusCreated, res.Code)
	res = s.do(t, http.MethodPost, "/advertise/order/submit", nil, sid)
	assert.Equal(t, http.StatusConflict, res.Code)
}

func TestUploadCreative(t *testing.T) {
	s := newTestServer(t)
	sid := uuid.NewString()
	s.do(t, http.MethodPost, "/advertise/order", gin.H{"type": "Banner Ad"}, sid)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "banner.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\nfake"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/advertise/order/creative", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(middleware.SessionHeader, sid)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	form := body["data"].(map[string]interface{})["form"].(map[string]interface{})
	assert.Contains(t, form["adImageUrl"], "/uploads/ad-creatives/")
}

func TestDirectoryRoutes(t *testing.T) {
	s := newTestServer(t)

	res := s.do(t, http.MethodGet, "/members?sort=alphabetical-asc", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, float64(2), res.data()["total"])
	assert.Equal(t, false, res.data()["hasMore"])

	res = s.do(t, http.MethodGet, "/members/m9", nil, "")
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = s.do(t, http.MethodGet, "/awards?year=2023", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, float64(1), res.data()["total"])

	res = s.do(t, http.MethodGet, "/awards?year=all", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, float64(2), res.data()["total"])

	res = s.do(t, http.MethodGet, "/awards/suggestions?q=aw", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, []interface{}{"Innovation Award"}, res.Body["data"])

	res = s.do(t, http.MethodGet, "/clubs/suggestions?q=GOLF", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, []interface{}{"Golf Club"}, res.Body["data"])

	for _, path := range []string{"/clubs", "/clubs/c1", "/events", "/events/e1", "/blog", "/blog/b1", "/news?featured=true", "/news/n1", "/board", "/discover", "/reviews", "/members/facets", "/awards/facets", "/members/spotlights"} {
		res := s.do(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, res.Code, path)
	}
}

func TestSubmissionRoutes(t *testing.T) {
	s := newTestServer(t)
	sid := uuid.NewString()

	reg := gin.H{"fullName": "Ann", "email": "ann@example.com", "registrationType": "member", "transport": "Bus", "snacks": []string{"Samosa"}}
	res := s.do(t, http.MethodPost, "/events/e1/quote", reg, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, float64(3600), res.data()["totalCost"])

	res = s.do(t, http.MethodPost, "/events/e1/register", reg, sid)
	require.Equal(t, http.StatusCreated, res.Code)

	res = s.do(t, http.MethodGet, "/clubs/c1/fee?level=gold", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, float64(50), res.data()["fee"])

	res = s.do(t, http.MethodPost, "/clubs/c1/join", gin.H{"fullName": "Ann", "email": "ann@example.com", "chamberMembership": "gold"}, sid)
	require.Equal(t, http.StatusCreated, res.Code)

	res = s.do(t, http.MethodPost, "/reviews", gin.H{"reviewerName": "Ann", "reviewerEmail": "ann@example.com", "memberId": "m1", "rating": 0, "reviewText": "ok"}, sid)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
}

func TestVisitorRoutes(t *testing.T) {
	s := newTestServer(t)
	sid := uuid.NewString()

	res := s.do(t, http.MethodPost, "/visit", nil, sid)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, true, res.data()["firstVisit"])

	res = s.do(t, http.MethodPost, "/visit", nil, sid)
	assert.Equal(t, "Back so soon! Awesome!", res.Body["message"])

	res = s.do(t, http.MethodGet, "/theme", nil, sid)
	assert.Equal(t, "light", res.data()["theme"])

	res = s.do(t, http.MethodPut, "/theme", gin.H{"theme": "neon"}, sid)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	s.do(t, http.MethodPut, "/theme", gin.H{"theme": "dark"}, sid)
	res = s.do(t, http.MethodGet, "/theme", nil, sid)
	assert.Equal(t, "dark", res.data()["theme"])
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t)

	res := s.do(t, http.MethodGet, "/admin/submissions", nil, "")
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	res = s.do(t, http.MethodPost, "/admin/login", gin.H{"email": testAdminEmail, "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	res = s.do(t, http.MethodPost, "/admin/login", gin.H{"email": testAdminEmail, "password": testAdminPassword}, "")
	require.Equal(t, http.StatusOK, res.Code)
	token := res.data()["token"].(string)

	s.do(t, http.MethodPost, "/reviews", gin.H{"reviewerName": "Ann", "reviewerEmail": "ann@example.com", "memberId": "m1", "rating": 5, "reviewText": "Great"}, uuid.NewString())

	res = s.do(t, http.MethodGet, "/admin/submissions?kind=review", nil, "", "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Len(t, res.Body["data"], 1)

	res = s.do(t, http.MethodPost, "/admin/content/reload", nil, "", "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, res.Code)

	visitor, err := utils.GenerateToken(testJWTSecret, "someone@example.com", "visitor", time.Hour)
	require.NoError(t, err)
	res = s.do(t, http.MethodGet, "/admin/submissions", nil, "", "Authorization", "Bearer "+visitor)
	assert.Equal(t, http.StatusForbidden, res.Code)
}
