package services

import (
	"os"
	"path/filepath"
	"testing"

	"lafamilia/models"
	"lafamilia/repositories"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const productsFixture = `[
  {"id":"p1","name":"Wireless Mouse","description":"Ergonomic mouse","price":20,"originalPrice":25,"isDiscounted":true,"category":"Electronics","subCategory":"Accessories","brand":"Logi Tech","images":["mouse.jpg"],"rating":4.5,"reviewsCount":120,"inStock":3,"colors":["black","white"]},
  {"id":"p2","name":"Coffee Mug","description":"Ceramic mug","price":8,"category":"Home","subCategory":"Kitchen","brand":"Acme","rating":3.9,"reviewsCount":10,"inStock":50,"minOrderQuantity":2,"maxOrderQuantity":6},
  {"id":"p3","name":"Gaming Keyboard","description":"Mechanical keys","price":75,"originalPrice":100,"isDiscounted":true,"category":"Electronics","subCategory":"Gaming","brand":"Logi Tech","rating":4.8,"reviewsCount":300,"inStock":10},
  {"id":"p4","name":"Sold Out Lamp","description":"Desk lamp","price":30,"category":"Home","subCategory":"Lighting","brand":"Acme","rating":4.2,"reviewsCount":5,"inStock":0}
]`

const membersFixture = `[
  {"id":"m1","name":"Zeta Foods","description":"Catering","category":"Food","location":"Nairobi","size":"Small","popularity":"high","foundingYear":2001,"membershipLevel":"Gold",
   "awards":[{"name":"Best Caterer","year":2022,"issuer":"Chamber"}],
   "reviews":[{"author":"Ann","rating":5,"date":"2024-03-01","text":"Great"}]},
  {"id":"m2","name":"alpha Tech","description":"Software","category":"Technology","location":"Mombasa","size":"Large","popularity":"low","foundingYear":2015,"membershipLevel":"Silver",
   "awards":[{"name":"Innovation Award","year":2023,"issuer":"Tech Week"},{"name":"Green Office","year":2021,"issuer":"City"}],
   "reviews":[{"author":"Ben","rating":4,"date":"2024-05-10","text":"Good"}]},
  {"id":"m3","name":"Beta Builders","description":"Construction","category":"Construction","location":"Nairobi","size":"Medium","popularity":"medium","foundingYear":1999,"membershipLevel":"Member"}
]`

const clubsFixture = `[
  {"id":"c1","name":"Golf Club","description":"Weekend golf","details":{"membersCount":40},"joiningFees":{"non-member":100,"club-member":50}},
  {"id":"c2","name":"Book Club","description":"Monthly reads","details":{"membersCount":12}}
]`

const eventsFixture = `[
  {"id":"e1","name":"Annual Gala Dinner","date":"2025-12-01","location":"Serena Hotel","description":"Black tie",
   "pricing":{"member":3000,"non-member":4500},
   "transportOptions":[{"type":"Bus","fee":500}],
   "snacksAvailable":[{"name":"Samosa","price":100},{"name":"Juice","price":150}]},
  {"id":"e2","name":"Business Workshop","date":"2025-10-01","location":"Online","description":"Skills"}
]`

func newTestContent(t *testing.T) *repositories.ContentStore {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		repositories.FileProducts:  productsFixture,
		repositories.FileMembers:   membersFixture,
		repositories.FileClubs:     clubsFixture,
		repositories.FileEvents:    eventsFixture,
		repositories.FileBlogPosts: `[{"id":"b1","title":"Export Tips","excerpt":"How to ship","author":"Jane","category":"Trade"},{"id":"b2","title":"Hiring","excerpt":"People","author":"Joe","category":"HR"}]`,
		repositories.FileNews:      `[{"id":"n1","title":"Chamber opens","summary":"s","date":"2024-01-01","isFeaturedOnHomepage":true},{"id":"n2","title":"Other","summary":"s","date":"2024-02-01"}]`,
		repositories.FileBoard:     `{"boardMembers":[{"id":"bm1","name":"Chair","title":"Chairperson","social":{}}],"executiveTeam":[]}`,
		repositories.FileDiscover:  `[{"name":"Old Town","description":"Historic"}]`,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return repositories.NewContentStore(dir, nil, zap.NewNop())
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendOrderConfirmation(order models.Order) error {
	return m.Called(order).Error(0)
}

func (m *mockMailer) SendAdOrderNotification(sub models.AdOrderSubmission) error {
	return m.Called(sub).Error(0)
}
