package services

import (
	"net/url"
	"testing"

	"lafamilia/models"
	"lafamilia/repositories"
	"lafamilia/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestQuote_BannerTwoWeeksStandard(t *testing.T) {
	svc := NewPricingService(repositories.DefaultAdPackages(), zap.NewNop())
	pkg, err := svc.Package("Banner Ad")
	require.NoError(t, err)

	price := svc.Quote(pkg, "2 Weeks", "Standard")
	assert.InDelta(t, 135.00, price, 1e-9)
	assert.Equal(t, "$135.00", utils.FormatPrice(price))
}

func TestQuote_PureAndLinear(t *testing.T) {
	svc := NewPricingService(nil, zap.NewNop())
	pkg := models.AdPackage{
		Type:      "Test",
		BasePrice: 40,
		Runtime:   []models.AdRuntime{{Duration: "A", Multiplier: 1.5}, {Duration: "B", Multiplier: 3}},
		Details:   []models.AdDetailLevel{{Level: "X", PriceFactor: 1.2}, {Level: "Y", PriceFactor: 2.4}},
	}

	first := svc.Quote(pkg, "A", "X")
	assert.Equal(t, first, svc.Quote(pkg, "A", "X"))

	assert.InDelta(t, 2*first, svc.Quote(pkg, "B", "X"), 1e-9, "doubling the multiplier doubles the price")
	assert.InDelta(t, 2*first, svc.Quote(pkg, "A", "Y"), 1e-9, "doubling the factor doubles the price")

	doubled := pkg
	doubled.BasePrice = 80
	assert.InDelta(t, 2*first, svc.Quote(doubled, "A", "X"), 1e-9)
}

func TestQuote_UnknownLabelFailsClosed(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	svc := NewPricingService(repositories.DefaultAdPackages(), zap.New(core))
	pkg, err := svc.Package("Banner Ad")
	require.NoError(t, err)

	assert.Zero(t, svc.Quote(pkg, "6 Weeks", "Standard"))
	assert.Zero(t, svc.Quote(pkg, "1 Week", "Gold"))
	assert.Equal(t, 2, logs.Len())
}

func TestPackage_Unknown(t *testing.T) {
	svc := NewPricingService(repositories.DefaultAdPackages(), zap.NewNop())
	_, err := svc.Package("Billboard")
	assert.Equal(t, models.CodeNotFound, models.CodeOf(err))
}

func TestDecodePackageDescriptor(t *testing.T) {
	raw := url.QueryEscape(`{"type":"Banner Ad","basePrice":50,"details":[{"level":"Basic","priceFactor":1}],"runtime":[{"duration":"1 Week","multiplier":1}]}`)
	pkg, err := DecodePackageDescriptor(raw)
	require.NoError(t, err)
	assert.Equal(t, "Banner Ad", pkg.Type)

	_, err = DecodePackageDescriptor("not-json")
	assert.Equal(t, models.CodeValidationFailed, models.CodeOf(err))

	_, err = DecodePackageDescriptor(`{"type":"Banner Ad"}`)
	assert.Equal(t, models.CodeValidationFailed, models.CodeOf(err))
}
