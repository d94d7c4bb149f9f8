package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"lafamilia/models"
	"lafamilia/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateOrderID(t *testing.T) {
	id := GenerateOrderID(time.UnixMilli(1718000123456))
	assert.Regexp(t, `^IMALL-00123456-[0-9A-Z]{4}$`, id)
}

func TestSaveOrder_RoundTripAndEmptiesCart(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStateStore()
	cart := NewCartStore(store)
	mailer := &mockMailer{}
	mailer.On("SendOrderConfirmation", mock.Anything).Return(errors.New("smtp down"))
	orders := NewOrderService(store, cart, mailer, zap.NewNop())

	mouse := models.Product{ID: "p1", Name: "Mouse", Price: 20, InStock: 3}
	_, err := cart.Add(ctx, "s1", mouse, 2, "black")
	require.NoError(t, err)
	before, err := cart.Items(ctx, "s1")
	require.NoError(t, err)

	order, err := orders.SaveOrder(ctx, "s1", models.CheckoutData{
		CustomerDetails: models.CustomerDetails{FullName: "Ann", Email: "ann@example.com", ShippingAddress: "1 Road"},
		ShippingMethod:  models.ShippingDelivery,
		ShippingCompany: "DHL",
		ShippingFee:     25,
		PaymentMethod:   models.PaymentCreditCard,
		CartTotal:       1,
	})
	require.NoError(t, err, "mail failures do not fail the order")
	assert.Equal(t, 40.0, order.CartTotal, "cart total comes from the cart, not the request")
	assert.Equal(t, 65.0, order.FinalTotal)

	history, err := orders.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, order.OrderID, history[0].OrderID)
	assert.Equal(t, before, history[0].Items)
	assert.Equal(t, order.CartTotal, history[0].CartTotal)
	assert.Equal(t, order.FinalTotal, history[0].FinalTotal)

	items, err := cart.Items(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
	mailer.AssertNumberOfCalls(t, "SendOrderConfirmation", 1)
}

func TestSaveOrder_EmptyCart(t *testing.T) {
	store := repositories.NewMemoryStateStore()
	orders := NewOrderService(store, NewCartStore(store), nil, zap.NewNop())
	_, err := orders.SaveOrder(context.Background(), "s1", models.CheckoutData{})
	assert.Equal(t, models.CodeValidationFailed, models.CodeOf(err))
}

func TestHistory_NewestFirst(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStateStore()
	cart := NewCartStore(store)
	orders := NewOrderService(store, cart, nil, zap.NewNop())
	product := models.Product{ID: "p", Name: "Pen", Price: 1, InStock: 100}

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		orders.now = func() time.Time { return at }
		_, err := cart.Add(ctx, "s1", product, 1, "")
		require.NoError(t, err)
		_, err = orders.SaveOrder(ctx, "s1", models.CheckoutData{ShippingMethod: models.ShippingLocalPickup})
		require.NoError(t, err)
	}

	history, err := orders.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.True(t, history[0].Date.After(history[1].Date))
	assert.True(t, history[1].Date.After(history[2].Date))
}
