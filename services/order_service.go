package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"time"

	"lafamilia/models"
	"lafamilia/repositories"

	"go.uber.org/zap"
)

type OrderService struct {
	store  repositories.StateStore
	cart   *CartStore
	mailer Mailer
	log    *zap.Logger
	now    func() time.Time
}

func NewOrderService(store repositories.StateStore, cart *CartStore, mailer Mailer, log *zap.Logger) *OrderService {
	return &OrderService{store: store, cart: cart, mailer: mailer, log: log, now: time.Now}
}

// GenerateOrderID builds "IMALL-<last 8 digits of unix ms>-<4 base36 chars>".
func GenerateOrderID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	suffix := strconv.FormatInt(rand.Int64N(36*36*36*36), 36)
	suffix = strings.Repeat("0", 4-len(suffix)) + suffix
	return fmt.Sprintf("IMALL-%s-%s", ms, strings.ToUpper(suffix))
}

// SaveOrder snapshots the cart into a new order, appends it to the
// session's history and empties the cart.
func (s *OrderService) SaveOrder(ctx context.Context, sessionID string, data models.CheckoutData) (*models.Order, error) {
	items, err := s.cart.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, models.NewValidationError("Your cart is empty.")
	}

	cartTotal := Summarize(items).Total
	now := s.now().UTC()
	order := &models.Order{
		OrderID:         GenerateOrderID(now),
		Date:            now,
		Items:           items,
		CustomerDetails: data.CustomerDetails,
		ShippingMethod:  data.ShippingMethod,
		ShippingCompany: data.ShippingCompany,
		ShippingFee:     data.ShippingFee,
		PaymentMethod:   data.PaymentMethod,
		CartTotal:       cartTotal,
		FinalTotal:      cartTotal + data.ShippingFee,
	}

	history, err := s.History(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	history = append(history, *order)
	if err := s.store.Set(ctx, sessionID, repositories.KeyOrderHistory, history); err != nil {
		return nil, err
	}
	if err := s.cart.Clear(ctx, sessionID); err != nil {
		return nil, err
	}

	s.log.Info("order placed",
		zap.String("order_id", order.OrderID),
		zap.Int("lines", len(order.Items)),
		zap.Float64("final_total", order.FinalTotal),
	)

	if s.mailer != nil {
		if err := s.mailer.SendOrderConfirmation(*order); err != nil {
			s.log.Warn("order confirmation mail failed", zap.String("order_id", order.OrderID), zap.Error(err))
		}
	}
	return order, nil
}

// History returns the session's orders, newest first.
func (s *OrderService) History(ctx context.Context, sessionID string) ([]models.Order, error) {
	history := []models.Order{}
	if _, err := s.store.Get(ctx, sessionID, repositories.KeyOrderHistory, &history); err != nil {
		return nil, err
	}
	sort.SliceStable(history, func(i, j int) bool { return history[i].Date.After(history[j].Date) })
	return history, nil
}
