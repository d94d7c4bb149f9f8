package services

import (
	"context"

	"lafamilia/models"
	"lafamilia/repositories"
	"lafamilia/utils"

	"github.com/go-playground/validator/v10"
)

const (
	CheckoutStepDetails  = "Details"
	CheckoutStepShipping = "Shipping"
	CheckoutStepPayment  = "Payment"
)

// ShippingCompanies lists delivery carriers in display order; the first one
// is picked when delivery is chosen without a carrier.
var ShippingCompanies = []models.ShippingCompany{
	{Name: "UPS", Fee: 15},
	{Name: "G4S", Fee: 10},
	{Name: "DHL", Fee: 25},
	{Name: "Wells Fargo", Fee: 20},
}

func shippingFee(company string) (float64, bool) {
	for _, c := range ShippingCompanies {
		if c.Name == company {
			return c.Fee, true
		}
	}
	return 0, false
}

type CheckoutService struct {
	store    repositories.StateStore
	cart     *CartStore
	orders   *OrderService
	validate *validator.Validate
	wizard   *Wizard[models.CheckoutState]
}

func NewCheckoutService(store repositories.StateStore, cart *CartStore, orders *OrderService) *CheckoutService {
	s := &CheckoutService{
		store:    store,
		cart:     cart,
		orders:   orders,
		validate: validator.New(),
	}
	s.wizard = NewWizard(
		Step[models.CheckoutState]{Name: CheckoutStepDetails, Validate: s.validateDetails},
		Step[models.CheckoutState]{Name: CheckoutStepShipping, Validate: validateShipping},
		Step[models.CheckoutState]{Name: CheckoutStepPayment, Validate: validateCheckoutPayment},
	)
	return s
}

func (s *CheckoutService) validateDetails(state *models.CheckoutState, _ int) error {
	if err := s.validate.Struct(state.Data.CustomerDetails); err != nil {
		return models.NewValidationError("Please fill in all required details.")
	}
	return nil
}

func validateShipping(state *models.CheckoutState, _ int) error {
	if state.Data.ShippingMethod == models.ShippingDelivery && state.Data.ShippingCompany == "" {
		return models.NewValidationError("Please select a shipping company.")
	}
	return nil
}

func validateCheckoutPayment(state *models.CheckoutState, _ int) error {
	if !paymentMethods[state.Data.PaymentMethod] {
		return models.NewValidationError("Please choose a payment method.")
	}
	return nil
}

func (s *CheckoutService) view(state *models.CheckoutState) *models.CheckoutView {
	step, _ := s.wizard.Labels(state.Position)
	return &models.CheckoutView{
		Step:        step,
		Data:        state.Data,
		Companies:   ShippingCompanies,
		TotalLabel:  utils.FormatPrice(state.Data.FinalTotal),
		ShippingFee: utils.FormatPrice(state.Data.ShippingFee),
	}
}

func (s *CheckoutService) load(ctx context.Context, sessionID string) (*models.CheckoutState, error) {
	var state models.CheckoutState
	found, err := s.store.Get(ctx, sessionID, repositories.KeyCheckout, &state)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.NewStateError("Checkout has not been started.")
	}
	return &state, nil
}

// save recomputes totals from the live cart before persisting.
func (s *CheckoutService) save(ctx context.Context, sessionID string, state *models.CheckoutState) (*models.CheckoutView, error) {
	summary, err := s.cart.Summary(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Data.CartTotal = summary.Total
	state.Data.FinalTotal = summary.Total + state.Data.ShippingFee

	if err := s.store.Set(ctx, sessionID, repositories.KeyCheckout, state); err != nil {
		return nil, err
	}
	return s.view(state), nil
}

// Open starts checkout at the Details step with free local pickup.
func (s *CheckoutService) Open(ctx context.Context, sessionID string) (*models.CheckoutView, error) {
	items, err := s.cart.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, models.NewValidationError("Your cart is empty.")
	}

	state := &models.CheckoutState{
		Data: models.CheckoutData{
			ShippingMethod: models.ShippingLocalPickup,
			PaymentMethod:  models.PaymentCreditCard,
		},
	}
	return s.save(ctx, sessionID, state)
}

func (s *CheckoutService) Get(ctx context.Context, sessionID string) (*models.CheckoutView, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, sessionID, state)
}

func (s *CheckoutService) SetDetails(ctx context.Context, sessionID string, req models.CheckoutDetailsRequest) (*models.CheckoutView, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Data.FullName = req.FullName
	state.Data.Email = req.Email
	state.Data.ShippingAddress = req.ShippingAddress
	return s.save(ctx, sessionID, state)
}

// SetShipping applies a shipping choice. Local pickup is free and clears the
// carrier; delivery without a carrier picks the first one.
func (s *CheckoutService) SetShipping(ctx context.Context, sessionID string, req models.CheckoutShippingRequest) (*models.CheckoutView, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch req.ShippingMethod {
	case models.ShippingLocalPickup:
		state.Data.ShippingMethod = models.ShippingLocalPickup
		state.Data.ShippingCompany = ""
		state.Data.ShippingFee = 0
	case models.ShippingDelivery:
		company := req.ShippingCompany
		if company == "" {
			company = state.Data.ShippingCompany
		}
		if company == "" {
			company = ShippingCompanies[0].Name
		}
		fee, ok := shippingFee(company)
		if !ok {
			return nil, models.NewValidationError("Unknown shipping company " + company + ".")
		}
		state.Data.ShippingMethod = models.ShippingDelivery
		state.Data.ShippingCompany = company
		state.Data.ShippingFee = fee
	default:
		return nil, models.NewValidationError("Unknown shipping method " + req.ShippingMethod + ".")
	}
	return s.save(ctx, sessionID, state)
}

func (s *CheckoutService) SetPayment(ctx context.Context, sessionID, method string) (*models.CheckoutView, error) {
	if !paymentMethods[method] {
		return nil, models.NewValidationError("Unknown payment method " + method + ".")
	}
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Data.PaymentMethod = method
	return s.save(ctx, sessionID, state)
}

func (s *CheckoutService) Next(ctx context.Context, sessionID string) (*models.CheckoutView, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.wizard.Next(state, &state.Position); err != nil {
		return s.view(state), err
	}
	return s.save(ctx, sessionID, state)
}

func (s *CheckoutService) Previous(ctx context.Context, sessionID string) (*models.CheckoutView, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.wizard.Previous(&state.Position); err != nil {
		return s.view(state), err
	}
	return s.save(ctx, sessionID, state)
}

// PlaceOrder is only allowed from the Payment step with every step valid.
// The checkout state is discarded once the order is saved.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string) (*models.Order, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !s.wizard.IsLast(state.Position) {
		return nil, models.NewStateError("Complete the previous checkout steps first.")
	}
	if err := s.wizard.ValidateAll(state); err != nil {
		return nil, err
	}
	if err := validateCheckoutPayment(state, 0); err != nil {
		return nil, err
	}

	order, err := s.orders.SaveOrder(ctx, sessionID, state.Data)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, sessionID, repositories.KeyCheckout); err != nil {
		return nil, err
	}
	return order, nil
}
