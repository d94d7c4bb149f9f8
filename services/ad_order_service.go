package services

import (
	"context"

	"lafamilia/models"
	"lafamilia/repositories"
	"lafamilia/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	AdStepDetails = "Details"
	AdStepConsent = "Consent"
	AdStepPayment = "Payment"
	AdStepSummary = "Summary"

	adSubConfirm = 0
	adSubInput   = 1
)

// paymentMethods are accepted by both the ad order and checkout flows.
var paymentMethods = map[string]bool{
	models.PaymentCreditCard:   true,
	models.PaymentPayPal:       true,
	models.PaymentMpesa:        true,
	models.PaymentBankTransfer: true,
}

type adContent struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	TargetURL   string `validate:"required,url"`
	ImageURL    string `validate:"omitempty,uri"`
}

type AdOrderService struct {
	store       repositories.StateStore
	pricing     *PricingService
	submissions *SubmissionService
	mailer      Mailer
	validate    *validator.Validate
	wizard      *Wizard[models.AdOrderState]
	log         *zap.Logger
}

func NewAdOrderService(store repositories.StateStore, pricing *PricingService, submissions *SubmissionService, mailer Mailer, log *zap.Logger) *AdOrderService {
	s := &AdOrderService{
		store:       store,
		pricing:     pricing,
		submissions: submissions,
		mailer:      mailer,
		validate:    validator.New(),
		log:         log,
	}
	s.wizard = NewWizard(
		Step[models.AdOrderState]{Name: AdStepDetails, SubSteps: []string{"Confirm", "Input"}, Validate: s.validateDetails},
		Step[models.AdOrderState]{Name: AdStepConsent, Validate: validateConsent},
		Step[models.AdOrderState]{Name: AdStepPayment, Validate: validatePayment},
		Step[models.AdOrderState]{Name: AdStepSummary},
	)
	return s
}

func (s *AdOrderService) validateDetails(state *models.AdOrderState, sub int) error {
	if sub == adSubConfirm {
		if state.Form.CalculatedPrice <= 0 {
			return models.NewValidationError("Please choose a valid runtime and details level.")
		}
		return nil
	}
	err := s.validate.Struct(adContent{
		Title:       state.Form.AdTitle,
		Description: state.Form.AdDescription,
		TargetURL:   state.Form.AdTargetURL,
		ImageURL:    state.Form.AdImageURL,
	})
	if err != nil {
		return models.NewValidationError("Please fill in all required ad details.")
	}
	return nil
}

func validateConsent(state *models.AdOrderState, _ int) error {
	if !state.Form.ConsentAgreed {
		return models.NewValidationError("You must agree to the terms and conditions to proceed.")
	}
	return nil
}

func validatePayment(state *models.AdOrderState, _ int) error {
	if !paymentMethods[state.Form.PaymentMethod] {
		return models.NewValidationError("Please choose a payment method.")
	}
	return nil
}

func (s *AdOrderService) load(ctx context.Context, sessionID string) (*models.AdOrderState, error) {
	var state models.AdOrderState
	found, err := s.store.Get(ctx, sessionID, repositories.KeyAdOrderWizard, &state)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.NewStateError("No ad package selected. Please choose a package from the Advertise page.")
	}
	return &state, nil
}

func (s *AdOrderService) save(ctx context.Context, sessionID string, state *models.AdOrderState) (*models.AdOrderView, error) {
	if err := s.store.Set(ctx, sessionID, repositories.KeyAdOrderWizard, state); err != nil {
		return nil, err
	}
	return s.view(state), nil
}

// editable loads the wizard and refuses changes once it has been submitted.
func (s *AdOrderService) editable(ctx context.Context, sessionID string) (*models.AdOrderState, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Position.Submitted {
		return nil, models.NewStateError("This order has already been submitted.")
	}
	return state, nil
}

func (s *AdOrderService) view(state *models.AdOrderState) *models.AdOrderView {
	step, sub := s.wizard.Labels(state.Position)
	v := &models.AdOrderView{
		Step:       step,
		SubStep:    sub,
		Submitted:  state.Position.Submitted,
		Form:       state.Form,
		PriceLabel: utils.FormatPrice(state.Form.CalculatedPrice),
	}
	for _, r := range state.Package.Runtime {
		v.Runtimes = append(v.Runtimes, r.Duration)
	}
	for _, d := range state.Package.Details {
		v.Levels = append(v.Levels, d.Level)
	}
	return v
}

// Start begins a new ad order from a package type or a serialized package
// descriptor. Prices always come from the server's pricing tables.
func (s *AdOrderService) Start(ctx context.Context, sessionID string, req models.AdStartRequest) (*models.AdOrderView, error) {
	adType := req.Type
	if req.Package != "" {
		desc, err := DecodePackageDescriptor(req.Package)
		if err != nil {
			return nil, err
		}
		adType = desc.Type
	}
	if adType == "" {
		return nil, models.NewValidationError("No ad package selected. Please choose a package from the Advertise page.")
	}

	pkg, err := s.pricing.Package(adType)
	if err != nil {
		return nil, err
	}

	state := &models.AdOrderState{
		Package: pkg,
		Form: models.AdFormData{
			AdType:        pkg.Type,
			PaymentMethod: models.PaymentCreditCard,
		},
	}
	if len(pkg.Runtime) > 0 {
		state.Form.AdRuntime = pkg.Runtime[0].Duration
	}
	if len(pkg.Details) > 0 {
		state.Form.AdDetailsLevel = pkg.Details[0].Level
	}
	state.Form.CalculatedPrice = s.pricing.Quote(pkg, state.Form.AdRuntime, state.Form.AdDetailsLevel)

	return s.save(ctx, sessionID, state)
}

func (s *AdOrderService) Get(ctx context.Context, sessionID string) (*models.AdOrderView, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(state), nil
}

// Select re-quotes for a runtime and details level. An unknown pair is kept
// with a zero price and reported, so Next stays blocked until it is fixed.
func (s *AdOrderService) Select(ctx context.Context, sessionID, runtime, level string) (*models.AdOrderView, error) {
	state, err := s.editable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Form.AdRuntime = runtime
	state.Form.AdDetailsLevel = level
	state.Form.CalculatedPrice = s.pricing.Quote(state.Package, runtime, level)

	view, err := s.save(ctx, sessionID, state)
	if err != nil {
		return nil, err
	}
	if state.Form.CalculatedPrice == 0 {
		return view, models.NewValidationError("Invalid runtime or detail level selected for price calculation.")
	}
	return view, nil
}

func (s *AdOrderService) UpdateContent(ctx context.Context, sessionID string, req models.AdContentRequest) (*models.AdOrderView, error) {
	state, err := s.editable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Form.AdTitle = req.Title
	state.Form.AdDescription = req.Description
	state.Form.AdTargetURL = req.TargetURL
	state.Form.AdImageURL = req.ImageURL
	return s.save(ctx, sessionID, state)
}

func (s *AdOrderService) SetCreativeImage(ctx context.Context, sessionID, imageURL string) (*models.AdOrderView, error) {
	state, err := s.editable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Form.AdImageURL = imageURL
	return s.save(ctx, sessionID, state)
}

func (s *AdOrderService) SetConsent(ctx context.Context, sessionID string, agreed bool) (*models.AdOrderView, error) {
	state, err := s.editable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Form.ConsentAgreed = agreed
	return s.save(ctx, sessionID, state)
}

func (s *AdOrderService) SetPaymentMethod(ctx context.Context, sessionID, method string) (*models.AdOrderView, error) {
	if !paymentMethods[method] {
		return nil, models.NewValidationError("Unknown payment method " + method + ".")
	}
	state, err := s.editable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Form.PaymentMethod = method
	return s.save(ctx, sessionID, state)
}

// Next validates the current position and moves forward one position.
// A failed validation leaves the wizard where it is.
func (s *AdOrderService) Next(ctx context.Context, sessionID string) (*models.AdOrderView, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.wizard.Next(state, &state.Position); err != nil {
		return s.view(state), err
	}
	return s.save(ctx, sessionID, state)
}

func (s *AdOrderService) Previous(ctx context.Context, sessionID string) (*models.AdOrderView, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.wizard.Previous(&state.Position); err != nil {
		return s.view(state), err
	}
	return s.save(ctx, sessionID, state)
}

func (s *AdOrderService) Summary(ctx context.Context, sessionID string) (*models.AdSummary, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return BuildAdSummary(state.Form), nil
}

func BuildAdSummary(form models.AdFormData) *models.AdSummary {
	consent := "No"
	if form.ConsentAgreed {
		consent = "Yes"
	}
	return &models.AdSummary{
		Type:          form.AdType,
		Runtime:       form.AdRuntime,
		DetailsLevel:  form.AdDetailsLevel,
		Price:         utils.FormatPrice(form.CalculatedPrice),
		Title:         utils.OrNA(form.AdTitle),
		Description:   utils.OrNA(form.AdDescription),
		TargetURL:     utils.OrNA(form.AdTargetURL),
		ImageURL:      utils.OrNA(form.AdImageURL),
		ConsentAgreed: consent,
		PaymentMethod: utils.TitleWords(form.PaymentMethod),
	}
}

// Submit places the ad order once, from the Summary step only. Without
// consent the wizard is sent back to the Consent step and nothing is recorded.
func (s *AdOrderService) Submit(ctx context.Context, sessionID string) (*models.AdOrderView, error) {
	state, err := s.editable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !state.Form.ConsentAgreed {
		s.wizard.Goto(&state.Position, AdStepConsent)
		view, saveErr := s.save(ctx, sessionID, state)
		if saveErr != nil {
			return nil, saveErr
		}
		return view, models.NewValidationError("Consent agreement is required.")
	}
	if !s.wizard.IsLast(state.Position) {
		return s.view(state), models.NewStateError("Please review the order summary before submitting.")
	}
	if err := s.wizard.ValidateAll(state); err != nil {
		return s.view(state), err
	}

	sub := models.AdOrderSubmission{
		AdFormData: state.Form,
		PriceLabel: utils.FormatPrice(state.Form.CalculatedPrice),
	}
	if _, err := s.submissions.Record(ctx, sessionID, models.KindAdOrder, sub); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendAdOrderNotification(sub); err != nil {
			s.log.Warn("ad order notification failed", zap.Error(err))
		}
	}

	state.Position.Submitted = true
	return s.save(ctx, sessionID, state)
}
