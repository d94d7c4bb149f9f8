package models

type AdDetailLevel struct {
	Level       string   `json:"level" yaml:"level"`
	Features    []string `json:"features" yaml:"features"`
	PriceFactor float64  `json:"priceFactor" yaml:"priceFactor"`
}

type AdRuntime struct {
	Duration   string  `json:"duration" yaml:"duration"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

// AdPackage is one advertising product with its two pricing tables.
type AdPackage struct {
	Type        string          `json:"type" yaml:"type"`
	Description string          `json:"description" yaml:"description"`
	Details     []AdDetailLevel `json:"details" yaml:"details"`
	Runtime     []AdRuntime     `json:"runtime" yaml:"runtime"`
	BasePrice   float64         `json:"basePrice" yaml:"basePrice"`
}

const (
	PaymentCreditCard   = "credit-card"
	PaymentPayPal       = "paypal"
	PaymentMpesa        = "mpesa"
	PaymentBankTransfer = "bank-transfer"
)

type AdFormData struct {
	AdType          string  `json:"adType"`
	AdRuntime       string  `json:"adRuntime"`
	AdDetailsLevel  string  `json:"adDetailsLevel"`
	CalculatedPrice float64 `json:"calculatedPrice"`
	AdTitle         string  `json:"adTitle"`
	AdDescription   string  `json:"adDescription"`
	AdTargetURL     string  `json:"adTargetUrl"`
	AdImageURL      string  `json:"adImageUrl"`
	ConsentAgreed   bool    `json:"consentAgreed"`
	PaymentMethod   string  `json:"paymentMethod"`
}

// WizardPosition is the persisted cursor of a multi-step flow.
type WizardPosition struct {
	Step      int  `json:"step"`
	SubStep   int  `json:"subStep"`
	Submitted bool `json:"submitted"`
}

// AdOrderState is the per-session state of the ad-order wizard.
type AdOrderState struct {
	Package  AdPackage      `json:"package"`
	Form     AdFormData     `json:"form"`
	Position WizardPosition `json:"position"`
}

type AdOrderView struct {
	Step       string     `json:"step"`
	SubStep    string     `json:"subStep,omitempty"`
	Submitted  bool       `json:"submitted"`
	Form       AdFormData `json:"form"`
	PriceLabel string     `json:"priceLabel"`
	Runtimes   []string   `json:"runtimes"`
	Levels     []string   `json:"levels"`
}

type AdSummary struct {
	Type          string `json:"type"`
	Runtime       string `json:"runtime"`
	DetailsLevel  string `json:"detailsLevel"`
	Price         string `json:"price"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	TargetURL     string `json:"targetUrl"`
	ImageURL      string `json:"imageUrl"`
	ConsentAgreed string `json:"consentAgreed"`
	PaymentMethod string `json:"paymentMethod"`
}

type AdQuoteRequest struct {
	Type         string `form:"type" binding:"required"`
	Runtime      string `form:"runtime" binding:"required"`
	DetailsLevel string `form:"detailsLevel" binding:"required"`
}

type AdStartRequest struct {
	Type    string `json:"type" form:"type"`
	Package string `json:"package" form:"package"`
}

type AdSelectRequest struct {
	Runtime      string `json:"runtime" binding:"required"`
	DetailsLevel string `json:"detailsLevel" binding:"required"`
}

type AdContentRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	TargetURL   string `json:"targetUrl" form:"targetUrl"`
	ImageURL    string `json:"imageUrl" form:"imageUrl"`
}

type ConsentRequest struct {
	Agreed bool `json:"agreed"`
}

type PaymentMethodRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}
