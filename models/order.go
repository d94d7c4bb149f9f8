package models

import "time"

const (
	ShippingLocalPickup = "local-pickup"
	ShippingDelivery    = "delivery"
)

type CustomerDetails struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	ShippingAddress string `json:"shippingAddress" validate:"required"`
}

type Order struct {
	OrderID         string          `json:"orderId"`
	Date            time.Time       `json:"date"`
	Items           []CartItem      `json:"items"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
	ShippingMethod  string          `json:"shippingMethod"`
	ShippingCompany string          `json:"shippingCompany"`
	ShippingFee     float64         `json:"shippingFee"`
	PaymentMethod   string          `json:"paymentMethod"`
	CartTotal       float64         `json:"cartTotal"`
	FinalTotal      float64         `json:"finalTotal"`
}

// CheckoutData is the state collected by the iMall checkout wizard.
type CheckoutData struct {
	CustomerDetails
	ShippingMethod  string  `json:"shippingMethod"`
	ShippingCompany string  `json:"shippingCompany"`
	ShippingFee     float64 `json:"shippingFee"`
	PaymentMethod   string  `json:"paymentMethod"`
	CartTotal       float64 `json:"cartTotal"`
	FinalTotal      float64 `json:"finalTotal"`
}

type CheckoutDetailsRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	ShippingAddress string `json:"shippingAddress"`
}

type CheckoutShippingRequest struct {
	ShippingMethod  string `json:"shippingMethod" binding:"required,oneof=local-pickup delivery"`
	ShippingCompany string `json:"shippingCompany"`
}

type CheckoutPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

type ShippingCompany struct {
	Name string  `json:"name"`
	Fee  float64 `json:"fee"`
}

// CheckoutState is the per-session state of the checkout wizard.
type CheckoutState struct {
	Data     CheckoutData   `json:"data"`
	Position WizardPosition `json:"position"`
}

type CheckoutView struct {
	Step        string            `json:"step"`
	Data        CheckoutData      `json:"data"`
	Companies   []ShippingCompany `json:"companies"`
	TotalLabel  string            `json:"totalLabel"`
	ShippingFee string            `json:"shippingFeeLabel"`
}
