package models

import (
	"encoding/json"
	"time"
)

const (
	KindEventRegistration = "event_registration"
	KindClubInterest      = "club_interest"
	KindReview            = "review"
	KindAdOrder           = "ad_order"
)

type Submission struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	SessionID string          `json:"sessionId"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}

type EventRegistrationRequest struct {
	EventID          string   `json:"eventId"`
	FullName         string   `json:"fullName" binding:"required"`
	Email            string   `json:"email" binding:"required,email"`
	Phone            string   `json:"phone"`
	Organization     string   `json:"organization"`
	RegistrationType string   `json:"registrationType" binding:"required"`
	Transport        string   `json:"transport"`
	Snacks           []string `json:"snacks"`
}

type EventRegistration struct {
	EventRegistrationRequest
	EventName        string  `json:"eventName"`
	RegistrationCost float64 `json:"registrationCost"`
	TransportCost    float64 `json:"transportCost"`
	SnacksCost       float64 `json:"snacksCost"`
	TotalCost        float64 `json:"totalCost"`
	TotalLabel       string  `json:"totalLabel"`
	SubmissionDate   string  `json:"submissionDate"`
}

type ClubInterestRequest struct {
	ClubID            string `json:"clubId"`
	FullName          string `json:"fullName" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Phone             string `json:"phone"`
	ChamberMembership string `json:"chamberMembership"`
	Comments          string `json:"comments"`
}

type ClubInterest struct {
	ClubInterestRequest
	ClubName       string  `json:"clubName"`
	EstimatedFee   float64 `json:"estimatedFee"`
	SubmissionDate string  `json:"submissionDate"`
}

type ReviewRequest struct {
	ReviewerName  string `json:"reviewerName" binding:"required"`
	ReviewerEmail string `json:"reviewerEmail" binding:"required,email"`
	MemberID      string `json:"memberId"`
	Rating        int    `json:"rating"`
	ReviewText    string `json:"reviewText" binding:"required"`
}

type ReviewSubmission struct {
	ReviewRequest
	MemberName string `json:"memberName"`
	Date       string `json:"date"`
}

type AdOrderSubmission struct {
	AdFormData
	PriceLabel string `json:"priceLabel"`
}
