package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lafamilia/models"
	"lafamilia/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const transportNone = "None"

type SubmissionService struct {
	content *repositories.ContentStore
	repo    repositories.SubmissionRepository
	log     *zap.Logger
	now     func() time.Time
}

func NewSubmissionService(content *repositories.ContentStore, repo repositories.SubmissionRepository, log *zap.Logger) *SubmissionService {
	return &SubmissionService{content: content, repo: repo, log: log, now: time.Now}
}

// Record stores payload as a submission of the given kind.
func (s *SubmissionService) Record(ctx context.Context, sessionID, kind string, payload interface{}) (*models.Submission, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s submission: %w", kind, err)
	}

	sub := &models.Submission{
		ID:        uuid.NewString(),
		Kind:      kind,
		SessionID: sessionID,
		Payload:   raw,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("store %s submission: %w", kind, err)
	}

	s.log.Info("submission recorded", zap.String("kind", kind), zap.String("id", sub.ID), zap.String("session_id", sessionID))
	return sub, nil
}

func (s *SubmissionService) List(ctx context.Context, kind string, limit int) ([]models.Submission, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.List(ctx, kind, limit)
}

// QuoteRegistration prices an event registration: the registration type fee
// plus the chosen transport fee plus every selected snack.
func (s *SubmissionService) QuoteRegistration(ctx context.Context, req models.EventRegistrationRequest) (*models.EventRegistration, error) {
	events, err := s.content.Events(ctx)
	if err != nil {
		return nil, err
	}
	var event *models.Event
	for i := range events {
		if events[i].ID == req.EventID {
			event = &events[i]
			break
		}
	}
	if event == nil {
		return nil, models.NewNotFoundError("event", req.EventID)
	}

	reg := &models.EventRegistration{EventRegistrationRequest: req, EventName: event.Name}

	fee, ok := event.Pricing[req.RegistrationType]
	if !ok {
		return nil, models.NewValidationError(fmt.Sprintf("Unknown registration type %q for %s.", req.RegistrationType, event.Name))
	}
	reg.RegistrationCost = fee

	if req.Transport != "" && req.Transport != transportNone {
		found := false
		for _, t := range event.TransportOptions {
			if t.Type == req.Transport {
				reg.TransportCost = t.Fee
				found = true
				break
			}
		}
		if !found {
			return nil, models.NewValidationError(fmt.Sprintf("Unknown transport option %q.", req.Transport))
		}
	}

	for _, name := range req.Snacks {
		found := false
		for _, snack := range event.SnacksAvailable {
			if snack.Name == name {
				reg.SnacksCost += snack.Price
				found = true
				break
			}
		}
		if !found {
			return nil, models.NewValidationError(fmt.Sprintf("Unknown snack %q.", name))
		}
	}

	reg.TotalCost = reg.RegistrationCost + reg.TransportCost + reg.SnacksCost
	reg.TotalLabel = "KES " + decimal.NewFromFloat(reg.TotalCost).StringFixed(2)
	return reg, nil
}

func (s *SubmissionService) RegisterForEvent(ctx context.Context, sessionID string, req models.EventRegistrationRequest) (*models.EventRegistration, error) {
	reg, err := s.QuoteRegistration(ctx, req)
	if err != nil {
		return nil, err
	}
	reg.SubmissionDate = s.now().UTC().Format(time.RFC3339)

	if _, err := s.Record(ctx, sessionID, models.KindEventRegistration, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// EstimateClubFee is the joining fee for a chamber membership level, or 0
// when the club lists no fee for it.
func EstimateClubFee(club models.Club, level string) float64 {
	return club.JoiningFees[level]
}

func (s *SubmissionService) JoinClub(ctx context.Context, sessionID string, req models.ClubInterestRequest) (*models.ClubInterest, error) {
	clubs, err := s.content.Clubs(ctx)
	if err != nil {
		return nil, err
	}
	var club *models.Club
	for i := range clubs {
		if clubs[i].ID == req.ClubID {
			club = &clubs[i]
			break
		}
	}
	if club == nil {
		return nil, models.NewNotFoundError("club", req.ClubID)
	}

	interest := &models.ClubInterest{
		ClubInterestRequest: req,
		ClubName:            club.Name,
		EstimatedFee:        EstimateClubFee(*club, req.ChamberMembership),
		SubmissionDate:      s.now().UTC().Format(time.RFC3339),
	}
	if _, err := s.Record(ctx, sessionID, models.KindClubInterest, interest); err != nil {
		return nil, err
	}
	return interest, nil
}

func (s *SubmissionService) SubmitReview(ctx context.Context, sessionID string, req models.ReviewRequest) (*models.ReviewSubmission, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, models.NewValidationError("Please select a rating for the member.")
	}
	if req.MemberID == "" {
		return nil, models.NewValidationError("Please select a member to review.")
	}

	members, err := s.content.Members(ctx)
	if err != nil {
		return nil, err
	}
	var member *models.Member
	for i := range members {
		if members[i].ID == req.MemberID {
			member = &members[i]
			break
		}
	}
	if member == nil {
		return nil, models.NewNotFoundError("member", req.MemberID)
	}

	review := &models.ReviewSubmission{
		ReviewRequest: req,
		MemberName:    member.Name,
		Date:          s.now().UTC().Format("2006-01-02"),
	}
	if _, err := s.Record(ctx, sessionID, models.KindReview, review); err != nil {
		return nil, err
	}
	return review, nil
}
