package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"lafamilia/models"
	"lafamilia/repositories"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	msPerDay = 24 * 60 * 60 * 1000
)

type VisitorService struct {
	store repositories.StateStore
}

func NewVisitorService(store repositories.StateStore) *VisitorService {
	return &VisitorService{store: store}
}

// VisitMessage phrases the gap between two visits in whole days, rounded
// to the nearest day.
func VisitMessage(lastMs, nowMs int64) string {
	days := int64(math.Round(math.Abs(float64(nowMs-lastMs)) / msPerDay))
	switch {
	case days < 1:
		return "Back so soon! Awesome!"
	case days == 1:
		return "You last visited 1 day ago."
	}
	return fmt.Sprintf("You last visited %d days ago.", days)
}

// Visit reports the message for this visit and records now as the last
// visit.
func (s *VisitorService) Visit(ctx context.Context, sessionID string, now time.Time) (*models.VisitResponse, error) {
	var last int64
	found, err := s.store.Get(ctx, sessionID, repositories.KeyLastVisitDate, &last)
	if err != nil {
		return nil, err
	}

	nowMs := now.UnixMilli()
	resp := &models.VisitResponse{FirstVisit: !found}
	if found {
		resp.Message = VisitMessage(last, nowMs)
		resp.LastVisitDate = last
	} else {
		resp.Message = "Welcome! Let us know if you have any questions."
	}

	if err := s.store.Set(ctx, sessionID, repositories.KeyLastVisitDate, nowMs); err != nil {
		return nil, err
	}
	return resp, nil
}

// Theme returns the saved theme, light when none was saved.
func (s *VisitorService) Theme(ctx context.Context, sessionID string) (string, error) {
	theme := ThemeLight
	if _, err := s.store.Get(ctx, sessionID, repositories.KeyTheme, &theme); err != nil {
		return "", err
	}
	return theme, nil
}

func (s *VisitorService) SetTheme(ctx context.Context, sessionID, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return models.NewValidationError("Theme must be light or dark.")
	}
	return s.store.Set(ctx, sessionID, repositories.KeyTheme, theme)
}
