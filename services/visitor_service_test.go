package services

import (
	"context"
	"testing"
	"time"

	"lafamilia/models"
	"lafamilia/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitMessage(t *testing.T) {
	const day = int64(msPerDay)
	now := int64(1_750_000_000_000)

	assert.Equal(t, "Back so soon! Awesome!", VisitMessage(now-day/4, now))
	assert.Equal(t, "You last visited 1 day ago.", VisitMessage(now-day, now))
	assert.Equal(t, "You last visited 1 day ago.", VisitMessage(now-day*3/2+1, now), "rounds to the nearest day")
	assert.Equal(t, "You last visited 2 days ago.", VisitMessage(now-day*3/2, now))
	assert.Equal(t, "You last visited 30 days ago.", VisitMessage(now-30*day, now))
}

func TestVisit_RecordsLastVisit(t *testing.T) {
	ctx := context.Background()
	svc := NewVisitorService(repositories.NewMemoryStateStore())
	first := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	resp, err := svc.Visit(ctx, "s1", first)
	require.NoError(t, err)
	assert.True(t, resp.FirstVisit)
	assert.Equal(t, "Welcome! Let us know if you have any questions.", resp.Message)

	resp, err = svc.Visit(ctx, "s1", first.Add(72*time.Hour))
	require.NoError(t, err)
	assert.False(t, resp.FirstVisit)
	assert.Equal(t, first.UnixMilli(), resp.LastVisitDate)
	assert.Equal(t, "You last visited 3 days ago.", resp.Message)
}

func TestTheme(t *testing.T) {
	ctx := context.Background()
	svc := NewVisitorService(repositories.NewMemoryStateStore())

	theme, err := svc.Theme(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	require.NoError(t, svc.SetTheme(ctx, "s1", ThemeDark))
	theme, err = svc.Theme(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	err = svc.SetTheme(ctx, "s1", "blue")
	assert.Equal(t, models.CodeValidationFailed, models.CodeOf(err))
}
