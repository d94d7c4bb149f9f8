package repositories

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lafamilia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestMemoryStateStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStateStore()

	var theme string
	found, err := store.Get(ctx, "s1", KeyTheme, &theme)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "s1", KeyTheme, "dark"))
	found, err = store.Get(ctx, "s1", KeyTheme, &theme)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", theme)

	var other string
	found, _ = store.Get(ctx, "s2", KeyTheme, &other)
	assert.False(t, found, "sessions are isolated")

	require.NoError(t, store.Delete(ctx, "s1", KeyTheme))
	found, _ = store.Get(ctx, "s1", KeyTheme, &theme)
	assert.False(t, found)
}

func TestContentStore_LoadsAndCaches(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileProducts, `[{"id":"1","name":"Mug","price":9.5,"inStock":3}]`)
	store := NewContentStore(dir, nil, zap.NewNop())
	ctx := context.Background()

	products, err := store.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mug", products[0].Name)

	writeFile(t, dir, FileProducts, `[]`)
	products, err = store.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1, "served from memory until invalidated")

	store.Invalidate(ctx)
	products, err = store.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestContentStore_LoadFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileClubs, `{not json`)
	writeFile(t, dir, FileNews, `{"id":"not-an-array"}`)
	store := NewContentStore(dir, nil, zap.NewNop())
	ctx := context.Background()

	_, err := store.Members(ctx)
	require.Error(t, err)
	assert.Equal(t, models.CodeLoadFailed, models.CodeOf(err))
	assert.Contains(t, err.Error(), FileMembers)

	_, err = store.Clubs(ctx)
	assert.Equal(t, models.CodeLoadFailed, models.CodeOf(err))

	_, err = store.News(ctx)
	assert.Equal(t, models.CodeLoadFailed, models.CodeOf(err))
}

func TestContentStore_BoardIsObject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileBoard, `{"boardMembers":[{"id":"b1","name":"Ana","title":"Chair","social":{"linkedin":"https://l.in/ana"}}],"executiveTeam":[]}`)
	store := NewContentStore(dir, nil, zap.NewNop())

	board, err := store.Board(context.Background())
	require.NoError(t, err)
	require.Len(t, board.BoardMembers, 1)
	assert.Equal(t, "https://l.in/ana", board.BoardMembers[0].Social.LinkedIn)
	assert.Empty(t, board.ExecutiveTeam)
}

func TestContentStore_ReloadReportsFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileProducts, `[]`)
	store := NewContentStore(dir, nil, zap.NewNop())

	err := store.Reload(context.Background())
	require.Error(t, err)
	assert.Equal(t, models.CodeLoadFailed, models.CodeOf(err))

	products, err := store.Products(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestWatchContent_InvalidatesAfterQuiet(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileNews, `[{"id":"n1","title":"Old","summary":"s","date":"2024-01-01"}]`)
	store := NewContentStore(dir, nil, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	news, err := store.News(ctx)
	require.NoError(t, err)
	require.Equal(t, "Old", news[0].Title)

	require.NoError(t, WatchContent(ctx, store, zap.NewNop()))
	writeFile(t, dir, FileNews, `[{"id":"n1","title":"New","summary":"s","date":"2024-01-01"}]`)

	assert.Eventually(t, func() bool {
		news, err := store.News(ctx)
		return err == nil && len(news) == 1 && news[0].Title == "New"
	}, 3*time.Second, 50*time.Millisecond)
}

func TestMemorySubmissionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySubmissionRepository()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, kind := range []string{models.KindReview, models.KindClubInterest, models.KindReview} {
		require.NoError(t, repo.Create(ctx, &models.Submission{
			ID:        string(rune('a' + i)),
			Kind:      kind,
			SessionID: "s",
			Payload:   json.RawMessage(`{}`),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	reviews, err := repo.List(ctx, models.KindReview, 10)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "c", reviews[0].ID, "newest first")

	all, err := repo.List(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
