package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"lafamilia/models"

	"go.uber.org/zap"
)

const (
	FileMembers   = "members.json"
	FileClubs     = "clubs.json"
	FileBoard     = "board.json"
	FileDiscover  = "discover.json"
	FileBlogPosts = "blog-posts.json"
	FileEvents    = "events.json"
	FileNews      = "news.json"
	FileProducts  = "imall-products.json"
)

var AllContentFiles = []string{
	FileMembers, FileClubs, FileBoard, FileDiscover,
	FileBlogPosts, FileEvents, FileNews, FileProducts,
}

// ContentStore reads the JSON data sets from disk on first use and keeps the
// decoded values until Invalidate is called.
type ContentStore struct {
	dir   string
	cache *ContentCache
	log   *zap.Logger

	mu   sync.RWMutex
	sets map[string]interface{}
}

func NewContentStore(dir string, cache *ContentCache, log *zap.Logger) *ContentStore {
	return &ContentStore{
		dir:   dir,
		cache: cache,
		log:   log,
		sets:  map[string]interface{}{},
	}
}

func (s *ContentStore) Dir() string {
	return s.dir
}

func load[T any](ctx context.Context, s *ContentStore, file string) (T, error) {
	var zero T

	s.mu.RLock()
	cached, ok := s.sets[file]
	s.mu.RUnlock()
	if ok {
		return cached.(T), nil
	}

	raw, err := s.readRaw(ctx, file)
	if err != nil {
		return zero, models.NewLoadError(file, err)
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return zero, models.NewLoadError(file, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, file, raw); err != nil {
			s.log.Warn("content cache write failed", zap.String("file", file), zap.Error(err))
		}
	}

	s.mu.Lock()
	s.sets[file] = value
	s.mu.Unlock()
	return value, nil
}

func (s *ContentStore) readRaw(ctx context.Context, file string) ([]byte, error) {
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, file); ok {
			return raw, nil
		}
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, file))
	if err != nil {
		return nil, err
	}
	s.log.Debug("content loaded from disk", zap.String("file", file), zap.Int("bytes", len(raw)))
	return raw, nil
}

func (s *ContentStore) Products(ctx context.Context) ([]models.Product, error) {
	return load[[]models.Product](ctx, s, FileProducts)
}

func (s *ContentStore) Members(ctx context.Context) ([]models.Member, error) {
	return load[[]models.Member](ctx, s, FileMembers)
}

func (s *ContentStore) Clubs(ctx context.Context) ([]models.Club, error) {
	return load[[]models.Club](ctx, s, FileClubs)
}

func (s *ContentStore) Events(ctx context.Context) ([]models.Event, error) {
	return load[[]models.Event](ctx, s, FileEvents)
}

func (s *ContentStore) BlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	return load[[]models.BlogPost](ctx, s, FileBlogPosts)
}

func (s *ContentStore) News(ctx context.Context) ([]models.NewsArticle, error) {
	return load[[]models.NewsArticle](ctx, s, FileNews)
}

func (s *ContentStore) Discover(ctx context.Context) ([]models.DiscoverItem, error) {
	return load[[]models.DiscoverItem](ctx, s, FileDiscover)
}

func (s *ContentStore) Board(ctx context.Context) (models.Board, error) {
	return load[models.Board](ctx, s, FileBoard)
}

// Invalidate drops every decoded data set and the shared cache entries.
func (s *ContentStore) Invalidate(ctx context.Context) {
	s.mu.Lock()
	s.sets = map[string]interface{}{}
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn("content cache invalidation failed", zap.Error(err))
		}
	}
	s.log.Info("content invalidated", zap.String("dir", s.dir))
}

// Reload invalidates and eagerly loads every data set. Files that fail are
// reported together; the others stay loaded.
func (s *ContentStore) Reload(ctx context.Context) error {
	s.Invalidate(ctx)

	loaders := map[string]func(context.Context) error{
		FileProducts:  func(ctx context.Context) error { _, err := s.Products(ctx); return err },
		FileMembers:   func(ctx context.Context) error { _, err := s.Members(ctx); return err },
		FileClubs:     func(ctx context.Context) error { _, err := s.Clubs(ctx); return err },
		FileEvents:    func(ctx context.Context) error { _, err := s.Events(ctx); return err },
		FileBlogPosts: func(ctx context.Context) error { _, err := s.BlogPosts(ctx); return err },
		FileNews:      func(ctx context.Context) error { _, err := s.News(ctx); return err },
		FileDiscover:  func(ctx context.Context) error { _, err := s.Discover(ctx); return err },
		FileBoard:     func(ctx context.Context) error { _, err := s.Board(ctx); return err },
	}

	var failed []string
	for _, file := range AllContentFiles {
		if err := loaders[file](ctx); err != nil {
			s.log.Error("content reload failed", zap.String("file", file), zap.Error(err))
			failed = append(failed, file)
		}
	}
	if len(failed) > 0 {
		return models.NewLoadError(fmt.Sprintf("%v", failed), nil)
	}
	return nil
}
