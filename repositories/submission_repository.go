package repositories

import (
	"context"
	"sort"
	"sync"

	"lafamilia/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SubmissionRepository interface {
	Create(ctx context.Context, sub *models.Submission) error
	List(ctx context.Context, kind string, limit int) ([]models.Submission, error)
}

type PostgresSubmissionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSubmissionRepository(db *pgxpool.Pool) *PostgresSubmissionRepository {
	return &PostgresSubmissionRepository{db: db}
}

func (r *PostgresSubmissionRepository) Create(ctx context.Context, sub *models.Submission) error {
	query := `
		INSERT INTO submissions (id, kind, session_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, sub.ID, sub.Kind, sub.SessionID, []byte(sub.Payload), sub.CreatedAt)
	return err
}

// List returns the newest submissions first; an empty kind lists all kinds.
func (r *PostgresSubmissionRepository) List(ctx context.Context, kind string, limit int) ([]models.Submission, error) {
	query := `
		SELECT id::text, kind, session_id, payload, created_at FROM submissions
		WHERE ($1 = '' OR kind = $1)
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, kind, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []models.Submission{}
	for rows.Next() {
		var s models.Submission
		var payload []byte
		if err := rows.Scan(&s.ID, &s.Kind, &s.SessionID, &payload, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.Payload = payload
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

type MemorySubmissionRepository struct {
	mu   sync.RWMutex
	subs []models.Submission
}

func NewMemorySubmissionRepository() *MemorySubmissionRepository {
	return &MemorySubmissionRepository{}
}

func (r *MemorySubmissionRepository) Create(_ context.Context, sub *models.Submission) error {
	r.mu.Lock()
	r.subs = append(r.subs, *sub)
	r.mu.Unlock()
	return nil
}

func (r *MemorySubmissionRepository) List(_ context.Context, kind string, limit int) ([]models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := []models.Submission{}
	for _, s := range r.subs {
		if kind == "" || s.Kind == kind {
			subs = append(subs, s)
		}
	}
	sort.SliceStable(subs, func(i, j int) bool { return subs[i].CreatedAt.After(subs[j].CreatedAt) })
	if limit > 0 && len(subs) > limit {
		subs = subs[:limit]
	}
	return subs, nil
}
