package repository

import (
	"context"
	"time"

	"talent-match/internal/database"

	"github.com/google/uuid"
)

type MatchHistoryRecord struct {
	ID              uuid.UUID
	CandidateID     int64
	RoleID          int64
	MatchPercentage float64
	MatchedAt       time.Time
}

// MatchHistoryActivity is the joined form used by the dashboard's recent
// activity feed.
type MatchHistoryActivity struct {
	ID              uuid.UUID
	CandidateID     int64
	CandidateName   string
	RoleID          int64
	RoleTitle       string
	MatchPercentage float64
	MatchedAt       time.Time
}

type MatchHistoryRepository interface {
	Insert(ctx context.Context, record MatchHistoryRecord) error
	ListRecent(ctx context.Context, limit int) ([]MatchHistoryActivity, error)
}

type PostgresMatchHistoryRepository struct {
	db database.DB
}

func NewPostgresMatchHistoryRepository(db database.DB) *PostgresMatchHistoryRepository {
	return &PostgresMatchHistoryRepository{db: db}
}

func (r *PostgresMatchHistoryRepository) Insert(ctx context.Context, record MatchHistoryRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.MatchedAt.IsZero() {
		record.MatchedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO match_history (id, candidate_id, role_id, match_percentage, matched_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		record.ID, record.CandidateID, record.RoleID, record.MatchPercentage, record.MatchedAt,
	)
	return err
}

func (r *PostgresMatchHistoryRepository) ListRecent(ctx context.Context, limit int) ([]MatchHistoryActivity, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(ctx,
		`SELECT mh.id, mh.candidate_id, COALESCE(u.full_name, ''), mh.role_id, COALESCE(jr.title, ''),
			mh.match_percentage, mh.matched_at
		 FROM match_history mh
		 LEFT JOIN users u ON u.id = mh.candidate_id
		 LEFT JOIN job_roles jr ON jr.id = mh.role_id
		 ORDER BY mh.matched_at DESC, mh.id ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MatchHistoryActivity, 0, limit)
	for rows.Next() {
		var act MatchHistoryActivity
		if err := rows.Scan(&act.ID, &act.CandidateID, &act.CandidateName, &act.RoleID, &act.RoleTitle,
			&act.MatchPercentage, &act.MatchedAt); err != nil {
			return nil, err
		}
		out = append(out, act)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
