package repository

import (
	"context"
	"errors"
	"time"

	"talent-match/internal/database"
)

var ErrUserSkillNotFound = errors.New("user skill not found")

// Possession is one (candidate, skill) proficiency row. The table keys on
// (user_id, skill_id), so a candidate never holds two rows for one skill.
type Possession struct {
	UserID       int64
	SkillID      int64
	SkillName    string
	Proficiency  int
	Verified     bool
	Source       string
	LastVerified *time.Time
}

// PopulationMember is one candidate with their full possession set, used by
// the ranking and coverage usecases.
type PopulationMember struct {
	UserID      int64
	FullName    string
	Department  string
	Possessions []Possession
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID int64) ([]Possession, error)
	Upsert(ctx context.Context, p Possession) (Possession, error)
	Delete(ctx context.Context, userID, skillID int64) error
	Population(ctx context.Context) ([]PopulationMember, error)
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID int64) ([]Possession, error) {
	rows, err := r.db.Query(ctx,
		`SELECT us.user_id, us.skill_id, s.name, us.proficiency, us.is_verified, us.source, us.last_verified
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY us.skill_id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Possession, 0)
	for rows.Next() {
		var p Possession
		if err := rows.Scan(&p.UserID, &p.SkillID, &p.SkillName, &p.Proficiency, &p.Verified, &p.Source, &p.LastVerified); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert writes a possession; a later write for the same (user, skill)
// replaces proficiency, verification and source instead of duplicating.
func (r *PostgresUserSkillRepository) Upsert(ctx context.Context, p Possession) (Possession, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_skills (user_id, skill_id, proficiency, is_verified, source, last_verified)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, skill_id) DO UPDATE SET
			proficiency = EXCLUDED.proficiency,
			is_verified = EXCLUDED.is_verified,
			source = EXCLUDED.source,
			last_verified = EXCLUDED.last_verified`,
		p.UserID, p.SkillID, p.Proficiency, p.Verified, p.Source, p.LastVerified,
	)
	if err != nil {
		return Possession{}, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT us.user_id, us.skill_id, s.name, us.proficiency, us.is_verified, us.source, us.last_verified
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1 AND us.skill_id = $2`,
		p.UserID, p.SkillID,
	)

	var saved Possession
	if err := row.Scan(&saved.UserID, &saved.SkillID, &saved.SkillName, &saved.Proficiency, &saved.Verified, &saved.Source, &saved.LastVerified); err != nil {
		return Possession{}, err
	}
	return saved, nil
}

func (r *PostgresUserSkillRepository) Delete(ctx context.Context, userID, skillID int64) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM user_skills WHERE user_id = $1 AND skill_id = $2`,
		userID, skillID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserSkillNotFound
	}
	return nil
}

// Population loads every candidate with their possessions in one query.
// Members without any recorded skill are still returned, with an empty set,
// so coverage denominators count the whole population.
func (r *PostgresUserSkillRepository) Population(ctx context.Context) ([]PopulationMember, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.id, u.full_name, COALESCE(u.department, ''),
			us.skill_id, COALESCE(s.name, ''), COALESCE(us.proficiency, 0),
			COALESCE(us.is_verified, FALSE), COALESCE(us.source, '')
		 FROM users u
		 LEFT JOIN user_skills us ON us.user_id = u.id
		 LEFT JOIN skills s ON s.id = us.skill_id
		 ORDER BY u.id ASC, us.skill_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PopulationMember, 0)
	var current *PopulationMember

	for rows.Next() {
		var (
			userID      int64
			fullName    string
			department  string
			skillID     *int64
			skillName   string
			proficiency int
			verified    bool
			source      string
		)
		if err := rows.Scan(&userID, &fullName, &department, &skillID, &skillName, &proficiency, &verified, &source); err != nil {
			return nil, err
		}

		if current == nil || current.UserID != userID {
			out = append(out, PopulationMember{
				UserID:      userID,
				FullName:    fullName,
				Department:  department,
				Possessions: make([]Possession, 0, 4),
			})
			current = &out[len(out)-1]
		}

		if skillID == nil {
			continue
		}
		current.Possessions = append(current.Possessions, Possession{
			UserID:      userID,
			SkillID:     *skillID,
			SkillName:   skillName,
			Proficiency: proficiency,
			Verified:    verified,
			Source:      source,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
