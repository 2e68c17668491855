package repository

import (
	"context"
	"errors"

	"talent-match/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrSkillNotFound = errors.New("skill not found")

type Skill struct {
	ID           int64
	Name         string
	Description  string
	CategoryID   int64
	CategoryName string
}

type SkillRepository interface {
	FindByID(ctx context.Context, id int64) (Skill, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id int64) (Skill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT s.id, s.name, COALESCE(s.description, ''), s.category_id, c.name
		 FROM skills s
		 JOIN skill_categories c ON c.id = s.category_id
		 WHERE s.id = $1`,
		id,
	)

	var skill Skill
	if err := row.Scan(&skill.ID, &skill.Name, &skill.Description, &skill.CategoryID, &skill.CategoryName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return skill, nil
}

func (r *PostgresSkillRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CountByCategory tallies distinct skills held by at least one user,
// grouped by skill category. Feeds the dashboard distribution chart.
func (r *PostgresSkillRepository) CountByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.name, COUNT(DISTINCT us.skill_id)
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 JOIN skill_categories c ON c.id = s.category_id
		 GROUP BY c.name
		 ORDER BY c.name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		out[name] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
