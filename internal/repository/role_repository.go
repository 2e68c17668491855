package repository

import (
	"context"
	"errors"
	"time"

	"talent-match/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrRoleNotFound = errors.New("role not found")

type JobRole struct {
	ID          int64
	Title       string
	Description string
	Department  string
	CreatedAt   time.Time
}

type RoleRequirement struct {
	RoleID             int64
	SkillID            int64
	SkillName          string
	Importance         float64
	MinimumProficiency int
}

// RoleWithRequirements bundles a role and its requirement set for the
// ranking and coverage usecases.
type RoleWithRequirements struct {
	Role         JobRole
	Requirements []RoleRequirement
}

type RoleRepository interface {
	FindByID(ctx context.Context, id int64) (JobRole, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, department string, limit, offset int) ([]JobRole, error)
	RequirementsByRoleID(ctx context.Context, roleID int64) ([]RoleRequirement, error)
	AllWithRequirements(ctx context.Context, department string) ([]RoleWithRequirements, error)
}

type PostgresRoleRepository struct {
	db database.DB
}

func NewPostgresRoleRepository(db database.DB) *PostgresRoleRepository {
	return &PostgresRoleRepository{db: db}
}

func (r *PostgresRoleRepository) FindByID(ctx context.Context, id int64) (JobRole, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, COALESCE(description, ''), COALESCE(department, ''), created_at
		 FROM job_roles WHERE id = $1`,
		id,
	)

	var role JobRole
	if err := row.Scan(&role.ID, &role.Title, &role.Description, &role.Department, &role.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return JobRole{}, ErrRoleNotFound
		}
		return JobRole{}, err
	}
	return role, nil
}

func (r *PostgresRoleRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM job_roles WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresRoleRepository) List(ctx context.Context, department string, limit, offset int) ([]JobRole, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, COALESCE(description, ''), COALESCE(department, ''), created_at
		 FROM job_roles
		 WHERE ($1 = '' OR department = $1)
		 ORDER BY id ASC
		 LIMIT $2 OFFSET $3`,
		department, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobRole, 0)
	for rows.Next() {
		var role JobRole
		if err := rows.Scan(&role.ID, &role.Title, &role.Description, &role.Department, &role.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRoleRepository) RequirementsByRoleID(ctx context.Context, roleID int64) ([]RoleRequirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT rs.role_id, rs.skill_id, s.name, rs.importance, rs.minimum_proficiency
		 FROM role_skill_requirements rs
		 JOIN skills s ON s.id = rs.skill_id
		 WHERE rs.role_id = $1
		 ORDER BY rs.skill_id ASC`,
		roleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RoleRequirement, 0)
	for rows.Next() {
		var req RoleRequirement
		if err := rows.Scan(&req.RoleID, &req.SkillID, &req.SkillName, &req.Importance, &req.MinimumProficiency); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AllWithRequirements loads every role (optionally one department) with its
// requirement set in a single pass, ordered by role id then skill id.
func (r *PostgresRoleRepository) AllWithRequirements(ctx context.Context, department string) ([]RoleWithRequirements, error) {
	rows, err := r.db.Query(ctx,
		`SELECT jr.id, jr.title, COALESCE(jr.description, ''), COALESCE(jr.department, ''), jr.created_at,
			rs.skill_id, COALESCE(s.name, ''), COALESCE(rs.importance, 0), COALESCE(rs.minimum_proficiency, 0)
		 FROM job_roles jr
		 LEFT JOIN role_skill_requirements rs ON rs.role_id = jr.id
		 LEFT JOIN skills s ON s.id = rs.skill_id
		 WHERE ($1 = '' OR jr.department = $1)
		 ORDER BY jr.id ASC, rs.skill_id ASC`,
		department,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RoleWithRequirements, 0)
	var current *RoleWithRequirements

	for rows.Next() {
		var (
			role    JobRole
			skillID *int64
			name    string
			imp     float64
			minProf int
		)
		if err := rows.Scan(&role.ID, &role.Title, &role.Description, &role.Department, &role.CreatedAt,
			&skillID, &name, &imp, &minProf); err != nil {
			return nil, err
		}

		if current == nil || current.Role.ID != role.ID {
			out = append(out, RoleWithRequirements{Role: role, Requirements: make([]RoleRequirement, 0, 4)})
			current = &out[len(out)-1]
		}

		if skillID == nil {
			continue
		}
		current.Requirements = append(current.Requirements, RoleRequirement{
			RoleID:             role.ID,
			SkillID:            *skillID,
			SkillName:          name,
			Importance:         imp,
			MinimumProficiency: minProf,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
