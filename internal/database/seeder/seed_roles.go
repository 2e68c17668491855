package seeder

import (
	"context"
	"fmt"

	"talent-match/internal/database"
)

// RolesSeeder loads the demo job roles with their weighted skill
// requirements. Skills are referenced by name so the seeder does not depend
// on generated ids.
type RolesSeeder struct{}

func (RolesSeeder) Name() string { return "roles" }

type seedRequirement struct {
	Skill      string
	Importance float64
	MinProf    int
}

var defaultRoles = []struct {
	Title        string
	Description  string
	Department   string
	Requirements []seedRequirement
}{
	{
		Title:       "Backend Engineer",
		Description: "Builds and operates backend services",
		Department:  "Engineering",
		Requirements: []seedRequirement{
			{Skill: "Go", Importance: 5, MinProf: 3},
			{Skill: "SQL", Importance: 4, MinProf: 3},
			{Skill: "PostgreSQL", Importance: 3, MinProf: 2},
			{Skill: "Docker", Importance: 2, MinProf: 2},
		},
	},
	{
		Title:       "Platform Engineer",
		Description: "Owns deployment infrastructure and tooling",
		Department:  "Engineering",
		Requirements: []seedRequirement{
			{Skill: "Kubernetes", Importance: 5, MinProf: 3},
			{Skill: "Terraform", Importance: 4, MinProf: 3},
			{Skill: "Docker", Importance: 4, MinProf: 3},
			{Skill: "AWS", Importance: 3, MinProf: 2},
			{Skill: "Go", Importance: 2, MinProf: 2},
		},
	},
	{
		Title:       "Data Engineer",
		Description: "Builds data pipelines and warehouses",
		Department:  "Data",
		Requirements: []seedRequirement{
			{Skill: "Python", Importance: 5, MinProf: 3},
			{Skill: "SQL", Importance: 5, MinProf: 4},
			{Skill: "GCP", Importance: 3, MinProf: 2},
		},
	},
	{
		Title:       "Engineering Manager",
		Description: "Leads an engineering team",
		Department:  "Engineering",
		Requirements: []seedRequirement{
			{Skill: "Leadership", Importance: 5, MinProf: 4},
			{Skill: "Communication", Importance: 5, MinProf: 4},
			{Skill: "Go", Importance: 2, MinProf: 2},
		},
	},
}

func (RolesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "role_skill_requirements",
		"role_id", "skill_id", "importance", "minimum_proficiency"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, role := range defaultRoles {
		// Titles are not unique at the schema level, so guard by hand to
		// keep reruns from duplicating roles.
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM job_roles WHERE title = $1 AND department = $2)`,
			role.Title, role.Department,
		).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}

		var roleID int64
		if err := tx.QueryRow(ctx,
			`INSERT INTO job_roles (title, description, department) VALUES ($1, $2, $3) RETURNING id`,
			role.Title, role.Description, role.Department,
		).Scan(&roleID); err != nil {
			return err
		}

		for _, req := range role.Requirements {
			if _, err := tx.Exec(ctx,
				`INSERT INTO role_skill_requirements (role_id, skill_id, importance, minimum_proficiency)
				 SELECT $1, s.id, $2, $3 FROM skills s WHERE s.name = $4
				 ON CONFLICT (role_id, skill_id) DO NOTHING`,
				roleID, req.Importance, req.MinProf, req.Skill,
			); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
