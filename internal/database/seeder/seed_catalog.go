package seeder

import (
	"context"
	"fmt"

	"talent-match/internal/database"
)

// CatalogSeeder loads the skill taxonomy: categories first, then the skills
// that reference them by name.
type CatalogSeeder struct{}

func (CatalogSeeder) Name() string { return "catalog" }

var defaultCategories = []string{
	"Programming Language",
	"Database",
	"DevOps",
	"Cloud",
	"Soft Skill",
}

var defaultSkills = []struct {
	Name        string
	Description string
	Category    string
}{
	{Name: "Go", Description: "Backend services and tooling", Category: "Programming Language"},
	{Name: "Python", Description: "Scripting, data work, services", Category: "Programming Language"},
	{Name: "JavaScript", Description: "Frontend and Node services", Category: "Programming Language"},
	{Name: "TypeScript", Description: "Typed frontend and Node services", Category: "Programming Language"},
	{Name: "SQL", Description: "Relational querying and modeling", Category: "Database"},
	{Name: "PostgreSQL", Description: "Administration and tuning", Category: "Database"},
	{Name: "Redis", Description: "Caching and data structures", Category: "Database"},
	{Name: "Docker", Description: "Container builds and runtime", Category: "DevOps"},
	{Name: "Kubernetes", Description: "Cluster operations and deployment", Category: "DevOps"},
	{Name: "Terraform", Description: "Infrastructure as code", Category: "DevOps"},
	{Name: "AWS", Description: "Core AWS services", Category: "Cloud"},
	{Name: "GCP", Description: "Core GCP services", Category: "Cloud"},
	{Name: "Communication", Description: "Written and verbal communication", Category: "Soft Skill"},
	{Name: "Leadership", Description: "Team direction and mentoring", Category: "Soft Skill"},
}

func (CatalogSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "description", "category_id"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, name := range defaultCategories {
		if _, err := tx.Exec(ctx,
			`INSERT INTO skill_categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			name,
		); err != nil {
			return err
		}
	}

	for _, s := range defaultSkills {
		if _, err := tx.Exec(ctx,
			`INSERT INTO skills (name, description, category_id)
			 SELECT $1, $2, c.id FROM skill_categories c WHERE c.name = $3
			 ON CONFLICT (name) DO NOTHING`,
			s.Name, s.Description, s.Category,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
