package seeder

import (
	"context"
	"fmt"

	"talent-match/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// UsersSeeder loads demo accounts with skill profiles so matching endpoints
// return data on a fresh install. Every account shares the demo password.
type UsersSeeder struct {
	DemoPassword string
}

func (UsersSeeder) Name() string { return "users" }

type seedPossession struct {
	Skill       string
	Proficiency int
	Verified    bool
	Source      string
}

var defaultUsers = []struct {
	Username    string
	Email       string
	FullName    string
	Department  string
	Title       string
	Role        string
	Possessions []seedPossession
}{
	{
		Username: "asantos", Email: "a.santos@example.com",
		FullName: "Ana Santos", Department: "Engineering", Title: "Senior Backend Engineer", Role: "employee",
		Possessions: []seedPossession{
			{Skill: "Go", Proficiency: 4, Verified: true, Source: "manager"},
			{Skill: "SQL", Proficiency: 4, Verified: true, Source: "assessment"},
			{Skill: "PostgreSQL", Proficiency: 3, Verified: false, Source: "self-assessment"},
			{Skill: "Docker", Proficiency: 3, Verified: false, Source: "self-assessment"},
		},
	},
	{
		Username: "bwirjo", Email: "b.wirjo@example.com",
		FullName: "Budi Wirjo", Department: "Engineering", Title: "Platform Engineer", Role: "employee",
		Possessions: []seedPossession{
			{Skill: "Kubernetes", Proficiency: 4, Verified: true, Source: "assessment"},
			{Skill: "Terraform", Proficiency: 3, Verified: false, Source: "self-assessment"},
			{Skill: "Docker", Proficiency: 4, Verified: true, Source: "manager"},
			{Skill: "AWS", Proficiency: 2, Verified: false, Source: "self-assessment"},
		},
	},
	{
		Username: "cnovak", Email: "c.novak@example.com",
		FullName: "Clara Novak", Department: "Data", Title: "Data Engineer", Role: "employee",
		Possessions: []seedPossession{
			{Skill: "Python", Proficiency: 4, Verified: true, Source: "assessment"},
			{Skill: "SQL", Proficiency: 5, Verified: true, Source: "manager"},
			{Skill: "GCP", Proficiency: 2, Verified: false, Source: "resume"},
		},
	},
	{
		Username: "dikeda", Email: "d.ikeda@example.com",
		FullName: "Daichi Ikeda", Department: "Engineering", Title: "Engineering Manager", Role: "admin",
		Possessions: []seedPossession{
			{Skill: "Leadership", Proficiency: 4, Verified: true, Source: "peer"},
			{Skill: "Communication", Proficiency: 5, Verified: true, Source: "peer"},
			{Skill: "Go", Proficiency: 3, Verified: false, Source: "self-assessment"},
		},
	},
	{
		Username: "eokafor", Email: "e.okafor@example.com",
		FullName: "Ejiro Okafor", Department: "Engineering", Title: "Junior Backend Engineer", Role: "employee",
		Possessions: []seedPossession{
			{Skill: "Go", Proficiency: 2, Verified: false, Source: "self-assessment"},
			{Skill: "JavaScript", Proficiency: 3, Verified: false, Source: "self-assessment"},
		},
	},
}

func (s UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "user_skills",
		"user_id", "skill_id", "proficiency", "is_verified", "source"); err != nil {
		return err
	}

	password := s.DemoPassword
	if password == "" {
		password = "talent-match-demo"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, u := range defaultUsers {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, u.Username,
		).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}

		var userID int64
		if err := tx.QueryRow(ctx,
			`INSERT INTO users (username, email, password_hash, full_name, department, title, role)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			u.Username, u.Email, string(hash), u.FullName, u.Department, u.Title, u.Role,
		).Scan(&userID); err != nil {
			return err
		}

		for _, p := range u.Possessions {
			if _, err := tx.Exec(ctx,
				`INSERT INTO user_skills (user_id, skill_id, proficiency, is_verified, source)
				 SELECT $1, sk.id, $2, $3, $4 FROM skills sk WHERE sk.name = $5
				 ON CONFLICT (user_id, skill_id) DO NOTHING`,
				userID, p.Proficiency, p.Verified, p.Source, p.Skill,
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
