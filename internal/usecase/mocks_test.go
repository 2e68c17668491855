package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"talent-match/internal/domain/match"
	"talent-match/internal/repository"
)

var errTest = errors.New("boom")

type fakeUserRepo struct {
	users  map[int64]repository.User
	err    error
	byDept map[string]int
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (repository.User, error) {
	if f.err != nil {
		return repository.User{}, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (repository.User, error) {
	if f.err != nil {
		return repository.User{}, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserRepo) Count(context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.users), nil
}

func (f *fakeUserRepo) CountByDepartment(context.Context) (map[string]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byDept, nil
}

type fakeUserSkillRepo struct {
	byUser     map[int64][]repository.Possession
	population []repository.PopulationMember
	err        error
}

func (f *fakeUserSkillRepo) FindByUserID(_ context.Context, userID int64) ([]repository.Possession, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser[userID], nil
}

func (f *fakeUserSkillRepo) Upsert(_ context.Context, p repository.Possession) (repository.Possession, error) {
	if f.err != nil {
		return repository.Possession{}, f.err
	}
	if f.byUser == nil {
		f.byUser = make(map[int64][]repository.Possession)
	}
	for i, existing := range f.byUser[p.UserID] {
		if existing.SkillID == p.SkillID {
			f.byUser[p.UserID][i] = p
			return p, nil
		}
	}
	f.byUser[p.UserID] = append(f.byUser[p.UserID], p)
	return p, nil
}

func (f *fakeUserSkillRepo) Delete(_ context.Context, userID, skillID int64) error {
	if f.err != nil {
		return f.err
	}
	items := f.byUser[userID]
	for i, p := range items {
		if p.SkillID == skillID {
			f.byUser[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return repository.ErrUserSkillNotFound
}

func (f *fakeUserSkillRepo) Population(context.Context) ([]repository.PopulationMember, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.population, nil
}

type fakeRoleRepo struct {
	roles map[int64]repository.JobRole
	reqs  map[int64][]repository.RoleRequirement
	err   error
}

func (f *fakeRoleRepo) FindByID(_ context.Context, id int64) (repository.JobRole, error) {
	if f.err != nil {
		return repository.JobRole{}, f.err
	}
	r, ok := f.roles[id]
	if !ok {
		return repository.JobRole{}, repository.ErrRoleNotFound
	}
	return r, nil
}

func (f *fakeRoleRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.roles[id]
	return ok, nil
}

func (f *fakeRoleRepo) List(_ context.Context, department string, _, _ int) ([]repository.JobRole, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]repository.JobRole, 0, len(f.roles))
	for _, r := range f.roles {
		if department == "" || r.Department == department {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoleRepo) RequirementsByRoleID(_ context.Context, roleID int64) ([]repository.RoleRequirement, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reqs[roleID], nil
}

func (f *fakeRoleRepo) AllWithRequirements(_ context.Context, department string) ([]repository.RoleWithRequirements, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]repository.RoleWithRequirements, 0, len(f.roles))
	for id, r := range f.roles {
		if department != "" && r.Department != department {
			continue
		}
		out = append(out, repository.RoleWithRequirements{Role: r, Requirements: f.reqs[id]})
	}
	return out, nil
}

type fakeSkillRepo struct {
	skills     map[int64]repository.Skill
	byCategory map[string]int
	err        error
}

func (f *fakeSkillRepo) FindByID(_ context.Context, id int64) (repository.Skill, error) {
	if f.err != nil {
		return repository.Skill{}, f.err
	}
	s, ok := f.skills[id]
	if !ok {
		return repository.Skill{}, repository.ErrSkillNotFound
	}
	return s, nil
}

func (f *fakeSkillRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.skills[id]
	return ok, nil
}

func (f *fakeSkillRepo) CountByCategory(context.Context) (map[string]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byCategory, nil
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	records []repository.MatchHistoryRecord
	recent  []repository.MatchHistoryActivity
	err     error

	inserted chan struct{}
}

func (f *fakeHistoryRepo) Insert(_ context.Context, record repository.MatchHistoryRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)
	if f.inserted != nil {
		select {
		case f.inserted <- struct{}{}:
		default:
		}
	}
	return nil
}

func (f *fakeHistoryRepo) ListRecent(_ context.Context, _ int) ([]repository.MatchHistoryActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.recent, nil
}

func (f *fakeHistoryRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

type capturingRecorder struct {
	mu      sync.Mutex
	entries []match.HistoryEntry
}

func (r *capturingRecorder) Record(entry match.HistoryEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *capturingRecorder) recorded() []match.HistoryEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]match.HistoryEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

type capturingNotifier struct {
	mu     sync.Mutex
	events []struct {
		CandidateID, RoleID int64
		Percentage          float64
	}
}

func (n *capturingNotifier) NotifyMatchCompleted(candidateID, roleID int64, pct float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, struct {
		CandidateID, RoleID int64
		Percentage          float64
	}{candidateID, roleID, pct})
}

type fakeCache struct {
	mu      sync.Mutex
	store   map[string][]byte
	getErr  error
	setErr  error
	getHits int
	sets    int
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	c.getHits++
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	if c.store == nil {
		c.store = make(map[string][]byte)
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = b
	c.sets++
	return nil
}
