package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/common"
	"jobboard/internal/domain/model"
)

// In-memory repository stands-ins. They enforce the same uniqueness
// rules as the postgres implementations and return the same sentinels.

type fakeUserRepo struct {
	users map[string]*model.User // keyed by ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("user already exists with this email: %w", common.ErrConflict)
		}
	}
	clone := *user
	clone.CreatedAt = time.Now()
	clone.UpdatedAt = clone.CreatedAt
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return common.ErrNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return fmt.Errorf("user already exists with this email: %w", common.ErrConflict)
		}
	}
	clone := *user
	clone.HashedPassword = stored.HashedPassword
	clone.Role = stored.Role
	clone.UpdatedAt = time.Now()
	r.users[user.ID] = &clone
	return nil
}

type fakeJobRepo struct {
	jobs []model.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{}
}

func (r *fakeJobRepo) Create(_ context.Context, job *model.Job) error {
	for _, j := range r.jobs {
		if j.Slug == job.Slug {
			return fmt.Errorf("job with the same title already exists: %w", common.ErrConflict)
		}
	}
	clone := *job
	clone.CreatedAt = time.Now()
	clone.UpdatedAt = clone.CreatedAt
	r.jobs = append(r.jobs, clone)
	return nil
}

func (r *fakeJobRepo) FindBySlug(_ context.Context, slug string) (*model.Job, error) {
	for _, j := range r.jobs {
		if j.Slug == slug {
			clone := j
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeJobRepo) List(_ context.Context, keyword string, limit, offset int) ([]model.Job, int, error) {
	var matched []model.Job
	needle := strings.ToLower(keyword)
	for i := len(r.jobs) - 1; i >= 0; i-- {
		j := r.jobs[i]
		if keyword == "" ||
			strings.Contains(strings.ToLower(j.Title), needle) ||
			strings.Contains(strings.ToLower(j.Description), needle) ||
			strings.Contains(strings.ToLower(j.CompanyName), needle) {
			matched = append(matched, j)
		}
	}
	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (r *fakeJobRepo) Latest(_ context.Context, limit int) ([]model.Job, error) {
	var out []model.Job
	for i := len(r.jobs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.jobs[i])
	}
	return out, nil
}
