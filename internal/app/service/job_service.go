package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobboard/internal/common"
	"jobboard/internal/domain/model"
	"jobboard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// JobService owns job postings and the public listing feed. The redis
// client is optional; without it the latest-jobs feed reads straight
// from the store.
type JobService struct {
	jobRepo     repository.JobRepository
	userRepo    repository.UserRepository
	rdb         *redis.Client
	cacheKey    string
	cacheTTL    time.Duration
	latestLimit int
}

func NewJobService(
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	rdb *redis.Client,
	cacheKey string,
	cacheTTL time.Duration,
	latestLimit int,
) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		rdb:         rdb,
		cacheKey:    cacheKey,
		cacheTTL:    cacheTTL,
		latestLimit: latestLimit,
	}
}

type PostJobRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"` // comma-delimited
	Salary       int    `json:"salary"`
	Location     string `json:"location"`
	JobType      string `json:"jobType"`
	Positions    int    `json:"position"`
	CompanyName  string `json:"companyName"`
}

// PostJob creates a job posting. The caller's role is re-read from the
// store because session tokens carry only the subject.
func (s *JobService) PostJob(ctx context.Context, userID string, req PostJobRequest) (*model.Job, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user.Role != model.RoleRecruiter {
		return nil, fmt.Errorf("only recruiters can post jobs: %w", common.ErrForbidden)
	}

	if req.Title == "" || req.Description == "" || req.Location == "" || req.JobType == "" || req.CompanyName == "" {
		return nil, fmt.Errorf("something is missing: %w", common.ErrValidation)
	}

	job := &model.Job{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Slug:         slug.Make(req.Title),
		Description:  req.Description,
		Requirements: splitSkills(req.Requirements),
		Salary:       req.Salary,
		Location:     req.Location,
		JobType:      req.JobType,
		Positions:    req.Positions,
		CompanyName:  req.CompanyName,
		CreatedByID:  user.ID,
	}
	if job.Positions <= 0 {
		job.Positions = 1
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.invalidateLatest(ctx)
	return job, nil
}

func (s *JobService) ListJobs(ctx context.Context, keyword string, page, pageSize int) ([]model.Job, int, error) {
	offset := (page - 1) * pageSize
	jobs, total, err := s.jobRepo.List(ctx, keyword, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, total, nil
}

func (s *JobService) GetJob(ctx context.Context, jobSlug string) (*model.Job, error) {
	job, err := s.jobRepo.FindBySlug(ctx, jobSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// LatestJobs serves the landing-page feed. The cache is best-effort:
// redis failures fall through to the store and are only logged.
func (s *JobService) LatestJobs(ctx context.Context) ([]model.Job, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, s.cacheKey).Bytes()
		if err == nil {
			var jobs []model.Job
			if err := json.Unmarshal(cached, &jobs); err == nil {
				return jobs, nil
			}
			log.Warn().Str("key", s.cacheKey).Msg("Discarding unreadable latest-jobs cache entry")
		} else if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("Latest-jobs cache read failed")
		}
	}

	jobs, err := s.jobRepo.Latest(ctx, s.latestLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest jobs: %w", err)
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(jobs); err == nil {
			if err := s.rdb.Set(ctx, s.cacheKey, payload, s.cacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("Latest-jobs cache write failed")
			}
		}
	}
	return jobs, nil
}

func (s *JobService) invalidateLatest(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, s.cacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("Latest-jobs cache invalidation failed")
	}
}
