package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobboard/internal/common"
	"jobboard/internal/domain/model"
	"jobboard/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateProfileRequest is a partial update: nil fields are absent and
// left untouched; empty strings are treated the same way.
type UpdateProfileRequest struct {
	Fullname    *string `json:"fullname,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Skills      *string `json:"skills,omitempty"` // comma-delimited
}

// UpdateProfile mutates only the fields present in the request. The
// password and role are never reachable through this path. The userID
// comes from the session middleware, not the request body.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if req.Fullname != nil && *req.Fullname != "" {
		user.Fullname = *req.Fullname
	}
	if req.Email != nil && *req.Email != "" {
		user.Email = *req.Email
	}
	if req.PhoneNumber != nil && *req.PhoneNumber != "" {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Bio != nil && *req.Bio != "" {
		user.Profile.Bio = *req.Bio
	}
	if req.Skills != nil && *req.Skills != "" {
		user.Profile.Skills = splitSkills(*req.Skills)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user.HashedPassword = ""
	return user, nil
}

func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
