package service

import (
	"context"
	"errors"
	"fmt"

	"jobboard/internal/common"
	"jobboard/internal/common/security"
	"jobboard/internal/domain/model"
	"jobboard/internal/domain/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens *security.TokenManager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

type RegisterRequest struct {
	Fullname    string `json:"fullname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginResult carries the signed session token and the public view of
// the user (password hash stripped).
type LoginResult struct {
	Token string
	User  *model.User
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	if req.Fullname == "" || req.Email == "" || req.PhoneNumber == "" || req.Password == "" || req.Role == "" {
		return fmt.Errorf("something is missing: %w", common.ErrValidation)
	}
	if req.Role != model.RoleStudent && req.Role != model.RoleRecruiter {
		return fmt.Errorf("unknown role %q: %w", req.Role, common.ErrValidation)
	}

	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return fmt.Errorf("user already exists with this email: %w", common.ErrConflict)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Fullname:       req.Fullname,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		HashedPassword: hashedPassword,
		Role:           req.Role,
		Profile:        model.Profile{Skills: []string{}},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrConflict on a duplicate email race.
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, fmt.Errorf("something is missing: %w", common.ErrValidation)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("user does not exist: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// The role check runs regardless of the comparison result so a
	// wrong-password, wrong-role login still reports the role mismatch.
	// Both checks must pass before a token is issued.
	match := security.CheckPasswordHash(req.Password, user.HashedPassword)
	if req.Role != user.Role {
		return nil, fmt.Errorf("invalid role: %w", common.ErrRoleMismatch)
	}
	if !match {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	user.HashedPassword = "" // Clear password before returning
	return &LoginResult{Token: token, User: user}, nil
}
