package service

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/piyush898784/rentz/internal/domain"
	"github.com/piyush898784/rentz/internal/repository"
	"github.com/piyush898784/rentz/internal/security"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Signup(ctx context.Context, username, email, firstName, lastName, password string, role domain.ProfileRole, phone string) (*domain.User, string, string, error) {
	if role != domain.ProfileRoleOwner && role != domain.ProfileRoleRenter {
		return nil, "", "", ErrInvalidInput
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, "", "", ErrUsernameTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, "", "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hash),
	}
	profile := &domain.Profile{
		Role:        role,
		PhoneNumber: phone,
	}

	// User and profile are written in one transaction; a profile can never
	// be missing for a user created through signup.
	if err := s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, "", "", err
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(role))
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, "", "", err
	}

	return user, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, string, domain.ProfileRole, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", "", ErrInvalidCredentials
		}
		return "", "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", "", ErrInvalidCredentials
	}

	profile, err := s.userRepo.GetProfile(ctx, user.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", "", ErrMissingProfile
		}
		return "", "", "", err
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(profile.Role))
	if err != nil {
		return "", "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", "", err
	}

	return access, refresh, profile.Role, nil
}
