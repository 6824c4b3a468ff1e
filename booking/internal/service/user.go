package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/Astemirdum/seat-booking/booking/internal/errs"
	"github.com/Astemirdum/seat-booking/booking/internal/model"
	"github.com/Astemirdum/seat-booking/pkg/auth"
)

const msgInvalidCredentials = "invalid email or password"

func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}
	user, err := s.repo.CreateUser(ctx, model.User{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hash,
		Name:     strings.TrimSpace(req.Name),
		Role:     auth.RoleUser,
	})
	if err != nil {
		return model.User{}, errors.Wrap(err, "CreateUser")
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errs.IsNotFound(err) {
			return model.LoginResponse{}, errs.Unauthorized(msgInvalidCredentials)
		}
		return model.LoginResponse{}, errors.Wrap(err, "GetUserByEmail")
	}
	if !auth.ComparePassword(user.Password, req.Password) {
		return model.LoginResponse{}, errs.Unauthorized(msgInvalidCredentials)
	}
	if s.tokens == nil {
		return model.LoginResponse{}, errors.New("token issuer is not configured")
	}
	token, exp, err := s.tokens.Issue(user.Principal())
	if err != nil {
		return model.LoginResponse{}, errors.Wrap(err, "issue token")
	}
	return model.LoginResponse{Token: token, ExpiresAt: exp, User: user}, nil
}

func (s *Service) Profile(ctx context.Context, userID string) (model.User, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.User{}, errors.Wrap(err, "GetUser")
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (model.User, error) {
	if req.Name == nil {
		return s.Profile(ctx, userID)
	}
	user, err := s.repo.UpdateUserName(ctx, userID, strings.TrimSpace(*req.Name))
	if err != nil {
		return model.User{}, errors.Wrap(err, "UpdateUserName")
	}
	return user, nil
}
