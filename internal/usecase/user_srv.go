package usecase

import (
	"context"
	"errors"
	"strings"

	"phi-inspection/internal/data/entity"
	"phi-inspection/internal/data/repository"
	"phi-inspection/internal/dto/request"
	"phi-inspection/internal/dto/response"
	"phi-inspection/pkg/apperror"
	"phi-inspection/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, caller Caller) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, caller Caller, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	ChangePassword(ctx context.Context, caller Caller, req *request.ChangePasswordRequest) error
}

type userService struct {
	users repository.UserRepository
	now   clock
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		now:   systemClock,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) load(ctx context.Context, caller Caller) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, caller.ID)
	if err != nil {
		return nil, serverError(err, "failed to load user")
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, caller Caller) (*response.UserResponse, error) {
	user, err := s.load(ctx, caller)
	if err != nil {
		return nil, err
	}
	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, caller Caller, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	user, err := s.load(ctx, caller)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			taken, err := s.users.FindByEmail(ctx, email)
			if err != nil {
				return nil, serverError(err, "failed to check email")
			}
			if taken != nil && taken.ID != user.ID {
				return nil, apperror.Conflict("Email already in use")
			}
			user.Email = email
		}
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	user.Touch(s.now())

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, serverError(err, "failed to update profile")
	}

	s.log.Info("Profile updated", zap.String("user_id", user.ID.String()))
	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) ChangePassword(ctx context.Context, caller Caller, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	user, err := s.load(ctx, caller)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		s.log.Warn("Password change rejected", zap.String("user_id", user.ID.String()))
		return apperror.New(apperror.CodeInvalidCredentials, "Current password is incorrect")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return apperror.Internal(err, "failed to process password")
	}
	user.PasswordHash = hashed
	user.Touch(s.now())

	if err := s.users.UpdatePassword(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return serverError(err, "failed to update password")
	}

	s.log.Info("Password changed", zap.String("user_id", user.ID.String()))
	return nil
}
