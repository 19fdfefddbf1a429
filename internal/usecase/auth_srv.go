package usecase

import (
	"context"
	"strings"

	"phi-inspection/internal/data/entity"
	"phi-inspection/internal/data/repository"
	"phi-inspection/internal/dto/request"
	"phi-inspection/internal/dto/response"
	"phi-inspection/pkg/apperror"
	"phi-inspection/pkg/token"
	"phi-inspection/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// invalidCredentialsMessage is shared by every login failure so callers cannot tell
// an unknown email from a wrong password.
const invalidCredentialsMessage = "Invalid email or password"

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	users repository.UserRepository
	jwt   utils.JWTConfig
	now   clock
	log   *zap.Logger
}

func NewAuthService(users repository.UserRepository, jwt utils.JWTConfig, log *zap.Logger) AuthService {
	return &authService{
		users: users,
		jwt:   jwt,
		now:   systemClock,
		log:   log.With(zap.String("service", "auth")),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}
	email := normalizeEmail(req.Email)

	// 2. Reject duplicate identifiers
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, serverError(err, "failed to check email")
	}
	if existing != nil {
		return nil, apperror.Conflict("User already exists with this email")
	}

	existing, err = s.users.FindByPhiID(ctx, req.PhiID)
	if err != nil {
		return nil, serverError(err, "failed to check PHI ID")
	}
	if existing != nil {
		return nil, apperror.Conflict("User already exists with this PHI ID")
	}

	existing, err = s.users.FindByNIC(ctx, req.NIC)
	if err != nil {
		return nil, serverError(err, "failed to check NIC")
	}
	if existing != nil {
		return nil, apperror.Conflict("User already exists with this NIC")
	}

	// 3. Hash password
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperror.Internal(err, "failed to process password")
	}

	// 4. Persist
	role := entity.RolePHI
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}
	now := s.now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         strings.TrimSpace(req.Name),
		PhiID:        req.PhiID,
		NIC:          req.NIC,
		Email:        email,
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         role,
		PasswordHash: hashed,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, serverError(err, "failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	// 5. Auto login
	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, serverError(err, "failed to look up user")
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login failed", zap.String("email", req.Email))
		return nil, apperror.New(apperror.CodeInvalidCredentials, invalidCredentialsMessage)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))
	return s.issue(user)
}

func (s *authService) issue(user *entity.User) (*response.AuthResponse, error) {
	raw, expiresAt, err := token.Mint(s.jwt, s.now(), token.Payload{
		UserID: user.ID,
		Name:   user.Name,
		Role:   string(user.Role),
	})
	if err != nil {
		s.log.Error("Failed to mint token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperror.Internal(err, "failed to issue token")
	}

	return &response.AuthResponse{
		Token:     raw,
		ExpiresAt: expiresAt,
		User:      response.UserToResponse(user),
	}, nil
}
