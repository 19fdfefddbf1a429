package repository

import (
	"context"
	"errors"
	"fmt"

	"phi-inspection/internal/data/entity"
	"phi-inspection/pkg/apperror"
	"phi-inspection/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByPhiID(ctx context.Context, phiID string) (*entity.User, error)
	FindByNIC(ctx context.Context, nic string) (*entity.User, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, user *entity.User) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log,
	}
}

const userColumns = `id, name, phi_id, nic, email, phone, address, role, password, created_at, updated_at`

// userConflict maps a unique-index violation to the matching client error.
func userConflict(err error) error {
	switch {
	case database.IsUniqueViolation(err, "users_email_key"):
		return apperror.Conflict("User already exists with this email")
	case database.IsUniqueViolation(err, "users_phi_id_key"):
		return apperror.Conflict("User already exists with this PHI ID")
	case database.IsUniqueViolation(err, "users_nic_key"):
		return apperror.Conflict("User already exists with this NIC")
	}
	return nil
}

func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, phi_id, nic, email, phone, address, role,
		                   password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.PhiID,
		user.NIC,
		user.Email,
		user.Phone,
		user.Address,
		user.Role,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if conflict := userConflict(err); conflict != nil {
			return conflict
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.String("phi_id", user.PhiID),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) findOne(ctx context.Context, column string, arg any) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = $1`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.PhiID,
		&user.NIC,
		&user.Email,
		&user.Phone,
		&user.Address,
		&user.Role,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user",
			zap.Error(err),
			zap.String("by", column),
		)
		return nil, fmt.Errorf("find user by %s: %w", column, err)
	}

	return &user, nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return ur.findOne(ctx, "id", id)
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return ur.findOne(ctx, "email", email)
}

func (ur *userRepository) FindByPhiID(ctx context.Context, phiID string) (*entity.User, error) {
	return ur.findOne(ctx, "phi_id", phiID)
}

func (ur *userRepository) FindByNIC(ctx context.Context, nic string) (*entity.User, error) {
	return ur.findOne(ctx, "nic", nic)
}

// UpdateProfile writes the editable profile fields. The password column is left alone.
func (ur *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, phone = $4, address = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		user.Address,
		user.UpdatedAt,
	)
	if err != nil {
		if conflict := userConflict(err); conflict != nil {
			return conflict
		}
		ur.log.Error("Failed to update user profile",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (ur *userRepository) UpdatePassword(ctx context.Context, user *entity.User) error {
	query := `UPDATE users SET password = $2, updated_at = $3 WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, user.ID, user.PasswordHash, user.UpdatedAt)
	if err != nil {
		ur.log.Error("Failed to update user password",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update password for user %s: %w", user.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
