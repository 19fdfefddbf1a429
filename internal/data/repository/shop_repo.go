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

type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error)
	FindByLicense(ctx context.Context, licenseNumber string) (*entity.Shop, error)
	FindUnowned(ctx context.Context) ([]*entity.Shop, error)
	Directory(ctx context.Context) ([]entity.ShopDirectoryEntry, error)
	Update(ctx context.Context, shop *entity.Shop) error
	AssignOwner(ctx context.Context, id, ownerID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type shopRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShopRepository(db database.PgxIface, log *zap.Logger) ShopRepository {
	return &shopRepository{
		db:  db,
		log: log,
	}
}

const shopColumns = `id, name, address, owner_name, license_number, employee_count,
	district, gn_division, category, status, created_by, created_at, updated_at`

const licenseConstraint = "shops_license_number_key"

func scanShop(row pgx.Row) (*entity.Shop, error) {
	var shop entity.Shop
	err := row.Scan(
		&shop.ID,
		&shop.Name,
		&shop.Address,
		&shop.OwnerName,
		&shop.LicenseNumber,
		&shop.EmployeeCount,
		&shop.District,
		&shop.GNDivision,
		&shop.Category,
		&shop.Status,
		&shop.CreatedBy,
		&shop.CreatedAt,
		&shop.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (sr *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	query := `
		INSERT INTO shops (id, name, address, owner_name, license_number, employee_count,
		                   district, gn_division, category, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := sr.db.Exec(ctx, query,
		shop.ID,
		shop.Name,
		shop.Address,
		shop.OwnerName,
		shop.LicenseNumber,
		shop.EmployeeCount,
		shop.District,
		shop.GNDivision,
		shop.Category,
		shop.Status,
		shop.CreatedBy,
		shop.CreatedAt,
		shop.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err, licenseConstraint) {
			return apperror.Conflict("Shop with this license number already exists")
		}
		sr.log.Error("Failed to create shop",
			zap.Error(err),
			zap.String("name", shop.Name),
		)
		return fmt.Errorf("create shop %s: %w", shop.Name, err)
	}

	return nil
}

func (sr *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE id = $1`

	shop, err := scanShop(sr.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find shop by ID",
			zap.Error(err),
			zap.String("shop_id", id.String()),
		)
		return nil, fmt.Errorf("find shop by ID %s: %w", id, err)
	}
	return shop, nil
}

func (sr *shopRepository) FindByLicense(ctx context.Context, licenseNumber string) (*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE license_number = $1`

	shop, err := scanShop(sr.db.QueryRow(ctx, query, licenseNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find shop by license",
			zap.Error(err),
			zap.String("license_number", licenseNumber),
		)
		return nil, fmt.Errorf("find shop by license %s: %w", licenseNumber, err)
	}
	return shop, nil
}

// FindByOwner lists the owner's shops, newest first.
func (sr *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE created_by = $1 ORDER BY created_at DESC`
	return sr.list(ctx, query, ownerID)
}

// FindUnowned lists legacy shops that carry no owner reference.
func (sr *shopRepository) FindUnowned(ctx context.Context) ([]*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE created_by IS NULL ORDER BY created_at ASC`
	return sr.list(ctx, query)
}

func (sr *shopRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Shop, error) {
	rows, err := sr.db.Query(ctx, query, args...)
	if err != nil {
		sr.log.Error("Failed to list shops", zap.Error(err))
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()

	shops := []*entity.Shop{}
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			sr.log.Error("Failed to scan shop row", zap.Error(err))
			return nil, fmt.Errorf("scan shop row: %w", err)
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate shop rows: %w", err)
	}
	return shops, nil
}

// Directory returns name, owner and category for every shop regardless of owner.
func (sr *shopRepository) Directory(ctx context.Context) ([]entity.ShopDirectoryEntry, error) {
	query := `SELECT name, owner_name, category FROM shops ORDER BY created_at ASC`

	rows, err := sr.db.Query(ctx, query)
	if err != nil {
		sr.log.Error("Failed to load shop directory", zap.Error(err))
		return nil, fmt.Errorf("load shop directory: %w", err)
	}
	defer rows.Close()

	var entries []entity.ShopDirectoryEntry
	for rows.Next() {
		var e entity.ShopDirectoryEntry
		if err := rows.Scan(&e.Name, &e.OwnerName, &e.Category); err != nil {
			sr.log.Error("Failed to scan shop directory row", zap.Error(err))
			return nil, fmt.Errorf("scan shop directory row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shop directory rows: %w", err)
	}
	return entries, nil
}

func (sr *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	query := `
		UPDATE shops
		SET name = $2, address = $3, owner_name = $4, license_number = $5,
		    employee_count = $6, district = $7, gn_division = $8, category = $9,
		    status = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := sr.db.Exec(ctx, query,
		shop.ID,
		shop.Name,
		shop.Address,
		shop.OwnerName,
		shop.LicenseNumber,
		shop.EmployeeCount,
		shop.District,
		shop.GNDivision,
		shop.Category,
		shop.Status,
		shop.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err, licenseConstraint) {
			return apperror.Conflict("Another shop with this license number already exists")
		}
		sr.log.Error("Failed to update shop",
			zap.Error(err),
			zap.String("shop_id", shop.ID.String()),
		)
		return fmt.Errorf("update shop %s: %w", shop.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AssignOwner claims a shop only while it is still unowned.
func (sr *shopRepository) AssignOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `UPDATE shops SET created_by = $2, updated_at = NOW() WHERE id = $1 AND created_by IS NULL`

	result, err := sr.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		sr.log.Error("Failed to assign shop owner",
			zap.Error(err),
			zap.String("shop_id", id.String()),
		)
		return fmt.Errorf("assign owner to shop %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (sr *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := sr.db.Exec(ctx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		sr.log.Error("Failed to delete shop",
			zap.Error(err),
			zap.String("shop_id", id.String()),
		)
		return fmt.Errorf("delete shop %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	sr.log.Info("Shop deleted", zap.String("shop_id", id.String()))
	return nil
}
