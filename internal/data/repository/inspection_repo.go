package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"phi-inspection/internal/data/entity"
	"phi-inspection/pkg/apperror"
	"phi-inspection/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type InspectionRepository interface {
	Create(ctx context.Context, inspection *entity.Inspection) error
	FindAll(ctx context.Context) ([]*entity.Inspection, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Inspection, error)
	FindByPublicID(ctx context.Context, publicID string) (*entity.Inspection, error)
	Update(ctx context.Context, inspection *entity.Inspection) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type inspectionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInspectionRepository(db database.PgxIface, log *zap.Logger) InspectionRepository {
	return &inspectionRepository{
		db:  db,
		log: log,
	}
}

const inspectionColumns = `id, public_id, shop_name, shop_address, category, gn_division,
	inspector_id, inspector_name, inspection_type, inspection_date, overall_rating, status,
	photos, notes, location_environment, building_structure, food_preparation_area,
	health_instructions, created_at, updated_at`

// inspectionDocs holds the JSONB columns in their encoded form.
type inspectionDocs struct {
	photos, location, building, food, health []byte
}

func encodeInspectionDocs(in *entity.Inspection) (inspectionDocs, error) {
	var docs inspectionDocs
	var err error
	if docs.photos, err = marshalList(in.Photos); err != nil {
		return docs, fmt.Errorf("encode photos: %w", err)
	}
	if docs.location, err = marshalList(in.LocationEnvironment); err != nil {
		return docs, fmt.Errorf("encode location_environment: %w", err)
	}
	if docs.building, err = marshalList(in.BuildingStructure); err != nil {
		return docs, fmt.Errorf("encode building_structure: %w", err)
	}
	if docs.food, err = marshalList(in.FoodPreparationArea); err != nil {
		return docs, fmt.Errorf("encode food_preparation_area: %w", err)
	}
	if docs.health, err = marshalList(in.HealthInstructions); err != nil {
		return docs, fmt.Errorf("encode health_instructions: %w", err)
	}
	return docs, nil
}

// marshalList encodes a nil slice as [] so the column never holds JSON null.
func marshalList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

func unmarshalList[T any](raw []byte) ([]T, error) {
	items := []T{}
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func scanInspection(row pgx.Row) (*entity.Inspection, error) {
	var in entity.Inspection
	var docs inspectionDocs
	err := row.Scan(
		&in.ID,
		&in.PublicID,
		&in.ShopName,
		&in.ShopAddress,
		&in.Category,
		&in.GNDivision,
		&in.InspectorID,
		&in.InspectorName,
		&in.Type,
		&in.InspectionDate,
		&in.OverallRating,
		&in.Status,
		&docs.photos,
		&in.Notes,
		&docs.location,
		&docs.building,
		&docs.food,
		&docs.health,
		&in.CreatedAt,
		&in.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if in.Photos, err = unmarshalList[entity.Photo](docs.photos); err != nil {
		return nil, fmt.Errorf("decode photos: %w", err)
	}
	if in.LocationEnvironment, err = unmarshalList[entity.ChecklistItem](docs.location); err != nil {
		return nil, fmt.Errorf("decode location_environment: %w", err)
	}
	if in.BuildingStructure, err = unmarshalList[entity.ChecklistItem](docs.building); err != nil {
		return nil, fmt.Errorf("decode building_structure: %w", err)
	}
	if in.FoodPreparationArea, err = unmarshalList[entity.ChecklistItem](docs.food); err != nil {
		return nil, fmt.Errorf("decode food_preparation_area: %w", err)
	}
	if in.HealthInstructions, err = unmarshalList[entity.ChecklistItem](docs.health); err != nil {
		return nil, fmt.Errorf("decode health_instructions: %w", err)
	}
	return &in, nil
}

func (ir *inspectionRepository) Create(ctx context.Context, in *entity.Inspection) error {
	docs, err := encodeInspectionDocs(in)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO inspections (id, public_id, shop_name, shop_address, category, gn_division,
		                         inspector_id, inspector_name, inspection_type, inspection_date,
		                         overall_rating, status, photos, notes, location_environment,
		                         building_structure, food_preparation_area, health_instructions,
		                         created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err = ir.db.Exec(ctx, query,
		in.ID,
		in.PublicID,
		in.ShopName,
		in.ShopAddress,
		in.Category,
		in.GNDivision,
		in.InspectorID,
		in.InspectorName,
		in.Type,
		in.InspectionDate,
		in.OverallRating,
		in.Status,
		docs.photos,
		in.Notes,
		docs.location,
		docs.building,
		docs.food,
		docs.health,
		in.CreatedAt,
		in.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err, "inspections_public_id_key") {
			return apperror.Conflict("Inspection identifier already in use")
		}
		ir.log.Error("Failed to create inspection",
			zap.Error(err),
			zap.String("public_id", in.PublicID),
		)
		return fmt.Errorf("create inspection %s: %w", in.PublicID, err)
	}

	return nil
}

// FindAll returns every inspection system-wide, most recent inspection date first.
func (ir *inspectionRepository) FindAll(ctx context.Context) ([]*entity.Inspection, error) {
	query := `SELECT ` + inspectionColumns + ` FROM inspections ORDER BY inspection_date DESC`

	rows, err := ir.db.Query(ctx, query)
	if err != nil {
		ir.log.Error("Failed to list inspections", zap.Error(err))
		return nil, fmt.Errorf("list inspections: %w", err)
	}
	defer rows.Close()

	inspections := []*entity.Inspection{}
	for rows.Next() {
		in, err := scanInspection(rows)
		if err != nil {
			ir.log.Error("Failed to scan inspection row", zap.Error(err))
			return nil, fmt.Errorf("scan inspection row: %w", err)
		}
		inspections = append(inspections, in)
	}

	if err := rows.Err(); err != nil {
		ir.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate inspection rows: %w", err)
	}
	return inspections, nil
}

func (ir *inspectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inspection, error) {
	return ir.findOne(ctx, "id", id)
}

func (ir *inspectionRepository) FindByPublicID(ctx context.Context, publicID string) (*entity.Inspection, error) {
	return ir.findOne(ctx, "public_id", publicID)
}

func (ir *inspectionRepository) findOne(ctx context.Context, column string, arg any) (*entity.Inspection, error) {
	query := `SELECT ` + inspectionColumns + ` FROM inspections WHERE ` + column + ` = $1`

	in, err := scanInspection(ir.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ir.log.Error("Failed to find inspection",
			zap.Error(err),
			zap.String("by", column),
		)
		return nil, fmt.Errorf("find inspection by %s: %w", column, err)
	}
	return in, nil
}

func (ir *inspectionRepository) Update(ctx context.Context, in *entity.Inspection) error {
	docs, err := encodeInspectionDocs(in)
	if err != nil {
		return err
	}

	query := `
		UPDATE inspections
		SET shop_name = $2, shop_address = $3, category = $4, gn_division = $5,
		    inspection_type = $6, inspection_date = $7, overall_rating = $8, status = $9,
		    photos = $10, notes = $11, location_environment = $12, building_structure = $13,
		    food_preparation_area = $14, health_instructions = $15, updated_at = $16
		WHERE id = $1
	`

	result, err := ir.db.Exec(ctx, query,
		in.ID,
		in.ShopName,
		in.ShopAddress,
		in.Category,
		in.GNDivision,
		in.Type,
		in.InspectionDate,
		in.OverallRating,
		in.Status,
		docs.photos,
		in.Notes,
		docs.location,
		docs.building,
		docs.food,
		docs.health,
		in.UpdatedAt,
	)
	if err != nil {
		ir.log.Error("Failed to update inspection",
			zap.Error(err),
			zap.String("inspection_id", in.ID.String()),
		)
		return fmt.Errorf("update inspection %s: %w", in.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (ir *inspectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := ir.db.Exec(ctx, `DELETE FROM inspections WHERE id = $1`, id)
	if err != nil {
		ir.log.Error("Failed to delete inspection",
			zap.Error(err),
			zap.String("inspection_id", id.String()),
		)
		return fmt.Errorf("delete inspection %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
