package repository

import (
	"errors"

	"phi-inspection/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned by update and delete statements that matched no row.
// Lookups report absence as (nil, nil) instead.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	User       UserRepository
	Shop       ShopRepository
	Inspection InspectionRepository
	Task       TaskRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Shop:       NewShopRepository(db, log),
		Inspection: NewInspectionRepository(db, log),
		Task:       NewTaskRepository(db, log),
	}
}
