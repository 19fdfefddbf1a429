package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the storage identity and timestamps shared by every record.
type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Touch stamps UpdatedAt, never moving it backwards.
func (b *Base) Touch(now time.Time) {
	if now.Before(b.UpdatedAt) {
		return
	}
	b.UpdatedAt = now
}
