package entity

import (
	"time"

	"github.com/google/uuid"
)

type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

// BaseSerial is used by catalog records, which keep sequential ids.
type BaseSerial struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
