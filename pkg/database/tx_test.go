package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError_UniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	mapped := MapError(err)

	assert.True(t, errors.Is(mapped, ErrUniqueViolation))
	assert.Contains(t, mapped.Error(), "users_email_key")
}

func TestMapError_PassThrough(t *testing.T) {
	other := errors.New("boom")
	assert.Equal(t, other, MapError(other))

	fk := &pgconn.PgError{Code: "23503"}
	assert.False(t, errors.Is(MapError(fk), ErrUniqueViolation))
}
