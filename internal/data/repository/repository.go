package repository

import (
	"context"

	"ecommerce-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	Tx       Transactor
	User     UserRepository
	Profile  ProfileRepository
	OTP      OTPRepository
	Session  SessionRepository
	Category CategoryRepository
	Product  ProductRepository
}

// Transactor runs fn with repositories bound to a single database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(repos *Repository) error) error
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repos := newRepositories(db, log)
	repos.Tx = &pgTransactor{db: db, log: log}
	return repos
}

func newRepositories(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(q, log),
		Profile:  NewProfileRepository(q, log),
		OTP:      NewOTPRepository(q, log),
		Session:  NewSessionRepository(q, log),
		Category: NewCategoryRepository(q, log),
		Product:  NewProductRepository(q, log),
	}
}

type pgTransactor struct {
	db  database.PgxIface
	log *zap.Logger
}

func (t *pgTransactor) WithinTx(ctx context.Context, fn func(repos *Repository) error) error {
	return database.WithTx(ctx, t.db, func(tx pgx.Tx) error {
		repos := newRepositories(tx, t.log)
		// nested calls join the outer transaction
		repos.Tx = joinedTx{repos: repos}
		return fn(repos)
	})
}

type joinedTx struct {
	repos *Repository
}

func (j joinedTx) WithinTx(_ context.Context, fn func(repos *Repository) error) error {
	return fn(j.repos)
}
