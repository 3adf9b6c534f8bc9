package repository

import (
	"context"
	"fmt"

	"ecommerce-catalog/internal/data/entity"
	"ecommerce-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	MarkEmailVerified(ctx context.Context, userID uuid.UUID) error
}

type profileRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewProfileRepository(db database.Querier, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	query := `
		INSERT INTO user_profiles (id, user_id, email_verified, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.EmailVerified,
		profile.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create profile", zap.Error(err), zap.String("user_id", profile.UserID.String()))
		return fmt.Errorf("create profile for user %s: %w", profile.UserID.String(), database.MapError(err))
	}

	return nil
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	query := `
		SELECT id, user_id, email_verified, created_at
		FROM user_profiles
		WHERE user_id = $1
	`

	var profile entity.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.EmailVerified,
		&profile.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find profile for user %s: %w", userID.String(), err)
	}

	return &profile, nil
}

func (r *profileRepository) MarkEmailVerified(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE user_profiles SET email_verified = true WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to mark profile verified", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("mark profile verified for user %s: %w", userID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile for user %s not found", userID.String())
	}

	return nil
}
