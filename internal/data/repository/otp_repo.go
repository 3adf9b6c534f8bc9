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

type OTPRepository interface {
	Create(ctx context.Context, otp *entity.OTP) error
	// FindLatestUnverified returns the newest unverified OTP for (email, code)
	// regardless of expiry, locking the row until the transaction ends.
	FindLatestUnverified(ctx context.Context, email, otpCode string) (*entity.OTP, error)
	MarkVerified(ctx context.Context, otpID uuid.UUID) (bool, error)
}

type otpRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewOTPRepository(db database.Querier, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

func (r *otpRepository) Create(ctx context.Context, otp *entity.OTP) error {
	query := `
		INSERT INTO otps (id, email, otp_code, expires_at, is_verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		otp.ID,
		otp.Email,
		otp.OTPCode,
		otp.ExpiresAt,
		otp.IsVerified,
		otp.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create OTP",
			zap.Error(err),
			zap.String("email", otp.Email),
		)
		return fmt.Errorf("create OTP for %s: %w", otp.Email, err)
	}

	return nil
}

func (r *otpRepository) FindLatestUnverified(ctx context.Context, email, otpCode string) (*entity.OTP, error) {
	query := `
		SELECT id, email, otp_code, expires_at, is_verified, created_at
		FROM otps
		WHERE email = $1
		  AND otp_code = $2
		  AND is_verified = false
		ORDER BY created_at DESC
		LIMIT 1
		FOR UPDATE
	`

	var otp entity.OTP
	err := r.db.QueryRow(ctx, query, email, otpCode).Scan(
		&otp.ID,
		&otp.Email,
		&otp.OTPCode,
		&otp.ExpiresAt,
		&otp.IsVerified,
		&otp.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find OTP",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find OTP for %s: %w", email, err)
	}

	return &otp, nil
}

// MarkVerified flips is_verified and reports whether this call did it.
// False means another request consumed the OTP first.
func (r *otpRepository) MarkVerified(ctx context.Context, otpID uuid.UUID) (bool, error) {
	query := `
		UPDATE otps
		SET is_verified = true
		WHERE id = $1 AND is_verified = false
	`

	result, err := r.db.Exec(ctx, query, otpID)
	if err != nil {
		r.log.Error("Failed to mark OTP as verified",
			zap.Error(err),
			zap.String("otp_id", otpID.String()),
		)
		return false, fmt.Errorf("mark OTP %s as verified: %w", otpID.String(), err)
	}

	return result.RowsAffected() == 1, nil
}
