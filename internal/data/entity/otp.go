package entity

import (
	"time"
)

type OTP struct {
	BaseSimple
	Email      string    `db:"email"`
	OTPCode    string    `db:"otp_code"`
	ExpiresAt  time.Time `db:"expires_at"`
	IsVerified bool      `db:"is_verified"`
}

func (o *OTP) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
