package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOTP_IsExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	otp := &OTP{ExpiresAt: now.Add(10 * time.Minute)}

	assert.False(t, otp.IsExpired(now))
	assert.False(t, otp.IsExpired(now.Add(10*time.Minute)))
	assert.True(t, otp.IsExpired(now.Add(10*time.Minute+time.Second)))
}
