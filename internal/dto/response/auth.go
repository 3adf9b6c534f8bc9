package response

import (
	"time"

	"ecommerce-catalog/internal/data/entity"
)

type RegisterResponse struct {
	Email string `json:"email"`
	// OTPCode is only filled when the server runs with OTP_EXPOSE_CODE.
	OTPCode string `json:"otp_code,omitempty"`
}

type VerifyRegistrationResponse struct {
	Email string `json:"email"`
}

type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	DateJoined    time.Time `json:"date_joined"`
	EmailVerified bool      `json:"email_verified"`
}

type LoginResponse struct {
	User      UserResponse `json:"user"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func UserToResponse(user *entity.User, profile *entity.Profile) UserResponse {
	resp := UserResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		DateJoined: user.DateJoined,
	}
	if profile != nil {
		resp.EmailVerified = profile.EmailVerified
	}
	return resp
}
