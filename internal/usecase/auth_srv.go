package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecommerce-catalog/internal/data/entity"
	"ecommerce-catalog/internal/data/repository"
	"ecommerce-catalog/internal/dto/request"
	"ecommerce-catalog/internal/dto/response"
	"ecommerce-catalog/pkg/database"
	"ecommerce-catalog/pkg/mailer"
	"ecommerce-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	verificationSubject = "Email Verification OTP"

	// matches otps.otp_code VARCHAR(6) and the otp_code request bound
	otpLength = 6
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	VerifyRegistration(ctx context.Context, req *request.VerifyRegistrationRequest) (*response.VerifyRegistrationResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// ClientInfo is recorded on the session for auditing.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// LoginResult carries the raw session token, which is handed to the client once and never stored.
type LoginResult struct {
	Response response.LoginResponse
	Token    string
	TTL      time.Duration
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	sender mailer.Sender
	now    func() time.Time
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	sender mailer.Sender,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		sender: sender,
		now:    time.Now,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		s.log.Warn("Register with existing email", zap.String("email", req.Email))
		return nil, ErrDuplicateEmail
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	otpCode, err := utils.GenerateOTP(otpLength)
	if err != nil {
		s.log.Error("Failed to generate OTP", zap.Error(err))
		return nil, fmt.Errorf("generate OTP: %w", err)
	}

	now := s.now()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		IsActive:     false,
		DateJoined:   now,
		UpdatedAt:    now,
	}
	profile := &entity.Profile{
		BaseSimple:    entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:        user.ID,
		EmailVerified: false,
	}
	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		Email:      req.Email,
		OTPCode:    otpCode,
		ExpiresAt:  now.Add(s.otpExpiry()),
	}

	err = s.repo.Tx.WithinTx(ctx, func(repos *repository.Repository) error {
		if err := repos.User.Create(ctx, user); err != nil {
			return err
		}
		if err := repos.Profile.Create(ctx, profile); err != nil {
			return err
		}
		return repos.OTP.Create(ctx, otp)
	})
	if errors.Is(err, database.ErrUniqueViolation) {
		// lost a race with a concurrent registration for the same email
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		s.log.Error("Failed to register user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("register user: %w", err)
	}

	s.sendVerificationEmail(ctx, otp)

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	resp := &response.RegisterResponse{Email: user.Email}
	if s.config.OTP.ExposeCode {
		resp.OTPCode = otpCode
	}
	return resp, nil
}

func (s *authService) VerifyRegistration(ctx context.Context, req *request.VerifyRegistrationRequest) (*response.VerifyRegistrationResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Verify validation failed", zap.Error(err))
		return nil, err
	}

	var userID uuid.UUID
	err := s.repo.Tx.WithinTx(ctx, func(repos *repository.Repository) error {
		otp, err := repos.OTP.FindLatestUnverified(ctx, req.Email, req.OTPCode)
		if err != nil {
			return err
		}
		if otp == nil {
			return ErrInvalidOTP
		}
		if otp.IsExpired(s.now()) {
			return ErrOTPExpired
		}

		user, err := repos.User.FindByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		marked, err := repos.OTP.MarkVerified(ctx, otp.ID)
		if err != nil {
			return err
		}
		if !marked {
			return ErrInvalidOTP
		}

		if err := repos.User.Activate(ctx, user.ID); err != nil {
			return err
		}
		if err := repos.Profile.MarkEmailVerified(ctx, user.ID); err != nil {
			return err
		}

		userID = user.ID
		return nil
	})

	switch {
	case errors.Is(err, ErrInvalidOTP), errors.Is(err, ErrOTPExpired), errors.Is(err, ErrUserNotFound):
		s.log.Warn("Verification rejected", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	case err != nil:
		s.log.Error("Failed to verify registration", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("verify registration: %w", err)
	}

	s.log.Info("Email verified",
		zap.String("user_id", userID.String()),
		zap.String("email", req.Email),
	)

	return &response.VerifyRegistrationResponse{Email: req.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*LoginResult, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, err
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		return nil, ErrUserNotFound
	}

	if !user.IsActive {
		s.log.Warn("Login before verification", zap.String("user_id", user.ID.String()))
		return nil, ErrAccountNotVerified
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	profile, err := s.repo.Profile.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	token, session, err := s.createSession(ctx, user.ID, client)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &LoginResult{
		Response: response.LoginResponse{
			User:      response.UserToResponse(user, profile),
			ExpiresAt: session.ExpiresAt,
		},
		Token: token,
		TTL:   s.sessionTTL(),
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthenticated
	}

	if err := s.repo.Session.Revoke(ctx, utils.HashToken(token)); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile, err := s.repo.Profile.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	resp := response.UserToResponse(user, profile)
	return &resp, nil
}

func (s *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := s.repo.Session.CleanExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	if removed > 0 {
		s.log.Info("Expired sessions purged", zap.Int64("count", removed))
	}
	return removed, nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID, client ClientInfo) (string, *entity.Session, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return "", nil, err
	}

	now := s.now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     userID,
		TokenHash:  utils.HashToken(token),
		UserAgent:  optional(client.UserAgent),
		IPAddress:  optional(client.IPAddress),
		ExpiresAt:  now.Add(s.sessionTTL()),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return "", nil, err
	}
	return token, session, nil
}

// sendVerificationEmail delivers the code on the request path. Failures are
// logged only; the registration has already been committed.
func (s *authService) sendVerificationEmail(ctx context.Context, otp *entity.OTP) {
	sendCtx := context.WithoutCancel(ctx)
	if s.config.Email.Timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(sendCtx, s.config.Email.Timeout)
		defer cancel()
	}

	body := fmt.Sprintf("Your OTP for email verification is: %s\n\nThis OTP will expire in %d minutes.",
		otp.OTPCode, int(s.otpExpiry().Minutes()))

	if err := s.sender.Send(sendCtx, otp.Email, verificationSubject, body); err != nil {
		s.log.Error("Failed to send verification email", zap.Error(err), zap.String("email", otp.Email))
		return
	}

	s.log.Debug("Verification OTP sent", zap.String("email", otp.Email), zap.String("otp_code", otp.OTPCode))
}

func (s *authService) otpExpiry() time.Duration {
	if s.config.OTP.ExpiryMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute
}

func (s *authService) sessionTTL() time.Duration {
	if s.config.Session.TTL <= 0 {
		return time.Hour
	}
	return s.config.Session.TTL
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
