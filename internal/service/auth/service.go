package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gpsphere-backend/internal/config"
	"gpsphere-backend/internal/domain"
	"gpsphere-backend/internal/repository"
	"gpsphere-backend/internal/service/email"
)

type Service interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	// Login verifies the password and sends a TAC as the second factor. The
	// returned challenge carries the captured code when the delivery channel
	// did not transmit it.
	Login(ctx context.Context, input domain.LoginInput) (*domain.LoginChallenge, error)
	VerifyTAC(ctx context.Context, input domain.VerifyTACInput) (*domain.AuthToken, error)
	RequestPasswordReset(ctx context.Context, emailAddr string) (*domain.EmailResult, error)
	ResetPassword(ctx context.Context, input domain.ResetPasswordInput) error
	ValidateAccessToken(token string) (*Claims, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type Claims struct {
	UserID uuid.UUID       `json:"user_id"`
	Email  string          `json:"email"`
	Role   domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type service struct {
	userRepo repository.UserRepository
	emailSvc email.Service
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, emailSvc email.Service, cfg *config.Config) Service {
	return &service{
		userRepo: userRepo,
		emailSvc: emailSvc,
		cfg:      cfg,
	}
}

func (s *service) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleStudent,
		Status:       domain.StatusPending,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.emailSvc != nil {
		go func(toEmail, name string) {
			_ = s.emailSvc.SendWelcomeEmail(context.Background(), toEmail, name)
		}(user.Email, user.Name)
	}

	return user, nil
}

func (s *service) Login(ctx context.Context, input domain.LoginInput) (*domain.LoginChallenge, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsApproved() {
		return nil, domain.ErrAccountPending
	}

	code, err := generateNumericCode(6)
	if err != nil {
		return nil, err
	}

	expiry := time.Now().Add(s.cfg.TACExpiry)
	if err := s.userRepo.SetTAC(ctx, user.ID, code, expiry); err != nil {
		return nil, err
	}

	challenge := &domain.LoginChallenge{
		TACRequired: true,
		ExpiresIn:   int64(s.cfg.TACExpiry.Seconds()),
	}

	result := s.emailSvc.SendTACEmail(ctx, user.Email, code)
	if !result.Delivered {
		challenge.TestTAC = &result.Captured
	}

	return challenge, nil
}

func (s *service) VerifyTAC(ctx context.Context, input domain.VerifyTACInput) (*domain.AuthToken, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.TACCode == nil || user.TACExpiry == nil {
		return nil, domain.ErrInvalidTAC
	}
	if *user.TACCode != input.Code || time.Now().After(*user.TACExpiry) {
		return nil, domain.ErrInvalidTAC
	}

	if err := s.userRepo.ClearTAC(ctx, user.ID); err != nil {
		return nil, err
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &domain.AuthToken{
		AccessToken: token,
		ExpiresIn:   int64(s.cfg.JWTAccessExpiry.Seconds()),
		User:        user,
	}, nil
}

// RequestPasswordReset always succeeds for unknown emails so account
// existence cannot be probed; the result is nil in that case.
func (s *service) RequestPasswordReset(ctx context.Context, emailAddr string) (*domain.EmailResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	code, err := generateNumericCode(6)
	if err != nil {
		return nil, err
	}

	expiry := time.Now().Add(s.cfg.TACExpiry)
	if err := s.userRepo.SetResetCode(ctx, user.ID, code, expiry); err != nil {
		return nil, err
	}

	result := s.emailSvc.SendResetEmail(ctx, user.Email, code)
	if !result.Delivered {
		log.Printf("Password reset code for %s captured (%s)", user.Email, result.Reason)
	}
	return &result, nil
}

func (s *service) ResetPassword(ctx context.Context, input domain.ResetPasswordInput) error {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if user == nil || user.ResetCode == nil || user.ResetExpiry == nil {
		return domain.ErrInvalidResetCode
	}
	if *user.ResetCode != input.Code || time.Now().After(*user.ResetExpiry) {
		return domain.ErrInvalidResetCode
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.ResetPassword(ctx, user.ID, string(hashedPassword))
}

func (s *service) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func (s *service) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *service) generateAccessToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTAccessExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func generateNumericCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
