package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"gpsphere-backend/internal/config"
	"gpsphere-backend/internal/domain"
	"gpsphere-backend/internal/mocks"
	"gpsphere-backend/internal/service/auth"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
		TACExpiry:       15 * time.Minute,
		TACTestMode:     true,
	}
}

func approvedUser(email, password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &domain.User{
		ID:           uuid.New(),
		Name:         "Aina",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleMember,
		Status:       domain.StatusApproved,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	input := domain.RegisterInput{
		Name:     "Aina",
		Email:    "aina@example.com",
		Password: "Secret123!",
	}

	t.Run("Creates Pending Student", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, nil, testConfig())

		mockUserRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil).Once()
		mockUserRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == input.Email &&
				u.Role == domain.RoleStudent &&
				u.Status == domain.StatusPending &&
				u.PasswordHash != input.Password
		})).Return(nil).Once()

		user, err := svc.Register(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, user.Status)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Email Taken", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, nil, testConfig())

		mockUserRepo.On("ExistsByEmail", ctx, input.Email).Return(true, nil).Once()

		user, err := svc.Register(ctx, input)

		assert.ErrorIs(t, err, domain.ErrEmailTaken)
		assert.Nil(t, user)
		mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Issues TAC Challenge With Captured Code", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockEmail := new(mocks.EmailService)
		svc := auth.NewService(mockUserRepo, mockEmail, testConfig())

		user := approvedUser("aina@example.com", "Secret123!")
		var sentCode string

		mockUserRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
		mockUserRepo.On("SetTAC", ctx, user.ID, mock.MatchedBy(func(code string) bool {
			sentCode = code
			return len(code) == 6
		}), mock.Anything).Return(nil).Once()
		mockEmail.On("SendTACEmail", ctx, user.Email, mock.Anything).
			Return(domain.EmailResult{Delivered: false, Captured: "captured-code"}).Once()

		challenge, err := svc.Login(ctx, domain.LoginInput{Email: user.Email, Password: "Secret123!"})

		assert.NoError(t, err)
		assert.True(t, challenge.TACRequired)
		assert.NotNil(t, challenge.TestTAC)
		assert.Equal(t, "captured-code", *challenge.TestTAC)
		assert.Len(t, sentCode, 6)
		mockUserRepo.AssertExpectations(t)
		mockEmail.AssertExpectations(t)
	})

	t.Run("Delivered TAC Is Not Echoed", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockEmail := new(mocks.EmailService)
		svc := auth.NewService(mockUserRepo, mockEmail, testConfig())

		user := approvedUser("aina@example.com", "Secret123!")

		mockUserRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
		mockUserRepo.On("SetTAC", ctx, user.ID, mock.Anything, mock.Anything).Return(nil).Once()
		mockEmail.On("SendTACEmail", ctx, user.Email, mock.Anything).
			Return(domain.EmailResult{Delivered: true}).Once()

		challenge, err := svc.Login(ctx, domain.LoginInput{Email: user.Email, Password: "Secret123!"})

		assert.NoError(t, err)
		assert.Nil(t, challenge.TestTAC)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, nil, testConfig())

		user := approvedUser("aina@example.com", "Secret123!")
		mockUserRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		challenge, err := svc.Login(ctx, domain.LoginInput{Email: user.Email, Password: "wrong"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, challenge)
		mockUserRepo.AssertNotCalled(t, "SetTAC", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, nil, testConfig())

		mockUserRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil).Once()

		challenge, err := svc.Login(ctx, domain.LoginInput{Email: "ghost@example.com", Password: "x"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, challenge)
	})

	t.Run("Pending Account", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, nil, testConfig())

		user := approvedUser("aina@example.com", "Secret123!")
		user.Status = domain.StatusPending
		mockUserRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		challenge, err := svc.Login(ctx, domain.LoginInput{Email: user.Email, Password: "Secret123!"})

		assert.ErrorIs(t, err, domain.ErrAccountPending)
		assert.Nil(t, challenge)
	})
}

func TestAuthService_VerifyTAC(t *testing.T) {
	ctx := context.Background()

	tacUser := func(code string, expiry time.Time) *domain.User {
		user := approvedUser("aina@example.com", "Secret123!")
		user.TACCode = &code
		user.TACExpiry = &expiry
		return user
	}

	t.Run("Valid Code Yields Token", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, nil, testConfig())

		user := tacUser("482913", time.Now().Add(10*time.Minute))
		mockUserRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
		mockUserRepo.On("ClearTAC", ctx, user.ID).Return(nil).Once()

		token, err := svc.VerifyTAC(ctx, domain.VerifyTACInput{Email: user.Email, Code: "482913"})

		assert.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, user.ID, token.User.ID)

		claims, err := svc.ValidateAccessToken(token.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, domain.RoleMember, claims.Role)

		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Wrong Code", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, nil, testConfig())

		user := tacUser("482913", time.Now().Add(10*time.Minute))
		mockUserRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		token, err := svc.VerifyTAC(ctx, domain.VerifyTACInput{Email: user.Email, Code: "000000"})

		assert.ErrorIs(t, err, domain.ErrInvalidTAC)
		assert.Nil(t, token)
		mockUserRepo.AssertNotCalled(t, "ClearTAC", mock.Anything, mock.Anything)
	})

	t.Run("Expired Code", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, nil, testConfig())

		user := tacUser("482913", time.Now().Add(-time.Minute))
		mockUserRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		token, err := svc.VerifyTAC(ctx, domain.VerifyTACInput{Email: user.Email, Code: "482913"})

		assert.ErrorIs(t, err, domain.ErrInvalidTAC)
		assert.Nil(t, token)
	})

	t.Run("No TAC Pending", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, nil, testConfig())

		user := approvedUser("aina@example.com", "Secret123!")
		mockUserRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		token, err := svc.VerifyTAC(ctx, domain.VerifyTACInput{Email: user.Email, Code: "482913"})

		assert.ErrorIs(t, err, domain.ErrInvalidTAC)
		assert.Nil(t, token)
	})
}

func TestAuthService_PasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Email Succeeds Silently", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, nil, testConfig())

		mockUserRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil).Once()

		result, err := svc.RequestPasswordReset(ctx, "ghost@example.com")

		assert.NoError(t, err)
		assert.Nil(t, result)
		mockUserRepo.AssertNotCalled(t, "SetResetCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Known Email Gets Code", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockEmail := new(mocks.EmailService)
		svc := auth.NewService(mockUserRepo, mockEmail, testConfig())

		user := approvedUser("aina@example.com", "Secret123!")
		mockUserRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
		mockUserRepo.On("SetResetCode", ctx, user.ID, mock.MatchedBy(func(code string) bool {
			return len(code) == 6
		}), mock.Anything).Return(nil).Once()
		mockEmail.On("SendResetEmail", ctx, user.Email, mock.Anything).
			Return(domain.EmailResult{Delivered: false, Captured: "115599"}).Once()

		result, err := svc.RequestPasswordReset(ctx, user.Email)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "115599", result.Captured)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Reset With Valid Code", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, nil, testConfig())

		user := approvedUser("aina@example.com", "Secret123!")
		code := "115599"
		expiry := time.Now().Add(10 * time.Minute)
		user.ResetCode = &code
		user.ResetExpiry = &expiry

		mockUserRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
		mockUserRepo.On("ResetPassword", ctx, user.ID, mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("NewSecret456!")) == nil
		})).Return(nil).Once()

		err := svc.ResetPassword(ctx, domain.ResetPasswordInput{
			Email:       user.Email,
			Code:        code,
			NewPassword: "NewSecret456!",
		})

		assert.NoError(t, err)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Reset With Expired Code", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, nil, testConfig())

		user := approvedUser("aina@example.com", "Secret123!")
		code := "115599"
		expiry := time.Now().Add(-time.Minute)
		user.ResetCode = &code
		user.ResetExpiry = &expiry

		mockUserRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		err := svc.ResetPassword(ctx, domain.ResetPasswordInput{
			Email:       user.Email,
			Code:        code,
			NewPassword: "NewSecret456!",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidResetCode)
		mockUserRepo.AssertNotCalled(t, "ResetPassword", mock.Anything, mock.Anything, mock.Anything)
	})
}
