package services

import (
	"context"
	"errors"
	"fmt"
	"mindcare/internal/models"
	"mindcare/internal/testutil"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() (*AuthService, *testutil.MockLogger) {
	logger := &testutil.MockLogger{}
	svc := NewAuthService(testConfig(), newTestDB(), logger).(*AuthService)
	svc.cost = bcrypt.MinCost
	svc.now = fixedClock
	return svc, logger
}

func register(t *testing.T, svc *AuthService, email string) *models.User {
	t.Helper()
	user, err := svc.Register(context.Background(), &models.RegisterInput{Email: email, Name: "Sam", Password: "correct-horse"})
	require.NoError(t, err)
	return user
}

func TestRegister_StoresHashedPasswordAndLowercasesEmail(t *testing.T) {
	svc, _ := newAuthService()
	user := register(t, svc, "Sam@Example.com")

	assert.Equal(t, "sam@example.com", user.Email)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse")))
	assert.Empty(t, user.Public().PasswordHash)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	svc, _ := newAuthService()
	register(t, svc, "sam@example.com")

	_, err := svc.Register(context.Background(), &models.RegisterInput{Email: "SAM@example.com", Password: "another-pass"})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	svc, _ := newAuthService()
	_, err := svc.Register(context.Background(), &models.RegisterInput{Email: "sam@example.com", Password: "short"})

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "password")
}

func TestLoginAndVerifyToken(t *testing.T) {
	svc, _ := newAuthService()
	user := register(t, svc, "sam@example.com")
	ctx := context.Background()

	token, err := svc.Login(ctx, &models.LoginInput{Email: "sam@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)

	subject, err := svc.VerifyToken(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	svc, _ := newAuthService()
	register(t, svc, "sam@example.com")

	_, err := svc.Login(context.Background(), &models.LoginInput{Email: "sam@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = svc.Login(context.Background(), &models.LoginInput{Email: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestVerifyToken_Rejections(t *testing.T) {
	svc, _ := newAuthService()
	register(t, svc, "sam@example.com")
	ctx := context.Background()

	token, err := svc.Login(ctx, &models.LoginInput{Email: "sam@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.VerifyToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("expired", func(t *testing.T) {
		svc.now = func() time.Time { return testNow.Add(2 * time.Hour) }
		defer func() { svc.now = fixedClock }()
		_, err := svc.VerifyToken(ctx, token.AccessToken)
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, _ := newAuthService()
		other.conf.Secret = "ffffffffffffffffffffffffffffffff"
		_, err := other.VerifyToken(ctx, token.AccessToken)
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		signed, err := svc.issue("ghost")
		require.NoError(t, err)
		_, err = svc.VerifyToken(ctx, signed)
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newAuthService()
	user := register(t, svc, "sam@example.com")
	ctx := context.Background()

	updated, err := svc.UpdateProfile(ctx, user.ID, &models.ProfileUpdateInput{
		Name:        strPtr("Samira"),
		Preferences: map[string]any{"theme": "dark"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Samira", updated.Name)
	assert.Equal(t, "dark", updated.Preferences["theme"])

	stored, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Samira", stored.Name)

	_, err = svc.UpdateProfile(ctx, "missing", &models.ProfileUpdateInput{})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRefresh(t *testing.T) {
	svc, _ := newAuthService()
	user := register(t, svc, "sam@example.com")
	ctx := context.Background()

	token, err := svc.Refresh(ctx, user.ID)
	require.NoError(t, err)
	subject, err := svc.VerifyToken(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)

	_, err = svc.Refresh(ctx, "ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthService()
	user := register(t, svc, "sam@example.com")
	ctx := context.Background()

	err := svc.ChangePassword(ctx, user.ID, &models.PasswordChangeInput{CurrentPassword: "wrong-one", NewPassword: "battery-staple"})
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	err = svc.ChangePassword(ctx, user.ID, &models.PasswordChangeInput{CurrentPassword: "correct-horse", NewPassword: "short"})
	var ve *models.ValidationError
	assert.ErrorAs(t, err, &ve)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, &models.PasswordChangeInput{CurrentPassword: "correct-horse", NewPassword: "battery-staple"}))

	_, err = svc.Login(ctx, &models.LoginInput{Email: "sam@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	_, err = svc.Login(ctx, &models.LoginInput{Email: "sam@example.com", Password: "battery-staple"})
	assert.NoError(t, err)
}

func TestRegister_ConcurrentSameEmailCreatesOneUser(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	var wg sync.WaitGroup
	var succeeded, conflicted atomic.Int32
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(ctx, &models.RegisterInput{Email: "a@b.com", Password: "correct-horse"})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, models.ErrConflict):
				conflicted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(7), conflicted.Load())
	assert.Len(t, svc.db.Users.Find(func(u *models.User) bool { return u.Email == "a@b.com" }), 1)
}

func TestUpdateProfile_KeepsConcurrentPasswordChange(t *testing.T) {
	svc, _ := newAuthService()
	user := register(t, svc, "sam@example.com")
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, svc.ChangePassword(ctx, user.ID, &models.PasswordChangeInput{CurrentPassword: "correct-horse", NewPassword: "battery-staple"}))
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			_, err := svc.UpdateProfile(ctx, user.ID, &models.ProfileUpdateInput{Name: strPtr(fmt.Sprintf("Sam %d", i))})
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	stored, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sam 19", stored.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("battery-staple")))
}
