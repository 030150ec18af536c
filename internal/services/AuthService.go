package services

import (
	"context"
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"mindcare/internal/models"
	"mindcare/internal/providers"
	"mindcare/internal/storage"
	"mindcare/internal/structures"
	"strings"
	"time"
)

const tokenIssuer = "mindcare"

type AuthServiceInterface interface {
	Register(ctx context.Context, in *models.RegisterInput) (*models.User, error)
	Login(ctx context.Context, in *models.LoginInput) (*models.Token, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, in *models.ProfileUpdateInput) (*models.User, error)
	Refresh(ctx context.Context, userID string) (*models.Token, error)
	ChangePassword(ctx context.Context, userID string, in *models.PasswordChangeInput) error
}

type AuthService struct {
	db     *storage.Database
	conf   structures.AuthConfig
	logger providers.Logger
	now    func() time.Time
	cost   int
}

func NewAuthService(conf *structures.Config, db *storage.Database, logger providers.Logger) AuthServiceInterface {
	return &AuthService{
		db:     db,
		conf:   conf.Auth,
		logger: logger,
		now:    time.Now,
		cost:   bcrypt.DefaultCost,
	}
}

func (s *AuthService) Register(ctx context.Context, in *models.RegisterInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.db.FindUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", models.ErrConflict)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().Unix()
	user := &models.User{
		ID:                   uuid.NewString(),
		Email:                email,
		Name:                 in.Name,
		PasswordHash:         string(hash),
		Preferences:          map[string]any{},
		NotificationSettings: map[string]any{},
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.db.InsertUser(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Infof(providers.TypePost, "Registered user %s", user.ID)
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, in *models.LoginInput) (*models.Token, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	user, err := s.db.FindUserByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("incorrect email or password: %w", models.ErrUnauthorized)
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, fmt.Errorf("incorrect email or password: %w", models.ErrUnauthorized)
	}

	return s.token(user.ID)
}

func (s *AuthService) token(userID string) (*models.Token, error) {
	signed, err := s.issue(userID)
	if err != nil {
		return nil, err
	}
	return &models.Token{AccessToken: signed, TokenType: "bearer"}, nil
}

// Refresh issues a fresh token for an already authenticated user.
func (s *AuthService) Refresh(_ context.Context, userID string) (*models.Token, error) {
	if _, err := s.db.Users.Get(userID); err != nil {
		return nil, err
	}
	return s.token(userID)
}

func (s *AuthService) ChangePassword(_ context.Context, userID string, in *models.PasswordChangeInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	user, err := s.db.Users.Get(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)) != nil {
		return fmt.Errorf("incorrect password: %w", models.ErrUnauthorized)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	// The hash is only swapped if nobody changed it since it was verified.
	verified := user.PasswordHash
	_, err = s.db.Users.Update(userID, func(u *models.User) error {
		if u.PasswordHash != verified {
			return fmt.Errorf("password changed concurrently: %w", models.ErrConflict)
		}
		u.PasswordHash = string(hash)
		u.UpdatedAt = s.now().Unix()
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Infof(providers.TypePost, "Password changed for user %s", userID)
	return nil
}

func (s *AuthService) issue(userID string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.conf.TokenTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.conf.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature, expiry and that the subject still exists.
func (s *AuthService) VerifyToken(_ context.Context, token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(s.conf.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %s", models.ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: token without subject", models.ErrUnauthorized)
	}
	if _, err := s.db.Users.Get(claims.Subject); err != nil {
		return "", fmt.Errorf("%w: unknown user", models.ErrUnauthorized)
	}
	return claims.Subject, nil
}

func (s *AuthService) Profile(_ context.Context, userID string) (*models.User, error) {
	return s.db.Users.Get(userID)
}

func (s *AuthService) UpdateProfile(_ context.Context, userID string, in *models.ProfileUpdateInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		if _, getErr := s.db.Users.Get(userID); getErr != nil {
			return nil, getErr
		}
		return nil, err
	}
	return s.db.Users.Update(userID, func(user *models.User) error {
		if in.Name != nil {
			user.Name = *in.Name
		}
		if in.Preferences != nil {
			user.Preferences = in.Preferences
		}
		if in.NotificationSettings != nil {
			user.NotificationSettings = in.NotificationSettings
		}
		user.UpdatedAt = s.now().Unix()
		return nil
	})
}
