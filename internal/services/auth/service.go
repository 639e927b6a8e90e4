package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"grabbber/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const issuer = "grabbber-api"

type Service interface {
	Login(email, password string) (string, *models.AdminClaims, error)
	ParseToken(tokenString string) (*models.AdminClaims, error)
}

// Config holds the single admin account and token settings.
type Config struct {
	AdminEmail        string
	AdminPasswordHash string
	JWTSecret         string
	TokenTTL          time.Duration
}

type service struct {
	cfg    Config
	logger *zap.Logger
	now    func() time.Time
}

func NewService(cfg Config, logger *zap.Logger) Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

func (s *service) Login(email, password string) (string, *models.AdminClaims, error) {
	if s.cfg.AdminEmail == "" || s.cfg.AdminPasswordHash == "" || s.cfg.JWTSecret == "" {
		return "", nil, ErrNotConfigured
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email != s.cfg.AdminEmail {
		s.logger.Info("login failed: unknown admin", zap.String("email", email))
		return "", nil, ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		s.logger.Info("login failed: incorrect password", zap.String("email", email))
		return "", nil, ErrInvalidCredentials
	}

	now := s.now()
	claims := &models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   email,
		},
		Email:       email,
		Role:        models.RoleAdmin,
		Permissions: models.GetDefaultPermissions(models.RoleAdmin),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("error generating token: %w", err)
	}
	return token, claims, nil
}

func (s *service) ParseToken(tokenString string) (*models.AdminClaims, error) {
	if s.cfg.JWTSecret == "" {
		return nil, ErrNotConfigured
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*models.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
