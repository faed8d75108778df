package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stemsi/unigrade-backend/internal/config"
	"github.com/stemsi/unigrade-backend/internal/logger"
	"github.com/stemsi/unigrade-backend/internal/model"
	"github.com/stemsi/unigrade-backend/internal/repository"
)

// Claims extends JWT standard claims with the session user.
type Claims struct {
	jwt.RegisteredClaims
	UserID string     `json:"user_id"`
	Role   model.Role `json:"role"`
}

// AuthService resolves login identifiers and tracks the logged-in user's session.
// It identifies callers only, role checks are left to the presentation layer.
type AuthService struct {
	cfg      *config.Config
	catalog  repository.Catalog
	sessions repository.SessionStore
	log      zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, catalog repository.Catalog, sessions repository.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{
		cfg:      cfg,
		catalog:  catalog,
		sessions: sessions,
		log:      logger.Component(log, "auth_service"),
	}
}

// Login looks the identifier up and opens a session for the matching user.
// A new login replaces any earlier session of the same user.
func (s *AuthService) Login(ctx context.Context, identifier string) (*model.LoginResponse, error) {
	user, err := s.catalog.FindUserByIdentifier(ctx, identifier)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	jti := uuid.New().String()
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		UserID: user.ID,
		Role:   user.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	if err := s.sessions.Save(ctx, user.ID, jti, s.cfg.JWTExpiry); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")
	return &model.LoginResponse{Token: signed, User: user}, nil
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// ValidateSession checks that the token is the user's current session.
func (s *AuthService) ValidateSession(ctx context.Context, claims *Claims) error {
	stored, err := s.sessions.Get(ctx, claims.UserID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return ErrSessionInvalid
	}
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if stored != claims.ID {
		return ErrSessionInvalid
	}
	return nil
}

// CurrentUser restores the session user from the catalog.
func (s *AuthService) CurrentUser(ctx context.Context, claims *Claims) (*model.User, error) {
	user, err := s.catalog.GetUser(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// Logout ends the user's session.
func (s *AuthService) Logout(ctx context.Context, claims *Claims) error {
	if err := s.sessions.Delete(ctx, claims.UserID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.log.Info().Str("user_id", claims.UserID).Msg("user logged out")
	return nil
}
