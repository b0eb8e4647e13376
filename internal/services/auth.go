package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yungbote/edusphere-backend/internal/data/repos"
	pkgerrors "github.com/yungbote/edusphere-backend/internal/pkg/errors"
	"github.com/yungbote/edusphere-backend/internal/platform/apierr"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

const (
	DefaultAccessTTL = time.Hour

	CodeAuthFailed = "auth_failed"
)

var (
	ErrCredentialsRequired = errors.New("Email and password are required")
	ErrInvalidCredentials  = errors.New("Invalid email or password")
	ErrTokensDisabled      = errors.New("token signing is not configured")
)

type LoginResult struct {
	UID         string
	AccessToken string
	ExpiresIn   int64
}

type AuthService interface {
	Signup(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// ParseAccessToken returns the uid carried by a token issued by Login.
	ParseAccessToken(tokenString string) (string, error)
	TokensEnabled() bool
}

type authService struct {
	log          *logger.Logger
	users        repos.UserRepo
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(log *logger.Logger, users repos.UserRepo, jwtSecretKey string, accessTTL time.Duration) AuthService {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	return &authService{
		log:          log.With("service", "AuthService"),
		users:        users,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func authFailure(err error) error {
	return apierr.New(http.StatusBadRequest, CodeAuthFailed, err)
}

func (as *authService) Signup(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", authFailure(ErrCredentialsRequired)
	}
	u, err := as.users.Create(ctx, email, password)
	if err != nil {
		as.log.Warn("signup failed", "error", err)
		return "", authFailure(err)
	}
	as.log.Info("user signed up", "user_id", u.ID)
	return u.ID, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, authFailure(ErrCredentialsRequired)
	}
	u, err := as.users.GetByEmail(ctx, email)
	if errors.Is(err, pkgerrors.ErrNotFound) {
		return nil, authFailure(ErrInvalidCredentials)
	}
	if err != nil {
		as.log.Warn("login lookup failed", "error", err)
		return nil, authFailure(err)
	}
	if verifier, ok := as.users.(repos.PasswordVerifier); ok {
		if err := verifier.VerifyPassword(ctx, u, password); err != nil {
			return nil, authFailure(ErrInvalidCredentials)
		}
	}

	res := &LoginResult{UID: u.ID}
	if as.TokensEnabled() {
		tok, err := as.generateAccessToken(u.ID)
		if err != nil {
			return nil, fmt.Errorf("generate access token: %w", err)
		}
		res.AccessToken = tok
		res.ExpiresIn = int64(as.accessTTL.Seconds())
	}
	as.log.Info("user logged in", "user_id", u.ID)
	return res, nil
}

func (as *authService) TokensEnabled() bool {
	return as.jwtSecretKey != ""
}

func (as *authService) generateAccessToken(uid string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) ParseAccessToken(tokenString string) (string, error) {
	if !as.TokensEnabled() {
		return "", ErrTokensDisabled
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", pkgerrors.ErrUnauthorized, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", pkgerrors.ErrUnauthorized
	}
	return claims.Subject, nil
}
