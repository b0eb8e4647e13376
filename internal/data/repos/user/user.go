package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	types "github.com/yungbote/edusphere-backend/internal/domain"
	pkgerrors "github.com/yungbote/edusphere-backend/internal/pkg/errors"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepo is the identity store behind signup and login.
type UserRepo interface {
	// Create registers a new account. A taken email yields pkgerrors.ErrAlreadyExists.
	Create(ctx context.Context, email, password string) (*types.User, error)
	// GetByEmail yields pkgerrors.ErrNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (*types.User, error)
}

// PasswordVerifier is implemented by stores that hold password hashes.
type PasswordVerifier interface {
	VerifyPassword(ctx context.Context, u *types.User, password string) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(ctx context.Context, email, password string) (*types.User, error) {
	email = normalizeEmail(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &types.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := ur.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicate(err) {
			return nil, fmt.Errorf("user %s: %w", email, pkgerrors.ErrAlreadyExists)
		}
		return nil, err
	}
	return u, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	var u types.User
	err := ur.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user: %w", pkgerrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (ur *userRepo) VerifyPassword(ctx context.Context, u *types.User, password string) error {
	if u == nil || u.PasswordHash == "" {
		return pkgerrors.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return pkgerrors.ErrUnauthorized
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
