package docstore

import (
	"context"
	"fmt"
	"strings"

	"firebase.google.com/go/v4/auth"

	"github.com/yungbote/edusphere-backend/internal/data/repos/user"
	types "github.com/yungbote/edusphere-backend/internal/domain"
	pkgerrors "github.com/yungbote/edusphere-backend/internal/pkg/errors"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

// identityProvider is the slice of *auth.Client the user repo needs.
type identityProvider interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
}

// userRepo keeps accounts in Firebase Auth. Firebase Admin cannot check
// passwords, so it does not implement user.PasswordVerifier.
type userRepo struct {
	auth identityProvider
	log  *logger.Logger
}

func NewUserRepo(client *auth.Client, baseLog *logger.Logger) user.UserRepo {
	return newUserRepo(client, baseLog)
}

func newUserRepo(provider identityProvider, baseLog *logger.Logger) *userRepo {
	return &userRepo{auth: provider, log: baseLog.With("repo", "FirebaseUserRepo")}
}

func (r *userRepo) Create(ctx context.Context, email, password string) (*types.User, error) {
	email = strings.TrimSpace(email)
	params := (&auth.UserToCreate{}).Email(email).Password(password)
	rec, err := r.auth.CreateUser(ctx, params)
	if auth.IsEmailAlreadyExists(err) {
		return nil, fmt.Errorf("%w: %s", pkgerrors.ErrAlreadyExists, err.Error())
	}
	if err != nil {
		return nil, err
	}
	return fromUserRecord(rec), nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	rec, err := r.auth.GetUserByEmail(ctx, strings.TrimSpace(email))
	if auth.IsUserNotFound(err) {
		return nil, fmt.Errorf("%w: %s", pkgerrors.ErrNotFound, err.Error())
	}
	if err != nil {
		return nil, err
	}
	return fromUserRecord(rec), nil
}

func fromUserRecord(rec *auth.UserRecord) *types.User {
	if rec == nil || rec.UserInfo == nil {
		return &types.User{}
	}
	return &types.User{ID: rec.UID, Email: rec.Email}
}
