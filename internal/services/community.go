package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/edusphere-backend/internal/data/repos"
	types "github.com/yungbote/edusphere-backend/internal/domain"
	pkgerrors "github.com/yungbote/edusphere-backend/internal/pkg/errors"
	"github.com/yungbote/edusphere-backend/internal/platform/apierr"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

const DefaultInviteBaseURL = "https://edusphere-ruby-two.vercel.app"

const (
	CodeCommunityNotFound = "community_not_found"
	CodeAlreadyMember     = "already_member"
	CodeNoCommunities     = "no_communities"
)

var (
	ErrCommunityNotFound = errors.New("Community not found")
	ErrAlreadyMember     = errors.New("User already in community")
	ErrNoCommunities     = errors.New("User is not part of any community")
)

type CommunityService interface {
	Create(ctx context.Context, name, description, creator string) (*types.Community, error)
	Get(ctx context.Context, id string) (*types.Community, error)
	InviteLink(ctx context.Context, id string) (string, error)
	Join(ctx context.Context, id, userID string) error
	ForUser(ctx context.Context, userID string) ([]*types.Community, error)
}

type communityService struct {
	log     *logger.Logger
	repo    repos.CommunityRepo
	baseURL string
}

func NewCommunityService(log *logger.Logger, repo repos.CommunityRepo, baseURL string) CommunityService {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultInviteBaseURL
	}
	return &communityService{
		log:     log.With("service", "CommunityService"),
		repo:    repo,
		baseURL: baseURL,
	}
}

func (s *communityService) Create(ctx context.Context, name, description, creator string) (*types.Community, error) {
	c := &types.Community{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Creator:     creator,
		Members:     []string{creator},
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create community: %w", err)
	}
	s.log.Info("community created", "community_id", c.ID, "creator", creator)
	return c, nil
}

func (s *communityService) Get(ctx context.Context, id string) (*types.Community, error) {
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pkgerrors.ErrNotFound) {
		return nil, apierr.NotFound(CodeCommunityNotFound, ErrCommunityNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *communityService) InviteLink(ctx context.Context, id string) (string, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.baseURL + "/join_community/" + c.ID, nil
}

func (s *communityService) Join(ctx context.Context, id, userID string) error {
	added, err := s.repo.AddMember(ctx, id, userID)
	if errors.Is(err, pkgerrors.ErrNotFound) {
		return apierr.NotFound(CodeCommunityNotFound, ErrCommunityNotFound)
	}
	if err != nil {
		return fmt.Errorf("join community: %w", err)
	}
	if !added {
		return apierr.New(http.StatusBadRequest, CodeAlreadyMember, ErrAlreadyMember)
	}
	s.log.Info("user joined community", "community_id", id, "user_id", userID)
	return nil
}

func (s *communityService) ForUser(ctx context.Context, userID string) ([]*types.Community, error) {
	list, err := s.repo.ListByMember(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apierr.NotFound(CodeNoCommunities, ErrNoCommunities)
	}
	return list, nil
}
