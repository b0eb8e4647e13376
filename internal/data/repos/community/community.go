package community

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	types "github.com/yungbote/edusphere-backend/internal/domain"
	pkgerrors "github.com/yungbote/edusphere-backend/internal/pkg/errors"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type CommunityRepo interface {
	// Create stores c with its initial member list.
	Create(ctx context.Context, c *types.Community) error
	// GetByID returns pkgerrors.ErrNotFound when no community has id.
	GetByID(ctx context.Context, id string) (*types.Community, error)
	// AddMember reports false when userID was already a member.
	AddMember(ctx context.Context, communityID, userID string) (bool, error)
	ListByMember(ctx context.Context, userID string) ([]*types.Community, error)
}

type communityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCommunityRepo(db *gorm.DB, baseLog *logger.Logger) CommunityRepo {
	return &communityRepo{db: db, log: baseLog.With("repo", "CommunityRepo")}
}

func (r *communityRepo) Create(ctx context.Context, c *types.Community) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		now := time.Now().UTC()
		for i, userID := range c.Members {
			m := &types.CommunityMember{
				CommunityID: c.ID,
				UserID:      userID,
				JoinedAt:    now.Add(time.Duration(i) * time.Microsecond),
			}
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *communityRepo) GetByID(ctx context.Context, id string) (*types.Community, error) {
	var c types.Community
	err := r.db.WithContext(ctx).Where("community_id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("community %s: %w", id, pkgerrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if err := r.attachMembers(ctx, []*types.Community{&c}); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *communityRepo) AddMember(ctx context.Context, communityID, userID string) (bool, error) {
	added := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&types.Community{}).Where("community_id = ?", communityID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("community %s: %w", communityID, pkgerrors.ErrNotFound)
		}
		var existing int64
		if err := tx.Model(&types.CommunityMember{}).
			Where("community_id = ? AND user_id = ?", communityID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}
		if err := tx.Create(&types.CommunityMember{
			CommunityID: communityID,
			UserID:      userID,
			JoinedAt:    time.Now().UTC(),
		}).Error; err != nil {
			return err
		}
		added = true
		return nil
	})
	if isDuplicate(err) {
		// lost a race with a concurrent join of the same user
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return added, nil
}

func (r *communityRepo) ListByMember(ctx context.Context, userID string) ([]*types.Community, error) {
	results := []*types.Community{}
	sub := r.db.Model(&types.CommunityMember{}).Select("community_id").Where("user_id = ?", userID)
	if err := r.db.WithContext(ctx).
		Where("community_id IN (?)", sub).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	if err := r.attachMembers(ctx, results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *communityRepo) attachMembers(ctx context.Context, communities []*types.Community) error {
	if len(communities) == 0 {
		return nil
	}
	byID := make(map[string]*types.Community, len(communities))
	ids := make([]string, 0, len(communities))
	for _, c := range communities {
		c.Members = []string{}
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}
	var rows []*types.CommunityMember
	if err := r.db.WithContext(ctx).
		Where("community_id IN ?", ids).
		Order("joined_at ASC").
		Find(&rows).Error; err != nil {
		return err
	}
	for _, row := range rows {
		if c := byID[row.CommunityID]; c != nil {
			c.Members = append(c.Members, row.UserID)
		}
	}
	return nil
}

func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
