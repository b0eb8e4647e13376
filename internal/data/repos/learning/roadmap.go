package learning

import (
	"context"

	"github.com/google/uuid"
	types "github.com/yungbote/edusphere-backend/internal/domain"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type RoadmapRepo interface {
	Create(ctx context.Context, roadmap *types.Roadmap) (*types.Roadmap, error)
	ListByUserID(ctx context.Context, userID string) ([]*types.Roadmap, error)
}

type roadmapRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoadmapRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapRepo {
	return &roadmapRepo{db: db, log: baseLog.With("repo", "RoadmapRepo")}
}

func (r *roadmapRepo) Create(ctx context.Context, roadmap *types.Roadmap) (*types.Roadmap, error) {
	if roadmap.ID == "" {
		roadmap.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(roadmap).Error; err != nil {
		return nil, err
	}
	return roadmap, nil
}

func (r *roadmapRepo) ListByUserID(ctx context.Context, userID string) ([]*types.Roadmap, error) {
	results := []*types.Roadmap{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
