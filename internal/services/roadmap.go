package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yungbote/edusphere-backend/internal/data/repos"
	types "github.com/yungbote/edusphere-backend/internal/domain"
	"github.com/yungbote/edusphere-backend/internal/modules/roadmap"
	"github.com/yungbote/edusphere-backend/internal/platform/apierr"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
	"gorm.io/datatypes"
)

const (
	DefaultRoadmapDays = 30

	CodeDurationTooLong = "duration_too_long"
)

var ErrDurationTooLong = fmt.Errorf("Duration must be at most %d days", roadmap.MaxDays)

type RoadmapService interface {
	Generate(ctx context.Context, userID, topic string, durationDays int) (*types.Roadmap, error)
	ListForUser(ctx context.Context, userID string) ([]*types.Roadmap, error)
}

type roadmapService struct {
	log     *logger.Logger
	chunker *roadmap.Chunker
	repo    repos.RoadmapRepo
}

func NewRoadmapService(log *logger.Logger, chatbot ChatbotService, repo repos.RoadmapRepo, chunkSize int) RoadmapService {
	serviceLog := log.With("service", "RoadmapService")
	return &roadmapService{
		log:     serviceLog,
		chunker: roadmap.NewChunker(serviceLog, chatbot, chunkSize),
		repo:    repo,
	}
}

func (s *roadmapService) Generate(ctx context.Context, userID, topic string, durationDays int) (*types.Roadmap, error) {
	if durationDays > roadmap.MaxDays {
		return nil, apierr.BadRequest(CodeDurationTooLong, ErrDurationTooLong)
	}
	entries, err := s.chunker.Build(ctx, topic, durationDays)
	if err != nil {
		return nil, err
	}
	progress, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode roadmap progress: %w", err)
	}
	created, err := s.repo.Create(ctx, &types.Roadmap{
		UserID:   userID,
		Topic:    topic,
		Duration: durationDays,
		Progress: datatypes.JSON(progress),
	})
	if err != nil {
		return nil, fmt.Errorf("store roadmap: %w", err)
	}
	s.log.Info("roadmap generated", "user_id", userID, "duration", durationDays, "entries", len(entries))
	return created, nil
}

func (s *roadmapService) ListForUser(ctx context.Context, userID string) ([]*types.Roadmap, error) {
	return s.repo.ListByUserID(ctx, userID)
}
