package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"gorm.io/datatypes"

	"github.com/yungbote/edusphere-backend/internal/data/repos/learning"
	types "github.com/yungbote/edusphere-backend/internal/domain"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

type roadmapDoc struct {
	UserID    string    `firestore:"user_id"`
	Topic     string    `firestore:"topic"`
	Duration  int       `firestore:"duration"`
	Progress  []any     `firestore:"progress"`
	CreatedAt time.Time `firestore:"created_at"`
}

type roadmapRepo struct {
	client *firestore.Client
	log    *logger.Logger
}

func NewRoadmapRepo(client *firestore.Client, baseLog *logger.Logger) learning.RoadmapRepo {
	return &roadmapRepo{client: client, log: baseLog.With("repo", "FirestoreRoadmapRepo")}
}

func (r *roadmapRepo) Create(ctx context.Context, roadmap *types.Roadmap) (*types.Roadmap, error) {
	if roadmap.ID == "" {
		roadmap.ID = uuid.NewString()
	}
	if roadmap.CreatedAt.IsZero() {
		roadmap.CreatedAt = time.Now().UTC()
	}
	doc, err := toRoadmapDoc(roadmap)
	if err != nil {
		return nil, err
	}
	if _, err := r.client.Collection(roadmapCollection).Doc(roadmap.ID).Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("firestore create roadmap: %w", err)
	}
	return roadmap, nil
}

func (r *roadmapRepo) ListByUserID(ctx context.Context, userID string) ([]*types.Roadmap, error) {
	iter := r.client.Collection(roadmapCollection).Where("user_id", "==", userID).Documents(ctx)
	defer iter.Stop()

	results := []*types.Roadmap{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore list roadmaps: %w", err)
		}
		var doc roadmapDoc
		if err := snap.DataTo(&doc); err != nil {
			r.log.Warn("skipping malformed roadmap document", "doc_id", snap.Ref.ID, "error", err)
			continue
		}
		rm, err := fromRoadmapDoc(snap.Ref.ID, &doc)
		if err != nil {
			r.log.Warn("skipping malformed roadmap document", "doc_id", snap.Ref.ID, "error", err)
			continue
		}
		results = append(results, rm)
	}
	// ordering in memory avoids a composite index on (user_id, created_at)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})
	return results, nil
}

func toRoadmapDoc(rm *types.Roadmap) (*roadmapDoc, error) {
	progress := []any{}
	if len(rm.Progress) > 0 {
		if err := json.Unmarshal(rm.Progress, &progress); err != nil {
			return nil, fmt.Errorf("roadmap progress: %w", err)
		}
	}
	return &roadmapDoc{
		UserID:    rm.UserID,
		Topic:     rm.Topic,
		Duration:  rm.Duration,
		Progress:  progress,
		CreatedAt: rm.CreatedAt,
	}, nil
}

func fromRoadmapDoc(id string, doc *roadmapDoc) (*types.Roadmap, error) {
	progress := doc.Progress
	if progress == nil {
		progress = []any{}
	}
	raw, err := json.Marshal(progress)
	if err != nil {
		return nil, err
	}
	return &types.Roadmap{
		ID:        id,
		UserID:    doc.UserID,
		Topic:     doc.Topic,
		Duration:  doc.Duration,
		Progress:  datatypes.JSON(raw),
		CreatedAt: doc.CreatedAt,
	}, nil
}
