package docstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/yungbote/edusphere-backend/internal/data/repos/community"
	types "github.com/yungbote/edusphere-backend/internal/domain"
	pkgerrors "github.com/yungbote/edusphere-backend/internal/pkg/errors"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

type communityDoc struct {
	Name        string    `firestore:"name"`
	Description string    `firestore:"description"`
	Creator     string    `firestore:"creator"`
	Members     []string  `firestore:"members"`
	CreatedAt   time.Time `firestore:"created_at"`
}

type communityRepo struct {
	client *firestore.Client
	log    *logger.Logger
}

func NewCommunityRepo(client *firestore.Client, baseLog *logger.Logger) community.CommunityRepo {
	return &communityRepo{client: client, log: baseLog.With("repo", "FirestoreCommunityRepo")}
}

func (r *communityRepo) Create(ctx context.Context, c *types.Community) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	members := c.Members
	if members == nil {
		members = []string{}
	}
	_, err := r.client.Collection(communityCollection).Doc(c.ID).Create(ctx, &communityDoc{
		Name:        c.Name,
		Description: c.Description,
		Creator:     c.Creator,
		Members:     members,
		CreatedAt:   c.CreatedAt,
	})
	if isAlreadyExists(err) {
		return fmt.Errorf("community %s: %w", c.ID, pkgerrors.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("firestore create community: %w", err)
	}
	return nil
}

func (r *communityRepo) GetByID(ctx context.Context, id string) (*types.Community, error) {
	snap, err := r.client.Collection(communityCollection).Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, fmt.Errorf("community %s: %w", id, pkgerrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("firestore get community: %w", err)
	}
	return decodeCommunity(snap)
}

// AddMember reads and appends inside one transaction so concurrent joins of
// the same user cannot both report success.
func (r *communityRepo) AddMember(ctx context.Context, communityID, userID string) (bool, error) {
	ref := r.client.Collection(communityCollection).Doc(communityID)
	added := false
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		added = false
		snap, err := tx.Get(ref)
		if isNotFound(err) {
			return fmt.Errorf("community %s: %w", communityID, pkgerrors.ErrNotFound)
		}
		if err != nil {
			return err
		}
		c, err := decodeCommunity(snap)
		if err != nil {
			return err
		}
		if c.HasMember(userID) {
			return nil
		}
		added = true
		return tx.Update(ref, []firestore.Update{
			{Path: "members", Value: firestore.ArrayUnion(userID)},
		})
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

func (r *communityRepo) ListByMember(ctx context.Context, userID string) ([]*types.Community, error) {
	iter := r.client.Collection(communityCollection).Where("members", "array-contains", userID).Documents(ctx)
	defer iter.Stop()

	results := []*types.Community{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore list communities: %w", err)
		}
		c, err := decodeCommunity(snap)
		if err != nil {
			r.log.Warn("skipping malformed community document", "doc_id", snap.Ref.ID, "error", err)
			continue
		}
		results = append(results, c)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})
	return results, nil
}

func decodeCommunity(snap *firestore.DocumentSnapshot) (*types.Community, error) {
	var doc communityDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decode community %s: %w", snap.Ref.ID, err)
	}
	return fromCommunityDoc(snap.Ref.ID, &doc), nil
}

func fromCommunityDoc(id string, doc *communityDoc) *types.Community {
	members := doc.Members
	if members == nil {
		members = []string{}
	}
	return &types.Community{
		ID:          id,
		Name:        doc.Name,
		Description: doc.Description,
		Creator:     doc.Creator,
		Members:     members,
		CreatedAt:   doc.CreatedAt,
	}
}
