package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	types "github.com/yungbote/edusphere-backend/internal/domain"
	"gorm.io/gorm"
)

// UniqueEmail keeps fixture emails distinct when tests share a postgres DSN.
func UniqueEmail(prefix string) string {
	return prefix + "+" + uuid.NewString()[:8] + "@example.com"
}

func SeedCommunity(tb testing.TB, ctx context.Context, gdb *gorm.DB, name, creator string, members ...string) *types.Community {
	tb.Helper()
	c := &types.Community{
		ID:          uuid.NewString(),
		Name:        name,
		Description: name + " description",
		Creator:     creator,
	}
	if err := gdb.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed community: %v", err)
	}
	now := time.Now().UTC()
	for i, userID := range append([]string{creator}, members...) {
		m := &types.CommunityMember{
			CommunityID: c.ID,
			UserID:      userID,
			JoinedAt:    now.Add(time.Duration(i) * time.Millisecond),
		}
		if err := gdb.WithContext(ctx).Create(m).Error; err != nil {
			tb.Fatalf("seed community member: %v", err)
		}
		c.Members = append(c.Members, userID)
	}
	return c
}
