package repos

import (
	"github.com/yungbote/edusphere-backend/internal/data/repos/community"
	"github.com/yungbote/edusphere-backend/internal/data/repos/learning"
	"github.com/yungbote/edusphere-backend/internal/data/repos/user"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type UserRepo = user.UserRepo
type PasswordVerifier = user.PasswordVerifier

type RoadmapRepo = learning.RoadmapRepo

type CommunityRepo = community.CommunityRepo

func NewUserRepo(db *gorm.DB, log *logger.Logger) UserRepo {
	return user.NewUserRepo(db, log)
}

func NewRoadmapRepo(db *gorm.DB, log *logger.Logger) RoadmapRepo {
	return learning.NewRoadmapRepo(db, log)
}

func NewCommunityRepo(db *gorm.DB, log *logger.Logger) CommunityRepo {
	return community.NewCommunityRepo(db, log)
}
