package app

import (
	"github.com/yungbote/edusphere-backend/internal/data/docstore"
	"github.com/yungbote/edusphere-backend/internal/data/repos"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

type Repos struct {
	User      repos.UserRepo
	Roadmap   repos.RoadmapRepo
	Community repos.CommunityRepo
}

func wireRepos(clients Clients, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	if clients.Firebase != nil {
		return Repos{
			User:      docstore.NewUserRepo(clients.Firebase.Auth, log),
			Roadmap:   docstore.NewRoadmapRepo(clients.Firebase.Firestore, log),
			Community: docstore.NewCommunityRepo(clients.Firebase.Firestore, log),
		}
	}
	theDB := clients.SQL.DB()
	return Repos{
		User:      repos.NewUserRepo(theDB, log),
		Roadmap:   repos.NewRoadmapRepo(theDB, log),
		Community: repos.NewCommunityRepo(theDB, log),
	}
}
