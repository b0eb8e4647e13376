package domain

import (
	"github.com/yungbote/edusphere-backend/internal/domain/community"
	"github.com/yungbote/edusphere-backend/internal/domain/learning"
	"github.com/yungbote/edusphere-backend/internal/domain/user"
)

type (
	Roadmap  = learning.Roadmap
	Question = learning.Question

	Community       = community.Community
	CommunityMember = community.Member

	User = user.User
)
