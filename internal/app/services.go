package app

import (
	"github.com/yungbote/edusphere-backend/internal/modules/video"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
	"github.com/yungbote/edusphere-backend/internal/services"
)

type Services struct {
	Chatbot    services.ChatbotService
	Summarizer services.SummarizerService
	Roadmap    services.RoadmapService
	Quiz       services.QuizService
	Community  services.CommunityService
	Auth       services.AuthService
}

func wireServices(log *logger.Logger, cfg Config, clients Clients, reposet Repos) Services {
	log.Info("Wiring services...")
	chatbot := services.NewChatbotService(log, clients.Gemini, clients.Metrics)
	transcripts := video.NewTranscriptNormalizer(log, clients.YouTube)
	return Services{
		Chatbot:    chatbot,
		Summarizer: services.NewSummarizerService(log, transcripts, chatbot, clients.Metrics),
		Roadmap:    services.NewRoadmapService(log, chatbot, reposet.Roadmap, cfg.RoadmapChunk),
		Quiz:       services.NewQuizService(log, chatbot),
		Community:  services.NewCommunityService(log, reposet.Community, cfg.BaseURL),
		Auth:       services.NewAuthService(log, reposet.User, cfg.JWTSecretKey, cfg.AccessTokenTTL),
	}
}
