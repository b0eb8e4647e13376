package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/edusphere-backend/internal/http"
	httpH "github.com/yungbote/edusphere-backend/internal/http/handlers"
	httpMW "github.com/yungbote/edusphere-backend/internal/http/middleware"
	"github.com/yungbote/edusphere-backend/internal/observability"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health    *httpH.HealthHandler
	Chat      *httpH.ChatHandler
	Learning  *httpH.LearningHandler
	Community *httpH.CommunityHandler
	Auth      *httpH.AuthHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    httpH.NewHealthHandler(),
		Chat:      httpH.NewChatHandler(services.Chatbot, services.Summarizer),
		Learning:  httpH.NewLearningHandler(services.Roadmap, services.Quiz),
		Community: httpH.NewCommunityHandler(services.Community),
		Auth:      httpH.NewAuthHandler(services.Auth),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireRouter(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:              log,
		Metrics:          metrics,
		ServiceName:      cfg.ServiceName,
		TracingEnabled:   cfg.TracingEnabled,
		CORSOrigins:      cfg.CORSOrigins,
		AuthMiddleware:   middleware.Auth,
		HealthHandler:    handlers.Health,
		ChatHandler:      handlers.Chat,
		LearningHandler:  handlers.Learning,
		CommunityHandler: handlers.Community,
		AuthHandler:      handlers.Auth,
	})
}
