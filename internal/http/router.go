package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/edusphere-backend/internal/http/handlers"
	httpMW "github.com/yungbote/edusphere-backend/internal/http/middleware"
	"github.com/yungbote/edusphere-backend/internal/observability"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	ServiceName    string
	TracingEnabled bool
	CORSOrigins    []string

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler    *httpH.HealthHandler
	ChatHandler      *httpH.ChatHandler
	LearningHandler  *httpH.LearningHandler
	CommunityHandler *httpH.CommunityHandler
	AuthHandler      *httpH.AuthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	if cfg.AuthMiddleware != nil {
		r.Use(cfg.AuthMiddleware.OptionalAuth())
	}
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.HealthCheck)
	}

	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	// Chatbot + YouTube summarizer
	if cfg.ChatHandler != nil {
		r.POST("/chatbot", cfg.ChatHandler.Chat)
		r.POST("/summarize", cfg.ChatHandler.Summarize)
	}

	// Roadmaps + MCQs
	if cfg.LearningHandler != nil {
		r.POST("/generate_roadmap", cfg.LearningHandler.GenerateRoadmap)
		r.GET("/get_roadmaps/:user_id", cfg.LearningHandler.ListRoadmaps)
		r.POST("/generate_mcq", cfg.LearningHandler.GenerateMCQ)
	}

	// Communities
	if cfg.CommunityHandler != nil {
		r.POST("/create_community", cfg.CommunityHandler.Create)
		r.GET("/generate_invite_link/:community_id", cfg.CommunityHandler.InviteLink)
		r.POST("/join_community", cfg.CommunityHandler.Join)
		r.GET("/user_communities/:user_id", cfg.CommunityHandler.ForUser)
		r.GET("/community/:community_id", cfg.CommunityHandler.Get)
	}

	// Auth
	if cfg.AuthHandler != nil {
		r.POST("/signup", cfg.AuthHandler.Signup)
		r.POST("/login", cfg.AuthHandler.Login)
	}

	return r
}
