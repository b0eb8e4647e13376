package services

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yungbote/edusphere-backend/internal/observability"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

// Model is the generative-text collaborator. gemini.Client satisfies it.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

type ChatbotService interface {
	// Respond sends prompt to the model unchanged and returns the trimmed reply.
	Respond(ctx context.Context, prompt string) (string, error)
}

type chatbotService struct {
	log     *logger.Logger
	model   Model
	metrics *observability.Metrics
}

func NewChatbotService(log *logger.Logger, model Model, metrics *observability.Metrics) ChatbotService {
	return &chatbotService{
		log:     log.With("service", "ChatbotService"),
		model:   model,
		metrics: metrics,
	}
}

func (s *chatbotService) Respond(ctx context.Context, prompt string) (string, error) {
	modelName := s.model.Model()
	ctx, span := observability.StartSpan(ctx, "chatbot.respond",
		attribute.String("llm.model", modelName),
		attribute.Int("llm.prompt_chars", len(prompt)),
	)
	defer span.End()

	start := time.Now()
	reply, err := s.model.Generate(ctx, prompt)
	if err != nil {
		s.metrics.ObserveLLMRequest(modelName, "error", time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Error("model call failed", "model", modelName, "error", err)
		return "", err
	}
	s.metrics.ObserveLLMRequest(modelName, "ok", time.Since(start))
	return strings.TrimSpace(reply), nil
}
