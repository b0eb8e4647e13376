package services

import (
	"context"
	"fmt"
	"strings"

	types "github.com/yungbote/edusphere-backend/internal/domain"
	"github.com/yungbote/edusphere-backend/internal/modules/extract"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

const (
	DefaultQuizTopic     = "general knowledge"
	DefaultQuizQuestions = 5
)

type QuizService interface {
	// Generate asks the model for numQuestions MCQs on topic. A reply that
	// carries no parsable questions list yields an empty slice.
	Generate(ctx context.Context, topic string, numQuestions int) ([]types.Question, error)
}

type quizService struct {
	log     *logger.Logger
	chatbot ChatbotService
}

func NewQuizService(log *logger.Logger, chatbot ChatbotService) QuizService {
	return &quizService{log: log.With("service", "QuizService"), chatbot: chatbot}
}

func MCQPrompt(topic string, numQuestions int) string {
	return fmt.Sprintf("Generate %d multiple-choice questions on '%s'. "+
		`Return strictly in valid JSON: { "questions": [{"question": "", "options": ["A","B","C","D"], "answer": ""}] }`,
		numQuestions, topic)
}

func (s *quizService) Generate(ctx context.Context, topic string, numQuestions int) ([]types.Question, error) {
	if strings.TrimSpace(topic) == "" {
		topic = DefaultQuizTopic
	}
	if numQuestions <= 0 {
		numQuestions = DefaultQuizQuestions
	}
	reply, err := s.chatbot.Respond(ctx, MCQPrompt(topic, numQuestions))
	if err != nil {
		return nil, err
	}
	questions := extract.FieldAs[types.Question](reply, "questions")
	if len(questions) == 0 {
		s.log.Warn("model reply had no parsable questions", "topic", topic)
	}
	return questions, nil
}
