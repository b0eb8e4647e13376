package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edusphere-backend/internal/http/response"
	"github.com/yungbote/edusphere-backend/internal/services"
)

type LearningHandler struct {
	roadmaps services.RoadmapService
	quizzes  services.QuizService
}

func NewLearningHandler(roadmaps services.RoadmapService, quizzes services.QuizService) *LearningHandler {
	return &LearningHandler{roadmaps: roadmaps, quizzes: quizzes}
}

// POST /generate_roadmap
func (h *LearningHandler) GenerateRoadmap(c *gin.Context) {
	body := readBody(c)
	topic := body.Raw("topic")
	userID := body.Raw("user_id")
	if topic == "" || userID == "" {
		response.RespondErrorMessage(c, http.StatusBadRequest, "Topic and user_id are required")
		return
	}
	duration := body.Int("duration", services.DefaultRoadmapDays)

	rm, err := h.roadmaps.Generate(c.Request.Context(), userID, topic, duration)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, rm)
}

// GET /get_roadmaps/:user_id
func (h *LearningHandler) ListRoadmaps(c *gin.Context) {
	list, err := h.roadmaps.ListForUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, list)
}

// POST /generate_mcq
func (h *LearningHandler) GenerateMCQ(c *gin.Context) {
	body := readBody(c)
	topic := body.Raw("topic")
	if topic == "" {
		topic = services.DefaultQuizTopic
	}
	n := body.Int("num_questions", services.DefaultQuizQuestions)

	questions, err := h.quizzes.Generate(c.Request.Context(), topic, n)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"topic": topic, "questions": questions})
}
