package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edusphere-backend/internal/http/response"
	"github.com/yungbote/edusphere-backend/internal/services"
)

type ChatHandler struct {
	chatbot    services.ChatbotService
	summarizer services.SummarizerService
}

func NewChatHandler(chatbot services.ChatbotService, summarizer services.SummarizerService) *ChatHandler {
	return &ChatHandler{chatbot: chatbot, summarizer: summarizer}
}

// POST /chatbot
func (h *ChatHandler) Chat(c *gin.Context) {
	body := readBody(c)
	message := body.Raw("message")
	if message == "" {
		response.RespondErrorMessage(c, http.StatusBadRequest, "Message is required")
		return
	}
	reply, err := h.chatbot.Respond(c.Request.Context(), message)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"bot_response": reply})
}

// POST /summarize
func (h *ChatHandler) Summarize(c *gin.Context) {
	body := readBody(c)
	videoURL := body.Raw("video_url")
	if videoURL == "" {
		response.RespondErrorMessage(c, http.StatusBadRequest, "Video URL is required")
		return
	}
	summary, err := h.summarizer.Summarize(c.Request.Context(), videoURL)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"summary": summary})
}
