package services

import (
	"context"

	"github.com/yungbote/edusphere-backend/internal/modules/video"
	"github.com/yungbote/edusphere-backend/internal/observability"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

const InvalidVideoURLMessage = "Error: Invalid YouTube URL"

// TranscriptSource yields caption text or a sentinel-prefixed error string.
type TranscriptSource interface {
	Get(ctx context.Context, videoID, language string) string
}

type SummarizerService interface {
	// Summarize returns the model's summary of the video's transcript. An
	// unusable url or a failed transcript fetch is reported in the returned
	// text, not as an error.
	Summarize(ctx context.Context, videoURL string) (string, error)
}

type summarizerService struct {
	log         *logger.Logger
	transcripts TranscriptSource
	chatbot     ChatbotService
	metrics     *observability.Metrics
}

func NewSummarizerService(log *logger.Logger, transcripts TranscriptSource, chatbot ChatbotService, metrics *observability.Metrics) SummarizerService {
	return &summarizerService{
		log:         log.With("service", "SummarizerService"),
		transcripts: transcripts,
		chatbot:     chatbot,
		metrics:     metrics,
	}
}

func (s *summarizerService) Summarize(ctx context.Context, videoURL string) (string, error) {
	videoID, ok := video.ExtractVideoID(videoURL)
	if !ok || videoID == "" {
		s.log.Info("no video id in url")
		return InvalidVideoURLMessage, nil
	}

	text := s.transcripts.Get(ctx, videoID, video.DefaultLanguage)
	if video.IsTranscriptError(text) {
		s.metrics.IncTranscript("error")
		return text, nil
	}
	s.metrics.IncTranscript("ok")

	return s.chatbot.Respond(ctx, "Summarize this transcript: "+text)
}
