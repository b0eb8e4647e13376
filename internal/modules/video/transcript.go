package video

import (
	"context"
	"strings"

	"github.com/yungbote/edusphere-backend/internal/platform/logger"
	"github.com/yungbote/edusphere-backend/internal/platform/youtube"
)

// TranscriptErrorPrefix marks a transcript result that is an error message
// rather than caption text.
const TranscriptErrorPrefix = "Error fetching transcript: "

const (
	DefaultLanguage = "en"
	englishCode     = "en"
)

// CaptionSource is the slice of the caption provider the normalizer needs.
type CaptionSource interface {
	List(ctx context.Context, videoID string) (*youtube.TranscriptList, error)
	Fetch(ctx context.Context, tr youtube.Track) ([]youtube.Fragment, error)
}

type TranscriptNormalizer struct {
	log      *logger.Logger
	captions CaptionSource
}

func NewTranscriptNormalizer(log *logger.Logger, captions CaptionSource) *TranscriptNormalizer {
	return &TranscriptNormalizer{
		log:      log.With("module", "TranscriptNormalizer"),
		captions: captions,
	}
}

// Get returns the flattened English transcript for videoID. Every failure is
// folded into a string starting with TranscriptErrorPrefix.
func (n *TranscriptNormalizer) Get(ctx context.Context, videoID, language string) string {
	if language == "" {
		language = DefaultLanguage
	}
	text, err := n.fetch(ctx, videoID, language)
	if err != nil {
		n.log.Warn("transcript fetch failed", "video_id", videoID, "language", language, "error", err)
		return TranscriptErrorPrefix + err.Error()
	}
	return text
}

func (n *TranscriptNormalizer) fetch(ctx context.Context, videoID, language string) (string, error) {
	list, err := n.captions.List(ctx, videoID)
	if err != nil {
		return "", err
	}
	track, err := list.Find(language)
	if err != nil {
		track, err = list.First()
		if err != nil {
			return "", err
		}
	}
	if track.LanguageCode != englishCode {
		track, err = list.Translate(track, englishCode)
		if err != nil {
			return "", err
		}
	}
	frags, err := n.captions.Fetch(ctx, track)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(frags))
	for _, f := range frags {
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, " "), nil
}

// IsTranscriptError reports whether text is a transcript failure sentinel.
func IsTranscriptError(text string) bool {
	return strings.HasPrefix(text, TranscriptErrorPrefix)
}
