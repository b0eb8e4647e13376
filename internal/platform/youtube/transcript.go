package youtube

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTranscriptsDisabled    = errors.New("subtitles are disabled for this video")
	ErrNoTranscriptFound      = errors.New("no transcript found")
	ErrVideoUnavailable       = errors.New("the video is no longer available")
	ErrTooManyRequests        = errors.New("youtube is receiving too many requests from this IP")
	ErrTranslationUnavailable = errors.New("the requested translation is not available")
	ErrNotTranslatable        = errors.New("this transcript is not translatable")
)

// Track is one caption track offered for a video.
type Track struct {
	VideoID      string
	LanguageCode string
	Language     string
	Generated    bool
	Translatable bool
	BaseURL      string
}

// Fragment is a single timed caption line.
type Fragment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// TranscriptList holds the tracks available for a video, manual ones first.
type TranscriptList struct {
	VideoID              string
	Manual               []Track
	Generated            []Track
	TranslationLanguages []string
}

// Find returns the first track matching one of languages, in priority
// order. Manually created tracks win over generated ones per language.
func (l *TranscriptList) Find(languages ...string) (Track, error) {
	for _, lang := range languages {
		for _, tr := range l.Manual {
			if tr.LanguageCode == lang {
				return tr, nil
			}
		}
		for _, tr := range l.Generated {
			if tr.LanguageCode == lang {
				return tr, nil
			}
		}
	}
	return Track{}, fmt.Errorf("%w for video %s in %s (available: %s)",
		ErrNoTranscriptFound, l.VideoID, strings.Join(languages, ","), strings.Join(l.languageCodes(), ","))
}

// First returns the first track in manual-then-generated order.
func (l *TranscriptList) First() (Track, error) {
	all := l.All()
	if len(all) == 0 {
		return Track{}, fmt.Errorf("%w for video %s", ErrNoTranscriptFound, l.VideoID)
	}
	return all[0], nil
}

func (l *TranscriptList) All() []Track {
	out := make([]Track, 0, len(l.Manual)+len(l.Generated))
	out = append(out, l.Manual...)
	return append(out, l.Generated...)
}

// Translate derives a track machine-translated into lang.
func (l *TranscriptList) Translate(tr Track, lang string) (Track, error) {
	if !tr.Translatable {
		return Track{}, fmt.Errorf("%w (%s)", ErrNotTranslatable, tr.LanguageCode)
	}
	supported := false
	for _, code := range l.TranslationLanguages {
		if code == lang {
			supported = true
			break
		}
	}
	if !supported {
		return Track{}, fmt.Errorf("%w: %s", ErrTranslationUnavailable, lang)
	}
	out := tr
	out.LanguageCode = lang
	out.Language = lang
	out.BaseURL = tr.BaseURL + "&tlang=" + lang
	return out, nil
}

func (l *TranscriptList) languageCodes() []string {
	var codes []string
	for _, tr := range l.All() {
		codes = append(codes, tr.LanguageCode)
	}
	return codes
}
