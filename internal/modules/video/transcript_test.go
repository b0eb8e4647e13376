package video

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/edusphere-backend/internal/platform/logger"
	"github.com/yungbote/edusphere-backend/internal/platform/youtube"
)

type fakeCaptions struct {
	list    *youtube.TranscriptList
	listErr error
	frags   map[string][]youtube.Fragment
	fetched []youtube.Track
}

func (f *fakeCaptions) List(_ context.Context, _ string) (*youtube.TranscriptList, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeCaptions) Fetch(_ context.Context, tr youtube.Track) ([]youtube.Fragment, error) {
	f.fetched = append(f.fetched, tr)
	frags, ok := f.frags[tr.BaseURL]
	if !ok {
		return nil, errors.New("no such track")
	}
	return frags, nil
}

func TestTranscriptNormalizerJoinsFragments(t *testing.T) {
	src := &fakeCaptions{
		list: &youtube.TranscriptList{
			VideoID: "abc",
			Manual:  []youtube.Track{{LanguageCode: "en", BaseURL: "en"}},
		},
		frags: map[string][]youtube.Fragment{
			"en": {{Text: "hello"}, {Text: "big"}, {Text: "world"}},
		},
	}
	n := NewTranscriptNormalizer(logger.Nop(), src)

	got := n.Get(context.Background(), "abc", "")
	assert.Equal(t, "hello big world", got)
	assert.False(t, IsTranscriptError(got))
}

func TestTranscriptNormalizerFallsBackAndTranslates(t *testing.T) {
	src := &fakeCaptions{
		list: &youtube.TranscriptList{
			VideoID:              "abc",
			Manual:               []youtube.Track{{LanguageCode: "de", Translatable: true, BaseURL: "de"}},
			Generated:            []youtube.Track{{LanguageCode: "fr", Generated: true, BaseURL: "fr"}},
			TranslationLanguages: []string{"en"},
		},
		frags: map[string][]youtube.Fragment{
			"de&tlang=en": {{Text: "translated"}, {Text: "text"}},
		},
	}
	n := NewTranscriptNormalizer(logger.Nop(), src)

	got := n.Get(context.Background(), "abc", "en")
	assert.Equal(t, "translated text", got)
	require.Len(t, src.fetched, 1)
	assert.Equal(t, "en", src.fetched[0].LanguageCode)
}

func TestTranscriptNormalizerNoTranscripts(t *testing.T) {
	src := &fakeCaptions{list: &youtube.TranscriptList{VideoID: "abc"}}
	n := NewTranscriptNormalizer(logger.Nop(), src)

	got := n.Get(context.Background(), "abc", "en")
	assert.True(t, strings.HasPrefix(got, "Error fetching transcript:"), got)
	assert.True(t, IsTranscriptError(got))
}

func TestTranscriptNormalizerProviderError(t *testing.T) {
	src := &fakeCaptions{listErr: youtube.ErrTranscriptsDisabled}
	n := NewTranscriptNormalizer(logger.Nop(), src)

	got := n.Get(context.Background(), "abc", "en")
	assert.Equal(t, TranscriptErrorPrefix+youtube.ErrTranscriptsDisabled.Error(), got)
}

func TestTranscriptNormalizerUntranslatable(t *testing.T) {
	src := &fakeCaptions{
		list: &youtube.TranscriptList{
			VideoID: "abc",
			Manual:  []youtube.Track{{LanguageCode: "de", BaseURL: "de"}},
		},
	}
	n := NewTranscriptNormalizer(logger.Nop(), src)

	got := n.Get(context.Background(), "abc", "en")
	assert.True(t, IsTranscriptError(got))
	assert.Empty(t, src.fetched)
}
