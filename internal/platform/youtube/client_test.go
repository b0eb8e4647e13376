package youtube

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

const playerJSON = `{
  "playabilityStatus": {"status": "OK"},
  "captions": {"playerCaptionsTracklistRenderer": {
    "captionTracks": [
      {"baseUrl": "BASE/api/timedtext?v=vid1&lang=de&fmt=srv3", "name": {"runs": [{"text": "German"}]}, "languageCode": "de", "isTranslatable": true},
      {"baseUrl": "BASE/api/timedtext?v=vid1&lang=en&kind=asr", "name": {"simpleText": "English (auto-generated)"}, "languageCode": "en", "kind": "asr", "isTranslatable": true}
    ],
    "translationLanguages": [{"languageCode": "en"}, {"languageCode": "fr"}]
  }}
}`

const timedText = `<?xml version="1.0" encoding="utf-8" ?><transcript>` +
	`<text start="0.0" dur="1.5">Hallo &amp;amp; willkommen</text>` +
	`<text start="1.5" dur="2">&lt;i&gt;zweite&lt;/i&gt; Zeile</text>` +
	`<text start="3.5" dur="1"></text>` +
	`</transcript>`

func newTestServer(t *testing.T, player string) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/watch":
			_, _ = io.WriteString(w, `<html><script>ytcfg.set({"INNERTUBE_API_KEY": "key_123"})</script></html>`)
		case "/youtubei/v1/player":
			if r.URL.Query().Get("key") != "key_123" {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			_, _ = io.WriteString(w, strings.ReplaceAll(player, "BASE", srv.URL))
		case "/api/timedtext":
			_, _ = io.WriteString(w, timedText)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientListAndFetch(t *testing.T) {
	srv := newTestServer(t, playerJSON)
	c := NewClient(logger.Nop(), Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	ctx := context.Background()

	list, err := c.List(ctx, "vid1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list.Manual) != 1 || len(list.Generated) != 1 {
		t.Fatalf("unexpected tracks: %+v", list)
	}
	if strings.Contains(list.Manual[0].BaseURL, "fmt=srv3") {
		t.Fatalf("srv3 format not stripped: %s", list.Manual[0].BaseURL)
	}
	if list.Generated[0].Language != "English (auto-generated)" {
		t.Fatalf("unexpected name: %q", list.Generated[0].Language)
	}

	tr, err := list.Find("en")
	if err != nil || !tr.Generated {
		t.Fatalf("Find(en) = %+v, %v", tr, err)
	}

	frags, err := c.Fetch(ctx, list.Manual[0])
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d: %+v", len(frags), frags)
	}
	if frags[0].Text != "Hallo & willkommen" {
		t.Fatalf("unexpected text: %q", frags[0].Text)
	}
	if frags[1].Text != "zweite Zeile" || frags[1].Start != 1.5 {
		t.Fatalf("unexpected fragment: %+v", frags[1])
	}
}

func TestClientListCaptionsDisabled(t *testing.T) {
	srv := newTestServer(t, `{"playabilityStatus": {"status": "OK"}}`)
	c := NewClient(logger.Nop(), Config{BaseURL: srv.URL})
	_, err := c.List(context.Background(), "vid1")
	if !errors.Is(err, ErrTranscriptsDisabled) {
		t.Fatalf("expected ErrTranscriptsDisabled, got %v", err)
	}
}

func TestClientListUnplayable(t *testing.T) {
	srv := newTestServer(t, `{"playabilityStatus": {"status": "ERROR", "reason": "Video unavailable"}}`)
	c := NewClient(logger.Nop(), Config{BaseURL: srv.URL})
	_, err := c.List(context.Background(), "vid1")
	if !errors.Is(err, ErrVideoUnavailable) {
		t.Fatalf("expected ErrVideoUnavailable, got %v", err)
	}
}

func TestTranscriptListTranslate(t *testing.T) {
	list := &TranscriptList{
		VideoID:              "vid1",
		Manual:               []Track{{LanguageCode: "de", Translatable: true, BaseURL: "u?lang=de"}},
		TranslationLanguages: []string{"en"},
	}
	tr, err := list.Translate(list.Manual[0], "en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if tr.LanguageCode != "en" || tr.BaseURL != "u?lang=de&tlang=en" {
		t.Fatalf("unexpected track: %+v", tr)
	}
	if _, err := list.Translate(list.Manual[0], "ja"); !errors.Is(err, ErrTranslationUnavailable) {
		t.Fatalf("expected ErrTranslationUnavailable, got %v", err)
	}
	list.Manual[0].Translatable = false
	if _, err := list.Translate(list.Manual[0], "en"); !errors.Is(err, ErrNotTranslatable) {
		t.Fatalf("expected ErrNotTranslatable, got %v", err)
	}
}

func TestTranscriptListFirstEmpty(t *testing.T) {
	list := &TranscriptList{VideoID: "vid1"}
	if _, err := list.First(); !errors.Is(err, ErrNoTranscriptFound) {
		t.Fatalf("expected ErrNoTranscriptFound, got %v", err)
	}
}
