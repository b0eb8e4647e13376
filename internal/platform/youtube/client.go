package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"

	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

const (
	defaultBaseURL  = "https://www.youtube.com"
	maxBodyBytes    = 8 << 20
	innertubeClient = "ANDROID"
	innertubeVer    = "20.10.38"
)

var (
	apiKeyPattern = regexp.MustCompile(`"INNERTUBE_API_KEY":\s*"([a-zA-Z0-9_-]+)"`)
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
)

// Client lists and fetches caption tracks through the public watch page and
// the innertube player endpoint.
type Client interface {
	List(ctx context.Context, videoID string) (*TranscriptList, error)
	Fetch(ctx context.Context, tr Track) ([]Fragment, error)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	// Language sent as Accept-Language; track names come back localized.
	Language string
}

type client struct {
	log        *logger.Logger
	baseURL    string
	language   string
	httpClient *http.Client
}

func NewClient(log *logger.Logger, cfg Config) Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	lang := cfg.Language
	if lang == "" {
		lang = "en-US"
	}
	return &client{
		log:        log.With("client", "YouTubeCaptions"),
		baseURL:    base,
		language:   lang,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *client) List(ctx context.Context, videoID string) (*TranscriptList, error) {
	page, err := c.get(ctx, c.baseURL+"/watch?v="+videoID)
	if err != nil {
		return nil, err
	}
	m := apiKeyPattern.FindSubmatch(page)
	if m == nil {
		if bytes.Contains(page, []byte(`class="g-recaptcha"`)) {
			return nil, ErrTooManyRequests
		}
		return nil, fmt.Errorf("could not retrieve video data for %s", videoID)
	}
	player, err := c.player(ctx, string(m[1]), videoID)
	if err != nil {
		return nil, err
	}
	return parseTrackList(videoID, player)
}

func (c *client) Fetch(ctx context.Context, tr Track) ([]Fragment, error) {
	if tr.BaseURL == "" {
		return nil, fmt.Errorf("track %s has no caption url", tr.LanguageCode)
	}
	body, err := c.get(ctx, tr.BaseURL)
	if err != nil {
		return nil, err
	}
	return parseFragments(body)
}

func (c *client) player(ctx context.Context, apiKey, videoID string) ([]byte, error) {
	payload, err := json.Marshal(map[string]any{
		"context": map[string]any{
			"client": map[string]any{
				"clientName":    innertubeClient,
				"clientVersion": innertubeVer,
			},
		},
		"videoId": videoID,
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/youtubei/v1/player?key="+apiKey, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept-Language", c.language)
	req.AddCookie(&http.Cookie{Name: "CONSENT", Value: "YES+cb"})
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read youtube response: %w", err)
	}
	c.log.Debug("youtube request", "path", req.URL.Path, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrTooManyRequests
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("youtube returned status %d", resp.StatusCode)
	}
	return body, nil
}

func parseTrackList(videoID string, player []byte) (*TranscriptList, error) {
	doc := gjson.ParseBytes(player)
	status := doc.Get("playabilityStatus.status").String()
	if status != "" && status != "OK" {
		reason := doc.Get("playabilityStatus.reason").String()
		if status == "LOGIN_REQUIRED" && strings.Contains(reason, "not a bot") {
			return nil, ErrTooManyRequests
		}
		if reason == "" {
			reason = status
		}
		return nil, fmt.Errorf("%w: %s", ErrVideoUnavailable, reason)
	}
	renderer := doc.Get("captions.playerCaptionsTracklistRenderer")
	if !renderer.Exists() || !renderer.Get("captionTracks").Exists() {
		return nil, ErrTranscriptsDisabled
	}

	list := &TranscriptList{VideoID: videoID}
	renderer.Get("translationLanguages").ForEach(func(_, lang gjson.Result) bool {
		if code := lang.Get("languageCode").String(); code != "" {
			list.TranslationLanguages = append(list.TranslationLanguages, code)
		}
		return true
	})
	renderer.Get("captionTracks").ForEach(func(_, ct gjson.Result) bool {
		name := ct.Get("name.runs.0.text").String()
		if name == "" {
			name = ct.Get("name.simpleText").String()
		}
		tr := Track{
			VideoID:      videoID,
			LanguageCode: ct.Get("languageCode").String(),
			Language:     name,
			Generated:    ct.Get("kind").String() == "asr",
			Translatable: ct.Get("isTranslatable").Bool(),
			BaseURL:      strings.Replace(ct.Get("baseUrl").String(), "&fmt=srv3", "", 1),
		}
		if tr.Generated {
			list.Generated = append(list.Generated, tr)
		} else {
			list.Manual = append(list.Manual, tr)
		}
		return true
	})
	return list, nil
}

// parseFragments reads the timedtext document. Caption bodies arrive
// entity-encoded and may carry inline formatting tags, both stripped here.
func parseFragments(body []byte) ([]Fragment, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse timedtext: %w", err)
	}
	var out []Fragment
	doc.Find("text").Each(func(_ int, s *goquery.Selection) {
		text := html.UnescapeString(tagPattern.ReplaceAllString(s.Text(), ""))
		if strings.TrimSpace(text) == "" {
			return
		}
		start, _ := strconv.ParseFloat(s.AttrOr("start", "0"), 64)
		dur, _ := strconv.ParseFloat(s.AttrOr("dur", "0"), 64)
		out = append(out, Fragment{Text: text, Start: start, Duration: dur})
	})
	return out, nil
}
