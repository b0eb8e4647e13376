package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/edusphere-backend/internal/data/repos"
	"github.com/yungbote/edusphere-backend/internal/data/repos/testutil"
	httpH "github.com/yungbote/edusphere-backend/internal/http/handlers"
	httpMW "github.com/yungbote/edusphere-backend/internal/http/middleware"
	"github.com/yungbote/edusphere-backend/internal/observability"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
	"github.com/yungbote/edusphere-backend/internal/services"
)

type scriptedModel struct {
	reply   string
	prompts []string
}

func (m *scriptedModel) Generate(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.reply, nil
}

func (m *scriptedModel) Model() string { return "scripted" }

type stubTranscripts struct{ text string }

func (s stubTranscripts) Get(ctx context.Context, videoID, language string) string { return s.text }

type testEnv struct {
	router *gin.Engine
	model  *scriptedModel
}

func newTestEnv(t *testing.T, jwtSecret string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.Nop()
	db := testutil.DB(t)
	metrics := observability.New(nil)
	model := &scriptedModel{reply: "Hello from the model"}

	chatbot := services.NewChatbotService(log, model, metrics)
	summarizer := services.NewSummarizerService(log, stubTranscripts{text: "Error fetching transcript: no captions"}, chatbot, metrics)
	roadmaps := services.NewRoadmapService(log, chatbot, repos.NewRoadmapRepo(db, log), 10)
	quizzes := services.NewQuizService(log, chatbot)
	communities := services.NewCommunityService(log, repos.NewCommunityRepo(db, log), "https://edu.example")
	auth := services.NewAuthService(log, repos.NewUserRepo(db, log), jwtSecret, 0)

	router := NewRouter(RouterConfig{
		Log:              log,
		Metrics:          metrics,
		AuthMiddleware:   httpMW.NewAuthMiddleware(log, auth),
		HealthHandler:    httpH.NewHealthHandler(),
		ChatHandler:      httpH.NewChatHandler(chatbot, summarizer),
		LearningHandler:  httpH.NewLearningHandler(roadmaps, quizzes),
		CommunityHandler: httpH.NewCommunityHandler(communities),
		AuthHandler:      httpH.NewAuthHandler(auth),
	})
	return &testEnv{router: router, model: model}
}

func (e *testEnv) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	out := map[string]any{}
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, out
}

func (e *testEnv) doList(t *testing.T, path string) (int, []map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var out []map[string]any
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, out
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, "")
	code, body := env.do(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestChatbot(t *testing.T) {
	env := newTestEnv(t, "")

	code, body := env.do(t, http.MethodPost, "/chatbot", `{"message": ""}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Message is required", body["error"])

	code, body = env.do(t, http.MethodPost, "/chatbot", `not json at all`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Message is required", body["error"])

	code, body = env.do(t, http.MethodPost, "/chatbot", `{"message": "Hi"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Hello from the model", body["bot_response"])
	assert.Equal(t, []string{"Hi"}, env.model.prompts)
}

func TestSummarize(t *testing.T) {
	env := newTestEnv(t, "")

	code, body := env.do(t, http.MethodPost, "/summarize", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Video URL is required", body["error"])

	code, body = env.do(t, http.MethodPost, "/summarize", `{"video_url": "   "}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Error: Invalid YouTube URL", body["summary"])

	code, body = env.do(t, http.MethodPost, "/summarize", `{"video_url": "https://example.com"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Error: Invalid YouTube URL", body["summary"])

	code, body = env.do(t, http.MethodPost, "/summarize", `{"video_url": "https://youtu.be/abc123"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Error fetching transcript: no captions", body["summary"])
	assert.Empty(t, env.model.prompts)
}

func TestRoadmapRoutes(t *testing.T) {
	env := newTestEnv(t, "")
	env.model.reply = `{"progress":[{"day":"x"}]}`

	code, body := env.do(t, http.MethodPost, "/generate_roadmap", `{"topic": "Go"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Topic and user_id are required", body["error"])

	code, body = env.do(t, http.MethodPost, "/generate_roadmap", `{"topic": "Go", "user_id": "u1", "duration": 25}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "u1", body["user_id"])
	assert.Equal(t, float64(25), body["duration"])
	assert.Len(t, body["progress"], 3)
	assert.Len(t, env.model.prompts, 3)

	code, body = env.do(t, http.MethodPost, "/generate_roadmap", `{"topic": "Rust", "user_id": "u1"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(30), body["duration"])

	code, list := env.doList(t, "/get_roadmaps/u1")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, list, 2)
	assert.Equal(t, "Go", list[0]["topic"])

	code, list = env.doList(t, "/get_roadmaps/nobody")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, list)
}

func TestGenerateRoadmapDurationBounds(t *testing.T) {
	env := newTestEnv(t, "")
	env.model.reply = `{"progress":[]}`

	for _, duration := range []string{"366", "10000000000000", "4611686018427387904"} {
		code, body := env.do(t, http.MethodPost, "/generate_roadmap", `{"topic":"Go","user_id":"u1","duration":`+duration+`}`)
		assert.Equal(t, http.StatusBadRequest, code, "duration=%s", duration)
		assert.Equal(t, "Duration must be at most 365 days", body["error"])
	}
	assert.Empty(t, env.model.prompts)

	code, list := env.doList(t, "/get_roadmaps/u1")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, list)
}

func TestGenerateRoadmapAcceptsWhitespaceFields(t *testing.T) {
	env := newTestEnv(t, "")
	env.model.reply = `{"progress":[]}`

	code, body := env.do(t, http.MethodPost, "/generate_roadmap", `{"topic":"  ","user_id":" ","duration":5}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, " ", body["user_id"])
	assert.Equal(t, []string{"Generate a learning roadmap for '  ' covering days 1 to 5 in JSON format."}, env.model.prompts)
}

func TestGenerateMCQ(t *testing.T) {
	env := newTestEnv(t, "")
	env.model.reply = "not parsable"

	code, body := env.do(t, http.MethodPost, "/generate_mcq", `{}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "general knowledge", body["topic"])
	questions, ok := body["questions"].([]any)
	require.True(t, ok, "questions should be a list, got %T", body["questions"])
	assert.Empty(t, questions)

	env.model.reply = `{"questions":[{"question":"Q","options":["A","B","C","D"],"answer":"A"}]}`
	code, body = env.do(t, http.MethodPost, "/generate_mcq", `{"topic":"go","num_questions":1}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "go", body["topic"])
	assert.Len(t, body["questions"], 1)
}

func TestCommunityFlow(t *testing.T) {
	env := newTestEnv(t, "")

	code, body := env.do(t, http.MethodPost, "/create_community", `{"name": "Gophers"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing required fields", body["error"])

	code, body = env.do(t, http.MethodPost, "/create_community", `{"name":"Gophers","description":"Go","creator":"alice"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Community created", body["message"])
	id, _ := body["community_id"].(string)
	require.NotEmpty(t, id)

	code, body = env.do(t, http.MethodGet, "/generate_invite_link/"+id, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "https://edu.example/join_community/"+id, body["invite_link"])

	code, body = env.do(t, http.MethodGet, "/generate_invite_link/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Community not found", body["error"])

	join := `{"community_id":"` + id + `","user_id":"bob"}`
	code, body = env.do(t, http.MethodPost, "/join_community", join)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "User added to community", body["message"])

	code, body = env.do(t, http.MethodPost, "/join_community", join)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "User already in community", body["message"])

	code, body = env.do(t, http.MethodPost, "/join_community", `{"community_id":"nope","user_id":"bob"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Community not found", body["error"])

	code, body = env.do(t, http.MethodPost, "/join_community", `{"user_id":"bob"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing required fields", body["error"])

	code, body = env.do(t, http.MethodGet, "/community/"+id, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, id, body["community_id"])
	assert.Equal(t, []any{"alice", "bob"}, body["members"])

	code, _ = env.do(t, http.MethodGet, "/community/nope", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, list := env.doList(t, "/user_communities/bob")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0]["community_id"])

	code, body = env.do(t, http.MethodGet, "/user_communities/carol", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "User is not part of any community", body["message"])
}

func TestSignupLogin(t *testing.T) {
	env := newTestEnv(t, "secret")

	code, body := env.do(t, http.MethodPost, "/signup", `{"email":"a@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Email and password are required", body["error"])

	code, body = env.do(t, http.MethodPost, "/signup", `{"email":"a@example.com","password":"pw123456"}`)
	require.Equal(t, http.StatusCreated, code)
	uid, _ := body["uid"].(string)
	require.NotEmpty(t, uid)

	code, body = env.do(t, http.MethodPost, "/signup", `{"email":"a@example.com","password":"pw123456"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, body["error"])

	code, body = env.do(t, http.MethodPost, "/login", `{"email":"a@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid email or password", body["error"])

	code, body = env.do(t, http.MethodPost, "/login", `{"email":"a@example.com","password":"pw123456"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, uid, body["uid"])
	assert.NotEmpty(t, body["access_token"])
	assert.Equal(t, float64(3600), body["expires_in"])
}

func TestMetricsRoute(t *testing.T) {
	env := newTestEnv(t, "")
	env.do(t, http.MethodGet, "/", "")

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `edusphere_http_requests_total{method="GET",route="/",status="200"} 1`)
}
