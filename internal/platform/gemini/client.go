package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/auth/credentials"
	"google.golang.org/genai"

	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

const (
	DefaultModel     = "gemini-1.5-flash"
	DefaultLocation  = "us-central1"
	cloudPlatformURL = "https://www.googleapis.com/auth/cloud-platform"
)

var ErrMissingCredentials = errors.New("gemini: set GOOGLE_API_KEY or provide service account credentials")

// Client generates text from a single prompt.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

type Config struct {
	APIKey string
	Model  string
	// Used for the Vertex AI backend when APIKey is empty.
	CredentialsJSON []byte
	Project         string
	Location        string
}

type client struct {
	log   *logger.Logger
	gc    *genai.Client
	model string
}

func NewClient(ctx context.Context, log *logger.Logger, cfg Config) (Client, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	clientLog := log.With("client", "Gemini", "model", model)

	gcfg := &genai.ClientConfig{}
	backend := "gemini-api"
	switch {
	case strings.TrimSpace(cfg.APIKey) != "":
		gcfg.APIKey = strings.TrimSpace(cfg.APIKey)
		gcfg.Backend = genai.BackendGeminiAPI
	case len(cfg.CredentialsJSON) > 0:
		creds, err := credentials.DetectDefault(&credentials.DetectOptions{
			Scopes:          []string{cloudPlatformURL},
			CredentialsJSON: cfg.CredentialsJSON,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini: load credentials: %w", err)
		}
		location := cfg.Location
		if location == "" {
			location = DefaultLocation
		}
		gcfg.Backend = genai.BackendVertexAI
		backend = "vertex-ai"
		gcfg.Credentials = creds
		gcfg.Project = cfg.Project
		gcfg.Location = location
	default:
		return nil, ErrMissingCredentials
	}

	gc, err := genai.NewClient(ctx, gcfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: init client: %w", err)
	}
	clientLog.Info("gemini client initialized", "backend", backend)
	return &client{log: clientLog, gc: gc, model: model}, nil
}

func (c *client) Model() string { return c.model }

func (c *client) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.gc.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := resp.Text()
	c.log.Debug("gemini generate", "prompt_chars", len(prompt), "reply_chars", len(text), "duration_ms", time.Since(start).Milliseconds())
	return text, nil
}
