package firebase

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"

	"github.com/yungbote/edusphere-backend/internal/platform/gcp"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

var ErrMissingProject = errors.New("firebase: project id is required")

type Config struct {
	CredentialsJSON []byte
	ProjectID       string
}

// Clients holds the Firebase Admin handles shared by the Firestore repos.
type Clients struct {
	Firestore *firestore.Client
	Auth      *auth.Client
	log       *logger.Logger
}

func New(ctx context.Context, log *logger.Logger, cfg Config) (*Clients, error) {
	projectID := cfg.ProjectID
	if projectID == "" {
		projectID = gcp.ProjectID(cfg.CredentialsJSON)
	}
	if projectID == "" {
		return nil, ErrMissingProject
	}
	clientLog := log.With("client", "Firebase", "project", projectID)

	app, err := fb.NewApp(ctx, &fb.Config{ProjectID: projectID}, gcp.ClientOptions(cfg.CredentialsJSON)...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	store, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	clientLog.Info("Firebase clients initialized")
	return &Clients{Firestore: store, Auth: authClient, log: clientLog}, nil
}

func (c *Clients) Close() error {
	if c == nil || c.Firestore == nil {
		return nil
	}
	return c.Firestore.Close()
}
