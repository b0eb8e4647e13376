package app

import (
	"strings"
	"time"

	"github.com/yungbote/edusphere-backend/internal/data/db"
	"github.com/yungbote/edusphere-backend/internal/platform/envutil"
	"github.com/yungbote/edusphere-backend/internal/platform/gcp"
	"github.com/yungbote/edusphere-backend/internal/platform/gemini"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
	"github.com/yungbote/edusphere-backend/internal/services"
)

const (
	StoreFirestore = "firestore"
	StorePostgres  = db.DriverPostgres
	StoreSQLite    = db.DriverSQLite
)

type Config struct {
	Port        string
	ServiceName string
	Environment string
	Version     string

	GoogleAPIKey    string
	GeminiModel     string
	CredentialsJSON []byte
	GCPProject      string
	GCPLocation     string

	StoreDriver string
	Database    db.Config

	BaseURL        string
	RoadmapChunk   int
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	CORSOrigins    []string

	YouTubeTimeout time.Duration
	MetricsEnabled bool
	TracingEnabled bool
}

func LoadConfig(log *logger.Logger) (Config, error) {
	creds, err := gcp.CredentialsJSONFromEnv()
	if err != nil {
		return Config{}, err
	}

	project := envutil.String("GOOGLE_CLOUD_PROJECT", "", log)
	if project == "" {
		project = gcp.ProjectID(creds)
	}

	defaultStore := StoreSQLite
	if len(creds) > 0 {
		defaultStore = StoreFirestore
	}
	storeDriver := strings.ToLower(envutil.String("STORE_DRIVER", defaultStore, log))

	return Config{
		Port:        envutil.String("PORT", "8080", log),
		ServiceName: envutil.String("OTEL_SERVICE_NAME", "edusphere-backend", log),
		Environment: envutil.String("ENVIRONMENT", "development", log),
		Version:     envutil.String("SERVICE_VERSION", "dev", log),

		GoogleAPIKey:    envutil.String("GOOGLE_API_KEY", "", log),
		GeminiModel:     envutil.String("GEMINI_MODEL", gemini.DefaultModel, log),
		CredentialsJSON: creds,
		GCPProject:      project,
		GCPLocation:     envutil.String("GOOGLE_CLOUD_LOCATION", gemini.DefaultLocation, log),

		StoreDriver: storeDriver,
		Database: db.Config{
			Driver: storeDriver,
			Postgres: db.PostgresConfig{
				Host:     envutil.String("POSTGRES_HOST", "localhost", log),
				Port:     envutil.String("POSTGRES_PORT", "5432", log),
				User:     envutil.String("POSTGRES_USER", "postgres", log),
				Password: envutil.String("POSTGRES_PASSWORD", "", nil),
				Name:     envutil.String("POSTGRES_NAME", "edusphere", log),
				SSLMode:  envutil.String("POSTGRES_SSLMODE", "disable", log),
			},
			SQLitePath: envutil.String("SQLITE_PATH", "", log),
		},

		BaseURL:        envutil.String("BASE_URL", services.DefaultInviteBaseURL, log),
		RoadmapChunk:   envutil.Int("ROADMAP_CHUNK_DAYS", 10, log),
		JWTSecretKey:   envutil.String("JWT_SECRET_KEY", "", nil),
		AccessTokenTTL: envutil.Seconds("ACCESS_TOKEN_TTL", services.DefaultAccessTTL, log),
		CORSOrigins:    envutil.List("CORS_ALLOWED_ORIGINS", nil),

		YouTubeTimeout: envutil.Seconds("YOUTUBE_HTTP_TIMEOUT_SECONDS", 20*time.Second, log),
		MetricsEnabled: envutil.Bool("METRICS_ENABLED", true),
		TracingEnabled: envutil.Bool("OTEL_ENABLED", false),
	}, nil
}
