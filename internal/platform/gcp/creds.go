package gcp

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"google.golang.org/api/option"
)

// CredentialsJSONFromEnv returns the service-account JSON configured for the
// process, or nil. GOOGLE_APPLICATION_CREDENTIALS_JSON wins over FIREBASE_CRED;
// GOOGLE_APPLICATION_CREDENTIALS may name a file.
func CredentialsJSONFromEnv() ([]byte, error) {
	for _, key := range []string{"GOOGLE_APPLICATION_CREDENTIALS_JSON", "FIREBASE_CRED"} {
		if raw := strings.TrimSpace(os.Getenv(key)); raw != "" {
			return NormalizeCredentialsJSON([]byte(raw))
		}
	}
	path := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NormalizeCredentialsJSON(b)
}

// NormalizeCredentialsJSON turns literal "\n" sequences inside private_key into
// newlines. Env-injected keys usually arrive with them escaped twice.
func NormalizeCredentialsJSON(raw []byte) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if key, ok := doc["private_key"].(string); ok && strings.Contains(key, `\n`) {
		doc["private_key"] = strings.ReplaceAll(key, `\n`, "\n")
		return json.Marshal(doc)
	}
	return raw, nil
}

// ProjectID reads project_id from service-account JSON.
func ProjectID(credsJSON []byte) string {
	if len(credsJSON) == 0 {
		return ""
	}
	return strings.TrimSpace(gjson.GetBytes(credsJSON, "project_id").String())
}

func ClientOptions(credsJSON []byte) []option.ClientOption {
	if len(credsJSON) == 0 {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsJSON(credsJSON)}
}
