package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(context.Background(), logger.Nop(), Config{})
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestNewClientRejectsBadCredentialsJSON(t *testing.T) {
	_, err := NewClient(context.Background(), logger.Nop(), Config{CredentialsJSON: []byte("{not json")})
	if err == nil {
		t.Fatal("expected error for malformed credentials")
	}
}
