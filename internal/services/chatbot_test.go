package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/edusphere-backend/internal/observability"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

func TestChatbotRespondTrimsAndPassesPromptVerbatim(t *testing.T) {
	model := &fakeModel{replies: []string{"\n  Hello there!  \n"}}
	svc := NewChatbotService(logger.Nop(), model, observability.New(nil))

	got, err := svc.Respond(context.Background(), "  Hi  ")
	require.NoError(t, err)
	assert.Equal(t, "Hello there!", got)
	assert.Equal(t, []string{"  Hi  "}, model.prompts)
}

func TestChatbotRespondPropagatesModelError(t *testing.T) {
	boom := errors.New("quota exceeded")
	svc := NewChatbotService(logger.Nop(), &fakeModel{errs: []error{boom}}, nil)

	_, err := svc.Respond(context.Background(), "hi")
	require.ErrorIs(t, err, boom)
}
