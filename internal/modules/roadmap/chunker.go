package roadmap

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yungbote/edusphere-backend/internal/modules/extract"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

const (
	DefaultChunkSize = 10
	// MaxDays bounds a single roadmap; callers reject longer durations.
	MaxDays       = 365
	progressField = "progress"
)

// Responder sends a prompt to the model and returns its trimmed reply.
type Responder interface {
	Respond(ctx context.Context, prompt string) (string, error)
}

// Chunk is an inclusive range of days.
type Chunk struct {
	Start int
	End   int
}

// Chunks splits [1, totalDays] into consecutive ranges of at most size days.
// totalDays is capped at MaxDays.
func Chunks(totalDays, size int) []Chunk {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if totalDays <= 0 {
		return nil
	}
	totalDays = min(totalDays, MaxDays)
	var out []Chunk
	for start := 1; start <= totalDays; start += size {
		out = append(out, Chunk{Start: start, End: min(start+size-1, totalDays)})
	}
	return out
}

func Prompt(topic string, c Chunk) string {
	return fmt.Sprintf("Generate a learning roadmap for '%s' covering days %d to %d in JSON format.", topic, c.Start, c.End)
}

type Chunker struct {
	log       *logger.Logger
	model     Responder
	chunkSize int
}

func NewChunker(log *logger.Logger, model Responder, chunkSize int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Chunker{
		log:       log.With("module", "RoadmapChunker"),
		model:     model,
		chunkSize: chunkSize,
	}
}

// Build asks the model for each day range in order and concatenates the
// extracted progress entries. A chunk whose call fails or whose reply has no
// usable JSON contributes nothing; later chunks still run. An error is
// returned only when every model call failed.
func (c *Chunker) Build(ctx context.Context, topic string, totalDays int) ([]json.RawMessage, error) {
	chunks := Chunks(totalDays, c.chunkSize)
	entries := []json.RawMessage{}
	var lastErr error
	failed := 0
	for _, ch := range chunks {
		reply, err := c.model.Respond(ctx, Prompt(topic, ch))
		if err != nil {
			failed++
			lastErr = err
			c.log.Warn("roadmap chunk failed", "start_day", ch.Start, "end_day", ch.End, "error", err)
			continue
		}
		got := extract.Field(reply, progressField)
		if len(got) == 0 {
			c.log.Debug("roadmap chunk returned no entries", "start_day", ch.Start, "end_day", ch.End)
		}
		entries = append(entries, got...)
	}
	if len(chunks) > 0 && failed == len(chunks) {
		return nil, fmt.Errorf("all %d roadmap chunks failed: %w", failed, lastErr)
	}
	return entries, nil
}
