package services

import (
	"context"
	"sync"
)

type fakeModel struct {
	mu      sync.Mutex
	prompts []string
	replies []string
	errs    []error
	name    string
}

func (m *fakeModel) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := len(m.prompts)
	m.prompts = append(m.prompts, prompt)
	var err error
	if i < len(m.errs) {
		err = m.errs[i]
	}
	if err != nil {
		return "", err
	}
	if len(m.replies) == 0 {
		return "", nil
	}
	if i < len(m.replies) {
		return m.replies[i], nil
	}
	return m.replies[len(m.replies)-1], nil
}

func (m *fakeModel) Model() string {
	if m.name == "" {
		return "fake-model"
	}
	return m.name
}

type fakeTranscripts struct {
	text   string
	gotID  string
	gotLng string
}

func (f *fakeTranscripts) Get(ctx context.Context, videoID, language string) string {
	f.gotID = videoID
	f.gotLng = language
	return f.text
}
