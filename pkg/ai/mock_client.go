// pkg/ai/mock_client.go

package ai

import (
	"context"
	"sync"
)

// MockModel replies with a fixed text (or error) and remembers the prompts it
// was sent. It stands in for Gemini in tests.
type MockModel struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func NewMock(reply string, err error) *MockModel { return &MockModel{reply: reply, err: err} }

func (m *MockModel) Generate(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	return m.reply, m.err
}

// SetReply changes the scripted response for subsequent calls.
func (m *MockModel) SetReply(reply string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reply, m.err = reply, err
}

func (m *MockModel) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}
