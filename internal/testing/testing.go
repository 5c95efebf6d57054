// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
)

// ScriptedStatusAPI is a test double for [services.StatusAPI] that replays a
// scripted sequence of fetch results and records restart calls.
//
// Fetch call n returns Fetches[n]; past the end the last entry repeats.
type ScriptedStatusAPI struct {
	Fetches []FetchResult
	calls   int

	RestartErr   error
	RestartCalls []string
}

// FetchResult is one scripted FetchServices outcome.
type FetchResult struct {
	Services []models.Service
	Err      error
}

func (s *ScriptedStatusAPI) FetchServices(ctx context.Context) ([]models.Service, error) {
	if len(s.Fetches) == 0 {
		return nil, errors.New("no scripted fetches")
	}
	i := s.calls
	if i >= len(s.Fetches) {
		i = len(s.Fetches) - 1
	}
	s.calls++
	return s.Fetches[i].Services, s.Fetches[i].Err
}

func (s *ScriptedStatusAPI) RestartService(ctx context.Context, id string) error {
	s.RestartCalls = append(s.RestartCalls, id)
	return s.RestartErr
}

// FetchCalls reports how many times FetchServices has been invoked.
func (s *ScriptedStatusAPI) FetchCalls() int { return s.calls }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
