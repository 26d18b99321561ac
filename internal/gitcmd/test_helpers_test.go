package gitcmd

import (
	"context"
	"errors"
	"testing"
)

// mockRunner is a helper for tests to mock git command execution.
type mockRunner struct {
	calls [][]string
	mock  func(ctx context.Context, args ...string) (string, error)
}

func (m *mockRunner) run(ctx context.Context, args ...string) (string, error) {
	m.calls = append(m.calls, args)
	if m.mock != nil {
		return m.mock(ctx, args...)
	}
	return "", errors.New("mockRunner not implemented")
}

// setupMockRunner sets the package Runner to the mock and returns it with a teardown function.
func setupMockRunner(
	_ *testing.T, mockFunc func(_ context.Context, args ...string) (string, error),
) (*mockRunner, func()) {
	originalRunner := Runner
	mock := &mockRunner{mock: mockFunc}
	Runner = mock.run
	return mock, func() {
		Runner = originalRunner
	}
}
