package contract

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	mockArgs := []any{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// Log implements the GitClient interface.
func (m *MockGitClient) Log(ctx context.Context, repoPath string, startTime, endTime time.Time, extraArgs ...string) ([]byte, error) {
	mockArgs := []any{ctx, repoPath, startTime, endTime}
	for _, arg := range extraArgs {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// CheckRepo implements the GitClient interface.
func (m *MockGitClient) CheckRepo(ctx context.Context, path string) error {
	ret := m.Called(ctx, path)
	return ret.Error(0)
}

// Clone implements the GitClient interface.
func (m *MockGitClient) Clone(ctx context.Context, url, path string) error {
	ret := m.Called(ctx, url, path)
	return ret.Error(0)
}

// Fetch implements the GitClient interface.
func (m *MockGitClient) Fetch(ctx context.Context, path string) error {
	ret := m.Called(ctx, path)
	return ret.Error(0)
}
