package contract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewLocalGitClient(t *testing.T) {
	client := NewLocalGitClient()
	assert.NotNil(t, client)
	assert.IsType(t, &LocalGitClient{}, client)
}

// TestLogArgs covers the four mutually exclusive date-range query shapes.
func TestLogArgs(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		start, end time.Time
		extra      []string
		want       []string
	}{
		{
			"both bounds", start, end, []string{"--oneline"},
			[]string{"log", "--after=2024-01-01", "--before=2024-12-31", "--oneline"},
		},
		{
			"start only", start, time.Time{}, nil,
			[]string{"log", "--after=2024-01-01"},
		},
		{
			"end only", time.Time{}, end, nil,
			[]string{"log", "--before=2024-12-31"},
		},
		{
			"neither", time.Time{}, time.Time{}, []string{"--format=%aE"},
			[]string{"log", "--format=%aE"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, logArgs(tc.start, tc.end, tc.extra...))
		})
	}
}

// TestLogTextDegradesToEmpty verifies the extractor contract: a failing query
// yields an empty result instead of an error.
func TestLogTextDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	client := new(MockGitClient)
	client.On("Log", ctx, "broken", time.Time{}, time.Time{}, "--oneline").
		Return([]byte(nil), errors.New("bad revision"))

	out := LogText(ctx, client, "broken", time.Time{}, time.Time{}, "--oneline")
	assert.Empty(t, out)
	client.AssertExpectations(t)
}

func TestLogTextPassesThroughOutput(t *testing.T) {
	ctx := context.Background()
	client := new(MockGitClient)
	client.On("Log", ctx, "ok", time.Time{}, time.Time{}, "--format=%H").
		Return([]byte("h1\nh2\n"), nil)

	out := LogText(ctx, client, "ok", time.Time{}, time.Time{}, "--format=%H")
	assert.Equal(t, "h1\nh2\n", out)
}
