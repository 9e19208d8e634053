package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_MessageAndUnwrap(t *testing.T) {
	err := RepositoryError(io.EOF, "failed to open repository")

	assert.Equal(t, "failed to open repository: EOF", err.Error())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, SeverityCritical, err.Severity)
}

func TestError_IsMatchesType(t *testing.T) {
	err := fmt.Errorf("reading history: %w", HistoryErrorf(io.ErrUnexpectedEOF, "commit %s", "abc"))

	assert.True(t, errors.Is(err, &Error{Type: ErrorTypeHistory}))
	assert.False(t, errors.Is(err, &Error{Type: ErrorTypeRepository}))
	assert.True(t, IsType(err, ErrorTypeHistory))
	assert.Equal(t, ErrorTypeHistory, GetType(err))
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrorTypeInternal, SeverityLow, "nothing"))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"config", ConfigError(nil, "bad config"), 2},
		{"validation", ValidationErrorf("invalid alias %q", "x"), 2},
		{"repository", RepositoryErrorf(nil, "repository %s not found", "."), 3},
		{"shallow clone", ShallowCloneError("shallow"), 4},
		{"history", HistoryError(io.EOF, "broken object"), 5},
		{"internal", InternalErrorf("boom"), 1},
		{"plain error", errors.New("plain"), 1},
		{"wrapped typed error", fmt.Errorf("outer: %w", ShallowCloneError("shallow")), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestDetailedString(t *testing.T) {
	err := ValidationError("invalid date").WithContext("value", "tomorrowish")

	detailed := err.DetailedString()
	require.Contains(t, detailed, "[HIGH] [VALIDATION] invalid date")
	assert.Contains(t, detailed, "value: tomorrowish")
}
