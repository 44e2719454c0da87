package logging_test

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docfmt/internal/logging"
)

func TestNewLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  log.Level
	}{
		{level: "debug", want: log.DebugLevel},
		{level: "info", want: log.InfoLevel},
		{level: "warn", want: log.WarnLevel},
		{level: "warning", want: log.WarnLevel},
		{level: "error", want: log.ErrorLevel},
		{level: "ERROR", want: log.ErrorLevel},
		{level: "bogus", want: log.InfoLevel},
		{level: "", want: log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := logging.New(tt.level)
			require.NotNil(t, logger)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestDefaultReturnsSameInstance(t *testing.T) {
	t.Parallel()

	assert.Same(t, logging.Default(), logging.Default())
}
