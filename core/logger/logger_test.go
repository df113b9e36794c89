package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailcrm/go-phonenumber/core/logger"
)

func TestNil_DiscardsEverything(t *testing.T) {
	n := logger.NewNil()
	n.Debug("should not panic")
	n.Info("should not panic", "k", "v")
	n.WithGroup("g").Error("still nothing")
	assert.False(t, n.Enabled(context.Background(), slog.LevelError))
	assert.Same(t, logger.NilHandler, n.Handler())
}

func TestDefault_WritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewDefault(slog.New(slog.NewJSONHandler(&buf, logger.DefaultOpts)))

	l.Debug("hello", "k", "v")
	require.Contains(t, buf.String(), `"msg":"hello"`)
	require.Contains(t, buf.String(), `"k":"v"`)
}

func TestDefault_ForOperationAnnotates(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewDefault(slog.New(slog.NewJSONHandler(&buf, logger.DefaultOpts)))

	l.ForOperation("Parse", "US").Info("parsed")
	line := buf.String()
	require.Contains(t, line, `"`+logger.OperationAttr+`":"Parse"`)
	require.Contains(t, line, `"`+logger.RegionAttr+`":"US"`)
}

func TestErrAttr(t *testing.T) {
	assert.Equal(t, slog.String(logger.ErrorAttr, "<nil>"), logger.ErrAttr(nil))

	err := assert.AnError
	attr := logger.ErrAttr(err)
	assert.Equal(t, logger.ErrorAttr, attr.Key)
}
