package vuevreact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSafeReturnsValue(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	got := Safe(zap.New(core), "ok", func() (int, error) { return 7, nil }, -1)
	require.Equal(t, 7, got)
	require.Zero(t, logs.Len())
}

func TestSafeFallsBackAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	got := Safe(zap.New(core), "load thing", func() (string, error) { return "", errors.New("boom") }, "fallback")
	require.Equal(t, "fallback", got)
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "load thing", logs.All()[0].ContextMap()["op"])
}

func TestSafeWithoutLogger(t *testing.T) {
	got := Safe[*int](nil, "nil logger", func() (*int, error) { return nil, errors.New("boom") }, nil)
	require.Nil(t, got)
}
