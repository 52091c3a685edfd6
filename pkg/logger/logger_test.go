package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetRoutesPackageHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	defer Set(nil)

	Warn("queue full", zap.String("post", "p1"))
	Error("write failed")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "queue full", entries[0].Message)
	assert.Equal(t, "p1", entries[0].ContextMap()["post"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestInitFallsBackToInfo(t *testing.T) {
	assert.NoError(t, Init("not-a-level", "console"))
	assert.False(t, L().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, L().Core().Enabled(zapcore.InfoLevel))
	Set(nil)
}
