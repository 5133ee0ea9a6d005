package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerWritesKeyValueFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.With("league_id", "L1").Info("league imported", "teams", 3, "error", errors.New("boom"), "dangling")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "league imported", entries[0].Message)
	assert.Equal(t, "L1", fields["league_id"])
	assert.EqualValues(t, 3, fields["teams"])
	assert.Equal(t, "boom", fields["error"])
	assert.Contains(t, fields, "dangling")
}

func TestLoggerRespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := FromZap(zap.New(core))

	logger.Debug("skipped")
	logger.Info("skipped")
	logger.Warn("kept")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
}

func TestSetMirrorReceivesEnabledEntries(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		got = append(got, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.Debug("below level")
	logger.WarnContext(context.Background(), "mirrored", "week", 3)

	assert.Equal(t, []string{"warn:mirrored"}, got)

	SetMirror(nil)
	logger.Error("not mirrored")
	assert.Len(t, got, 1)
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetDefault(FromZap(zap.New(core)))
	t.Cleanup(func() { SetDefault(nil) })

	var logger *Logger
	logger.Info("via default")

	require.Equal(t, 1, logs.Len())
}
