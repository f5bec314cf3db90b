package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizePayloadMasksPasswords(t *testing.T) {
	payload := map[string]any{
		"username": "alice",
		"password": "s3cret",
		"nested": map[string]any{
			"generated_password": "abc!12",
			"Secret":             "x",
		},
	}

	got, ok := SanitizePayload(payload).(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "alice", got["username"])
	assert.Equal(t, "******", got["password"])

	nested, ok := got["nested"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "******", nested["generated_password"])
	assert.Equal(t, "******", nested["Secret"])
}

func TestSanitizePayloadStructTags(t *testing.T) {
	type request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	got, ok := SanitizePayload(request{Username: "bob", Password: "pw"}).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "******", got["password"])
}

func TestInfoAndErrorWriteSanitizedFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := Log
	Log = zap.New(core)
	t.Cleanup(func() { Log = previous })

	Info("session register request", Fields{"username": "alice", "password": "hunter2"})
	Error("session register failed", errors.New("boom"), Fields{"username": "alice"})

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "alice", first["username"])
	assert.Equal(t, "******", first["password"])

	second := entries[1].ContextMap()
	assert.Equal(t, "boom", second["error"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	err := Initialize("loud", "stderr")
	require.Error(t, err)
}
