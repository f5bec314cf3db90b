package logger

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Fields map[string]any

var Log = zap.NewNop()

var sensitiveKeys = map[string]struct{}{
	"password":          {},
	"generatedpassword": {},
	"secret":            {},
}

// Initialize replaces the no-op logger with a JSON logger at the given level
// writing to output ("stderr", "stdout" or a file path).
func Initialize(level string, output string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	if output != "" {
		cfg.OutputPaths = []string{output}
		cfg.ErrorOutputPaths = []string{output}
	}

	built, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	Log = built
	return nil
}

func Sync() {
	_ = Log.Sync()
}

func Debug(message string, fields Fields) {
	Log.Debug(message, zapFields(fields)...)
}

func Info(message string, fields Fields) {
	Log.Info(message, zapFields(fields)...)
}

func Warn(message string, fields Fields) {
	Log.Warn(message, zapFields(fields)...)
}

func Error(message string, err error, fields Fields) {
	out := zapFields(fields)
	if err != nil {
		out = append(out, zap.Error(err))
	}

	Log.Error(message, out...)
}

func SanitizePayload(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return sanitizeValue(data)
}

func zapFields(fields Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	sanitized, ok := SanitizePayload(fields).(map[string]any)
	if !ok {
		return []zap.Field{zap.String("fields", "<unavailable>")}
	}

	keys := make([]string, 0, len(sanitized))
	for key := range sanitized {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, key := range keys {
		out = append(out, zap.Any(key, sanitized[key]))
	}

	return out
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			if isSensitiveKey(key) {
				out[key] = "******"
				continue
			}
			out[key] = sanitizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.TrimSpace(key))
	normalized = strings.NewReplacer("-", "", "_", "").Replace(normalized)
	_, ok := sensitiveKeys[normalized]
	return ok
}
