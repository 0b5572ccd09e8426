// Package logger is a leveled logger with per-message component tags. The
// CF variants attach a component name and a free-form field map.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

var (
	levelVar slog.LevelVar
	log      = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &levelVar}))
)

// SetLevel switches the global level: debug, info, warn or error. Unknown
// names mean info.
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		levelVar.Set(slog.LevelDebug)
	case "warn":
		levelVar.Set(slog.LevelWarn)
	case "error":
		levelVar.Set(slog.LevelError)
	default:
		levelVar.Set(slog.LevelInfo)
	}
}

func Debug(msg string) { log.Debug(msg) }
func Info(msg string)  { log.Info(msg) }
func Warn(msg string)  { log.Warn(msg) }
func Error(msg string) { log.Error(msg) }

// DebugCF logs at debug with a component tag and optional fields.
func DebugCF(component, msg string, fields map[string]interface{}) {
	log.Debug(msg, attrs(component, fields)...)
}

// InfoCF logs at info with a component tag and optional fields.
func InfoCF(component, msg string, fields map[string]interface{}) {
	log.Info(msg, attrs(component, fields)...)
}

// WarnCF logs at warn with a component tag and optional fields.
func WarnCF(component, msg string, fields map[string]interface{}) {
	log.Warn(msg, attrs(component, fields)...)
}

// ErrorCF logs at error with a component tag and optional fields.
func ErrorCF(component, msg string, fields map[string]interface{}) {
	log.Error(msg, attrs(component, fields)...)
}

func attrs(component string, fields map[string]interface{}) []any {
	out := make([]any, 0, 2+2*len(fields))
	out = append(out, slog.String("component", component))
	for k, v := range fields {
		out = append(out, slog.Any(k, v))
	}
	return out
}
