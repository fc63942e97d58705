// Package logger is a small levelled wrapper over the standard log
// package. The level can be flipped at runtime, which the feature-flag
// watcher in main uses.
package logger

import (
	"log"
	"strings"
	"sync/atomic"
)

type level int32

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var current atomic.Int32

func parseLevel(s string) level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return levelDebug
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (l level) String() string {
	switch l {
	case levelDebug:
		return "debug"
	case levelWarn:
		return "warn"
	case levelError:
		return "error"
	default:
		return "info"
	}
}

// Init sets the starting level
func Init(lvl string) {
	current.Store(int32(parseLevel(lvl)))
}

// SetLevel changes the level at runtime
func SetLevel(lvl string) {
	current.Store(int32(parseLevel(lvl)))
}

// GetLevel reports the active level name
func GetLevel() string {
	return level(current.Load()).String()
}

func logf(l level, prefix, format string, args ...any) {
	if l < level(current.Load()) {
		return
	}
	log.Printf(prefix+format, args...)
}

// Debugf logs at debug level
func Debugf(format string, args ...any) { logf(levelDebug, "DEBUG ", format, args...) }

// Infof logs at info level
func Infof(format string, args ...any) { logf(levelInfo, "INFO ", format, args...) }

// Warnf logs at warn level
func Warnf(format string, args ...any) { logf(levelWarn, "WARN ", format, args...) }

// Errorf logs at error level
func Errorf(format string, args ...any) { logf(levelError, "ERROR ", format, args...) }
