// Package viewx holds the domain types of a server-driven view: per-view
// configuration, the socket representing one live connection, and the
// parameter redaction filter applied before parameters reach any log sink.
package viewx

import (
	"github.com/Abraxas-365/livex/pkg/logx"
)

// logMode is the three-valued interpretation of a view's log entry.
type logMode uint8

const (
	logModeDefault logMode = iota
	logModeDisabled
	logModeLevel
)

// LogSetting is a view's optional log severity entry: absent (use the
// global default), explicitly disabled, or an explicit override level.
// The zero value means "use default".
type LogSetting struct {
	mode  logMode
	level logx.Level
}

// LogDefault returns a setting that defers to the global default level.
func LogDefault() LogSetting {
	return LogSetting{}
}

// LogDisabled returns a setting that suppresses lifecycle logging for the
// view entirely, regardless of the global default.
func LogDisabled() LogSetting {
	return LogSetting{mode: logModeDisabled}
}

// LogLevel returns a setting that overrides the global default with an
// explicit severity level.
func LogLevel(level logx.Level) LogSetting {
	return LogSetting{mode: logModeLevel, level: level}
}

// Resolve computes the effective severity given the global default.
// The second return is false when logging is disabled for the view.
func (s LogSetting) Resolve(def logx.Level) (logx.Level, bool) {
	switch s.mode {
	case logModeDisabled:
		return 0, false
	case logModeLevel:
		return s.level, true
	default:
		return def, true
	}
}

// Config is the introspectable configuration a view type exposes.
type Config struct {
	// Name identifies the view type in logs and telemetry metadata
	Name string

	// Log controls lifecycle log severity for this view
	Log LogSetting
}
