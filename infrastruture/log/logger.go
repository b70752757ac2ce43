// Package log provides the colored leveled logger used across the service.
package log

import (
	"errors"
	"fmt"
	"io"
	stdlog "log"

	"github.com/beka-birhanu/vinom-pathfinder/config"
)

// Logger writes "[PREFIX] [LEVEL] message" lines.
type Logger struct {
	base *stdlog.Logger
}

// New creates a Logger that tags every line with prefix in the given color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	tag := fmt.Sprintf("%s[%s]%s ", color, prefix, config.LogColorReset)
	return &Logger{
		base: stdlog.New(w, tag, stdlog.LstdFlags),
	}, nil
}

func (l *Logger) Info(message string) {
	l.base.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, message)
}

func (l *Logger) Warning(message string) {
	l.base.Printf("%s[WARNING]%s %s", config.LogWarningColor, config.LogColorReset, message)
}

func (l *Logger) Error(message string) {
	l.base.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, message)
}
