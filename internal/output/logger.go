package output

import (
	"fmt"
	"io"
)

// Logger writes verbosity-gated progress messages. Warnings always print;
// info needs -v, debug needs -vv.
type Logger struct {
	verbosity int
	w         io.Writer
}

func NewLogger(verbosity int, w io.Writer) *Logger {
	return &Logger{verbosity: verbosity, w: w}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "warning: "+format+"\n", args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.verbosity >= 1 {
		fmt.Fprintf(l.w, format+"\n", args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.verbosity >= 2 {
		fmt.Fprintf(l.w, format+"\n", args...)
	}
}
