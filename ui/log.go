package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	log "github.com/sirupsen/logrus"
)

const markerField = "marker"

type marker string

const (
	markerInfo    marker = "INFO"
	markerSuccess marker = "SUCCESS"
	markerWarning marker = "WARNING"
	markerError   marker = "ERROR"
	markerDebug   marker = "DEBUG"
	markerStep    marker = "STEP"
)

// markerFormatter renders entries as "<MARKER> message", coloring the marker.
type markerFormatter struct {
	color aurora.Aurora
}

func (f *markerFormatter) Format(entry *log.Entry) ([]byte, error) {
	m, ok := entry.Data[markerField].(marker)
	if !ok {
		m = markerForLevel(entry.Level)
	}

	var b bytes.Buffer
	b.WriteString(f.paint(m).String())
	b.WriteByte(' ')
	b.WriteString(entry.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func (f *markerFormatter) paint(m marker) aurora.Value {
	text := string(m)
	switch m {
	case markerSuccess:
		return f.color.Bold(f.color.Green(text))
	case markerWarning:
		return f.color.Bold(f.color.Yellow(text))
	case markerError:
		return f.color.Bold(f.color.Red(text))
	case markerDebug:
		return f.color.Bold(f.color.Magenta(text))
	case markerStep:
		return f.color.Bold(f.color.Cyan(text))
	default:
		return f.color.Bold(f.color.Blue(text))
	}
}

func markerForLevel(level log.Level) marker {
	switch level {
	case log.DebugLevel, log.TraceLevel:
		return markerDebug
	case log.WarnLevel:
		return markerWarning
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		return markerError
	default:
		return markerInfo
	}
}

func newLogger(w io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&markerFormatter{color: Color(w)})
	l.SetLevel(log.InfoLevel)
	return l
}

var (
	stdoutLog = newLogger(os.Stdout)
	stderrLog = newLogger(os.Stderr)
)

// SetVerbose enables DEBUG output.
func SetVerbose(verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	stdoutLog.SetLevel(level)
	stderrLog.SetLevel(level)
}

// SetOutput redirects both loggers. Used by tests.
func SetOutput(stdout, stderr io.Writer) {
	stdoutLog.SetOutput(stdout)
	stdoutLog.SetFormatter(&markerFormatter{color: Color(stdout)})
	stderrLog.SetOutput(stderr)
	stderrLog.SetFormatter(&markerFormatter{color: Color(stderr)})
}

func Info(format string, args ...interface{}) {
	stdoutLog.Infof(format, args...)
}

func Success(format string, args ...interface{}) {
	stdoutLog.WithField(markerField, markerSuccess).Infof(format, args...)
}

func Warning(format string, args ...interface{}) {
	stdoutLog.Warnf(format, args...)
}

func Error(format string, args ...interface{}) {
	stderrLog.Errorf(format, args...)
}

func Debug(format string, args ...interface{}) {
	stdoutLog.Debugf(format, args...)
}

func Step(step, total int, format string, args ...interface{}) {
	stdoutLog.WithField(markerField, markerStep).
		Infof("[%d/%d] %s", step, total, fmt.Sprintf(format, args...))
}
