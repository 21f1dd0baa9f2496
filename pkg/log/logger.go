// Package log configures leveled, module-tagged logging for the renderer and
// its command line tools.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

type Level logging.Level

// The levels that can be passed to SetLevel
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is a named, leveled logger
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a logger tagged with name
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all loggers to sink. The level is reset to Info.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(formatted)
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the minimum level that reaches the sink
func SetLevel(level Level) {
	leveledBackend.SetLevel(level.backendLevel(), "")
}

func (level Level) backendLevel() logging.Level {
	switch level {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.NOTICE
	}
}

// printer adapts a Logger to the Printf-only logger the renderer expects
type printer struct {
	logger Logger
	level  Level
}

// Printer returns a core.Logger that writes through logger at level
func Printer(logger Logger, level Level) core.Logger {
	return printer{logger: logger, level: level}
}

func (p printer) Printf(format string, args ...interface{}) {
	switch p.level {
	case Debug:
		p.logger.Debugf(format, args...)
	case Info:
		p.logger.Infof(format, args...)
	case Warning:
		p.logger.Warningf(format, args...)
	case Error:
		p.logger.Errorf(format, args...)
	default:
		p.logger.Noticef(format, args...)
	}
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
