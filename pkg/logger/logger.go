// Package logger provides the process-wide leveled logger. Levels gate
// output, colors only decorate the prefix; both are safe for concurrent use.
package logger

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// LogLevel orders severities; messages below the configured level are dropped.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[string]LogLevel{
	"DEBUG": DEBUG,
	"INFO":  INFO,
	"WARN":  WARN,
	"ERROR": ERROR,
}

var prefixes = map[LogLevel]string{
	DEBUG: color.BlueString("DEBUG: "),
	INFO:  color.GreenString("INFO: "),
	WARN:  color.YellowString("WARN: "),
	ERROR: color.RedString("ERROR: "),
}

// Logger writes level-prefixed lines through a single underlying log.Logger.
type Logger struct {
	mu    sync.Mutex
	out   *log.Logger
	level LogLevel
}

// GlobalLogger is the shared instance, set once by InitLogger.
var GlobalLogger *Logger

var once sync.Once

// InitLogger configures the global logger. A nil output means stdout; an
// unrecognized level name falls back to INFO. Repeated calls are no-ops.
func InitLogger(output io.Writer, level string) {
	once.Do(func() {
		if output == nil {
			output = os.Stdout
		}
		lvl, ok := levelNames[strings.ToUpper(level)]
		if !ok {
			lvl = INFO
		}
		GlobalLogger = &Logger{
			out:   log.New(output, "", log.Ldate|log.Ltime),
			level: lvl,
		}
	})
}

func (l *Logger) log(lvl LogLevel, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lvl < l.level {
		return
	}
	l.out.SetPrefix(prefixes[lvl])
	l.out.Println(v...)
}

func (l *Logger) logf(lvl LogLevel, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lvl < l.level {
		return
	}
	l.out.SetPrefix(prefixes[lvl])
	l.out.Printf(format, v...)
}

// Println logs at INFO.
func (l *Logger) Println(v ...interface{}) { l.log(INFO, v...) }

// Printf logs a formatted message at INFO.
func (l *Logger) Printf(format string, v ...interface{}) { l.logf(INFO, format, v...) }

// Warn logs at WARN.
func (l *Logger) Warn(v ...interface{}) { l.log(WARN, v...) }

// Warnf logs a formatted message at WARN.
func (l *Logger) Warnf(format string, v ...interface{}) { l.logf(WARN, format, v...) }

// Error logs at ERROR.
func (l *Logger) Error(v ...interface{}) { l.log(ERROR, v...) }

// Errorf logs a formatted message at ERROR.
func (l *Logger) Errorf(format string, v ...interface{}) { l.logf(ERROR, format, v...) }

// Debug logs at DEBUG.
func (l *Logger) Debug(v ...interface{}) { l.log(DEBUG, v...) }

// Debugf logs a formatted message at DEBUG.
func (l *Logger) Debugf(format string, v ...interface{}) { l.logf(DEBUG, format, v...) }
