package logs

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// logEntry is a single formatted log message together with the level it was
// written at, so each writer can filter it independently.
type logEntry struct {
	log   []byte
	level Level
}

// Logger is a subsystem logger. All messages are tagged with the subsystem
// name and pushed through the backend's write channel.
type Logger struct {
	lvl       Level // atomic, used as a uint32
	tag       string
	b         *Backend
	writeChan chan logEntry
}

// Disabled is a Logger that discards everything written to it. It is handed
// to packages whose logger was never wired up.
var Disabled = &Logger{lvl: LevelOff}

// defaultLogTimestampFormat is the timestamp prefix on every log message.
const defaultLogTimestampFormat = "2006-01-02 15:04:05.000"

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32((*uint32)(&l.lvl)))
}

// SetLevel changes the logging level to the passed level.
func (l *Logger) SetLevel(logLevel Level) {
	atomic.StoreUint32((*uint32)(&l.lvl), uint32(logLevel))
}

// Backend returns the backend this logger writes to.
func (l *Logger) Backend() *Backend {
	return l.b
}

// write formats a message in the style
//
//	2006-01-02 15:04:05.000 [INF] TAG: message
//
// optionally with the callsite when the backend was configured with a file
// flag, and hands it to the backend goroutine.
func (l *Logger) write(logLevel Level, msg string) {
	t := time.Now()

	var file string
	var line int
	if l.b.flag&(LogFlagShortFile|LogFlagLongFile) != 0 {
		file, line = callsite(l.b.flag)
	}

	buf := make([]byte, 0, normalLogSize)
	buf = append(buf, t.Format(defaultLogTimestampFormat)...)
	buf = append(buf, " ["...)
	buf = append(buf, logLevel.String()...)
	buf = append(buf, "] "...)
	buf = append(buf, l.tag...)
	if file != "" {
		buf = append(buf, ' ')
		buf = append(buf, file...)
		buf = append(buf, ':')
		buf = append(buf, fmt.Sprintf("%d", line)...)
	}
	buf = append(buf, ": "...)
	buf = append(buf, msg...)
	buf = append(buf, '\n')

	l.writeChan <- logEntry{buf, logLevel}
}

// callsite returns the file name and line number of the logging callsite,
// honoring the short/long file flags.
func callsite(flag uint32) (string, int) {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		return "???", 0
	}
	if flag&LogFlagShortFile != 0 {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if file[i] == '/' {
				short = file[i+1:]
				break
			}
		}
		file = short
	}
	return file, line
}

func (l *Logger) print(logLevel Level, args ...interface{}) {
	if logLevel < l.Level() || l.b == nil {
		return
	}
	l.write(logLevel, fmt.Sprint(args...))
}

func (l *Logger) printf(logLevel Level, format string, args ...interface{}) {
	if logLevel < l.Level() || l.b == nil {
		return
	}
	l.write(logLevel, fmt.Sprintf(format, args...))
}

// Trace formats a message using the default formats for its operands, and
// writes it at the trace level.
func (l *Logger) Trace(args ...interface{}) {
	l.print(LevelTrace, args...)
}

// Tracef formats a message according to a format specifier and writes it at
// the trace level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.printf(LevelTrace, format, args...)
}

// Debug formats a message using the default formats for its operands, and
// writes it at the debug level.
func (l *Logger) Debug(args ...interface{}) {
	l.print(LevelDebug, args...)
}

// Debugf formats a message according to a format specifier and writes it at
// the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.printf(LevelDebug, format, args...)
}

// Info formats a message using the default formats for its operands, and
// writes it at the info level.
func (l *Logger) Info(args ...interface{}) {
	l.print(LevelInfo, args...)
}

// Infof formats a message according to a format specifier and writes it at
// the info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.printf(LevelInfo, format, args...)
}

// Warn formats a message using the default formats for its operands, and
// writes it at the warn level.
func (l *Logger) Warn(args ...interface{}) {
	l.print(LevelWarn, args...)
}

// Warnf formats a message according to a format specifier and writes it at
// the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.printf(LevelWarn, format, args...)
}

// Error formats a message using the default formats for its operands, and
// writes it at the error level.
func (l *Logger) Error(args ...interface{}) {
	l.print(LevelError, args...)
}

// Errorf formats a message according to a format specifier and writes it at
// the error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.printf(LevelError, format, args...)
}

// Critical formats a message using the default formats for its operands, and
// writes it at the critical level.
func (l *Logger) Critical(args ...interface{}) {
	l.print(LevelCritical, args...)
}

// Criticalf formats a message according to a format specifier and writes it
// at the critical level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.printf(LevelCritical, format, args...)
}

// SetLogLevels sets the logging level of the passed loggers to the level
// named by levelStr. It returns an error if the string doesn't name a level.
func SetLogLevels(levelStr string, loggers ...*Logger) error {
	lvl, ok := LevelFromString(levelStr)
	if !ok {
		return errors.Errorf("invalid log level %s, valid levels are {%s}",
			levelStr, strings.ToLower(strings.Join(levelStrs[:], ", ")))
	}
	for _, logger := range loggers {
		logger.SetLevel(lvl)
	}
	return nil
}
