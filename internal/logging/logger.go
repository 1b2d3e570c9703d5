package logging

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// LevelVerbose sits between Debug and Info: per-row progress detail that -v
// enables without the full debug firehose.
const LevelVerbose = slog.Level(-2)

type Logger struct {
	minLevel    atomic.Int64
	terminalOut atomic.Bool
	pretty      bool
	mu          sync.RWMutex
	nextID      int
	subscribers map[int]func(Event)
}

type Event struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Fields  map[string]any
}

func New(minLevel slog.Level) *Logger {
	logger := &Logger{
		pretty:      shouldPrettyPrint(),
		subscribers: map[int]func(Event){},
	}
	logger.minLevel.Store(int64(minLevel))
	logger.terminalOut.Store(true)
	return logger
}

func Field(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

func (l *Logger) Debug(msg string, fields ...slog.Attr) {
	l.log(slog.LevelDebug, msg, fields)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.Debug(fmt.Sprintf(format, args...))
}

func (l *Logger) Verbose(msg string, fields ...slog.Attr) {
	l.log(LevelVerbose, msg, fields)
}

func (l *Logger) Verbosef(format string, args ...any) {
	l.Verbose(fmt.Sprintf(format, args...))
}

func (l *Logger) Info(msg string, fields ...slog.Attr) {
	l.log(slog.LevelInfo, msg, fields)
}

func (l *Logger) Warn(msg string, fields ...slog.Attr) {
	l.log(slog.LevelWarn, msg, fields)
}

func (l *Logger) Error(msg string, fields ...slog.Attr) {
	l.log(slog.LevelError, msg, fields)
}

func (l *Logger) SetMinLevel(level slog.Level) {
	if l == nil {
		return
	}
	l.minLevel.Store(int64(level))
}

func (l *Logger) SetTerminalOutputEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.terminalOut.Store(enabled)
}

// Subscribe registers fn for every event at or above the minimum level and
// returns an unsubscribe function.
func (l *Logger) Subscribe(fn func(Event)) func() {
	if l == nil {
		panic("logging.Logger.Subscribe: logger must not be nil")
	}
	if fn == nil {
		panic("logging.Logger.Subscribe: callback must not be nil")
	}
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.subscribers[id] = fn
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		delete(l.subscribers, id)
		l.mu.Unlock()
	}
}

func (l *Logger) log(level slog.Level, msg string, attrs []slog.Attr) {
	if l == nil || level < slog.Level(l.minLevel.Load()) {
		return
	}
	event := Event{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
		Fields:  attrsToMap(attrs),
	}
	if l.terminalOut.Load() {
		l.emit(event)
	}
	l.publishEvent(event)
}

func (l *Logger) emit(event Event) {
	if l.pretty {
		_, _ = os.Stderr.WriteString(FormatEventANSI(event))
		return
	}
	_, _ = os.Stderr.WriteString(FormatEventLine(event))
}

func (l *Logger) publishEvent(event Event) {
	l.mu.RLock()
	if len(l.subscribers) == 0 {
		l.mu.RUnlock()
		return
	}
	callbacks := make([]func(Event), 0, len(l.subscribers))
	for _, cb := range l.subscribers {
		callbacks = append(callbacks, cb)
	}
	l.mu.RUnlock()

	for _, cb := range callbacks {
		cb(event)
	}
}

func attrsToMap(attrs []slog.Attr) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	fields := make(map[string]any, len(attrs))
	for _, attr := range attrs {
		if attr.Key == "" {
			continue
		}
		fields[attr.Key] = attr.Value.Resolve().Any()
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
