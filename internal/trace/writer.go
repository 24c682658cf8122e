package trace

import (
	"fmt"
	"io"
	"sync"
)

// writerTracer writes one line per event to an io.Writer.
type writerTracer struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
}

// NewWriter returns a tracer that writes events at or below level to w.
func NewWriter(w io.Writer, level Level) Tracer {
	return &writerTracer{w: w, level: level}
}

func (t *writerTracer) Emit(ev Event) {
	if ev.Level > t.level {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if ev.Detail == "" {
		fmt.Fprintf(t.w, "[%s] %s\n", ev.Level, ev.Name)
		return
	}
	fmt.Fprintf(t.w, "[%s] %s: %s\n", ev.Level, ev.Name, ev.Detail)
}

func (t *writerTracer) Level() Level  { return t.level }
func (t *writerTracer) Enabled() bool { return t.level > LevelOff }
