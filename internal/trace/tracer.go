// Package trace provides lightweight leveled tracing for the extraction
// pipeline. Passes and translation contexts accept a Tracer and emit events
// at phase and detail level; the nop tracer makes tracing free when off.
package trace

// Tracer is the interface for emitting trace events.
type Tracer interface {
	// Emit records a trace event.
	Emit(ev Event)

	// Level returns the current tracing level.
	Level() Level

	// Enabled reports whether tracing is active (Level > LevelOff).
	Enabled() bool
}

// Emit formats and records a point event if tr traces at the event's level.
func Emit(tr Tracer, level Level, name, detail string) {
	if tr == nil || !tr.Enabled() || tr.Level() < level {
		return
	}
	tr.Emit(Event{Level: level, Name: name, Detail: detail})
}
