package trace

// Event is one trace record.
type Event struct {
	Level  Level
	Name   string // operation, e.g. "extract.constant" or "passes.unused-locals"
	Detail string // free-form payload
}
