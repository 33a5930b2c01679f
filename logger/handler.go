package logger

// Handler receives rendered messages in place of the default destinations.
// Emit may be called from multiple goroutines.
type Handler interface {
	Emit(level Level, msg string)
}

// HandlerFunc adapts an ordinary function to a Handler.
type HandlerFunc func(level Level, msg string)

// Emit calls f(level, msg).
func (f HandlerFunc) Emit(level Level, msg string) {
	f(level, msg)
}
