package log

// Logger receives one Event per Converter operation, successful or not.
//
// Converters call Log synchronously on the caller's goroutine, and one
// Logger may be shared by many converters. Implementations must therefore
// be safe for concurrent use and should return quickly.
type Logger interface {
	// Log records a conversion event. The event's pointer fields are owned
	// by the logger after the call; the converter does not reuse them.
	Log(event Event)
}

// NoopLogger drops every event. It is what a Converter uses when its
// Config has no Logger, and its zero value is ready to use.
type NoopLogger struct{}

// Log drops the event.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}
