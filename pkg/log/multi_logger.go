package log

// MultiLogger fans events out to several loggers, e.g. an SlogAdapter for
// the console and a FileLogger for later analysis.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger. Nil loggers are skipped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

// Len returns the number of attached loggers.
func (m *MultiLogger) Len() int {
	return len(m.loggers)
}

// Log sends the event to every attached logger in order.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

var _ Logger = (*MultiLogger)(nil)
