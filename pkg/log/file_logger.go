package log

import (
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileExtension is the conventional suffix of protocol log files.
const FileExtension = ".flog"

// FileLogger appends protocol events to a CBOR stream on disk.
// It is safe for concurrent use from multiple goroutines.
type FileLogger struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	encoder *cbor.Encoder
	written int
	closed  bool
}

// NewFileLogger opens path for appending, creating it with mode 0644 if needed.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{
		path:    path,
		file:    f,
		encoder: NewEncoder(f),
	}, nil
}

// Path returns the file the logger writes to.
func (l *FileLogger) Path() string {
	return l.path
}

// Written returns the number of events successfully encoded.
func (l *FileLogger) Written() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.written
}

// Log appends the event. Events logged after Close are dropped.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	// Encoding failures must not break the exchange being logged.
	if err := l.encoder.Encode(event); err == nil {
		l.written++
	}
}

// Close closes the log file. It is safe to call Close multiple times.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.closed = true
	return l.file.Close()
}

var _ Logger = (*FileLogger)(nil)
