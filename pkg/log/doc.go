// Package log provides structured protocol logging for FSAPI exchanges.
//
// This package defines the Logger interface and Event types for capturing
// every request and response the client exchanges with a speaker. It is
// separate from operational logging (slog): protocol capture provides a
// complete machine-readable trace for debugging firmware quirks.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// For analysis: write to a binary file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("speaker.flog")
//
//	// Both: use MultiLogger
//	cfg.ProtocolLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Each exchange produces one outgoing request event and one incoming
// response event, correlated by ExchangeID. Failures produce an error event
// instead of the response event.
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with the .flog extension.
// The fsapi-log tool provides viewing, statistics and export.
package log
