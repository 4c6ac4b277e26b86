// Package transport performs single FSAPI exchanges over HTTP.
//
// Every operation is one GET request:
//
//	http://<host>/fsapi/<OPERATION>/<resource>/<item>?pin=<pin>&...
//
// The response body is read fully and parsed into a wire.Node tree. The
// client holds no state beyond its configuration, so one Client may be
// shared by many goroutines. There is no retry, pooling policy or session
// handling; callers bound each exchange with a context and own the
// underlying HTTP client.
//
// # Errors
//
// Network, context and body read failures are reported as *TransportError.
// A body that is not well-formed XML is reported as
// *wire.MalformedResponseError carrying the HTTP status. HTTP status codes
// are otherwise not interpreted: device semantics live in the FSAPI status.
//
// # Logging
//
// Config.Logger receives operational slog records at Debug level.
// Config.ProtocolLogger receives one request event and one response (or
// error) event per exchange, correlated by a UUID exchange ID.
package transport
