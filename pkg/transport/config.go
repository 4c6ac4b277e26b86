package transport

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/multiroom/fsapi-go/pkg/log"
)

// Defaults.
const (
	// DefaultPIN is the factory PIN of most FSAPI devices.
	DefaultPIN = "1234"

	// DefaultTimeout bounds an exchange when the client builds its own
	// http.Client.
	DefaultTimeout = 5 * time.Second

	// DefaultMaxResponseSize caps the response body (64 KB).
	DefaultMaxResponseSize = 65536
)

// ErrInvalidConfig is returned by Validate and NewClient.
var ErrInvalidConfig = errors.New("invalid transport config")

// Config configures a Client.
type Config struct {
	// Host is the device address, optionally with ":port".
	// A leading "http://" and trailing "/" are tolerated.
	Host string

	// PIN is sent with every request.
	PIN string

	// HTTPClient performs the requests. When nil, an http.Client with
	// Timeout is created.
	HTTPClient Doer

	// Timeout applies only to the http.Client created when HTTPClient is nil.
	Timeout time.Duration

	// MaxResponseSize caps the number of body bytes read (default: 64KB).
	MaxResponseSize int

	// Logger receives operational logs. Nil disables them.
	Logger *slog.Logger

	// ProtocolLogger receives protocol events. Nil disables them.
	ProtocolLogger log.Logger
}

// DefaultConfig returns a Config with the factory PIN and default limits.
func DefaultConfig() Config {
	return Config{
		PIN:             DefaultPIN,
		Timeout:         DefaultTimeout,
		MaxResponseSize: DefaultMaxResponseSize,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if normalizeHost(c.Host) == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if strings.ContainsAny(normalizeHost(c.Host), "/?#") {
		return fmt.Errorf("%w: host %q must not contain a path", ErrInvalidConfig, c.Host)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidConfig)
	}
	if c.MaxResponseSize < 0 {
		return fmt.Errorf("%w: negative max response size", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) applyDefaults() {
	c.Host = normalizeHost(c.Host)
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxResponseSize == 0 {
		c.MaxResponseSize = DefaultMaxResponseSize
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	if c.ProtocolLogger == nil {
		c.ProtocolLogger = log.NoopLogger{}
	}
}

func normalizeHost(host string) string {
	host = strings.TrimSpace(host)
	host = strings.TrimPrefix(host, "http://")
	return strings.TrimRight(host, "/")
}
