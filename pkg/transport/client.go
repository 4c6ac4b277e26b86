package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/multiroom/fsapi-go/pkg/log"
	"github.com/multiroom/fsapi-go/pkg/wire"
)

// Client sends FSAPI requests to one device.
type Client struct {
	config Config
}

// NewClient creates a client. Unset fields take DefaultConfig values,
// except PIN which is sent as given.
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.applyDefaults()
	return &Client{config: config}, nil
}

// Host returns the normalized device address.
func (c *Client) Host() string {
	return c.config.Host
}

// URL returns the URL a request would be sent to.
func (c *Client) URL(req Request) string {
	return BuildURL(c.config.Host, c.config.PIN, req)
}

// Do performs the exchange and returns the root of the response document.
func (c *Client) Do(ctx context.Context, req Request) (*wire.Node, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exchangeID := uuid.NewString()
	c.logRequest(exchangeID, req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(req), nil)
	if err != nil {
		return nil, c.fail(exchangeID, req, log.LayerTransport, &TransportError{Operation: req.Operation, Resource: req.Resource, Err: redactError(err)})
	}

	start := time.Now()
	resp, err := c.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, c.fail(exchangeID, req, log.LayerTransport, &TransportError{Operation: req.Operation, Resource: req.Resource, Err: redactError(err)})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(c.config.MaxResponseSize)+1))
	if err == nil && len(body) > c.config.MaxResponseSize {
		err = fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, c.config.MaxResponseSize)
	}
	if err != nil {
		return nil, c.fail(exchangeID, req, log.LayerTransport, &TransportError{Operation: req.Operation, Resource: req.Resource, Err: err})
	}
	elapsed := time.Since(start)

	root, err := wire.Parse(body)
	if err != nil {
		var mre *wire.MalformedResponseError
		if errors.As(err, &mre) {
			mre.Operation = req.Operation
			mre.Resource = req.Resource
			mre.HTTPStatus = resp.StatusCode
		}
		c.logResponse(exchangeID, req, resp.StatusCode, "", elapsed, body)
		return nil, c.fail(exchangeID, req, log.LayerWire, err)
	}

	status := wire.DecodeStatus(root)
	c.logResponse(exchangeID, req, resp.StatusCode, status, elapsed, body)
	if c.config.Logger != nil {
		c.config.Logger.Debug("fsapi exchange",
			slog.String("request", req.String()),
			slog.String("host", c.config.Host),
			slog.Int("http_status", resp.StatusCode),
			slog.String("status", status.String()),
			slog.Duration("elapsed", elapsed))
	}

	return root, nil
}

func (c *Client) logRequest(exchangeID string, req Request) {
	c.config.ProtocolLogger.Log(log.Event{
		Timestamp:  time.Now(),
		ExchangeID: exchangeID,
		Direction:  log.DirectionOut,
		Layer:      log.LayerTransport,
		Category:   log.CategoryMessage,
		Host:       c.config.Host,
		Message: &log.MessageEvent{
			Type:      log.MessageTypeRequest,
			Operation: req.Operation,
			Resource:  req.Resource,
			Item:      req.Item,
			Params:    loggedParams(req.Params),
		},
	})
}

func (c *Client) logResponse(exchangeID string, req Request, httpStatus int, status wire.Status, elapsed time.Duration, body []byte) {
	captured, truncated := log.CaptureBody(bytes.Clone(body))
	c.config.ProtocolLogger.Log(log.Event{
		Timestamp:  time.Now(),
		ExchangeID: exchangeID,
		Direction:  log.DirectionIn,
		Layer:      log.LayerTransport,
		Category:   log.CategoryMessage,
		Host:       c.config.Host,
		Message: &log.MessageEvent{
			Type:       log.MessageTypeResponse,
			Operation:  req.Operation,
			Resource:   req.Resource,
			Item:       req.Item,
			HTTPStatus: httpStatus,
			Status:     status,
			Duration:   &elapsed,
			BodySize:   len(body),
			Body:       captured,
			Truncated:  truncated,
		},
	})
}

// fail records err as an error event and returns it.
func (c *Client) fail(exchangeID string, req Request, layer log.Layer, err error) error {
	c.config.ProtocolLogger.Log(log.Event{
		Timestamp:  time.Now(),
		ExchangeID: exchangeID,
		Direction:  log.DirectionIn,
		Layer:      layer,
		Category:   log.CategoryError,
		Host:       c.config.Host,
		Error: &log.ErrorEventData{
			Layer:   layer,
			Message: err.Error(),
			Context: req.String(),
		},
	})
	if c.config.Logger != nil {
		c.config.Logger.Debug("fsapi exchange failed",
			slog.String("request", req.String()),
			slog.String("host", c.config.Host),
			slog.Any("error", err))
	}
	return err
}
