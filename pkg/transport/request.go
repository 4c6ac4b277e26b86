package transport

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/multiroom/fsapi-go/pkg/wire"
)

// ErrInvalidRequest is returned for requests that cannot be sent.
var ErrInvalidRequest = errors.New("invalid request")

// Request describes one FSAPI exchange.
type Request struct {
	Operation wire.Operation

	// Resource is the dotted resource path.
	Resource string

	// Item is appended after the resource. Empty for scalars,
	// wire.ItemListStart or a record key for list cursors.
	Item string

	// Params are extra query parameters such as value or maxItems.
	// A pin entry is always replaced by the configured PIN.
	Params map[string]string
}

// Validate checks the request before any I/O.
func (r Request) Validate() error {
	if !r.Operation.IsValid() {
		return fmt.Errorf("%w: unsupported operation %q", ErrInvalidRequest, r.Operation)
	}
	if strings.TrimSpace(r.Resource) == "" {
		return fmt.Errorf("%w: empty resource", ErrInvalidRequest)
	}
	return nil
}

// String returns "OP resource[/item]".
func (r Request) String() string {
	if r.Item == "" {
		return fmt.Sprintf("%s %s", r.Operation, r.Resource)
	}
	return fmt.Sprintf("%s %s/%s", r.Operation, r.Resource, r.Item)
}

// BuildURL returns the request URL for host and pin. The path always ends
// with "/<item>", so scalar requests carry a trailing slash.
func BuildURL(host, pin string, r Request) string {
	q := url.Values{}
	for k, v := range r.Params {
		q.Set(k, v)
	}
	q.Set(wire.ParamPIN, pin)

	u := url.URL{
		Scheme:   "http",
		Host:     normalizeHost(host),
		Path:     fmt.Sprintf("/fsapi/%s/%s/%s", r.Operation, r.Resource, r.Item),
		RawQuery: q.Encode(),
	}
	return u.String()
}

// redactedPIN replaces the PIN in URLs that end up in errors and logs.
const redactedPIN = "xxxx"

// redactURL returns raw with the pin parameter masked.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	q := u.Query()
	if q.Has(wire.ParamPIN) {
		q.Set(wire.ParamPIN, redactedPIN)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// redactError masks the PIN in the URL carried by a *url.Error. The
// underlying cause is kept so errors.Is still matches it.
func redactError(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	return &url.Error{Op: ue.Op, URL: redactURL(ue.URL), Err: ue.Err}
}

// loggedParams returns the params safe for logging.
func loggedParams(params map[string]string) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		if strings.EqualFold(k, wire.ParamPIN) {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
