package transport

import (
	"errors"
	"fmt"

	"github.com/multiroom/fsapi-go/pkg/wire"
)

// ErrResponseTooLarge indicates the body exceeded Config.MaxResponseSize.
var ErrResponseTooLarge = errors.New("response too large")

// TransportError reports a failure to complete an exchange: building the
// request, reaching the device, or reading the body.
type TransportError struct {
	Operation wire.Operation
	Resource  string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fsapi %s %s: %v", e.Operation, e.Resource, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
