package log

import (
	"time"

	"github.com/multiroom/fsapi-go/pkg/wire"
)

// MaxBodyCapture is the number of response body bytes kept in a MessageEvent.
const MaxBodyCapture = 4096

// Event represents a protocol log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ExchangeID correlates the request and response of one exchange (UUID).
	ExchangeID string `cbor:"2,keyasint"`

	// Direction indicates message flow.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Host is the speaker address.
	Host string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Message *MessageEvent   `cbor:"10,keyasint,omitempty"`
	Error   *ErrorEventData `cbor:"11,keyasint,omitempty"`
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates a response from the speaker.
	DirectionIn Direction = 0
	// DirectionOut indicates a request to the speaker.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which layer captured the event.
type Layer uint8

const (
	// LayerTransport is the HTTP exchange.
	LayerTransport Layer = 0
	// LayerWire is the decoded XML document.
	LayerWire Layer = 1
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerWire:
		return "WIRE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates a request or response.
	CategoryMessage Category = 0
	// CategoryError indicates an error event.
	CategoryError Category = 1
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MessageEvent captures one side of an FSAPI exchange.
type MessageEvent struct {
	// Type distinguishes request and response.
	Type MessageType `cbor:"1,keyasint"`

	// Operation is the FSAPI operation.
	Operation wire.Operation `cbor:"2,keyasint"`

	// Resource is the dotted resource path.
	Resource string `cbor:"3,keyasint,omitempty"`

	// Item is the item suffix (list cursor), empty for scalars.
	Item string `cbor:"4,keyasint,omitempty"`

	// Params are the request query parameters without the PIN.
	Params map[string]string `cbor:"5,keyasint,omitempty"`

	// For responses: the HTTP status code.
	HTTPStatus int `cbor:"6,keyasint,omitempty"`

	// For responses: the FSAPI status, if the body carried one.
	Status wire.Status `cbor:"7,keyasint,omitempty"`

	// For responses: time from request send to body read.
	Duration *time.Duration `cbor:"8,keyasint,omitempty"`

	// For responses: full body size in bytes.
	BodySize int `cbor:"9,keyasint,omitempty"`

	// For responses: the body, capped at MaxBodyCapture bytes.
	Body []byte `cbor:"10,keyasint,omitempty"`

	// Truncated indicates Body was cut.
	Truncated bool `cbor:"11,keyasint,omitempty"`
}

// MessageType distinguishes request and response.
type MessageType uint8

const (
	// MessageTypeRequest indicates a request message.
	MessageTypeRequest MessageType = 0
	// MessageTypeResponse indicates a response message.
	MessageTypeResponse MessageType = 1
)

// String returns the message type name.
func (m MessageType) String() string {
	switch m {
	case MessageTypeRequest:
		return "REQUEST"
	case MessageTypeResponse:
		return "RESPONSE"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures a failed exchange.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}

// CaptureBody returns body capped at MaxBodyCapture and whether it was cut.
func CaptureBody(body []byte) ([]byte, bool) {
	if len(body) <= MaxBodyCapture {
		return body, false
	}
	return body[:MaxBodyCapture], true
}
