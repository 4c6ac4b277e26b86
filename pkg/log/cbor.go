package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// A .flog file is a plain concatenation of CBOR-encoded Events with no
// header or framing. Files are appended to by long-running controllers and
// read back by fsapi-log, possibly from a newer or older build, so the
// writer is strict and the reader is forgiving:
//
//   - the encoder sorts map keys and forbids indefinite lengths, so equal
//     events always produce equal bytes
//   - timestamps are RFC 3339 text with nanoseconds, readable in a hex dump
//   - the decoder ignores unknown keys and tolerates duplicate keys, so
//     files written with added Event fields still open
//   - nesting is capped because events only nest a few levels deep;
//     anything deeper means the file is corrupt
var (
	flogEncMode = mustEncMode(cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	})

	flogDecMode = mustDecMode(cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
		MaxNestedLevels:   maxEventNesting,
	})
)

// maxEventNesting bounds how deep a decoded event may nest.
const maxEventNesting = 16

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	mode, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("log: invalid .flog encoder options: %v", err))
	}
	return mode
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	mode, err := opts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("log: invalid .flog decoder options: %v", err))
	}
	return mode
}

// EncodeEvent returns the .flog encoding of one event.
func EncodeEvent(event Event) ([]byte, error) {
	return flogEncMode.Marshal(event)
}

// DecodeEvent decodes a single event. Unknown keys are skipped.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := flogDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, fmt.Errorf("decode .flog event: %w", err)
	}
	return event, nil
}

// NewEncoder returns an encoder appending events to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return flogEncMode.NewEncoder(w)
}

// NewDecoder returns a decoder reading successive events from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return flogDecMode.NewDecoder(r)
}
