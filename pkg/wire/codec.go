package wire

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// Decoding errors.
var (
	ErrEmptyBody       = errors.New("empty response body")
	ErrNotInteger      = errors.New("value is not an integer")
	ErrItemKeyMissing  = errors.New("list item without key attribute")
	ErrTrailingContent = errors.New("content after document root")
)

// MalformedResponseError reports a response body that could not be decoded.
type MalformedResponseError struct {
	// Operation and Resource identify the exchange, when known.
	Operation Operation
	Resource  string

	// HTTPStatus is the HTTP status code of the response, 0 if unknown.
	HTTPStatus int

	Err error
}

func (e *MalformedResponseError) Error() string {
	var b strings.Builder
	b.WriteString("malformed response")
	if e.Operation != "" {
		fmt.Fprintf(&b, " to %s", e.Operation)
	}
	if e.Resource != "" {
		fmt.Fprintf(&b, " %s", e.Resource)
	}
	if e.HTTPStatus != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.HTTPStatus)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Parse parses a full response body and returns the document root.
// Non-UTF-8 documents are converted using their declared encoding.
func Parse(data []byte) (*Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &MalformedResponseError{Err: ErrEmptyBody}
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var root Node
	if err := dec.Decode(&root); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	if err := checkTrailing(dec); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	return &root, nil
}

// checkTrailing reads the rest of the document. Only whitespace, comments
// and processing instructions may follow the root element.
func checkTrailing(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("%w: element <%s> after root", ErrTrailingContent, t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("%w: text after root", ErrTrailingContent)
			}
		}
	}
}

// DecodeValue extracts the result of a GET exchange.
//
// A missing or empty <value> yields the absent value. Otherwise the first
// child decides: a c8_array child or one without text is returned verbatim as
// a string, anything else is parsed as a base-10 integer.
func DecodeValue(root *Node) (Value, error) {
	container := root.Find(TagValue)
	if container == nil || len(container.Children) == 0 {
		return Absent(), nil
	}

	first := container.Children[0]
	if first.Tag() == TagC8Array || first.Text == "" {
		return StringValue(first.Text), nil
	}

	i, err := strconv.ParseInt(strings.TrimSpace(first.Text), 10, 64)
	if err != nil {
		return Value{}, &MalformedResponseError{
			Err: fmt.Errorf("%w: <%s>%s</%s>", ErrNotInteger, first.Tag(), first.Text, first.Tag()),
		}
	}
	return IntValue(i), nil
}

// DecodeStatus returns the text of the <status> element, or "" if missing.
func DecodeStatus(root *Node) Status {
	s := root.Find(TagStatus)
	if s == nil {
		return ""
	}
	return Status(s.Text)
}

// DecodeSetResult returns true iff the response status is exactly FS_OK.
func DecodeSetResult(root *Node) bool {
	return DecodeStatus(root).IsSuccess()
}

// DecodeList decodes every <item> of a LIST_GET_NEXT response against schema.
func DecodeList(root *Node, schema Schema) ([]Record, error) {
	items := root.Iter(TagItem)
	records := make([]Record, 0, len(items))

	for _, item := range items {
		key, ok := item.Attr(AttrKey)
		if !ok {
			return nil, &MalformedResponseError{Err: ErrItemKeyMissing}
		}
		rec := Record{Key: key, Fields: make(map[string]any)}

		for _, field := range item.Iter(TagField) {
			name, _ := field.Attr(AttrName)
			spec, known := schema.Lookup(name)
			if !known {
				continue
			}
			if v, ok := decodeField(field, spec.Decoder); ok {
				rec.Fields[name] = v
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// DecodePage decodes a LIST_GET_NEXT response requested with maxItems.
// The page is the last one when the device says so (FS_LIST_END or a
// <listend/> marker) or returns fewer items than requested.
func DecodePage(root *Node, schema Schema, maxItems int) (Page, error) {
	records, err := DecodeList(root, schema)
	if err != nil {
		return Page{}, err
	}
	status := DecodeStatus(root)
	end := status == StatusListEnd ||
		root.Find(TagListEnd) != nil ||
		len(records) < maxItems
	return Page{Records: records, Status: status, End: end}, nil
}

func decodeField(field *Node, d FieldDecoder) (any, bool) {
	sub := field.Find(d.Tag())
	if sub == nil {
		return nil, false
	}
	switch d {
	case DecodeBool:
		return sub.Text == "1", true
	default:
		return sub.Text, true
	}
}
