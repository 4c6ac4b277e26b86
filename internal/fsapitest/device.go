// Package fsapitest provides an in-memory FSAPI device served over httptest.
package fsapitest

import (
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/multiroom/fsapi-go/pkg/wire"
)

// Field is one field of a list item.
type Field struct {
	Name string
	// Tag is the typed sub-element, e.g. wire.TagC8Array or wire.TagU8.
	// An empty Tag emits the field without a sub-element.
	Tag  string
	Text string
}

// Str returns a c8_array field.
func Str(name, text string) Field {
	return Field{Name: name, Tag: wire.TagC8Array, Text: text}
}

// Bool returns a u8 field encoding b as 1 or 0.
func Bool(name string, b bool) Field {
	text := "0"
	if b {
		text = "1"
	}
	return Field{Name: name, Tag: wire.TagU8, Text: text}
}

// Item is one list entry.
type Item struct {
	Key    string
	Fields []Field
}

// Request is a request received by the device.
type Request struct {
	Operation wire.Operation
	Resource  string
	Item      string
	Query     url.Values
}

type scalar struct {
	tag  string
	text string
	// empty emits <value></value>.
	empty bool
}

// Device is a fake speaker. The zero value is not usable; call New.
type Device struct {
	// PIN is the expected pin parameter. Requests with another pin get
	// 403 Forbidden and an empty body.
	PIN string

	server *httptest.Server

	mu       sync.Mutex
	scalars  map[string]scalar
	lists    map[string][]Item
	readOnly map[string]bool
	raw      map[string]string
	requests []Request
}

// New starts a device that is closed when the test ends.
func New(t testing.TB) *Device {
	t.Helper()
	d := &Device{
		PIN:      "1234",
		scalars:  make(map[string]scalar),
		lists:    make(map[string][]Item),
		readOnly: make(map[string]bool),
		raw:      make(map[string]string),
	}
	d.server = httptest.NewServer(http.HandlerFunc(d.serve))
	t.Cleanup(d.server.Close)
	return d
}

// Host returns the device address as host:port.
func (d *Device) Host() string {
	return strings.TrimPrefix(d.server.URL, "http://")
}

// SetInt stores an integer value under the given numeric tag (u8, s16, u32...).
func (d *Device) SetInt(path, tag string, v int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scalars[path] = scalar{tag: tag, text: strconv.FormatInt(v, 10)}
}

// SetString stores a c8_array value.
func (d *Device) SetString(path, v string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scalars[path] = scalar{tag: wire.TagC8Array, text: v}
}

// SetValue stores a value with an arbitrary tag and text.
func (d *Device) SetValue(path, tag, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scalars[path] = scalar{tag: tag, text: text}
}

// SetEmpty makes GET return an empty <value> element.
func (d *Device) SetEmpty(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scalars[path] = scalar{empty: true}
}

// SetReadOnly makes SET on path fail with FS_FAIL.
func (d *Device) SetReadOnly(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.readOnly[path] = true
}

// SetList stores list items in device order.
func (d *Device) SetList(path string, items []Item) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lists[path] = slices.Clone(items)
}

// SetRaw makes every operation on path answer with body verbatim.
func (d *Device) SetRaw(path, body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.raw[path] = body
}

// Value returns the stored text of a scalar.
func (d *Device) Value(path string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.scalars[path]
	return s.text, ok
}

// Requests returns the requests received so far.
func (d *Device) Requests() []Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.requests)
}

func (d *Device) serve(w http.ResponseWriter, r *http.Request) {
	// /fsapi/<OP>/<resource>/<item>
	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 4)
	if len(parts) < 3 || parts[0] != "fsapi" {
		http.NotFound(w, r)
		return
	}
	req := Request{
		Operation: wire.Operation(parts[1]),
		Resource:  parts[2],
		Query:     r.URL.Query(),
	}
	if len(parts) == 4 {
		req.Item = parts[3]
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.requests = append(d.requests, req)

	if req.Query.Get(wire.ParamPIN) != d.PIN {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	if body, ok := d.raw[req.Resource]; ok {
		writeString(w, body)
		return
	}

	switch req.Operation {
	case wire.OpGet:
		d.get(w, req)
	case wire.OpSet:
		d.set(w, req)
	case wire.OpListGetNext:
		d.listNext(w, req)
	default:
		http.NotFound(w, r)
	}
}

func (d *Device) get(w http.ResponseWriter, req Request) {
	s, ok := d.scalars[req.Resource]
	if !ok {
		writeStatus(w, wire.StatusNodeDoesNotExist)
		return
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("<status>FS_OK</status><value>")
	if !s.empty {
		writeElement(&b, s.tag, s.text)
	}
	b.WriteString("</value></fsapiResponse>")
	writeString(w, b.String())
}

func (d *Device) set(w http.ResponseWriter, req Request) {
	s, ok := d.scalars[req.Resource]
	if !ok {
		writeStatus(w, wire.StatusNodeDoesNotExist)
		return
	}
	if d.readOnly[req.Resource] || !req.Query.Has(wire.ParamValue) {
		writeStatus(w, wire.StatusFail)
		return
	}
	s.text = req.Query.Get(wire.ParamValue)
	s.empty = false
	if s.tag == "" {
		s.tag = wire.TagC8Array
	}
	d.scalars[req.Resource] = s
	writeStatus(w, wire.StatusOK)
}

func (d *Device) listNext(w http.ResponseWriter, req Request) {
	items, ok := d.lists[req.Resource]
	if !ok {
		writeStatus(w, wire.StatusNodeDoesNotExist)
		return
	}

	start := 0
	if req.Item != wire.ItemListStart {
		idx := slices.IndexFunc(items, func(it Item) bool { return it.Key == req.Item })
		if idx < 0 {
			writeStatus(w, wire.StatusListEnd)
			return
		}
		start = idx + 1
	}
	if start >= len(items) {
		writeStatus(w, wire.StatusListEnd)
		return
	}

	end := len(items)
	if n, err := strconv.Atoi(req.Query.Get(wire.ParamMaxItems)); err == nil && n > 0 && start+n < end {
		end = start + n
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("<status>FS_OK</status>")
	for _, it := range items[start:end] {
		b.WriteString(`<item key="`)
		xml.EscapeText(&b, []byte(it.Key))
		b.WriteString(`">`)
		for _, f := range it.Fields {
			b.WriteString(`<field name="`)
			xml.EscapeText(&b, []byte(f.Name))
			b.WriteString(`">`)
			if f.Tag != "" {
				writeElement(&b, f.Tag, f.Text)
			}
			b.WriteString("</field>")
		}
		b.WriteString("</item>")
	}
	if end == len(items) {
		b.WriteString("<listend/>")
	}
	b.WriteString("</fsapiResponse>")
	writeString(w, b.String())
}

const header = `<?xml version="1.0" encoding="UTF-8"?><fsapiResponse>`

func writeStatus(w http.ResponseWriter, status wire.Status) {
	writeString(w, header+"<status>"+string(status)+"</status></fsapiResponse>")
}

func writeElement(b *strings.Builder, tag, text string) {
	b.WriteString("<" + tag + ">")
	xml.EscapeText(b, []byte(text))
	b.WriteString("</" + tag + ">")
}

func writeString(w http.ResponseWriter, s string) {
	_, _ = w.Write([]byte(s))
}
