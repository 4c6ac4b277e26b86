package wire

// FieldDecoder selects how a list field value is extracted.
type FieldDecoder uint8

const (
	// DecodeString takes the text of the field's c8_array child.
	DecodeString FieldDecoder = iota

	// DecodeBool is true iff the text of the field's u8 child is exactly "1".
	DecodeBool
)

// String returns the decoder name.
func (d FieldDecoder) String() string {
	switch d {
	case DecodeString:
		return "string"
	case DecodeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Tag returns the sub-element the decoder reads.
func (d FieldDecoder) Tag() string {
	if d == DecodeBool {
		return TagU8
	}
	return TagC8Array
}

// FieldSpec binds a list field name to its decoder.
type FieldSpec struct {
	Name    string
	Decoder FieldDecoder
}

// Schema is the ordered allow-list of fields decoded for one list resource.
type Schema []FieldSpec

// Lookup returns the spec for the named field.
func (s Schema) Lookup(name string) (FieldSpec, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Names returns the field names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Record is one decoded list item. Fields holds string or bool values; a field
// the device omitted has no entry.
type Record struct {
	Key    string
	Fields map[string]any
}

// Has returns true if the record carries the named field.
func (r Record) Has(name string) bool {
	_, ok := r.Fields[name]
	return ok
}

// StringField returns a string field.
func (r Record) StringField(name string) (string, bool) {
	s, ok := r.Fields[name].(string)
	return s, ok
}

// BoolField returns a bool field.
func (r Record) BoolField(name string) (bool, bool) {
	b, ok := r.Fields[name].(bool)
	return b, ok
}

// Page is one decoded LIST_GET_NEXT response.
type Page struct {
	// Records in device order.
	Records []Record

	// Status is the response status, if present.
	Status Status

	// End is true when the device signalled the end of the list.
	End bool
}

// Next returns the cursor for the following page: the key of the last record,
// or "" for an empty page.
func (p Page) Next() string {
	if len(p.Records) == 0 {
		return ""
	}
	return p.Records[len(p.Records)-1].Key
}
