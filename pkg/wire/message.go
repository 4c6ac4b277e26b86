package wire

import (
	"encoding/xml"
)

// Element tags used in FSAPI responses.
const (
	TagResponse = "fsapiResponse"
	TagStatus   = "status"
	TagValue    = "value"
	TagItem     = "item"
	TagField    = "field"
	TagListEnd  = "listend"

	// TagC8Array marks a raw character array. Its text is always string data,
	// even when it looks numeric.
	TagC8Array = "c8_array"

	// TagU8 is an 8-bit unsigned integer. List fields use it as a boolean.
	TagU8 = "u8"
)

// Attribute names used in FSAPI responses.
const (
	AttrKey  = "key"
	AttrName = "name"
)

// Node is a generic XML element. FSAPI responses are small and loosely typed,
// so they are decoded into a tree instead of fixed structs.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []*Node    `xml:",any"`
}

// Tag returns the local element name.
func (n *Node) Tag() string {
	return n.XMLName.Local
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns the first direct child with the given tag, or nil.
func (n *Node) Find(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Tag() == tag {
			return c
		}
	}
	return nil
}

// Iter returns n and all of its descendants with the given tag in document
// order. An empty tag matches every element.
func (n *Node) Iter(tag string) []*Node {
	var out []*Node
	n.walk(func(e *Node) {
		if tag == "" || e.Tag() == tag {
			out = append(out, e)
		}
	})
	return out
}

func (n *Node) walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}
