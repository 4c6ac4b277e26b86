package model

import (
	"errors"
	"strings"

	"github.com/multiroom/fsapi-go/pkg/wire"
)

// Access flags for resources.
type Access uint8

const (
	// AccessRead allows GET.
	AccessRead Access = 1 << iota

	// AccessWrite allows SET.
	AccessWrite

	// AccessList allows LIST_GET_NEXT.
	AccessList

	// Common access combinations.

	// AccessReadOnly is read only.
	AccessReadOnly = AccessRead

	// AccessWriteOnly is write only (actions).
	AccessWriteOnly = AccessWrite

	// AccessReadWrite is read and write.
	AccessReadWrite = AccessRead | AccessWrite
)

// CanRead returns true if reading is allowed.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

// CanList returns true if listing is allowed.
func (a Access) CanList() bool { return a&AccessList != 0 }

// String returns the access flags as a string.
func (a Access) String() string {
	var s string
	if a.CanRead() {
		s += "R"
	}
	if a.CanWrite() {
		s += "W"
	}
	if a.CanList() {
		s += "L"
	}
	if s == "" {
		return "-"
	}
	return s
}

// ParseAccess parses the String form ("R", "RW", "W", "L").
func ParseAccess(s string) (Access, error) {
	var a Access
	for _, c := range strings.ToUpper(s) {
		switch c {
		case 'R':
			a |= AccessRead
		case 'W':
			a |= AccessWrite
		case 'L':
			a |= AccessList
		default:
			return 0, ErrInvalidAccess
		}
	}
	if a == 0 {
		return 0, ErrInvalidAccess
	}
	return a, nil
}

// DataType is a hint for the value a resource carries.
type DataType uint8

const (
	DataTypeUnknown DataType = iota
	DataTypeInt
	DataTypeBool
	DataTypeString
	DataTypeEnum
	DataTypeRecords
)

// String returns the data type name.
func (d DataType) String() string {
	names := []string{"unknown", "int", "bool", "string", "enum", "records"}
	if int(d) < len(names) {
		return names[d]
	}
	return "unknown"
}

// Resource describes one FSAPI resource.
type Resource struct {
	// Name is the short catalog name (e.g. "volume").
	Name string

	// GoName is the exported accessor name (e.g. "Volume").
	GoName string

	// Path is the dotted resource path.
	Path string

	// Access defines the allowed operations.
	Access Access

	// Type is the value type hint.
	Type DataType

	// Schema lists the decoded fields of a list resource.
	Schema wire.Schema

	// PageSize is the maxItems sent with LIST_GET_NEXT.
	PageSize int

	// Description documents the resource, including known enum encodings.
	Description string
}

// Access errors.
var (
	ErrNotReadable   = errors.New("resource is not readable")
	ErrNotWritable   = errors.New("resource is not writable")
	ErrNotListable   = errors.New("resource is not a list")
	ErrInvalidAccess = errors.New("invalid access flags")
	ErrEmptyPath     = errors.New("empty resource path")
)

// CheckRead returns ErrNotReadable unless the resource allows GET.
func (r Resource) CheckRead() error {
	if !r.Access.CanRead() {
		return ErrNotReadable
	}
	return nil
}

// CheckWrite returns ErrNotWritable unless the resource allows SET.
func (r Resource) CheckWrite() error {
	if !r.Access.CanWrite() {
		return ErrNotWritable
	}
	return nil
}

// CheckList returns ErrNotListable unless the resource allows LIST_GET_NEXT.
func (r Resource) CheckList() error {
	if !r.Access.CanList() {
		return ErrNotListable
	}
	return nil
}

// DefaultPageSize is used for list resources without an explicit page size.
const DefaultPageSize = 20

// Custom returns a resource for a path outside the catalog. List resources
// created this way have no schema and decode only item keys.
func Custom(path string, access Access) (Resource, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Resource{}, ErrEmptyPath
	}
	r := Resource{
		Name:   path,
		Path:   path,
		Access: access,
	}
	if access.CanList() {
		r.Type = DataTypeRecords
		r.PageSize = DefaultPageSize
	}
	return r, nil
}
