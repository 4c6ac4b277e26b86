package wire

// Operation represents an FSAPI operation. The value is the literal path
// segment used in the request URL.
type Operation string

const (
	// OpGet reads the current value of a scalar resource.
	OpGet Operation = "GET"

	// OpSet writes a scalar resource. The new value is passed as the
	// "value" query parameter.
	OpSet Operation = "SET"

	// OpListGetNext reads one page of a list resource, starting after the
	// item index given in the URL. The page size is the "maxItems" parameter.
	OpListGetNext Operation = "LIST_GET_NEXT"
)

// Query parameter names.
const (
	ParamPIN      = "pin"
	ParamValue    = "value"
	ParamMaxItems = "maxItems"
)

// ItemListStart is the item suffix that starts a list from its first entry.
const ItemListStart = "-1"

// String returns the operation name.
func (o Operation) String() string {
	return string(o)
}

// IsValid returns true if the operation is one this package can decode.
func (o Operation) IsValid() bool {
	switch o {
	case OpGet, OpSet, OpListGetNext:
		return true
	default:
		return false
	}
}
