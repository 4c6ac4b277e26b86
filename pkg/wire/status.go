package wire

// Status is a device status code as carried in the <status> element.
type Status string

// Known status codes. Only StatusOK means success; the others are listed
// for display and logging.
const (
	// StatusOK indicates the operation completed successfully.
	StatusOK Status = "FS_OK"

	// StatusFail indicates the device rejected the operation, e.g. a SET
	// with an out-of-range value.
	StatusFail Status = "FS_FAIL"

	// StatusPacketBad indicates a malformed request (wrong operation for the
	// node, unparsable value).
	StatusPacketBad Status = "FS_PACKET_BAD"

	// StatusNodeBlocked indicates the node is currently not accessible,
	// typically because the speaker is in a mode that does not support it.
	StatusNodeBlocked Status = "FS_NODE_BLOCKED"

	// StatusNodeDoesNotExist indicates the resource path is unknown.
	StatusNodeDoesNotExist Status = "FS_NODE_DOES_NOT_EXIST"

	// StatusTimeout indicates the device timed out internally.
	StatusTimeout Status = "FS_TIMEOUT"

	// StatusListEnd indicates a LIST_GET_NEXT cursor is past the last item.
	StatusListEnd Status = "FS_LIST_END"
)

// String returns the status code, or "-" for a missing status.
func (s Status) String() string {
	if s == "" {
		return "-"
	}
	return string(s)
}

// IsSuccess returns true iff the status is exactly FS_OK.
func (s Status) IsSuccess() bool {
	return s == StatusOK
}

// IsError returns true if the status is present and not FS_OK.
func (s Status) IsError() bool {
	return s != "" && s != StatusOK
}
