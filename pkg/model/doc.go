// Package model describes the FSAPI resources of a multi-room speaker.
//
// # Resources
//
// A resource is a device attribute or action addressed by a dotted path such
// as netremote.sys.audio.volume. Each resource carries access flags:
//   - Read: GET returns its value
//   - Write: SET changes it
//   - List: LIST_GET_NEXT returns paginated records
//
// # Catalog
//
// Catalog is the fixed table of resources known to this library. It is data,
// not code: accessors are built by walking the table, so adding a resource is
// a one-line change.
//
//	for _, r := range model.Catalog() {
//	    fmt.Println(r.Name, r.Path, r.Access)
//	}
//
// Enumerated values (play status, play control actions, ...) are passed
// through as device-defined integers. Known encodings are documented in the
// resource description only.
//
// # List Schemas
//
// List resources decode their items against a wire.Schema. Field names not in
// the schema are ignored.
package model
