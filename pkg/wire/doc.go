// Package wire defines the FSAPI wire format.
//
// FSAPI is a plain HTTP/XML protocol. Every exchange is a single GET request
// of the form
//
//	http://<host>/fsapi/<OPERATION>/<resource.path>/<item>?pin=<pin>&...
//
// answered by a small XML document rooted at <fsapiResponse>.
//
// # Operations
//
// Three operations are used:
//   - GET: read a scalar resource, answered with <value><TYPE>...</TYPE></value>
//   - SET: write a scalar resource (value=<v>), answered with <status>FS_OK</status>
//   - LIST_GET_NEXT: read one page of a list resource (maxItems=<n>), answered
//     with zero or more <item key="..."> elements carrying <field> children
//
// # Value Encoding
//
// Scalar values are wrapped in a typed child element of <value>. The c8_array
// tag marks string data; every other tag (u8, u16, u32, s8, s16, s32, ...) holds
// a decimal integer. A <value> without children is an absent value, not an error.
//
// # List Fields
//
// List records are decoded against a Schema of (field name, decoder) pairs.
// Fields whose name is not in the schema are ignored so newer firmware can add
// fields without breaking older clients.
package wire
