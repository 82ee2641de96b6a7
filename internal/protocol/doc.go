// Package protocol owns message values and their framing.
//
// Ownership boundary:
// - Message: a schema-bound set of field values
// - Codec: type id + payload length + fields in schema order
// - nested message lists, framed recursively by the same Codec
//
// Field encodings live in package wire, schemas and the registry in
// package schema.
package protocol
