// Package serializer defines the wire codec capability the mesh node uses
// for every message it publishes or consumes.
//
// The codec is selected once, by the node configuration, and handed to the
// transport layer as a value of the Serializer type. Encoding and decoding
// failures are deterministic — the same value or the same bytes fail the
// same way every time — so SerializeError and DeserializeError are terminal
// for that message and must never be retried. Callers decide whether a
// malformed inbound message is dropped or logged; this package never
// swallows the failure.
package serializer
