// Package channel derives the pub/sub topic strings a mesh node uses on the
// wire.
//
// Each logical channel role (event broadcast, request/response, discovery,
// heartbeat, liveness probing, disconnect) maps to exactly one topic string
// for a given node configuration:
//
//	<prefix>.<ROLE>[.<node_id>]
//
// where the prefix is "MOL" in the default namespace and "MOL-<namespace>"
// otherwise. Targeted roles append the node identifier; broadcast roles do
// not. Derivation is pure and deterministic, so the table built once at node
// startup by BuildTable can be shared read-only by every component.
//
// Namespaces or node identifiers containing dots or the broker's wildcard
// characters are not sanitized here; they propagate into the topic as-is.
package channel
