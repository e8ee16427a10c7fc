// Package config resolves the immutable runtime configuration a mesh node
// needs before it can attach to the transport.
//
// A Builder carries user overrides on top of built-in defaults; Build
// combines them with environment-derived facts (hostname, non-loopback IPv4
// addresses, a fresh random instance identifier) into one Config value.
// Resolution happens exactly once, synchronously, during node startup:
//
//	cfg := config.NewBuilder().
//		WithNamespace("prod").
//		WithTransporter(config.NatsTransporter("nats://10.0.0.5:4222")).
//		Build()
//
// The resulting Config is never mutated, so it may be shared by reference
// across every component of the node (transport, registry, circuit breaker,
// bulkhead) without locking. Build never fails: any failure to enumerate
// network interfaces degrades to an empty address list rather than blocking
// startup.
//
// The serialized form of a Config is an external contract with other mesh
// implementations sharing the transport: field names are camelCase and the
// node identifier is serialized under the key "nodeID".
package config
