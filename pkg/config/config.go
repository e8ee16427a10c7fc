package config

import (
	"github.com/molemesh/molemesh-go/pkg/serializer"
)

// Config is the resolved configuration for one mesh node.
//
// It is created exactly once per process by Builder.Build and never mutated
// afterward; every component holds the same *Config for the life of the node.
// Timing fields keep the integer units of the mesh protocol (milliseconds or
// seconds, noted per field) rather than time.Duration so the serialized
// document stays compatible with other implementations on the wire.
type Config struct {
	// Namespace partitions this node's traffic from other meshes sharing the
	// same transport. Empty selects the default namespace.
	Namespace string `json:"namespace"`

	// NodeID identifies this node within its namespace. The wire key is
	// literally "nodeID" — a fixed external contract, not a style choice.
	NodeID string `json:"nodeID"`

	Logger   Logger   `json:"logger"`
	LogLevel LogLevel `json:"logLevel"`

	// Transporter selects the pub/sub transport the node attaches to.
	Transporter Transporter `json:"transporter"`

	// RequestTimeout bounds request/response calls, in milliseconds.
	// Zero disables the timeout.
	RequestTimeout int `json:"requestTimeout"`

	RetryPolicy RetryPolicy `json:"retryPolicy"`

	// ContextParamsCloning makes each action call receive its own copy of
	// the context params instead of a shared reference.
	ContextParamsCloning bool `json:"contextParamsCloning"`

	// DependencyInternal is the interval between dependency readiness checks
	// during startup, in milliseconds.
	DependencyInternal uint32 `json:"dependencyInternal"`

	// MaxCallLevel caps nested action call depth. Zero means unlimited.
	MaxCallLevel uint32 `json:"maxCallLevel"`

	// HeartbeatInterval and HeartbeatTimeout are in seconds.
	HeartbeatInterval uint32 `json:"heartbeatInterval"`
	HeartbeatTimeout  uint32 `json:"heartbeatTimeout"`

	Tracking Tracking `json:"tracking"`

	DisableBalancer bool `json:"disableBalancer"`

	Registry Registry `json:"registry"`

	CircuitBreaker CircuitBreaker `json:"circuitBreaker"`
	Bulkhead       Bulkhead       `json:"bulkhead"`
	Transit        Transit        `json:"transit"`

	// Serializer selects the wire codec for every message this node
	// publishes or consumes.
	Serializer serializer.Serializer `json:"serializer"`

	// MetaData is arbitrary user-defined metadata, passed through unmodified.
	MetaData map[string]string `json:"metaData"`

	// The remaining fields are derived from the environment by Build and are
	// never accepted as external overrides.

	// IPList holds the non-loopback IPv4 addresses of the local interfaces.
	// Empty when enumeration found nothing usable or failed.
	IPList []string `json:"ipList"`

	// Hostname is the OS-reported hostname, empty if the lookup failed.
	Hostname string `json:"hostname"`

	// InstanceID is a fresh random token distinguishing this process from
	// any previous run of the same node.
	InstanceID string `json:"instanceId"`
}
