package config

import "github.com/molemesh/molemesh-go/pkg/serializer"

// Default configuration values.
const (
	DefaultNatsAddress = "nats://localhost:4222"

	DefaultLogger   = LoggerConsole
	DefaultLogLevel = LogLevelInfo

	// DefaultRequestTimeout of zero disables the request timeout.
	DefaultRequestTimeout = 0

	DefaultDependencyInternal uint32 = 1000
	DefaultMaxCallLevel       uint32 = 0

	// Heartbeat defaults, in seconds.
	DefaultHeartbeatInterval uint32 = 5
	DefaultHeartbeatTimeout  uint32 = 15

	DefaultRegistry = RegistryLocal

	DefaultSerializer = serializer.JSON
)

// DefaultRetryPolicy returns the retry policy applied when the user sets
// none: disabled, with the standard backoff tuning ready to switch on.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Enabled:  false,
		Retries:  5,
		Delay:    100,
		MaxDelay: 2000,
		Factor:   2,
	}
}

// DefaultTracking returns the default call-tracking settings.
func DefaultTracking() Tracking {
	return Tracking{
		Enabled:         false,
		ShutdownTimeout: 10000,
	}
}

// DefaultCircuitBreaker returns the default circuit breaker settings.
func DefaultCircuitBreaker() CircuitBreaker {
	return CircuitBreaker{
		Enabled:         false,
		Threshold:       0.5,
		MinRequestCount: 20,
		WindowTime:      60,
		HalfOpenTime:    10000,
	}
}

// DefaultBulkhead returns the default bulkhead settings.
func DefaultBulkhead() Bulkhead {
	return Bulkhead{
		Enabled:      false,
		Concurrency:  3,
		MaxQueueSize: 10,
	}
}

// DefaultTransit returns the default transit settings: reconnect and
// protocol version checking enabled, no packet log filtering.
func DefaultTransit() Transit {
	return Transit{
		MaxQueueSize:        50000,
		MaxChunkSize:        256,
		DisableReconnect:    false,
		DisableVersionCheck: false,
		PacketLogFilter:     []string{},
	}
}
