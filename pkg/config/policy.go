package config

// RetryPolicy configures automatic retries of failed request/response calls.
// Delays are in milliseconds; each attempt multiplies the previous delay by
// Factor, capped at MaxDelay.
type RetryPolicy struct {
	Enabled  bool   `json:"enabled" koanf:"enabled"`
	Retries  uint32 `json:"retries" koanf:"retries"`
	Delay    uint32 `json:"delay" koanf:"delay"`
	MaxDelay uint32 `json:"maxDelay" koanf:"max_delay"`
	Factor   uint32 `json:"factor" koanf:"factor"`
}

// Tracking configures graceful-shutdown tracking of in-flight calls.
// ShutdownTimeout is in milliseconds.
type Tracking struct {
	Enabled         bool   `json:"enabled" koanf:"enabled"`
	ShutdownTimeout uint32 `json:"shutdownTimeout" koanf:"shutdown_timeout"`
}

// CircuitBreaker configures the per-endpoint circuit breaker. Threshold is
// the failure rate (0..1) that opens the circuit once MinRequestCount calls
// have been observed inside the sliding WindowTime (seconds). HalfOpenTime
// (milliseconds) is how long the circuit stays open before probing.
type CircuitBreaker struct {
	Enabled         bool    `json:"enabled" koanf:"enabled"`
	Threshold       float32 `json:"threshold" koanf:"threshold"`
	MinRequestCount uint32  `json:"minRequestCount" koanf:"min_request_count"`
	WindowTime      uint32  `json:"windowTime" koanf:"window_time"`
	HalfOpenTime    uint32  `json:"halfOpenTime" koanf:"half_open_time"`
}

// Bulkhead caps concurrent action executions and the queue of waiting calls.
type Bulkhead struct {
	Enabled      bool   `json:"enabled" koanf:"enabled"`
	Concurrency  uint32 `json:"concurrency" koanf:"concurrency"`
	MaxQueueSize uint32 `json:"maxQueueSize" koanf:"max_queue_size"`
}

// Transit configures the packet layer between the node and the transport.
type Transit struct {
	MaxQueueSize        uint32   `json:"maxQueueSize" koanf:"max_queue_size"`
	MaxChunkSize        uint32   `json:"maxChunkSize" koanf:"max_chunk_size"`
	DisableReconnect    bool     `json:"disableReconnect" koanf:"disable_reconnect"`
	DisableVersionCheck bool     `json:"disableVersionCheck" koanf:"disable_version_check"`
	PacketLogFilter     []string `json:"packetLogFilter" koanf:"packet_log_filter"`
}
