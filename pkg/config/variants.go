package config

// Logger selects the log sink for the node process.
type Logger string

// LoggerConsole writes human-readable log lines to standard error.
const LoggerConsole Logger = "Console"

// LogLevel is the minimum severity the node logs at.
type LogLevel string

// Log levels, most to least verbose.
const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Transporter selects the pub/sub transport implementation and carries its
// connection address. Exactly one variant field is set; the zero value is
// not a usable transporter. It marshals in the externally-tagged form other
// mesh implementations expect, e.g. {"Nats":"nats://localhost:4222"}.
type Transporter struct {
	Nats string `json:"Nats,omitempty" koanf:"nats"`
}

// NatsTransporter returns a Transporter connecting to a NATS server at the
// given address.
func NatsTransporter(address string) Transporter {
	return Transporter{Nats: address}
}

// Registry selects the service registry implementation.
type Registry string

// RegistryLocal keeps the service catalog in process memory.
const RegistryLocal Registry = "Local"
