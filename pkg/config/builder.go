package config

import (
	"github.com/google/uuid"
	"github.com/molemesh/molemesh-go/pkg/serializer"
)

// Builder carries user overrides on the way to a resolved Config. Every
// field starts at its default (see NewBuilder), so callers only touch what
// they want to change, either through the With* setters or by assigning
// fields directly. The koanf tags let external loaders (files, environment)
// write overrides into a Builder; the environment-derived Config fields
// deliberately have no counterpart here.
type Builder struct {
	Namespace            string                `koanf:"namespace"`
	NodeID               string                `koanf:"node_id"`
	Logger               Logger                `koanf:"logger"`
	LogLevel             LogLevel              `koanf:"log_level"`
	Transporter          Transporter           `koanf:"transporter"`
	RequestTimeout       int                   `koanf:"request_timeout"`
	RetryPolicy          RetryPolicy           `koanf:"retry_policy"`
	ContextParamsCloning bool                  `koanf:"context_params_cloning"`
	DependencyInternal   uint32                `koanf:"dependency_internal"`
	MaxCallLevel         uint32                `koanf:"max_call_level"`
	HeartbeatInterval    uint32                `koanf:"heartbeat_interval"`
	HeartbeatTimeout     uint32                `koanf:"heartbeat_timeout"`
	Tracking             Tracking              `koanf:"tracking"`
	DisableBalancer      bool                  `koanf:"disable_balancer"`
	Registry             Registry              `koanf:"registry"`
	CircuitBreaker       CircuitBreaker        `koanf:"circuit_breaker"`
	Bulkhead             Bulkhead              `koanf:"bulkhead"`
	Transit              Transit               `koanf:"transit"`
	Serializer           serializer.Serializer `koanf:"serializer"`
	MetaData             map[string]string     `koanf:"meta_data"`
}

// NewBuilder returns a Builder preloaded with the default for every field.
// The default node identifier is freshly generated, so two builders from
// consecutive calls are not identical.
func NewBuilder() *Builder {
	return &Builder{
		Namespace:            "",
		NodeID:               GenerateNodeID(),
		Logger:               DefaultLogger,
		LogLevel:             DefaultLogLevel,
		Transporter:          NatsTransporter(DefaultNatsAddress),
		RequestTimeout:       DefaultRequestTimeout,
		RetryPolicy:          DefaultRetryPolicy(),
		ContextParamsCloning: false,
		DependencyInternal:   DefaultDependencyInternal,
		MaxCallLevel:         DefaultMaxCallLevel,
		HeartbeatInterval:    DefaultHeartbeatInterval,
		HeartbeatTimeout:     DefaultHeartbeatTimeout,
		Tracking:             DefaultTracking(),
		DisableBalancer:      false,
		Registry:             DefaultRegistry,
		CircuitBreaker:       DefaultCircuitBreaker(),
		Bulkhead:             DefaultBulkhead(),
		Transit:              DefaultTransit(),
		Serializer:           DefaultSerializer,
		MetaData:             map[string]string{},
	}
}

// WithNamespace sets the mesh namespace.
func (b *Builder) WithNamespace(namespace string) *Builder {
	b.Namespace = namespace
	return b
}

// WithNodeID sets the node identifier, replacing the generated default.
func (b *Builder) WithNodeID(nodeID string) *Builder {
	b.NodeID = nodeID
	return b
}

// WithLogLevel sets the minimum log severity.
func (b *Builder) WithLogLevel(level LogLevel) *Builder {
	b.LogLevel = level
	return b
}

// WithTransporter sets the pub/sub transport selection.
func (b *Builder) WithTransporter(t Transporter) *Builder {
	b.Transporter = t
	return b
}

// WithRequestTimeout sets the request timeout in milliseconds.
func (b *Builder) WithRequestTimeout(ms int) *Builder {
	b.RequestTimeout = ms
	return b
}

// WithRetryPolicy sets the retry policy.
func (b *Builder) WithRetryPolicy(p RetryPolicy) *Builder {
	b.RetryPolicy = p
	return b
}

// WithHeartbeat sets the heartbeat interval and timeout, in seconds.
func (b *Builder) WithHeartbeat(interval, timeout uint32) *Builder {
	b.HeartbeatInterval = interval
	b.HeartbeatTimeout = timeout
	return b
}

// WithCircuitBreaker sets the circuit breaker settings.
func (b *Builder) WithCircuitBreaker(cb CircuitBreaker) *Builder {
	b.CircuitBreaker = cb
	return b
}

// WithBulkhead sets the bulkhead settings.
func (b *Builder) WithBulkhead(bh Bulkhead) *Builder {
	b.Bulkhead = bh
	return b
}

// WithSerializer sets the wire codec.
func (b *Builder) WithSerializer(s serializer.Serializer) *Builder {
	b.Serializer = s
	return b
}

// WithMetaData sets user-defined metadata carried through unmodified.
func (b *Builder) WithMetaData(md map[string]string) *Builder {
	b.MetaData = md
	return b
}

// Build resolves the final Config: the builder's values are copied over and
// enriched with the hostname, a fresh random instance identifier, and the
// local non-loopback IPv4 addresses. Build cannot fail — interface
// enumeration problems degrade to an empty address list so the node can
// still start.
func (b *Builder) Build() *Config {
	metaData := b.MetaData
	if metaData == nil {
		metaData = map[string]string{}
	}

	return &Config{
		Namespace:            b.Namespace,
		NodeID:               b.NodeID,
		Logger:               b.Logger,
		LogLevel:             b.LogLevel,
		Transporter:          b.Transporter,
		RequestTimeout:       b.RequestTimeout,
		RetryPolicy:          b.RetryPolicy,
		ContextParamsCloning: b.ContextParamsCloning,
		DependencyInternal:   b.DependencyInternal,
		MaxCallLevel:         b.MaxCallLevel,
		HeartbeatInterval:    b.HeartbeatInterval,
		HeartbeatTimeout:     b.HeartbeatTimeout,
		Tracking:             b.Tracking,
		DisableBalancer:      b.DisableBalancer,
		Registry:             b.Registry,
		CircuitBreaker:       b.CircuitBreaker,
		Bulkhead:             b.Bulkhead,
		Transit:              b.Transit,
		Serializer:           b.Serializer,
		MetaData:             metaData,

		Hostname:   hostname(),
		InstanceID: uuid.NewString(),
		IPList:     localIPv4List(),
	}
}
