package config

import (
	"encoding/json"
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molemesh/molemesh-go/pkg/serializer"
)

// TestNewBuilderDefaults checks every documented default.
func TestNewBuilderDefaults(t *testing.T) {
	b := NewBuilder()

	if b.Namespace != "" {
		t.Errorf("Namespace = %q, want empty", b.Namespace)
	}
	if b.NodeID == "" {
		t.Error("NodeID must be generated, not empty")
	}
	if b.Logger != LoggerConsole {
		t.Errorf("Logger = %q, want %q", b.Logger, LoggerConsole)
	}
	if b.LogLevel != LogLevelInfo {
		t.Errorf("LogLevel = %q, want %q", b.LogLevel, LogLevelInfo)
	}
	if b.Transporter.Nats != DefaultNatsAddress {
		t.Errorf("Transporter.Nats = %q, want %q", b.Transporter.Nats, DefaultNatsAddress)
	}
	if b.RequestTimeout != 0 {
		t.Errorf("RequestTimeout = %d, want 0 (disabled)", b.RequestTimeout)
	}
	if b.DependencyInternal != 1000 {
		t.Errorf("DependencyInternal = %d, want 1000", b.DependencyInternal)
	}
	if b.MaxCallLevel != 0 {
		t.Errorf("MaxCallLevel = %d, want 0", b.MaxCallLevel)
	}
	if b.HeartbeatInterval != 5 || b.HeartbeatTimeout != 15 {
		t.Errorf("Heartbeat = %d/%d, want 5/15", b.HeartbeatInterval, b.HeartbeatTimeout)
	}
	if b.Registry != RegistryLocal {
		t.Errorf("Registry = %q, want %q", b.Registry, RegistryLocal)
	}
	if b.Serializer != serializer.JSON {
		t.Errorf("Serializer = %q, want %q", b.Serializer, serializer.JSON)
	}
	if b.ContextParamsCloning || b.DisableBalancer {
		t.Error("ContextParamsCloning and DisableBalancer must default to false")
	}

	assert.Equal(t, RetryPolicy{Enabled: false, Retries: 5, Delay: 100, MaxDelay: 2000, Factor: 2}, b.RetryPolicy)
	assert.Equal(t, Tracking{Enabled: false, ShutdownTimeout: 10000}, b.Tracking)
	assert.Equal(t, CircuitBreaker{Enabled: false, Threshold: 0.5, MinRequestCount: 20, WindowTime: 60, HalfOpenTime: 10000}, b.CircuitBreaker)
	assert.Equal(t, Bulkhead{Enabled: false, Concurrency: 3, MaxQueueSize: 10}, b.Bulkhead)
	assert.Equal(t, Transit{MaxQueueSize: 50000, MaxChunkSize: 256, DisableReconnect: false, DisableVersionCheck: false, PacketLogFilter: []string{}}, b.Transit)
	assert.Empty(t, b.MetaData)
}

// TestBuildEnrichment verifies the environment-derived fields.
func TestBuildEnrichment(t *testing.T) {
	cfg := NewBuilder().Build()

	wantHost, err := os.Hostname()
	if err == nil && cfg.Hostname != wantHost {
		t.Errorf("Hostname = %q, want %q", cfg.Hostname, wantHost)
	}

	require.NotEmpty(t, cfg.InstanceID)

	// Every advertised address must be a non-loopback IPv4 address.
	require.NotNil(t, cfg.IPList)
	for _, addr := range cfg.IPList {
		ip := net.ParseIP(addr)
		require.NotNil(t, ip, "IPList entry %q is not a valid address", addr)
		assert.NotNil(t, ip.To4(), "IPList entry %q is not IPv4", addr)
		assert.False(t, ip.IsLoopback(), "IPList entry %q is loopback", addr)
	}
}

// TestBuildInstanceIDUnique verifies each build gets a fresh instance id.
func TestBuildInstanceIDUnique(t *testing.T) {
	b := NewBuilder()

	first := b.Build()
	second := b.Build()

	assert.NotEqual(t, first.InstanceID, second.InstanceID)
}

// TestConfigJSON_NodeIDKey pins the external key contract: node identifier
// under "nodeID", everything else plain camelCase.
func TestConfigJSON_NodeIDKey(t *testing.T) {
	cfg := NewBuilder().WithNodeID("node-42").Build()

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Contains(t, doc, "nodeID")
	assert.NotContains(t, doc, "nodeId")
	assert.NotContains(t, doc, "node_id")

	for _, key := range []string{
		"namespace", "logger", "logLevel", "transporter", "requestTimeout",
		"retryPolicy", "contextParamsCloning", "dependencyInternal",
		"maxCallLevel", "heartbeatInterval", "heartbeatTimeout", "tracking",
		"disableBalancer", "registry", "circuitBreaker", "bulkhead",
		"transit", "serializer", "metaData", "ipList", "hostname", "instanceId",
	} {
		assert.Contains(t, doc, key)
	}

	var nodeID string
	require.NoError(t, json.Unmarshal(doc["nodeID"], &nodeID))
	assert.Equal(t, "node-42", nodeID)
}

// TestConfigJSON_VariantShapes pins the externally-tagged variant encoding.
func TestConfigJSON_VariantShapes(t *testing.T) {
	cfg := NewBuilder().Build()

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var doc struct {
		Logger      string            `json:"logger"`
		Registry    string            `json:"registry"`
		Serializer  string            `json:"serializer"`
		Transporter map[string]string `json:"transporter"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "Console", doc.Logger)
	assert.Equal(t, "Local", doc.Registry)
	assert.Equal(t, "JSON", doc.Serializer)
	assert.Equal(t, map[string]string{"Nats": DefaultNatsAddress}, doc.Transporter)
}

// TestConfigJSON_NestedCamelCase spot-checks nested policy keys.
func TestConfigJSON_NestedCamelCase(t *testing.T) {
	cfg := NewBuilder().Build()

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var doc struct {
		RetryPolicy    map[string]json.RawMessage `json:"retryPolicy"`
		CircuitBreaker map[string]json.RawMessage `json:"circuitBreaker"`
		Transit        map[string]json.RawMessage `json:"transit"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Contains(t, doc.RetryPolicy, "maxDelay")
	assert.Contains(t, doc.CircuitBreaker, "minRequestCount")
	assert.Contains(t, doc.CircuitBreaker, "halfOpenTime")
	assert.Contains(t, doc.Transit, "maxQueueSize")
	assert.Contains(t, doc.Transit, "disableVersionCheck")
	assert.Contains(t, doc.Transit, "packetLogFilter")
}

func TestMetaDataPassthrough(t *testing.T) {
	md := map[string]string{"team": "payments", "zone": "b"}

	cfg := NewBuilder().WithMetaData(md).Build()

	assert.Equal(t, md, cfg.MetaData)

	// nil metadata resolves to an empty map, not null on the wire.
	cfg = NewBuilder().WithMetaData(nil).Build()
	assert.NotNil(t, cfg.MetaData)
	assert.Empty(t, cfg.MetaData)
}

func TestGenerateNodeID(t *testing.T) {
	first := GenerateNodeID()
	second := GenerateNodeID()

	require.NotEmpty(t, first)
	assert.NotEqual(t, first, second, "generated node ids must differ")
}
