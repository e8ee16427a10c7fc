package channel

import (
	"fmt"

	"github.com/molemesh/molemesh-go/pkg/config"
)

// Channel is one of the closed set of logical channel roles in the mesh
// protocol. It exists only as a derivation key for topic strings and is
// never persisted.
type Channel int

// The thirteen channel roles.
const (
	// Event carries event broadcasts addressed to this node.
	Event Channel = iota
	// Request carries incoming request messages for this node.
	Request
	// Response carries replies to requests this node issued.
	Response
	// Discover asks every node in the namespace to announce itself.
	Discover
	// DiscoverTargeted asks one specific node to announce itself.
	DiscoverTargeted
	// Info carries node information broadcasts.
	Info
	// InfoTargeted carries node information sent to one node.
	InfoTargeted
	// Heartbeat carries periodic liveness broadcasts.
	Heartbeat
	// Ping probes every node in the namespace.
	Ping
	// PingTargeted probes one specific node.
	PingTargeted
	// PongPrefix is the broadcast-style base of all pong topics, used as a
	// subscription wildcard root. Distinct from Pong.
	PongPrefix
	// Pong is this node's individual ping-reply address.
	Pong
	// Disconnect announces a node leaving the mesh.
	Disconnect
)

// All returns every channel role, in declaration order.
func All() []Channel {
	return []Channel{
		Event,
		Request,
		Response,
		Discover,
		DiscoverTargeted,
		Info,
		InfoTargeted,
		Heartbeat,
		Ping,
		PingTargeted,
		PongPrefix,
		Pong,
		Disconnect,
	}
}

// String names the role for logs and diagnostics. It is not the wire topic;
// use Topic for that.
func (c Channel) String() string {
	switch c {
	case Event:
		return "Event"
	case Request:
		return "Request"
	case Response:
		return "Response"
	case Discover:
		return "Discover"
	case DiscoverTargeted:
		return "DiscoverTargeted"
	case Info:
		return "Info"
	case InfoTargeted:
		return "InfoTargeted"
	case Heartbeat:
		return "Heartbeat"
	case Ping:
		return "Ping"
	case PingTargeted:
		return "PingTargeted"
	case PongPrefix:
		return "PongPrefix"
	case Pong:
		return "Pong"
	case Disconnect:
		return "Disconnect"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// Topic derives the wire topic for this role under the given configuration.
// Derivation is pure: the same role and configuration always produce the
// same string. Targeted roles append the node identifier, broadcast roles do
// not; Pong and PongPrefix are intentionally distinct (the prefix is the
// wildcard subscription base, Pong the individual reply address).
func (c Channel) Topic(cfg *config.Config) string {
	switch c {
	case Event:
		return prefix(cfg) + ".EVENT." + cfg.NodeID
	case Request:
		return prefix(cfg) + ".REQ." + cfg.NodeID
	case Response:
		return prefix(cfg) + ".RES." + cfg.NodeID
	case Discover:
		return prefix(cfg) + ".DISCOVER"
	case DiscoverTargeted:
		return prefix(cfg) + ".DISCOVER." + cfg.NodeID
	case Info:
		return prefix(cfg) + ".INFO"
	case InfoTargeted:
		return prefix(cfg) + ".INFO." + cfg.NodeID
	case Heartbeat:
		return prefix(cfg) + ".HEARTBEAT"
	case Ping:
		return prefix(cfg) + ".PING"
	case PingTargeted:
		return prefix(cfg) + ".PING." + cfg.NodeID
	case PongPrefix:
		return prefix(cfg) + ".PONG"
	case Pong:
		return prefix(cfg) + ".PONG." + cfg.NodeID
	case Disconnect:
		return prefix(cfg) + ".DISCONNECT"
	}
	panic(fmt.Sprintf("topic derivation for unknown channel role %d", int(c)))
}

// Table maps every channel role to its derived topic. Built once per
// configuration and immutable afterward, so it may be shared across
// goroutines without locking.
type Table map[Channel]string

// BuildTable derives the topic for all roles once. This is the form the
// transport layer consumes for subscription and publication, avoiding
// repeated recomputation of the shared namespace prefix.
func BuildTable(cfg *config.Config) Table {
	roles := All()
	table := make(Table, len(roles))
	for _, role := range roles {
		table[role] = role.Topic(cfg)
	}
	return table
}

// prefix computes the namespace prefix shared by every topic of one node.
// All derivation sites must go through this single function so the prefix
// cannot drift between call sites.
func prefix(cfg *config.Config) string {
	if cfg.Namespace == "" {
		return "MOL"
	}
	return "MOL-" + cfg.Namespace
}
