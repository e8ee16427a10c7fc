package config

import (
	"net"
	"os"
	"strings"

	"github.com/oklog/ulid/v2"
)

// GenerateNodeID returns a human-readable default node identifier: the
// lowercased hostname plus a short random suffix. The suffix keeps
// identifiers distinct when many containers report the same hostname or
// several node processes share one machine. Falls back to a purely random
// identifier when the hostname is unavailable.
func GenerateNodeID() string {
	suffix := strings.ToLower(ulid.Make().String())
	// The randomness of a ULID sits in its tail; eight characters are
	// plenty for a human-readable identifier.
	suffix = suffix[len(suffix)-8:]

	host, err := os.Hostname()
	if err != nil || host == "" {
		return "node-" + suffix
	}
	return strings.ToLower(host) + "-" + suffix
}

// hostname returns the OS hostname, or the empty string if the lookup
// failed. A missing hostname is not fatal to node startup.
func hostname() string {
	host, err := os.Hostname()
	if err != nil {
		return ""
	}
	return host
}

// localIPv4List enumerates the non-loopback IPv4 addresses of the local
// interfaces. Enumeration failure is absorbed: a node that cannot discover
// its addresses still starts, it just advertises none. The result is never
// nil so the serialized form is always a list.
func localIPv4List() []string {
	list := []string{}

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return list
	}

	for _, addr := range addrs {
		var ip net.IP
		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}
		if ip == nil || ip.To4() == nil || ip.IsLoopback() {
			continue
		}
		list = append(list, ip.To4().String())
	}

	return list
}
