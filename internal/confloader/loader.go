// Package confloader loads node configuration overrides from a YAML file
// and the process environment into a config.Builder.
//
// Loading order, later sources overriding earlier ones:
//  1. Builder defaults
//  2. YAML configuration file (if one was given)
//  3. MOLEMESH_-prefixed environment variables
//
// Only builder-settable fields have a loading surface; the environment-derived
// Config fields (hostname, instance identifier, address list) cannot be
// overridden from here.
package confloader

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/molemesh/molemesh-go/pkg/config"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "MOLEMESH_"

// Loader loads configuration overrides from multiple sources.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvPrefix replaces the default environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigFile sets the YAML configuration file path. An empty path means
// no file is read.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// New creates a configuration loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads all sources and applies the collected overrides onto b. Fields
// absent from every source keep the builder's defaults.
func (l *Loader) Load(b *config.Builder) error {
	if l.filePath != "" {
		if err := l.k.Load(file.Provider(l.filePath), yaml.Parser()); err != nil {
			return fmt.Errorf("load config file %s: %w", l.filePath, err)
		}
	}

	if err := l.k.Load(env.Provider(l.envPrefix, ".", l.envKey), nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	if err := l.k.Unmarshal("", b); err != nil {
		return fmt.Errorf("apply overrides: %w", err)
	}
	return nil
}

// envKey maps an environment variable name to a configuration key. Key names
// themselves contain underscores, so nesting uses a double underscore:
//
//	MOLEMESH_NAMESPACE                 -> namespace
//	MOLEMESH_NODE_ID                   -> node_id
//	MOLEMESH_RETRY_POLICY__MAX_DELAY   -> retry_policy.max_delay
//	MOLEMESH_TRANSPORTER__NATS         -> transporter.nats
func (l *Loader) envKey(s string) string {
	s = strings.TrimPrefix(s, l.envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
