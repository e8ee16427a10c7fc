package main

import (
	"fmt"

	"github.com/molemesh/molemesh-go/internal/confloader"
	"github.com/molemesh/molemesh-go/pkg/config"
)

// resolveConfig layers the override sources the way a node does at startup:
// builder defaults, then the config file and environment, then command-line
// flags, and finally builds the immutable Config.
func resolveConfig() (*config.Config, error) {
	builder := config.NewBuilder()

	loader := confloader.New(confloader.WithConfigFile(configFile))
	if err := loader.Load(builder); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if namespace != "" {
		builder.WithNamespace(namespace)
	}
	if nodeID != "" {
		builder.WithNodeID(nodeID)
	}
	if natsAddress != "" {
		builder.WithTransporter(config.NatsTransporter(natsAddress))
	}
	if logLevel != "" {
		builder.WithLogLevel(config.LogLevel(logLevel))
	}

	return builder.Build(), nil
}
