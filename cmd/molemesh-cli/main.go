package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	appName    = "molemesh-cli"
	appVersion = "0.1.0"
)

var (
	// Global flags
	configFile  string
	namespace   string
	nodeID      string
	natsAddress string
	logLevel    string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Inspect molemesh node configuration and wire topics",
		Long: `molemesh-cli resolves a node configuration the same way a mesh node does
at startup (defaults, then config file, then environment, then flags) and
shows the result: the canonical configuration document and the channel
topic table the node would subscribe and publish on.`,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&namespace, "namespace", "", "Mesh namespace (empty = default namespace)")
	rootCmd.PersistentFlags().StringVar(&nodeID, "node-id", "", "Node identifier (default: generated)")
	rootCmd.PersistentFlags().StringVar(&natsAddress, "nats", "", "NATS transporter address")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newTopicsCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", appName, appVersion)
		},
	}
}
