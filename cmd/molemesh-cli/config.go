package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/molemesh/molemesh-go/internal/logger"
	"github.com/molemesh/molemesh-go/pkg/serializer"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved node configuration",
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Resolve and print the node configuration",
		Long: `Resolve the full node configuration from defaults, config file,
environment and flags, and print the canonical JSON document, including the
environment-derived fields (hostname, instance ID, address list).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd.OutOrStdout())
		},
	}
}

func runConfigShow(w io.Writer) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg, os.Stderr)
	log.Debug("configuration resolved",
		"namespace", cfg.Namespace,
		"transporter", cfg.Transporter,
		"addresses", len(cfg.IPList))

	// The canonical document is always JSON, whatever codec the node itself
	// would use for messages.
	data, err := serializer.JSON.Serialize(cfg)
	if err != nil {
		return fmt.Errorf("serialize configuration: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		return fmt.Errorf("format configuration: %w", err)
	}

	fmt.Fprintln(w, pretty.String())
	return nil
}
