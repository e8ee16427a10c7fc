package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestTopicsCommand(t *testing.T) {
	out, err := execute(t, "topics", "--node-id", "node-42")
	require.NoError(t, err)

	assert.Contains(t, out, "Node:      node-42")
	assert.Contains(t, out, "MOL.EVENT.node-42")
	assert.Contains(t, out, "MOL.DISCOVER\n")
	assert.Contains(t, out, "MOL.PONG.node-42")
}

func TestTopicsCommand_Namespace(t *testing.T) {
	out, err := execute(t, "topics", "--node-id", "node-7", "--namespace", "prod")
	require.NoError(t, err)

	assert.Contains(t, out, "Namespace: prod")
	assert.Contains(t, out, "MOL-prod.HEARTBEAT")
	assert.Contains(t, out, "MOL-prod.RES.node-7")
}

func TestConfigShowCommand(t *testing.T) {
	out, err := execute(t, "config", "show", "--node-id", "node-9", "--nats", "nats://cli-host:4222")
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Contains(t, doc, "nodeID")
	assert.Contains(t, doc, "instanceId")

	var nodeID string
	require.NoError(t, json.Unmarshal(doc["nodeID"], &nodeID))
	assert.Equal(t, "node-9", nodeID)

	var transporter map[string]string
	require.NoError(t, json.Unmarshal(doc["transporter"], &transporter))
	assert.Equal(t, "nats://cli-host:4222", transporter["Nats"])
}

func TestConfigShowCommand_FileAndFlagLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.yaml")
	require.NoError(t, os.WriteFile(path, []byte("namespace: from-file\nnode_id: file-node\n"), 0o600))

	// The flag beats the file for node-id; the file still supplies namespace.
	out, err := execute(t, "config", "show", "--config", path, "--node-id", "flag-node")
	require.NoError(t, err)

	var doc struct {
		Namespace string `json:"namespace"`
		NodeID    string `json:"nodeID"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "from-file", doc.Namespace)
	assert.Equal(t, "flag-node", doc.NodeID)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, appName)
	assert.Contains(t, out, appVersion)
}
