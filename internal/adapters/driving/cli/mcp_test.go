package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lotus-cli/internal/adapters/driving/mcp"
)

func TestMCPServeCmd_Flags(t *testing.T) {
	port := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "p", port.Shorthand)
	assert.Equal(t, "0", port.DefValue)

	watch := mcpServeCmd.Flags().Lookup("watch")
	require.NotNil(t, watch)
	assert.Equal(t, "w", watch.Shorthand)
}

func TestMCPServe_WithoutServices(t *testing.T) {
	SetServices(nil)

	_, err := executeCommand("mcp", "serve")

	assert.ErrorIs(t, err, mcp.ErrMissingContactService)
}
