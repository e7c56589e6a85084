package catalog_test

import (
	"testing"

	catalogcmd "fjacquet/expense-ml/cmd/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCommand_Metadata(t *testing.T) {
	assert.Equal(t, "catalog", catalogcmd.Cmd.Use)
	assert.Contains(t, catalogcmd.Cmd.Short, "keyword catalog")
	assert.NotNil(t, catalogcmd.Cmd.RunE)
}

func TestCatalogCommand_HasListSubcommand(t *testing.T) {
	names := make([]string, 0)
	for _, sub := range catalogcmd.Cmd.Commands() {
		names = append(names, sub.Use)
	}
	require.Contains(t, names, "list")
}
