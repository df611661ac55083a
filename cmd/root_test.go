package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/veyr/internal/config"
)

func TestNewRootCmd_CommandTree(t *testing.T) {
	root := NewRootCmd(config.Default())

	tests := []struct {
		path []string
	}{
		{[]string{"column", "list"}},
		{[]string{"column", "update"}},
		{[]string{"task", "create"}},
		{[]string{"task", "list"}},
		{[]string{"task", "show"}},
		{[]string{"task", "update"}},
		{[]string{"task", "move"}},
		{[]string{"task", "delete"}},
		{[]string{"task", "time"}},
		{[]string{"label", "create"}},
		{[]string{"label", "list"}},
		{[]string{"label", "update"}},
		{[]string{"label", "delete"}},
		{[]string{"label", "attach"}},
		{[]string{"label", "detach"}},
	}

	for _, tt := range tests {
		found, rest, err := root.Find(tt.path)
		require.NoError(t, err, "veyr %v", tt.path)
		assert.Empty(t, rest)
		assert.Equal(t, tt.path[len(tt.path)-1], found.Name())
	}
}

func TestNewRootCmd_SilencesCobraErrors(t *testing.T) {
	root := NewRootCmd(config.Default())

	assert.True(t, root.SilenceErrors, "commands report their own errors")
	assert.True(t, root.SilenceUsage)
	assert.NotNil(t, root.RunE, "bare veyr opens the board")
}
