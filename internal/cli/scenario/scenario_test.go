package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScenario = `{
  "extensions": [
    {"id": "ublock@example.com", "name": "uBlock", "version": "1.0", "permissions": ["tabs"], "summary": "Blocks ads", "author": "Ray"}
  ],
  "steps": [
    {"action": "required_permissions", "extension": "ublock@example.com"},
    {"action": "answer", "positive": true},
    {"action": "installation_failed", "error": "network_failure"},
    {"action": "restart"}
  ]
}`

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(sampleScenario))
	require.NoError(t, err)

	require.Len(t, sc.Extensions, 1)
	require.Len(t, sc.Steps, 4)
	assert.Equal(t, ActionRequiredPermissions, sc.Steps[0].Action)
	assert.True(t, sc.Steps[1].Positive)

	ext, ok := sc.Extension("ublock@example.com")
	require.True(t, ok)
	assert.Equal(t, "Blocks ads", ext.Metadata().Summary)
	assert.Equal(t, []string{"tabs"}, ext.Entity().Permissions)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "syntax", input: `{`, wantErr: "parse scenario"},
		{name: "missing id", input: `{"extensions":[{"name":"x"}]}`, wantErr: "id is required"},
		{name: "duplicate id", input: `{"extensions":[{"id":"a"},{"id":"a"}]}`, wantErr: "declared twice"},
		{name: "unknown action", input: `{"steps":[{"action":"explode"}]}`, wantErr: "unknown action"},
		{name: "unknown extension", input: `{"steps":[{"action":"post_installation","extension":"ghost"}]}`, wantErr: "unknown extension"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleScenario), 0o600))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, sc.Steps, 4)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
