package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), configName)
	cfg := DefaultConfig()
	cfg.Database.Path = "/data/layouts.sqlite"

	require.NoError(t, WriteConfigOrdered(cfg, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var headers []string
	for _, line := range strings.Split(string(content), "\n") {
		if match := tomlTableHeader.FindStringSubmatch(line); match != nil {
			headers = append(headers, match[1])
		}
	}
	assert.Equal(t, []string{"database", "layout", "logging", "session"}, headers)

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, *cfg, decoded)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	require.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), configName)))
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[session]
  window_id = 'main'

[layout]
  min_share = 0.05
`
	want := `title = 'x'

[layout]
  min_share = 0.05

[session]
  window_id = 'main'
`
	assert.Equal(t, want, sortTOMLSections(input))
	assert.Equal(t, "", sortTOMLSections(""))
}
