package projectconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/artuross/pineapple/internal/projectconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRead(t *testing.T) {
	for _, name := range []string{"pineapple.json", "pineapple.toml", "pineapple.yaml", "pineapple.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			config := &projectconfig.Config{
				Sources:  []string{"a.pa", "lib/b.pa"},
				Format:   "json",
				LogLevel: "debug",
			}

			require.NoError(t, projectconfig.SaveConfigFile(path, config))

			read, err := projectconfig.ReadConfigFile(path)
			require.NoError(t, err)

			assert.Equal(t, config, read)
		})
	}
}

func TestReadConfigFile(t *testing.T) {
	type testCase struct {
		name     string
		fileName string
		content  string
		expected *projectconfig.Config
	}

	testCases := []testCase{
		{
			name:     "toml",
			fileName: "pineapple.toml",
			content:  "sources = [\"main.pa\"]\nformat = \"source\"\n",
			expected: &projectconfig.Config{Sources: []string{"main.pa"}, Format: "source"},
		},
		{
			name:     "yaml",
			fileName: "pineapple.yaml",
			content:  "sources:\n  - main.pa\nlogLevel: warn\n",
			expected: &projectconfig.Config{Sources: []string{"main.pa"}, LogLevel: "warn"},
		},
		{
			name:     "json",
			fileName: "pineapple.json",
			content:  `{"sources": ["main.pa"]}`,
			expected: &projectconfig.Config{Sources: []string{"main.pa"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.fileName)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			config, err := projectconfig.ReadConfigFile(path)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, config)
		})
	}

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := projectconfig.ReadConfigFile("pineapple.ini")
		require.ErrorIs(t, err, projectconfig.ErrUnsupportedExtension)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := projectconfig.ReadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pineapple.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

		_, err := projectconfig.ReadConfigFile(path)
		require.Error(t, err)
	})
}

func TestSourcePaths(t *testing.T) {
	config := &projectconfig.Config{
		Sources: []string{"main.pa", "/abs/lib.pa"},
	}

	paths := config.SourcePaths(filepath.Join("project", "pineapple.toml"))

	assert.Equal(t, []string{filepath.Join("project", "main.pa"), "/abs/lib.pa"}, paths)
}
