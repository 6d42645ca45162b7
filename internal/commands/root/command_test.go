package root_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/artuross/pineapple/internal/commands/root"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	app := root.NewCommand()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(append([]string{"pineapple"}, args...))

	t.Logf("stderr:\n%s", stderr.String())

	return stdout.String(), err
}

func TestParseCommand(t *testing.T) {
	t.Run("source format", func(t *testing.T) {
		output, err := runApp(t, "parse", "--format", "source", "-e", "let a = \"x\"\n\nprint(a)\nf(a b)")
		require.NoError(t, err)

		assert.Equal(t, "let a = \"x\"\nprint(a)\nb\n", output)
	})

	t.Run("json format", func(t *testing.T) {
		output, err := runApp(t, "parse", "--format", "json", "-e", "print(a)")
		require.NoError(t, err)

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal([]byte(output), &decoded))

		require.Len(t, decoded, 1)
		assert.Equal(t, "expr", decoded[0]["kind"])
	})

	t.Run("pretty format", func(t *testing.T) {
		output, err := runApp(t, "parse", "--format", "pretty", "-e", "print(a)")
		require.NoError(t, err)

		assert.Contains(t, output, "ast.FunctionCall")
		assert.Contains(t, output, `"print"`)
	})

	t.Run("files", func(t *testing.T) {
		dir := t.TempDir()

		first := filepath.Join(dir, "first.pa")
		second := filepath.Join(dir, "second.pa")

		require.NoError(t, os.WriteFile(first, []byte("let a = \"x\""), 0o644))
		require.NoError(t, os.WriteFile(second, []byte("print(a)"), 0o644))

		output, err := runApp(t, "parse", "--format", "source", first, second)
		require.NoError(t, err)

		expected := "==> " + first + " <==\nlet a = \"x\"\n\n==> " + second + " <==\nprint(a)\n"
		assert.Equal(t, expected, output)
	})

	t.Run("project file", func(t *testing.T) {
		dir := t.TempDir()

		require.NoError(t, os.WriteFile(filepath.Join(dir, "main.pa"), []byte("print(a)"), 0o644))

		projectFile := filepath.Join(dir, "pineapple.yaml")
		require.NoError(t, os.WriteFile(projectFile, []byte("sources:\n  - main.pa\nformat: source\n"), 0o644))

		output, err := runApp(t, "parse", "--project", projectFile)
		require.NoError(t, err)

		assert.Equal(t, "print(a)\n", output)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runApp(t, "parse", filepath.Join(t.TempDir(), "missing.pa"))
		require.Error(t, err)
	})

	t.Run("no input", func(t *testing.T) {
		_, err := runApp(t, "parse")
		require.Error(t, err)
	})
}

func TestTokensCommand(t *testing.T) {
	output, err := runApp(t, "tokens", "--plain", "-e", "let a")
	require.NoError(t, err)

	assert.Equal(t, "LET \"let\"\nIDENTIFIER \"a\"\nEOF\n", output)
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pineapple.json")

	output, err := runApp(t, "init", path)
	require.NoError(t, err)

	assert.Equal(t, "Wrote "+path+"\n", output)
	assert.FileExists(t, path)

	_, err = runApp(t, "init", path)
	require.Error(t, err)
}
