package repl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaphox/kaleido-lang/parser"
	"github.com/metaphox/kaleido-lang/repl"
)

const sampleConfig = `
operators:
  - char: "/"
    precedence: 40
  - char: "|"
    precedence: 5
`

func TestParseOpConfig(t *testing.T) {
	cfg, err := repl.ParseOpConfig([]byte(sampleConfig))
	require.NoError(t, err)
	require.Len(t, cfg.Operators, 2)
	assert.Equal(t, "/", cfg.Operators[0].Char)
	assert.Equal(t, 40, cfg.Operators[0].Precedence)
}

func TestParseOpConfig_BadYAML(t *testing.T) {
	_, err := repl.ParseOpConfig([]byte("operators: [whoops"))
	assert.Error(t, err)
}

func TestOpConfig_Apply(t *testing.T) {
	cfg, err := repl.ParseOpConfig([]byte(sampleConfig))
	require.NoError(t, err)

	ops := parser.DefaultOps()
	require.NoError(t, cfg.Apply(ops))

	prec, ok := ops.Precedence('/')
	require.True(t, ok)
	assert.Equal(t, 40, prec)
	prec, ok = ops.Precedence('|')
	require.True(t, ok)
	assert.Equal(t, 5, prec)
}

func TestOpConfig_ApplyRejectsMultiChar(t *testing.T) {
	cfg := &repl.OpConfig{Operators: []repl.OpSpec{{Char: "<=", Precedence: 10}}}
	err := cfg.Apply(parser.DefaultOps())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single character")
}

func TestOpConfig_ApplyRejectsStructural(t *testing.T) {
	cfg := &repl.OpConfig{Operators: []repl.OpSpec{{Char: ",", Precedence: 10}}}
	assert.Error(t, cfg.Apply(parser.DefaultOps()))
}

func TestLoadOpConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := repl.LoadOpConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Operators, 2)
}

func TestLoadOpConfig_Missing(t *testing.T) {
	_, err := repl.LoadOpConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading operator config")
}
