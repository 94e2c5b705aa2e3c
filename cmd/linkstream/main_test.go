package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkstream/stream"
)

// run executes the CLI with stdin and returns stdout. Without an explicit
// --config it points at a file that does not exist.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	if !strings.Contains(strings.Join(args, " "), "--config") {
		args = append(args, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	}
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()

	return out.String(), err
}

const twoLinks = "0 1 10\n1 2 5\n"

const threeLinks = "0 1 5\n1 2 4\n0 1 1\n"

func TestCalcConnexity(t *testing.T) {
	out, err := run(t, twoLinks, "calc", "connexity", "5", "3")
	require.NoError(t, err)
	assert.Equal(t, "10 false\n5 false\n", out)

	out, err = run(t, twoLinks, "calc", "connexity", "4", "3", "--nodes", "0,1")
	require.NoError(t, err)
	assert.Equal(t, "10 true\n", out)

	out, err = run(t, twoLinks, "calc", "connexity", "5", "3", "--start", "0", "--stop", "10")
	require.NoError(t, err)
	assert.Equal(t, "5 false\n", out)
}

func TestCalcConnexity_Ascending(t *testing.T) {
	out, err := run(t, "1 2 5\n0 1 10\n", "calc", "connexity", "5", "3", "--ascending")
	require.NoError(t, err)
	assert.Equal(t, "10 false\n5 false\n", out)
}

func TestCalcGraph(t *testing.T) {
	out, err := run(t, twoLinks, "calc", "graph", "3", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "strict digraph reach {"), out)
	assert.Contains(t, out, "\t1 -> 2;")
	assert.Contains(t, out, "\t2 -> 1;")
	assert.NotContains(t, out, "0 -> 1;")

	// Only instant 10 kept: nothing expires.
	out, err = run(t, twoLinks, "calc", "graph", "3", "3", "--start", "10", "--stop", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "\t0 -> 1;")
	assert.Contains(t, out, "\t0 -> 2;")
}

func TestCalcComps(t *testing.T) {
	out, err := run(t, twoLinks, "calc", "comps", "3", "3")
	require.NoError(t, err)
	assert.Equal(t, "1 2 [[1, 2]]\n", out)

	out, err = run(t, twoLinks, "calc", "comps", "3", "3", "--up")
	require.NoError(t, err)
	assert.Equal(t, "2 2 [[0], [1, 2]]\n", out)

	_, err = run(t, twoLinks, "calc", "comps", "3", "3", "--nodes", "0,7")
	assert.Error(t, err)
}

func TestCalcExist(t *testing.T) {
	out, err := run(t, threeLinks, "calc", "exist", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "1 1 1\n1 1 1\n0 1 0\n", out)

	out, err = run(t, threeLinks, "calc", "exist", "2", "3", "--cut")
	require.NoError(t, err)
	assert.Equal(t, "1 8 0 1 2\n1 4 0 1\n", out)

	out, err = run(t, threeLinks, "calc", "exist", "2", "3", "--lr")
	require.NoError(t, err)
	assert.Equal(t, "1 5 8 2 [0, 1]\n", out)

	// Uneven instants: node 0 alone over [1, 100] outweighs nodes 0 and 1 over [1, 2].
	out, err = run(t, "0 2 100\n0 1 2\n0 1 1\n", "calc", "exist", "1", "3", "--lr")
	require.NoError(t, err)
	assert.Equal(t, "1 100 99 1 [0]\n", out)

	_, err = run(t, threeLinks, "calc", "exist", "2", "3", "--lr", "--cut")
	assert.Error(t, err)
}

func TestCalcPart(t *testing.T) {
	out, err := run(t, threeLinks, "calc", "part", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "1 5 1 2 [[0, 1]]\n1 1 1 2 [[0, 1]]\n", out)
}

func TestCalc_Errors(t *testing.T) {
	_, err := run(t, twoLinks, "calc", "connexity", "5")
	assert.ErrorContains(t, err, "number of nodes")

	_, err = run(t, "0 1 x\n", "calc", "connexity", "5", "3")
	assert.ErrorIs(t, err, stream.ErrMalformedLine)

	_, err = run(t, twoLinks, "calc", "connexity", "5", "2")
	assert.ErrorIs(t, err, stream.ErrNodeOutOfRange)

	_, err = run(t, twoLinks, "calc", "connexity", "five", "3")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkstream.yaml")
	require.NoError(t, os.WriteFile(path, []byte("delta: 5\nnodes: 3\npolicy: upper\n"), 0o644))

	out, err := run(t, twoLinks, "calc", "connexity", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "10 false\n5 false\n", out)

	out, err = run(t, twoLinks, "calc", "comps", "3", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "2 2 [[0], [1, 2]]\n", out, "policy comes from the file")
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "linkstream.yaml")
	data, err := yaml.Marshal(Config{Delta: 7, Nodes: 4, Policy: "upper", Verbose: true})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	t.Setenv("LINKSTREAM_NODES", "9")
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Delta: 7, Nodes: 9, Policy: "upper", Verbose: true}, cfg)

	t.Setenv("LINKSTREAM_DELTA", "soon")
	_, err = loadConfig(path)
	assert.ErrorContains(t, err, "LINKSTREAM_DELTA")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("delta: [1\n"), 0o644))
	t.Setenv("LINKSTREAM_DELTA", "1")
	_, err = loadConfig(bad)
	assert.ErrorContains(t, err, "parse")
}

func TestGen(t *testing.T) {
	out, err := run(t, "", "gen", "3", "2", "1", "--seed", "42")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "0 1 2", lines[0])
	assert.Equal(t, "1 2 0", lines[8])

	_, err = run(t, "", "gen", "3", "2", "0.5")
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "0 1 5\n1 2 4\n", "info", "count", "nodes")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = run(t, "0 1 5\n1 2 4\n", "info", "count", "links")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	_, err = run(t, "", "info", "count", "edges")
	assert.Error(t, err)

	out, err = run(t, threeLinks, "info", "degrees", "3")
	require.NoError(t, err)
	assert.Equal(t, "0: 1\n1: 2\n2: 1\n", out)

	out, err = run(t, threeLinks, "info", "repart", "3")
	require.NoError(t, err)
	assert.Equal(t, "0: 5 1\n1: 5 1\n2: 4 4\n", out)
}

func TestFilter(t *testing.T) {
	out, err := run(t, threeLinks, "filter", "--nodes", "1,2")
	require.NoError(t, err)
	assert.Equal(t, "1 2 4\n", out)

	out, err = run(t, threeLinks, "filter", "--start", "2", "--stop", "5")
	require.NoError(t, err)
	assert.Equal(t, "0 1 5\n1 2 4\n", out)

	out, err = run(t, threeLinks, "filter")
	require.NoError(t, err)
	assert.Equal(t, threeLinks, out)
}

func TestRename(t *testing.T) {
	mapping := filepath.Join(t.TempDir(), "mapping.yaml")
	out, err := run(t, "10 30 9\n20 20 3\n", "rename", "--mapping", mapping)
	require.NoError(t, err)
	assert.Equal(t, "0 1 9\n2 2 3\n", out)

	data, err := os.ReadFile(mapping)
	require.NoError(t, err)
	var table map[int]int
	require.NoError(t, yaml.Unmarshal(data, &table))
	assert.Equal(t, map[int]int{10: 0, 20: 2, 30: 1}, table)
}
