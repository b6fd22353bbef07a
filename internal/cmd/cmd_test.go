package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/boostcfg/internal/config"
	"github.com/harrison/boostcfg/internal/settings"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// testEnv isolates one test: its own home directory and history database.
type testEnv struct {
	t         *testing.T
	dir       string
	historyDB string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	home := filepath.Join(dir, "home")
	require.NoError(t, os.MkdirAll(home, 0755))
	t.Setenv(settings.HomeEnv, home)
	return &testEnv{t: t, dir: dir, historyDB: filepath.Join(dir, "history.db")}
}

func (te *testEnv) run(stdin string, args ...string) result {
	te.t.Helper()
	root := NewRootCommand()

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--history-db", te.historyDB, "--no-color"))

	err := root.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func (te *testEnv) write(name, content string) string {
	te.t.Helper()
	path := filepath.Join(te.dir, name)
	require.NoError(te.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootCommand(t *testing.T) {
	te := newTestEnv(t)
	res := te.run("", "--help")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "boostcfg")
	for _, sub := range []string{"build", "validate", "aliases", "params", "history"} {
		assert.Contains(t, res.stdout, sub)
	}
}

func TestBuildPrintsDump(t *testing.T) {
	te := newTestEnv(t)
	res := te.run("", "build", "objective=binary", "num_leaf=63")
	require.NoError(t, res.err)

	lines := strings.Split(res.stdout, "\n")
	assert.Equal(t, "[boosting: gbdt]", lines[0])
	assert.Equal(t, "[objective: binary]", lines[1])
	assert.Contains(t, res.stdout, "[num_leaves: 63]\n")
}

func TestBuildCommandLineOverridesFile(t *testing.T) {
	te := newTestEnv(t)
	file := te.write("train.yaml", "objective: regression\nnum_leaves: 127\nlearning_rate: 0.2\n")

	res := te.run("", "build", "--config", file, "num_leaves=15")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "[objective: regression]\n")
	assert.Contains(t, res.stdout, "[num_leaves: 15]\n")
	assert.Contains(t, res.stdout, "[learning_rate: 0.2]\n")
}

func TestBuildConfigParameter(t *testing.T) {
	te := newTestEnv(t)
	file := te.write("train.conf", "objective = poisson\n")

	res := te.run("", "build", "config="+file)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "[objective: poisson]\n")
}

func TestBuildWritesOutFile(t *testing.T) {
	te := newTestEnv(t)
	out := filepath.Join(te.dir, "dumps", "model.params")

	res := te.run("", "build", "--out", out, "objective=huber", "--log-level", "info")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "Configuration written to")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[objective: huber]\n")
}

func TestBuildFromDumpRoundTrip(t *testing.T) {
	te := newTestEnv(t)
	out := filepath.Join(te.dir, "model.params")

	first := te.run("", "build", "--out", out, "objective=multiclass", "num_class=4", "metric=multi_error", "seed=7")
	require.NoError(t, first.err)

	again := te.run("", "build", "--from-dump", out)
	require.NoError(t, again.err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(data), again.stdout)

	changed := te.run("", "build", "--from-dump", out, "num_class=5")
	require.NoError(t, changed.err)
	assert.Contains(t, changed.stdout, "[num_class: 5]\n")
}

func TestBuildFromDumpKeepsExplicitLogLevel(t *testing.T) {
	te := newTestEnv(t)
	prev := filepath.Join(te.dir, "prev.params")
	require.NoError(t, te.run("", "build", "--out", prev, "objective=binary").err)

	quiet := te.run("", "build", "--log-level", "fatal", "--from-dump", prev, "task=save_binary")
	require.NoError(t, quiet.err)
	assert.NotContains(t, quiet.stderr, "[INFO]")
	assert.Contains(t, quiet.stdout, "[verbosity: 1]\n")

	chatty := te.run("", "build", "--from-dump", prev, "task=save_binary")
	require.NoError(t, chatty.err)
	assert.Contains(t, chatty.stderr, "save_binary parameter set to true")
}

func TestBuildFatal(t *testing.T) {
	te := newTestEnv(t)
	res := te.run("", "build", "num_leaves=1")
	require.Error(t, res.err)
	assert.True(t, errors.Is(res.err, config.ErrFatal))
	assert.Empty(t, res.stdout)
}

func TestBuildMissingConfigFile(t *testing.T) {
	te := newTestEnv(t)
	res := te.run("", "build", "--config", filepath.Join(te.dir, "missing.conf"))
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "failed to open parameter file")
}

func TestBuildDebugStruct(t *testing.T) {
	te := newTestEnv(t)
	res := te.run("", "build", "--debug-struct", "num_leaves=40")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "NumLeaves: (int) 40")
}

func TestBuildRecordAndHistory(t *testing.T) {
	te := newTestEnv(t)

	require.NoError(t, te.run("", "build", "--record", "objective=lambdarank").err)
	require.Error(t, te.run("", "build", "--record", "num_leaves=1").err)

	list := te.run("", "history", "list")
	require.NoError(t, list.err)
	lines := strings.Split(strings.TrimSpace(list.stdout), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "STATUS")
	assert.Contains(t, lines[1], "fatal")
	assert.Contains(t, lines[2], "ok")
	assert.Contains(t, lines[2], "lambdarank")

	id := strings.Fields(lines[2])[0]
	show := te.run("", "history", "show", id)
	require.NoError(t, show.err)
	assert.Contains(t, show.stdout, "Status:      ok")
	assert.Contains(t, show.stdout, "Arguments:   objective=lambdarank")
	assert.Contains(t, show.stdout, "[objective: lambdarank]\n")

	missing := te.run("", "history", "show", "zzzzzzzz")
	require.Error(t, missing.err)
}

func TestHistoryWithoutDatabase(t *testing.T) {
	te := newTestEnv(t)
	for _, args := range [][]string{{"history", "list"}, {"history", "clear", "--yes"}} {
		res := te.run("", args...)
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "No history database found")
	}
}

func TestHistoryClear(t *testing.T) {
	te := newTestEnv(t)
	require.NoError(t, te.run("", "build", "--record").err)
	require.NoError(t, te.run("", "build", "--record").err)

	cancelled := te.run("n\n", "history", "clear")
	require.NoError(t, cancelled.err)
	assert.Contains(t, cancelled.stdout, "Operation cancelled.")

	confirmed := te.run("y\n", "history", "clear")
	require.NoError(t, confirmed.err)
	assert.Contains(t, confirmed.stdout, "Deleted 2 builds.")

	list := te.run("", "history", "list")
	require.NoError(t, list.err)
	assert.Contains(t, list.stdout, "No builds recorded.")
}

func TestHistoryEnabledBySettings(t *testing.T) {
	te := newTestEnv(t)
	settingsFile := te.write("settings.yaml", "history:\n  enabled: true\n  keep_builds: 2\n")

	for i := 0; i < 3; i++ {
		require.NoError(t, te.run("", "build", "--settings", settingsFile).err)
	}

	list := te.run("", "history", "list", "--settings", settingsFile)
	require.NoError(t, list.err)
	lines := strings.Split(strings.TrimSpace(list.stdout), "\n")
	assert.Len(t, lines, 3)
}

func TestValidate(t *testing.T) {
	te := newTestEnv(t)

	t.Run("valid with warnings", func(t *testing.T) {
		res := te.run("", "validate", "objective=binary", "foo=1")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Unknown parameter: foo")
		assert.Contains(t, res.stdout, "✓ Parameters are valid (1 warning, 1 unknown parameter)")
	})

	t.Run("fatal", func(t *testing.T) {
		res := te.run("", "validate", "num_leaves=1")
		require.Error(t, res.err)
		assert.True(t, errors.Is(res.err, config.ErrFatal))
		assert.Contains(t, res.stdout, "num_leaves")
		assert.Contains(t, res.stdout, "✗ Parameters are invalid")
	})
}

func TestAliases(t *testing.T) {
	te := newTestEnv(t)

	text := te.run("", "aliases")
	require.NoError(t, text.err)
	assert.True(t, strings.HasPrefix(text.stdout, "{\n"))
	assert.Contains(t, text.stdout, `"num_leaves": ["max_leaf", "num_leaf", "max_leaves", "max_leaf_nodes"]`)

	yml := te.run("", "aliases", "--format", "yaml")
	require.NoError(t, yml.err)
	assert.Contains(t, yml.stdout, "num_leaves: [max_leaf, num_leaf, max_leaves, max_leaf_nodes]")

	bad := te.run("", "aliases", "--format", "json")
	require.Error(t, bad.err)
}

func TestParams(t *testing.T) {
	te := newTestEnv(t)
	res := te.run("", "params")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "| Name | Type | Default | Constraints | Aliases | Description |")
	assert.Contains(t, res.stdout, "num_leaves")
}

func TestInvalidSettings(t *testing.T) {
	te := newTestEnv(t)
	settingsFile := te.write("settings.yaml", "log_level: loud\n")

	res := te.run("", "build", "--settings", settingsFile)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid settings")
}

func TestLogDirFlag(t *testing.T) {
	te := newTestEnv(t)
	logDir := filepath.Join(te.dir, "logs")

	res := te.run("", "build", "--log-dir", logDir, "--log-level", "debug")
	require.NoError(t, res.err)

	data, err := os.ReadFile(filepath.Join(logDir, "latest.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "configuration built from")
}
