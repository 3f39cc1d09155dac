package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeLs runs "coreutils ls" with the given arguments against an isolated
// config location, capturing stdout and stderr.
func executeLs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"ls"}, args...))

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func lsFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("12345"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), make([]byte, 20), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), make([]byte, 10), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	return dir
}

func TestLsDefaults(t *testing.T) {
	dir := lsFixture(t)

	out, errOut, err := executeLs(t, dir)
	require.NoError(t, err)

	assert.Empty(t, errOut)
	assert.Equal(t, "a.txt\nb.txt\nsub/\n", out)
}

func TestLsAllFlag(t *testing.T) {
	dir := lsFixture(t)

	out, _, err := executeLs(t, "-a", dir)
	require.NoError(t, err)

	assert.Equal(t, ".hidden\na.txt\nb.txt\nsub/\n", out)
}

func TestLsSortSize(t *testing.T) {
	dir := lsFixture(t)

	out, _, err := executeLs(t, "--sort", "size", dir)
	require.NoError(t, err)

	assert.Equal(t, "sub/\nb.txt\na.txt\n", out)
}

func TestLsLongFormat(t *testing.T) {
	dir := lsFixture(t)

	out, _, err := executeLs(t, "-l", dir)
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		require.GreaterOrEqual(t, len(line), 10, "long line too short: %q", line)
		perms := line[:10]
		assert.Regexp(t, `^[dl-]([r-][w-][x-]){3}$`, perms)
	}
	assert.Contains(t, out, " 20 ", "byte sizes print unscaled without -H")
}

func TestLsLongHumanReadable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "big.bin"), make([]byte, 2048), 0644))

	out, _, err := executeLs(t, "-l", "-H", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "2.0K")
}

func TestLsInvalidSortKey(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeLs(t, "--sort", "mtime", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sort key")
}

func TestLsInvalidColorMode(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeLs(t, "--color", "sometimes", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color mode")
}

func TestLsColorAlways(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "painted"), 0755))

	// always must colorize even though the test buffer is not a terminal
	out, _, err := executeLs(t, "--color", "always", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")

	out, _, err = executeLs(t, "--color", "never", dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "painted/")
}

func TestLsConfigFileDefaults(t *testing.T) {
	dir := lsFixture(t)

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	cfgDir := filepath.Join(xdg, "coreutils")
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"),
		[]byte("ls:\n  all: true\n  sort: size\n"), 0644))

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"ls", dir})
	require.NoError(t, root.Execute())

	assert.Equal(t, ".hidden\nsub/\nb.txt\na.txt\n", out.String(),
		"config file supplies all=true and sort=size")

	// An explicit flag beats the config file.
	root = NewRootCommand()
	out.Reset()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"ls", "--all=false", "--sort", "name", dir})
	require.NoError(t, root.Execute())

	assert.Equal(t, "a.txt\nb.txt\nsub/\n", out.String())
}

func TestLsMalformedConfigFileFails(t *testing.T) {
	dir := t.TempDir()

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	cfgDir := filepath.Join(xdg, "coreutils")
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"),
		[]byte("ls: [broken"), 0644))

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"ls", dir})
	assert.Error(t, root.Execute())
}
