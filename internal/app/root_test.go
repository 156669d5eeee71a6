package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and stdin, returning stdout.
// Package-level flag state is reset first so tests stay independent.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	dbPath, configPath, verbose = "", "", false
	visualizeHeight, serveAddr = 0, ""
	cfg, logger = nil, nil

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetIn(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	return out.String(), err
}

// isolate points HOME and XDG_CONFIG_HOME at a temp dir and returns a db path in it.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("TEXTSENTIMENT_DB", "")
	t.Setenv("NO_COLOR", "1")
	return filepath.Join(dir, "text_analysis.db")
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "textsentiment", RootCmd.Use)
	assert.NotEmpty(t, RootCmd.Short)
	assert.NotEmpty(t, RootCmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	found := make(map[string]bool)
	for _, cmd := range RootCmd.Commands() {
		found[cmd.Name()] = true
	}

	for _, expected := range []string{"submit", "show", "visualize", "about", "serve"} {
		assert.True(t, found[expected], "expected command %q to be registered", expected)
	}
}

func TestRootCommandHasPersistentFlags(t *testing.T) {
	for _, name := range []string{"db", "config", "verbose"} {
		flag := RootCmd.PersistentFlags().Lookup(name)
		if assert.NotNil(t, flag, "expected --%s flag", name) {
			assert.NotEmpty(t, flag.Usage)
		}
	}
}

func TestGetDBPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TEXTSENTIMENT_DB", "")

	oldDBPath, oldCfg := dbPath, cfg
	defer func() { dbPath, cfg = oldDBPath, oldCfg }()

	dbPath, cfg = "", nil
	path, err := getDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".textsentiment", "text_analysis.db"), path)

	dbPath = "/tmp/test.db"
	path, err = getDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", path)
}

func TestConfigFileDatabasePath(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	want := filepath.Join(dir, "from-config.db")

	cfgFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("database_path: "+want+"\n"), 0644))

	_, err := runCLI(t, "", "--config", cfgFile, "submit", "hello there")
	require.NoError(t, err)

	_, err = os.Stat(want)
	assert.NoError(t, err, "database should be created at the configured path")
}

func TestInvalidConfigFails(t *testing.T) {
	isolate(t)
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("log_level: loud\n"), 0644))

	_, err := runCLI(t, "", "--config", cfgFile, "about")
	assert.Error(t, err)
}

func TestAboutCommand(t *testing.T) {
	isolate(t)
	out, err := runCLI(t, "", "about")
	require.NoError(t, err)
	assert.Equal(t, "This app analyzes text sentiment using VADER and stores results in an SQLite database.\n", out)
}
