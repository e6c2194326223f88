package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/gorewood/vocabmd/internal/testutil"
)

const (
	jan1 = int64(1704067200) // 2024-01-01T00:00:00Z
	day  = int64(86400)
)

// isolateConfig keeps the developer's config files and VOCABMD_*
// variables out of a test.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("VOCABMD_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"DB", "OUT", "TIMEZONE", "METADATA", "PER_BOOK", "PER_DATE", "FOLDER", "BOOK"} {
		t.Setenv("VOCABMD_"+key, "")
		os.Unsetenv("VOCABMD_" + key)
	}
	t.Chdir(t.TempDir())
}

// runCLI runs the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// fixtureDB holds two books over two UTC days.
func fixtureDB(t *testing.T) string {
	t.Helper()
	return testutil.NewVocabDB(t, []testutil.Row{
		testutil.Word("Alice in Wonderland", "curious", "Curiouser and ", "!", jan1+3600),
		testutil.Word("Dune", "spice", "The ", " must flow", jan1+7200),
		testutil.Word("Alice in Wonderland", "rabbit", "the White ", " ran by", jan1+day+3600),
	})
}
