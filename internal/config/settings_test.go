package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every VOCABMD_* variable a developer might have set.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DB", "OUT", "TIMEZONE", "METADATA", "PER_BOOK", "PER_DATE", "FOLDER", "BOOK"} {
		t.Setenv(EnvPrefix+"_"+key, "")
		os.Unsetenv(EnvPrefix + "_" + key)
	}
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("export", pflag.ContinueOnError)
	flags.String("db", "", "")
	flags.String("out", ".", "")
	flags.String("timezone", "", "")
	flags.Bool("metadata", true, "")
	flags.Bool("per-book", false, "")
	flags.Bool("per-date", false, "")
	flags.String("folder", "", "")
	flags.String("book", "", "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := load(nil, []string{filepath.Join(t.TempDir(), "absent.yaml")})
	require.NoError(t, err)

	assert.Equal(t, Settings{Out: ".", Metadata: true}, s)
}

func TestLoad_FilesLayer(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	user := writeFile(t, filepath.Join(dir, UserFile), "db: /data/vocab.sqlite3\nout: /notes\nper_book: true\n")
	project := writeFile(t, filepath.Join(dir, ProjectFile), "out: ./vocab\ntimezone: Asia/Tokyo\nmetadata: false\n")

	s, err := load(nil, []string{user, project})
	require.NoError(t, err)

	assert.Equal(t, "/data/vocab.sqlite3", s.DB)
	assert.Equal(t, "./vocab", s.Out)
	assert.Equal(t, "Asia/Tokyo", s.Timezone)
	assert.False(t, s.Metadata)
	assert.True(t, s.PerBook)
	assert.Equal(t, []string{user, project}, s.ConfigFiles)
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	clearEnv(t)
	file := writeFile(t, filepath.Join(t.TempDir(), UserFile), "timezone: UTC\nper_date: false\n")
	t.Setenv("VOCABMD_TIMEZONE", "+09:00")
	t.Setenv("VOCABMD_PER_DATE", "true")
	t.Setenv("VOCABMD_FOLDER", "daily")

	s, err := load(nil, []string{file})
	require.NoError(t, err)

	assert.Equal(t, "+09:00", s.Timezone)
	assert.True(t, s.PerDate)
	assert.Equal(t, "daily", s.Folder)
}

func TestLoad_ChangedFlagsWin(t *testing.T) {
	clearEnv(t)
	file := writeFile(t, filepath.Join(t.TempDir(), UserFile), "book: Dune\nmetadata: false\nper_book: true\n")
	t.Setenv("VOCABMD_OUT", "/from/env")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--out", "/from/flag", "--book", "Alice in Wonderland"}))

	s, err := load(flags, []string{file})
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", s.Out)
	assert.Equal(t, "Alice in Wonderland", s.Book)
	// Unset flags do not shadow the file.
	assert.False(t, s.Metadata)
	assert.True(t, s.PerBook)
}

func TestLoad_ExpandsHome(t *testing.T) {
	clearEnv(t)
	file := writeFile(t, filepath.Join(t.TempDir(), UserFile), "db: ~/koreader/vocabulary_builder.sqlite3\nout: ~/notes\n")

	s, err := load(nil, []string{file})
	require.NoError(t, err)

	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "koreader", "vocabulary_builder.sqlite3"), s.DB)
	assert.Equal(t, filepath.Join(home, "notes"), s.Out)
}

func TestLoad_InvalidFile(t *testing.T) {
	clearEnv(t)
	file := writeFile(t, filepath.Join(t.TempDir(), UserFile), "db: [unclosed\n")

	_, err := load(nil, []string{file})
	require.Error(t, err)
	assert.Contains(t, err.Error(), file)
}

func TestLoad_UsesConfigHome(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("VOCABMD_CONFIG_HOME", dir)
	writeFile(t, filepath.Join(dir, UserFile), "folder: by_day\n")
	t.Chdir(t.TempDir())

	s, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "by_day", s.Folder)
}
