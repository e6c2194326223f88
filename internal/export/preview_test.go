package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/vocabmd/internal/testutil"
)

// usePreviewTemp points the temp directory at a per-test folder so previews
// never touch the real cache.
func usePreviewTemp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)
	return tmp
}

func TestPreviewDir(t *testing.T) {
	tmp := usePreviewTemp(t)
	assert.Equal(t, filepath.Join(tmp, "vocab_builder_cache"), PreviewDir())
}

func TestPreview(t *testing.T) {
	usePreviewTemp(t)
	db := testutil.NewVocabDB(t, fixtureRows())

	preview, err := Preview(context.Background(), Options{
		DBPath:          db,
		Root:            "ignored",
		Layout:          Layout{PerBook: true},
		Timezone:        "UTC",
		IncludeMetadata: true,
	})
	require.NoError(t, err)

	assert.Equal(t, PreviewDir(), preview.Root)
	require.Len(t, preview.Files, 2)
	require.Len(t, preview.Notes, 2)

	aliceNote := readNote(t, preview.Files[0])
	duneNote := readNote(t, preview.Files[1])
	assert.Equal(t, aliceNote+"\n\n"+duneNote+"\n\n", preview.Text)

	assert.Equal(t, 3, preview.Notes[0].Words)
	assert.Equal(t, 1, preview.Notes[1].Words)
	require.NotNil(t, preview.Notes[0].FrontMatter)
	assert.Equal(t, []string{alice}, preview.Notes[0].FrontMatter.Books)
	assert.Equal(t, fixtureDates, preview.Notes[0].FrontMatter.Dates)
}

func TestPreview_WithoutMetadata(t *testing.T) {
	usePreviewTemp(t)
	db := testutil.NewVocabDB(t, fixtureRows())

	preview, err := Preview(context.Background(), Options{
		DBPath:   db,
		Layout:   Layout{PerBook: true},
		Timezone: "UTC",
	})
	require.NoError(t, err)

	require.Len(t, preview.Notes, 2)
	assert.Nil(t, preview.Notes[0].FrontMatter)
	assert.Equal(t, 3, preview.Notes[0].Words)
}

func TestPreview_ClearsStaleNotes(t *testing.T) {
	usePreviewTemp(t)
	db := testutil.NewVocabDB(t, fixtureRows())

	stale := filepath.Join(PreviewDir(), "by_date", "1999-12-31.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("## old\n"), 0o644))

	preview, err := Preview(context.Background(), Options{
		DBPath:   db,
		Layout:   Layout{PerBook: true},
		Timezone: "UTC",
	})
	require.NoError(t, err)

	assert.NoFileExists(t, stale)
	assert.NotContains(t, preview.Text, "## old")
	require.Len(t, preview.Files, 2)
}

func TestPreview_Error(t *testing.T) {
	usePreviewTemp(t)

	_, err := Preview(context.Background(), Options{
		DBPath:   filepath.Join(t.TempDir(), "missing.sqlite3"),
		Timezone: "UTC",
	})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindDatabase))
}

func TestCleanupPreview(t *testing.T) {
	usePreviewTemp(t)
	db := testutil.NewVocabDB(t, fixtureRows())

	_, err := Preview(context.Background(), Options{DBPath: db, Timezone: "UTC"})
	require.NoError(t, err)
	require.DirExists(t, PreviewDir())

	require.NoError(t, CleanupPreview())
	assert.NoDirExists(t, PreviewDir())

	// Removing an absent directory is not an error.
	require.NoError(t, CleanupPreview())
}
