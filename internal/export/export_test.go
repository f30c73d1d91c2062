package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plusiam/bucket-list2/internal/category"
	"github.com/plusiam/bucket-list2/internal/snapshot"
)

func sampleSnapshot() snapshot.Snapshot {
	return snapshot.Snapshot{
		UserName:      "Kim",
		Customization: snapshot.DefaultCustomization(),
		Categories: []category.Category{
			category.New("Travel", "Japan", "Peru"),
			category.New("Skills", "Piano"),
		},
		SavedAt: "2026-08-30T10:00:00Z",
	}
}

func TestRenderFrontMatterAndBody(t *testing.T) {
	doc, err := Render(sampleSnapshot())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "---\n"))
	assert.Contains(t, doc, "name: Kim")
	assert.Contains(t, doc, "theme: ocean")
	assert.Contains(t, doc, "savedAt:")
	assert.Contains(t, doc, "2026-08-30T10:00:00Z")
	assert.Contains(t, doc, "# Kim's Bucket List")
	assert.Contains(t, doc, "## Travel")
	assert.Contains(t, doc, "- [ ] Japan")

	// category and item order is preserved
	assert.Less(t, strings.Index(doc, "## Travel"), strings.Index(doc, "## Skills"))
	assert.Less(t, strings.Index(doc, "- [ ] Japan"), strings.Index(doc, "- [ ] Peru"))
}

func TestTitleFallsBackWhenUnnamed(t *testing.T) {
	snap := sampleSnapshot()
	snap.UserName = "  "
	assert.Equal(t, "My Bucket List", Title(snap))

	doc, err := Render(snap)
	require.NoError(t, err)
	assert.Contains(t, doc, "# My Bucket List")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.md")
	require.NoError(t, WriteFile(path, sampleSnapshot()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Travel")
}
