// Package export writes a finished bucket list as a markdown document
// with YAML front matter. It consumes a snapshot, never the history.
package export

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/plusiam/bucket-list2/internal/snapshot"
)

const frontMatterSep = "---\n"

type frontMatter struct {
	Name    string `yaml:"name"`
	Theme   string `yaml:"theme"`
	Pattern string `yaml:"pattern"`
	Font    string `yaml:"font"`
	Frame   string `yaml:"frame"`
	SavedAt string `yaml:"savedAt"`
}

// Title is the heading of the exported document.
func Title(snap snapshot.Snapshot) string {
	name := strings.TrimSpace(snap.UserName)
	if name == "" {
		return "My Bucket List"
	}
	return name + "'s Bucket List"
}

// Render produces the markdown document: front matter followed by one
// section per category, in stored order.
func Render(snap snapshot.Snapshot) (string, error) {
	fm, err := yaml.Marshal(frontMatter{
		Name:    snap.UserName,
		Theme:   snap.Customization.Theme,
		Pattern: snap.Customization.Pattern,
		Font:    snap.Customization.Font,
		Frame:   snap.Customization.Frame,
		SavedAt: snap.SavedAt,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(frontMatterSep)
	b.Write(fm)
	b.WriteString(frontMatterSep)
	b.WriteString(fmt.Sprintf("\n# %s\n", Title(snap)))
	for _, cat := range snap.Categories {
		b.WriteString(fmt.Sprintf("\n## %s\n", cat.Title))
		for _, item := range cat.Items {
			b.WriteString(fmt.Sprintf("- [ ] %s\n", item))
		}
	}
	return b.String(), nil
}

// WriteFile renders snap and writes it to path.
func WriteFile(path string, snap snapshot.Snapshot) error {
	doc, err := Render(snap)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc), 0o644)
}
