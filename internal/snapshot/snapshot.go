// Package snapshot defines the editable wizard state and the immutable
// captured form of it that history and storage operate on.
package snapshot

import (
	"encoding/json"
	"time"

	"github.com/plusiam/bucket-list2/internal/category"
	"github.com/plusiam/bucket-list2/internal/sticker"
)

// The fixed sets a customization field may take. The TUI cycles through
// these; anything else found in a stored payload is rendered as the
// first entry.
var (
	Themes   = []string{"ocean", "sunset", "forest", "lavender", "mono"}
	Patterns = []string{"none", "dots", "stars", "waves", "grid"}
	Fonts    = []string{"plain", "bold", "italic", "caps"}
	Frames   = []string{"rounded", "double", "thick", "ascii", "hidden"}
)

type Customization struct {
	Theme       string `json:"theme"`
	Pattern     string `json:"pattern"`
	Font        string `json:"font"`
	Frame       string `json:"frame"`
	HeaderColor string `json:"headerColor"`
	BgColor     string `json:"bgColor"`
	TextColor   string `json:"textColor"`
}

// Snapshot is an immutable captured copy of all user-editable state at
// one instant. Every field is plain data: no functions, no cycles, no
// opaque handles. That constraint is what makes the JSON round trip in
// Clone a faithful structural deep copy.
type Snapshot struct {
	UserName      string              `json:"userName"`
	Customization Customization       `json:"customization"`
	Categories    []category.Category `json:"categories"`
	Stickers      []sticker.Sticker   `json:"stickers"`
	SavedAt       string              `json:"savedAt"`
}

// State is the live editable state the wizard mutates. It is constructed
// once at startup and passed by pointer to the UI and the save pipeline.
type State struct {
	UserName      string
	Customization Customization
	Categories    []category.Category
	Stickers      []sticker.Sticker
}

// themePalettes seed the three color fields when a theme is chosen; the
// user can still override each color afterwards.
var themePalettes = map[string][3]string{
	"ocean":    {"#2b6cb0", "#1a202c", "#e2e8f0"},
	"sunset":   {"#c05621", "#2d1b12", "#fbd38d"},
	"forest":   {"#276749", "#1c2a21", "#c6f6d5"},
	"lavender": {"#6b46c1", "#221c33", "#e9d8fd"},
	"mono":     {"#a0aec0", "#111111", "#f7fafc"},
}

// ApplyTheme sets the theme and its header/background/text palette.
// Unknown themes are ignored.
func ApplyTheme(c *Customization, theme string) {
	p, ok := themePalettes[theme]
	if !ok {
		return
	}
	c.Theme = theme
	c.HeaderColor, c.BgColor, c.TextColor = p[0], p[1], p[2]
}

func DefaultCustomization() Customization {
	return Customization{
		Theme:       "ocean",
		Pattern:     "none",
		Font:        "plain",
		Frame:       "rounded",
		HeaderColor: "#2b6cb0",
		BgColor:     "#1a202c",
		TextColor:   "#e2e8f0",
	}
}

func DefaultState() State {
	return State{
		Customization: DefaultCustomization(),
		Categories: []category.Category{
			category.New("Travel"),
			category.New("Skills"),
			category.New("Experiences"),
			category.New("Together"),
		},
	}
}

// Capture deep-copies the live state and stamps the capture time.
// The result shares no mutable sub-structure with s.
func Capture(s *State) Snapshot {
	return Snapshot{
		UserName:      s.UserName,
		Customization: s.Customization,
		Categories:    copyCategories(s.Categories),
		Stickers:      copyStickers(s.Stickers),
		SavedAt:       time.Now().UTC().Format(time.RFC3339),
	}
}

// Restore applies a snapshot back onto the live state. The snapshot is
// cloned first so the caller's copy stays untouched by later edits.
func Restore(s *State, snap Snapshot) {
	c := snap.Clone()
	s.UserName = c.UserName
	s.Customization = c.Customization
	s.Categories = c.Categories
	s.Stickers = c.Stickers
}

// Clone returns a structurally equal copy sharing no mutable
// sub-structure, via a JSON serialize/deserialize round trip.
func (s Snapshot) Clone() Snapshot {
	data, err := json.Marshal(s)
	if err != nil {
		// Unreachable for well-formed snapshots: every field is plain data.
		return s
	}
	var out Snapshot
	if err := json.Unmarshal(data, &out); err != nil {
		return s
	}
	return out
}

func copyCategories(cats []category.Category) []category.Category {
	out := make([]category.Category, len(cats))
	for i, c := range cats {
		out[i] = c.DeepCopy()
	}
	return out
}

func copyStickers(sts []sticker.Sticker) []sticker.Sticker {
	out := make([]sticker.Sticker, len(sts))
	copy(out, sts)
	return out
}
