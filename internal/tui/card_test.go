package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plusiam/bucket-list2/internal/category"
	"github.com/plusiam/bucket-list2/internal/snapshot"
	"github.com/plusiam/bucket-list2/internal/sticker"
)

func TestPadLineWidthAndTruncation(t *testing.T) {
	assert.Len(t, []rune(padLine("", " ")), cardInnerWidth)
	assert.Len(t, []rune(padLine(" hi", "·")), cardInnerWidth)

	long := strings.Repeat("a", cardInnerWidth+10)
	assert.Len(t, []rune(padLine(long, " ")), cardInnerWidth)
}

func TestPadLineSprinklesPatternFill(t *testing.T) {
	line := padLine("", "·")
	assert.Contains(t, line, "·")

	plain := padLine("", " ")
	assert.Equal(t, strings.Repeat(" ", cardInnerWidth), plain)
}

func TestCardBodyLinesSkipsEmptyCategories(t *testing.T) {
	state := snapshot.DefaultState()
	state.Categories = []category.Category{
		category.New("Travel", "Japan"),
		category.New("Skills"),
	}

	body := strings.Join(cardBodyLines(&state), "\n")
	assert.Contains(t, body, "Travel")
	assert.Contains(t, body, "• Japan")
	assert.NotContains(t, body, "Skills")
}

func TestCardBodyLinesPlaceholderWhenEmpty(t *testing.T) {
	state := snapshot.DefaultState()
	body := strings.Join(cardBodyLines(&state), "\n")
	assert.Contains(t, body, "(nothing here yet)")
}

func TestOverlayStickersStampsAndKeepsWidth(t *testing.T) {
	lines := []string{
		strings.Repeat(" ", cardInnerWidth),
		strings.Repeat(" ", cardInnerWidth),
	}
	out := overlayStickers(lines, []sticker.Sticker{
		{ID: "st-1", Emoji: "⭐", X: 4, Y: 1},
	})

	require.Len(t, out, 2)
	assert.Equal(t, lines[0], out[0])
	row := []rune(out[1])
	assert.Equal(t, '⭐', row[4])
	// the emoji renders double width, so the row gives back one cell
	assert.Len(t, row, cardInnerWidth-1)
}

func TestOverlayStickersClampsOutOfRange(t *testing.T) {
	lines := []string{strings.Repeat(" ", cardInnerWidth)}
	out := overlayStickers(lines, []sticker.Sticker{
		{ID: "st-1", Emoji: "⭐", X: 999, Y: 999},
	})

	row := []rune(out[0])
	assert.Equal(t, '⭐', row[len(row)-1])
	assert.Len(t, row, cardInnerWidth-1)
}

func TestOverlayStickerOnLastColumnKeepsEdgeAligned(t *testing.T) {
	lines := []string{strings.Repeat(" ", cardInnerWidth)}
	out := overlayStickers(lines, []sticker.Sticker{
		{ID: "st-1", Emoji: "⭐", X: cardInnerWidth - 1, Y: 0},
	})

	// even on the last column a cell is given back for the double
	// width, so the rendered line never grows past the card edge
	row := []rune(out[0])
	assert.Len(t, row, cardInnerWidth-1)
	assert.Equal(t, '⭐', row[len(row)-1])
}

func TestCardTitle(t *testing.T) {
	assert.Equal(t, "Kim's Bucket List", cardTitle("Kim"))
	assert.Equal(t, "My Bucket List", cardTitle(""))
	assert.Equal(t, "My Bucket List", cardTitle("   "))
}

func TestApplyFontCaps(t *testing.T) {
	assert.Equal(t, "HELLO", applyFont("hello", "caps"))
	assert.Equal(t, "hello", applyFont("hello", "bold"))
}

func TestCycleChoiceWrapsBothWays(t *testing.T) {
	choices := []string{"a", "b", "c"}

	assert.Equal(t, "b", cycleChoice(choices, "a", 1))
	assert.Equal(t, "a", cycleChoice(choices, "c", 1))
	assert.Equal(t, "c", cycleChoice(choices, "a", -1))
	assert.Equal(t, "b", cycleChoice(choices, "not-there", 1), "unknown values reset to the first choice")
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-5, 0, 10))
	assert.Equal(t, 10, clamp(15, 0, 10))
	assert.Equal(t, 7, clamp(7, 0, 10))
}

func TestRenderCardContainsContent(t *testing.T) {
	state := snapshot.DefaultState()
	state.UserName = "Kim"
	state.Categories = []category.Category{category.New("Travel", "Japan")}

	card := renderCard(&state)
	assert.Contains(t, card, "Kim's Bucket List")
	assert.Contains(t, card, "Japan")
}
