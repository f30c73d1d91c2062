package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plusiam/bucket-list2/internal/snapshot"
	"github.com/plusiam/bucket-list2/internal/sticker"
)

const (
	cardInnerWidth  = 36
	cardMaxStickerY = 14
)

// renderCard draws the result card: themed header, patterned body with
// the category lists, stickers overlaid at their card-local coordinates,
// all wrapped in the chosen frame.
func renderCard(state *snapshot.State) string {
	c := state.Customization

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.HeaderColor)).
		Width(cardInnerWidth).
		Align(lipgloss.Center)
	headerStyle = fontStyle(headerStyle, c.Font)

	bodyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextColor)).
		Background(lipgloss.Color(c.BgColor))

	border, ok := frameBorders[c.Frame]
	if !ok {
		border = lipgloss.RoundedBorder()
	}
	frameStyle := lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(c.HeaderColor))

	header := headerStyle.Render(applyFont(cardTitle(state.UserName), c.Font))

	lines := cardBodyLines(state)
	lines = overlayStickers(lines, state.Stickers)
	body := bodyStyle.Render(strings.Join(lines, "\n"))

	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func cardTitle(userName string) string {
	name := strings.TrimSpace(userName)
	if name == "" {
		return "My Bucket List"
	}
	return name + "'s Bucket List"
}

func fontStyle(base lipgloss.Style, font string) lipgloss.Style {
	switch font {
	case "bold":
		return base.Bold(true)
	case "italic":
		return base.Italic(true)
	default:
		return base
	}
}

func applyFont(s, font string) string {
	if font == "caps" {
		return strings.ToUpper(s)
	}
	return s
}

func cardBodyLines(state *snapshot.State) []string {
	fill := patternFills[state.Customization.Pattern]
	if fill == "" {
		fill = " "
	}
	lines := []string{padLine("", fill)}
	for _, cat := range state.Categories {
		if cat.ItemCount() == 0 {
			continue
		}
		lines = append(lines, padLine(" "+cat.Title, fill))
		for _, item := range cat.Items {
			lines = append(lines, padLine("   • "+item, fill))
		}
		lines = append(lines, padLine("", fill))
	}
	if len(lines) == 1 {
		lines = append(lines, padLine("   (nothing here yet)", fill), padLine("", fill))
	}
	return lines
}

// padLine pads s to the card width. Slack cells take the pattern fill
// every fourth column so the texture stays light behind the text.
func padLine(s, fill string) string {
	runes := []rune(s)
	if len(runes) > cardInnerWidth {
		return string(runes[:cardInnerWidth])
	}
	var b strings.Builder
	b.WriteString(s)
	for i := len(runes); i < cardInnerWidth; i++ {
		if fill != " " && i%4 == 3 {
			b.WriteString(fill)
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}

// overlayStickers stamps each sticker's emoji into the line grid at its
// clamped coordinates. Stickers replace the cells underneath; an emoji
// renders double width, so the cell after it is dropped to keep the
// card edge aligned.
func overlayStickers(lines []string, stickers []sticker.Sticker) []string {
	if len(stickers) == 0 {
		return lines
	}
	grid := make([][]rune, len(lines))
	for i, l := range lines {
		grid[i] = []rune(l)
	}
	for _, st := range stickers {
		em := []rune(st.Emoji)
		if len(em) == 0 || len(grid) == 0 {
			continue
		}
		y := clamp(st.Y, 0, len(grid)-1)
		row := grid[y]
		if len(row) == 0 {
			continue
		}
		// the emoji renders double width; keep a cell to drop after it
		// so the card edge stays aligned even on the last column
		x := clamp(st.X, 0, len(row)-2)
		if x < 0 {
			continue
		}
		row[x] = em[0]
		copy(row[x+1:], row[x+2:])
		grid[y] = row[:len(row)-1]
	}
	out := make([]string, len(grid))
	for i, r := range grid {
		out[i] = string(r)
	}
	return out
}
