package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plusiam/bucket-list2/internal/snapshot"
	"github.com/plusiam/bucket-list2/internal/sticker"
	"github.com/plusiam/bucket-list2/internal/storage"
)

const customizeRows = 7

func (m *Model) updateCustomize(msg tea.Msg) tea.Cmd {
	if m.mode == stickerMode {
		return m.updateStickers(msg)
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "shift+tab", "esc":
		m.step = stepLists
	case "tab", "enter":
		m.step = stepResult
	case "k", "up":
		if m.customizeRow > 0 {
			m.customizeRow--
		}
	case "j", "down":
		if m.customizeRow < customizeRows-1 {
			m.customizeRow++
		}
	case "h", "left":
		m.cycleCustomization(-1)
		return m.touch()
	case "l", "right":
		m.cycleCustomization(1)
		return m.touch()
	case "s":
		m.mode = stickerMode
		return m.maybeShowStickerTip()
	}
	return nil
}

func (m *Model) cycleCustomization(dir int) {
	c := &m.state.Customization
	switch m.customizeRow {
	case 0:
		snapshot.ApplyTheme(c, cycleChoice(snapshot.Themes, c.Theme, dir))
	case 1:
		c.Pattern = cycleChoice(snapshot.Patterns, c.Pattern, dir)
	case 2:
		c.Font = cycleChoice(snapshot.Fonts, c.Font, dir)
	case 3:
		c.Frame = cycleChoice(snapshot.Frames, c.Frame, dir)
	case 4:
		c.HeaderColor = cycleChoice(colorChoices, c.HeaderColor, dir)
	case 5:
		c.BgColor = cycleChoice(colorChoices, c.BgColor, dir)
	case 6:
		c.TextColor = cycleChoice(colorChoices, c.TextColor, dir)
	}
}

func (m *Model) updateStickers(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	key := keyMsg.String()

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(stickerPalette) {
			m.state.Stickers = append(m.state.Stickers, sticker.New(stickerPalette[idx], cardInnerWidth/2, 1))
			m.focusedSticker = len(m.state.Stickers) - 1
			return m.touch()
		}
		return nil
	}

	switch key {
	case "esc", "s":
		m.mode = browseMode
	case "tab":
		if n := len(m.state.Stickers); n > 0 {
			m.focusedSticker = (m.focusedSticker + 1) % n
		}
	case "x", "d":
		if len(m.state.Stickers) > 0 {
			i := m.focusedSticker
			m.state.Stickers = append(m.state.Stickers[:i], m.state.Stickers[i+1:]...)
			m.clampFocus()
			return m.touch()
		}
	case "h", "left":
		return m.moveSticker(-1, 0)
	case "l", "right":
		return m.moveSticker(1, 0)
	case "k", "up":
		return m.moveSticker(0, -1)
	case "j", "down":
		return m.moveSticker(0, 1)
	}
	return nil
}

func (m *Model) moveSticker(dx, dy int) tea.Cmd {
	if len(m.state.Stickers) == 0 {
		return nil
	}
	st := &m.state.Stickers[m.focusedSticker]
	st.X = clamp(st.X+dx, 0, cardInnerWidth-1)
	st.Y = clamp(st.Y+dy, 0, cardMaxStickerY)
	return m.touch()
}

func (m *Model) maybeShowStickerTip() tea.Cmd {
	var ob onboarding
	if m.store.Get(storage.KeyOnboarding, &ob) && ob.StickerTipShown {
		return nil
	}
	m.store.Set(storage.KeyOnboarding, onboarding{StickerTipShown: true})
	m.statusMessage = "Tip: press 1-9 to drop a sticker, arrows to move it, x to remove"
	return clearStatusCmd(5 * time.Second)
}
