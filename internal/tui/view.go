package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	categoryHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Padding(0, 1)

	itemStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Margin(0, 1).
			Width(26)

	focusedItemStyle = itemStyle.Copy().
				BorderForeground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)
)

func (m *Model) View() string {
	var body string
	switch m.step {
	case stepName:
		body = m.viewName()
	case stepLists:
		body = m.viewLists()
	case stepCustomize:
		body = m.viewCustomize()
	default:
		body = m.viewResult()
	}

	chrome := []string{
		titleStyle.Render("Bucket List"),
		stepStyle.Render(m.stepLine()),
		body,
	}
	if m.statusMessage != "" {
		chrome = append(chrome, statusStyle.Render(m.statusMessage))
	}
	chrome = append(chrome, helpStyle.Render(m.helpLine()))
	return lipgloss.JoinVertical(lipgloss.Left, chrome...)
}

func (m *Model) stepLine() string {
	names := []string{"1 Name", "2 Lists", "3 Customize", "4 Result"}
	for i := range names {
		if step(i) == m.step {
			names[i] = "[" + names[i] + "]"
		}
	}
	line := strings.Join(names, "  ")
	if m.memoryOnly {
		line += "  (memory only)"
	}
	return line
}

func (m *Model) helpLine() string {
	base := "ctrl+z undo · ctrl+y redo · ctrl+s save · ctrl+c quit"
	switch m.step {
	case stepName:
		return "enter next · " + base
	case stepLists:
		if m.mode == insertMode {
			return "enter confirm · esc cancel · " + base
		}
		return "h/l category · j/k item · a add · e edit · d delete · J/K reorder · r rename · tab next · " + base
	case stepCustomize:
		if m.mode == stickerMode {
			return "1-9 add sticker · arrows move · tab next sticker · x remove · esc done · " + base
		}
		return "j/k field · h/l change · s stickers · tab next · " + base
	default:
		return "e export · ctrl+x clear saved data · q quit · " + base
	}
}

func (m *Model) viewName() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		stepStyle.Render("What should we call you?"),
		"  "+m.textInput.View(),
	)
}

func (m *Model) viewLists() string {
	var cols []string
	for ci, cat := range m.state.Categories {
		header := fmt.Sprintf("%s %d", cat.Title, cat.ItemCount())
		renderedHeader := categoryHeaderStyle.Render(header)
		if ci == m.focusedCategory && m.mode == insertMode && m.renamingCategory {
			renderedHeader = categoryHeaderStyle.Render(m.textInput.View())
		}

		var rendered []string
		for ii, item := range cat.Items {
			style := itemStyle
			focused := ci == m.focusedCategory && m.focusedItem == ii+1
			if focused {
				style = focusedItemStyle
			}
			if focused && m.mode == insertMode && m.editingItem == ii {
				rendered = append(rendered, style.Render(m.textInput.View()))
				continue
			}
			rendered = append(rendered, style.Render(item))
		}
		if ci == m.focusedCategory && m.mode == insertMode && m.editingItem < 0 && !m.renamingCategory {
			rendered = append(rendered, focusedItemStyle.Render(m.textInput.View()))
		}

		col := lipgloss.JoinVertical(lipgloss.Left, renderedHeader, strings.Join(rendered, "\n"))
		cols = append(cols, lipgloss.NewStyle().Padding(0, 1).Render(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m *Model) viewCustomize() string {
	c := m.state.Customization
	rows := []struct{ label, value string }{
		{"Theme", c.Theme},
		{"Pattern", c.Pattern},
		{"Font", c.Font},
		{"Frame", c.Frame},
		{"Header color", c.HeaderColor},
		{"Background", c.BgColor},
		{"Text color", c.TextColor},
	}
	var b strings.Builder
	for i, row := range rows {
		marker := "  "
		if i == m.customizeRow && m.mode != stickerMode {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-13s ◂ %s ▸\n", marker, row.label, row.value))
	}

	left := stepStyle.Render(b.String())
	right := renderCard(&m.state)
	if m.mode == stickerMode {
		right = lipgloss.JoinVertical(lipgloss.Left, right, statusStyle.Render(m.stickerLine()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *Model) stickerLine() string {
	var b strings.Builder
	for i, em := range stickerPalette {
		b.WriteString(fmt.Sprintf("%d %s  ", i+1, em))
	}
	if len(m.state.Stickers) > 0 {
		b.WriteString(fmt.Sprintf("(%d placed)", len(m.state.Stickers)))
	}
	return b.String()
}

func (m *Model) viewResult() string {
	return renderCard(&m.state)
}
