package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateLists(msg tea.Msg) tea.Cmd {
	if m.mode == insertMode {
		return m.updateListsInsert(msg)
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "shift+tab", "esc":
		m.step = stepName
		m.textInput.Placeholder = "Your name"
		m.textInput.SetValue(m.state.UserName)
		return m.textInput.Focus()

	case "tab", "enter":
		m.step = stepCustomize

	case "h", "left":
		if m.focusedCategory > 0 {
			m.focusedCategory--
			m.clampFocus()
		}

	case "l", "right":
		if m.focusedCategory < len(m.state.Categories)-1 {
			m.focusedCategory++
			m.clampFocus()
		}

	case "k", "up":
		if m.focusedItem > 0 {
			m.focusedItem--
		}

	case "j", "down":
		if m.focusedItem < m.currentItemCount() {
			m.focusedItem++
		}

	case "a", "o":
		if len(m.state.Categories) == 0 {
			return nil
		}
		m.mode = insertMode
		m.editingItem = -1
		m.textInput.Placeholder = "New wish"
		m.textInput.SetValue("")
		return m.textInput.Focus()

	case "e", "i":
		if m.focusedItem == 0 || m.focusedItem > m.currentItemCount() {
			return nil
		}
		m.mode = insertMode
		m.editingItem = m.focusedItem - 1
		m.textInput.Placeholder = ""
		m.textInput.SetValue(m.state.Categories[m.focusedCategory].Items[m.editingItem])
		return m.textInput.Focus()

	case "r":
		if len(m.state.Categories) == 0 {
			return nil
		}
		m.mode = insertMode
		m.renamingCategory = true
		m.textInput.Placeholder = ""
		m.textInput.SetValue(m.state.Categories[m.focusedCategory].Title)
		return m.textInput.Focus()

	case "d", "x":
		if m.focusedItem == 0 || m.focusedItem > m.currentItemCount() {
			return nil
		}
		cat := &m.state.Categories[m.focusedCategory]
		i := m.focusedItem - 1
		cat.Items = append(cat.Items[:i], cat.Items[i+1:]...)
		m.clampFocus()
		return m.touch()

	case "K":
		i := m.focusedItem - 1
		if len(m.state.Categories) == 0 || i < 1 {
			return nil
		}
		items := m.state.Categories[m.focusedCategory].Items
		items[i-1], items[i] = items[i], items[i-1]
		m.focusedItem--
		return m.touch()

	case "J":
		i := m.focusedItem - 1
		if len(m.state.Categories) == 0 || i < 0 {
			return nil
		}
		items := m.state.Categories[m.focusedCategory].Items
		if i >= len(items)-1 {
			return nil
		}
		items[i], items[i+1] = items[i+1], items[i]
		m.focusedItem++
		return m.touch()
	}
	return nil
}

func (m *Model) updateListsInsert(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEscape:
			m.exitInsert()
			return nil
		case tea.KeyEnter:
			value := strings.TrimSpace(m.textInput.Value())
			m.commitInsert(value)
			m.exitInsert()
			if value == "" {
				return nil
			}
			return m.touch()
		}
	}

	var cmd tea.Cmd
	before := m.textInput.Value()
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() != before {
		return tea.Batch(cmd, m.touch())
	}
	return cmd
}

func (m *Model) commitInsert(value string) {
	if value == "" || len(m.state.Categories) == 0 {
		return
	}
	cat := &m.state.Categories[m.focusedCategory]
	switch {
	case m.renamingCategory:
		cat.Title = value
	case m.editingItem >= 0 && m.editingItem < len(cat.Items):
		cat.Items[m.editingItem] = value
	default:
		cat.Items = append(cat.Items, value)
		m.focusedItem = len(cat.Items)
	}
}

func (m *Model) exitInsert() {
	m.mode = browseMode
	m.renamingCategory = false
	m.editingItem = -1
	m.textInput.Blur()
	m.textInput.SetValue("")
}

func (m *Model) currentItemCount() int {
	if len(m.state.Categories) == 0 {
		return 0
	}
	return m.state.Categories[m.focusedCategory].ItemCount()
}
