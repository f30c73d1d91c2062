package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateName(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter, tea.KeyTab:
			m.state.UserName = m.textInput.Value()
			m.textInput.Blur()
			m.step = stepLists
			m.mode = browseMode
			return nil
		}
	}

	var cmd tea.Cmd
	before := m.textInput.Value()
	m.textInput, cmd = m.textInput.Update(msg)
	if v := m.textInput.Value(); v != before {
		m.state.UserName = v
		return tea.Batch(cmd, m.touch())
	}
	return cmd
}
