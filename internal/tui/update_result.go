package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plusiam/bucket-list2/internal/export"
	"github.com/plusiam/bucket-list2/internal/snapshot"
	"github.com/plusiam/bucket-list2/internal/storage"
)

func (m *Model) updateResult(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "shift+tab", "esc":
		m.step = stepCustomize

	case "e":
		snap := snapshot.Capture(&m.state)
		path := fmt.Sprintf("bucketlist-%s.md", time.Now().Format("2006-01-02"))
		if err := export.WriteFile(path, snap); err != nil {
			m.statusMessage = fmt.Sprintf("Export failed: %v", err)
			return clearStatusCmd(5 * time.Second)
		}
		m.statusMessage = "Exported to " + path
		return clearStatusCmd(3 * time.Second)

	case "ctrl+x":
		m.history.Clear()
		m.store.Remove(storage.KeyData)
		m.store.Remove(storage.KeyOnboarding)
		m.state = snapshot.DefaultState()
		m.textInput.SetValue("")
		m.focusedCategory = 0
		m.focusedItem = 0
		m.focusedSticker = 0
		m.statusMessage = "Saved data cleared"
		return clearStatusCmd(3 * time.Second)

	case "q":
		m.flushPending()
		return tea.Quit
	}
	return nil
}
