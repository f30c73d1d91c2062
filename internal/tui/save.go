package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plusiam/bucket-list2/internal/snapshot"
	"github.com/plusiam/bucket-list2/internal/storage"
)

type clearStatusMsg struct{}

func clearStatusCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// touch marks a qualifying edit: the autosave debounce window restarts.
func (m *Model) touch() tea.Cmd {
	return m.saver.Trigger()
}

// saveNow runs the full pipeline: capture, persist, and only after a
// durable write record the checkpoint and show the save indicator. A
// failed persist records nothing.
func (m *Model) saveNow() tea.Cmd {
	snap, ok := m.persistSnapshot()
	if !ok {
		// the store's warn hook has already set the status message
		return clearStatusCmd(5 * time.Second)
	}
	m.history.Push(snap)
	m.statusMessage = "Saved"
	return clearStatusCmd(2 * time.Second)
}

func (m *Model) persistSnapshot() (snapshot.Snapshot, bool) {
	snap := snapshot.Capture(&m.state)
	return snap, m.store.Set(storage.KeyData, snap)
}

// flushPending runs the save pipeline for a still-open debounce window,
// silently: no status message is shown because the caller is tearing
// the program down. A durable write still records its checkpoint so the
// restored state has a matching history entry next session.
func (m *Model) flushPending() {
	if !m.saver.Flush() {
		return
	}
	if snap, ok := m.persistSnapshot(); ok {
		m.history.Push(snap)
	}
}

func (m *Model) undo() tea.Cmd {
	snap := m.history.Undo()
	if snap == nil {
		m.statusMessage = "Nothing to undo"
		return clearStatusCmd(2 * time.Second)
	}
	m.applySnapshot(*snap)
	m.statusMessage = "Restored previous save point"
	return clearStatusCmd(2 * time.Second)
}

func (m *Model) redo() tea.Cmd {
	snap := m.history.Redo()
	if snap == nil {
		m.statusMessage = "Nothing to redo"
		return clearStatusCmd(2 * time.Second)
	}
	m.applySnapshot(*snap)
	m.statusMessage = "Restored next save point"
	return clearStatusCmd(2 * time.Second)
}

// applySnapshot pushes a snapshot back into the live state and re-syncs
// whatever the current step is displaying.
func (m *Model) applySnapshot(snap snapshot.Snapshot) {
	snapshot.Restore(&m.state, snap)
	m.clampFocus()
	if m.step == stepName {
		m.textInput.SetValue(m.state.UserName)
	} else if m.mode == insertMode {
		m.exitInsert()
	}
	// keep the saved list in step with what the user now sees; the
	// history cursor itself was already persisted by the manager
	m.store.Set(storage.KeyData, snap)
}

func (m *Model) clampFocus() {
	if m.focusedCategory >= len(m.state.Categories) {
		m.focusedCategory = len(m.state.Categories) - 1
	}
	if m.focusedCategory < 0 {
		m.focusedCategory = 0
	}
	if max := m.currentItemCount(); m.focusedItem > max {
		m.focusedItem = max
	}
	if m.focusedSticker >= len(m.state.Stickers) {
		m.focusedSticker = len(m.state.Stickers) - 1
	}
	if m.focusedSticker < 0 {
		m.focusedSticker = 0
	}
}
