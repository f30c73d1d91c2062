package tui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plusiam/bucket-list2/internal/history"
	"github.com/plusiam/bucket-list2/internal/snapshot"
	"github.com/plusiam/bucket-list2/internal/storage"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	store := storage.New(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	hist := history.New(store)
	m := NewModel(snapshot.DefaultState(), store, hist, time.Millisecond, false)
	m.Init()
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestCtrlSSavesImmediately(t *testing.T) {
	m := newTestModel(t)
	m.state.UserName = "Kim"

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, 1, m.history.Len())
	var snap snapshot.Snapshot
	require.True(t, m.store.Get(storage.KeyData, &snap))
	assert.Equal(t, "Kim", snap.UserName)
	assert.Equal(t, "Saved", m.statusMessage)
}

func TestUndoRestoresPreviousCheckpoint(t *testing.T) {
	m := newTestModel(t)

	m.state.UserName = "Kim"
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m.state.UserName = "Lee"
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, "Kim", m.state.UserName)

	// redo brings the later checkpoint back
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "Lee", m.state.UserName)
}

func TestUndoAtFloorIsANoOp(t *testing.T) {
	m := newTestModel(t)
	m.state.UserName = "Kim"
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, "Kim", m.state.UserName)
	assert.Equal(t, "Nothing to undo", m.statusMessage)
}

func TestTypingSchedulesDebouncedSave(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, stepName, m.step)

	_, cmd := m.Update(keyRune('K'))
	require.NotNil(t, cmd)
	assert.True(t, m.saver.Pending())
	assert.Equal(t, "K", m.state.UserName)
	assert.Equal(t, 0, m.history.Len(), "no checkpoint until the debounce fires")
}

func TestDebouncedTickRunsSavePipeline(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyRune('K'))
	m.Update(keyRune('i'))
	m.Update(keyRune('m'))

	// rerun the trigger by hand so we can hold the tick it produces
	tick := m.saver.Trigger()()
	m.Update(tick)

	assert.Equal(t, 1, m.history.Len())
	var snap snapshot.Snapshot
	require.True(t, m.store.Get(storage.KeyData, &snap))
	assert.Equal(t, "Kim", snap.UserName)
	assert.False(t, m.saver.Pending())
}

func TestAddItemAndAutosaveCheckpoint(t *testing.T) {
	m := newTestModel(t)
	m.step = stepLists

	m.Update(keyRune('a'))
	require.Equal(t, insertMode, m.mode)
	m.Update(keyRune('J'))
	m.Update(keyRune('e'))
	m.Update(keyRune('j'))
	m.Update(keyRune('u'))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, browseMode, m.mode)
	assert.Equal(t, []string{"Jeju"}, m.state.Categories[0].Items)
	assert.True(t, m.saver.Pending())
}

func TestStickerTipShownOnce(t *testing.T) {
	m := newTestModel(t)
	m.step = stepCustomize

	m.Update(keyRune('s'))
	assert.Contains(t, m.statusMessage, "Tip:")
	assert.Equal(t, stickerMode, m.mode)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.statusMessage = ""
	m.Update(keyRune('s'))
	assert.Empty(t, m.statusMessage, "the tip is a one-time notice")
}

func TestQuitFlushesPendingSave(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyRune('K'))
	require.True(t, m.saver.Pending())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)

	var snap snapshot.Snapshot
	require.True(t, m.store.Get(storage.KeyData, &snap))
	assert.Equal(t, "K", snap.UserName)
	assert.False(t, m.saver.Pending())

	// the flushed write is a full save: it records its checkpoint too,
	// so the restored state has a matching history entry next session
	assert.Equal(t, 1, m.history.Len())
	fresh := history.New(m.store)
	fresh.Load()
	assert.Equal(t, 1, fresh.Len())
}

func TestResultQuitFlushesPendingSave(t *testing.T) {
	m := newTestModel(t)
	m.state.UserName = "Kim"
	m.step = stepResult
	m.saver.Trigger()
	require.True(t, m.saver.Pending())

	_, cmd := m.Update(keyRune('q'))
	require.NotNil(t, cmd)

	var snap snapshot.Snapshot
	require.True(t, m.store.Get(storage.KeyData, &snap))
	assert.Equal(t, "Kim", snap.UserName)
	assert.Equal(t, 1, m.history.Len())
}

func TestClearSavedData(t *testing.T) {
	m := newTestModel(t)
	m.state.UserName = "Kim"
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Equal(t, 1, m.history.Len())

	m.step = stepResult
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})

	assert.Equal(t, 0, m.history.Len())
	assert.Empty(t, m.state.UserName)
	var snap snapshot.Snapshot
	assert.False(t, m.store.Get(storage.KeyData, &snap))
}
