package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plusiam/bucket-list2/internal/autosave"
	"github.com/plusiam/bucket-list2/internal/history"
	"github.com/plusiam/bucket-list2/internal/snapshot"
	"github.com/plusiam/bucket-list2/internal/storage"
)

type step int

const (
	stepName step = iota
	stepLists
	stepCustomize
	stepResult
)

type mode int

const (
	browseMode mode = iota
	insertMode  // the text input captures keystrokes
	stickerMode // arrow keys move the focused sticker
)

// onboarding is the stored shape under storage.KeyOnboarding.
type onboarding struct {
	StickerTipShown bool `json:"stickerTipShown"`
}

type Model struct {
	state   snapshot.State
	store   *storage.SafeStore
	history *history.Manager
	saver   *autosave.Scheduler

	step step
	mode mode

	textInput textinput.Model

	focusedCategory  int
	focusedItem      int // 0 focuses the category header, 1..n the items
	editingItem      int // item index being edited in insert mode, -1 = appending
	renamingCategory bool

	customizeRow   int
	focusedSticker int

	memoryOnly    bool
	statusMessage string

	width  int
	height int
}

func NewModel(state snapshot.State, store *storage.SafeStore, hist *history.Manager, debounce time.Duration, memoryOnly bool) *Model {
	ti := textinput.New()
	ti.CharLimit = 120
	ti.Width = 30

	m := &Model{
		state:       state,
		store:       store,
		history:     hist,
		saver:       autosave.New(debounce),
		textInput:   ti,
		editingItem: -1,
		memoryOnly:  memoryOnly,
	}
	store.OnWarn(func(msg string) {
		m.statusMessage = msg
	})
	if memoryOnly {
		m.statusMessage = "Storage unavailable. Working in memory for this session."
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	m.textInput.Placeholder = "Your name"
	m.textInput.SetValue(m.state.UserName)
	return m.textInput.Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case autosave.TickMsg:
		if m.saver.Due(msg) {
			return m, m.saveNow()
		}
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			// The teardown path. No further edits can arrive, so a
			// pending debounce is flushed synchronously before exit.
			m.flushPending()
			return m, tea.Quit
		case "ctrl+s":
			m.saver.Flush()
			return m, m.saveNow()
		case "ctrl+z":
			return m, m.undo()
		case "ctrl+y", "ctrl+shift+z":
			return m, m.redo()
		}
	}

	switch m.step {
	case stepName:
		return m, m.updateName(msg)
	case stepLists:
		return m, m.updateLists(msg)
	case stepCustomize:
		return m, m.updateCustomize(msg)
	default:
		return m, m.updateResult(msg)
	}
}
