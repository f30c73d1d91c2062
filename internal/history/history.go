// Package history is a bounded undo/redo stack over snapshots.
//
// Checkpoints come from the autosave pipeline, so one undo step means
// "back one autosave interval", not "back one keystroke". The in-memory
// stack is authoritative for the session; the persisted mirror may lag
// behind a failed write and is consulted only at cold start.
package history

import (
	"github.com/plusiam/bucket-list2/internal/snapshot"
	"github.com/plusiam/bucket-list2/internal/storage"
)

const maxHistory = 50

type Manager struct {
	store   *storage.SafeStore
	entries []snapshot.Snapshot
	current int
}

// persisted is the stored shape under storage.KeyHistory.
type persisted struct {
	History      []snapshot.Snapshot `json:"history"`
	CurrentIndex int                 `json:"currentIndex"`
}

func New(store *storage.SafeStore) *Manager {
	return &Manager{store: store, current: -1}
}

// Push appends a checkpoint. Everything after the cursor (the redo
// branch) is discarded first, and the oldest entry is evicted once the
// stack exceeds maxHistory. The stack is persisted after every push,
// fire and forget: a failed persist never rolls back the in-memory push.
func (m *Manager) Push(snap snapshot.Snapshot) {
	if m.current < len(m.entries)-1 {
		m.entries = m.entries[:m.current+1]
	}
	m.entries = append(m.entries, snap.Clone())
	m.current++
	if len(m.entries) > maxHistory {
		m.entries = m.entries[1:]
		m.current--
	}
	m.store.Set(storage.KeyHistory, persisted{History: m.entries, CurrentIndex: m.current})
}

// Undo steps the cursor back and returns a copy of the snapshot there,
// or nil when nothing precedes the cursor. Repeated calls past the start
// keep returning nil without moving the cursor.
func (m *Manager) Undo() *snapshot.Snapshot {
	if !m.CanUndo() {
		return nil
	}
	m.current--
	snap := m.entries[m.current].Clone()
	return &snap
}

// Redo advances the cursor and returns a copy of the snapshot there, or
// nil when the cursor is already at the tail.
func (m *Manager) Redo() *snapshot.Snapshot {
	if !m.CanRedo() {
		return nil
	}
	m.current++
	snap := m.entries[m.current].Clone()
	return &snap
}

func (m *Manager) CanUndo() bool {
	return m.current > 0
}

func (m *Manager) CanRedo() bool {
	return m.current < len(m.entries)-1
}

func (m *Manager) Len() int {
	return len(m.entries)
}

// Load rehydrates the stack from storage. A missing or corrupt payload
// leaves the manager empty; an out-of-range cursor snaps to the tail.
func (m *Manager) Load() {
	var p persisted
	if !m.store.Get(storage.KeyHistory, &p) {
		return
	}
	if len(p.History) == 0 {
		return
	}
	if len(p.History) > maxHistory {
		p.History = p.History[len(p.History)-maxHistory:]
	}
	m.entries = p.History
	m.current = p.CurrentIndex
	if m.current < 0 || m.current >= len(m.entries) {
		m.current = len(m.entries) - 1
	}
}

// Clear drops every checkpoint and removes the persisted stack.
func (m *Manager) Clear() {
	m.entries = nil
	m.current = -1
	m.store.Remove(storage.KeyHistory)
}
