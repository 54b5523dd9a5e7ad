// Package store keeps the goals and daily records in memory and persists
// them through a Backend.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/saadjs/kcal-tui/internal/calendar"
	"github.com/saadjs/kcal-tui/internal/model"
)

// Backend kinds accepted by Open.
const (
	KindSQLite = "sqlite"
	KindFile   = "file"
	KindMemory = "memory"
)

var ErrUnknownBackend = errors.New("unknown store backend")

// Snapshot is everything a backend persists.
type Snapshot struct {
	Goals   model.Goals
	Records []*model.DailyRecord
}

// Backend loads and saves whole snapshots. Load reports firstRun when the
// backend holds no saved goals yet; the snapshot then carries DefaultGoals.
type Backend interface {
	Load(ctx context.Context) (Snapshot, bool, error)
	Save(ctx context.Context, snap Snapshot) error
}

// Open returns the backend for kind. path is the database or data file and
// is ignored by the memory backend.
func Open(kind, path string) (Backend, error) {
	switch kind {
	case KindSQLite:
		return OpenSQLite(path)
	case KindFile:
		return NewFileBackend(path), nil
	case KindMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
}

type Manager struct {
	backend  Backend
	goals    model.Goals
	records  []*model.DailyRecord
	firstRun bool
}

func NewManager(b Backend) *Manager {
	return &Manager{backend: b, goals: model.DefaultGoals}
}

// LoadAll replaces the in-memory state with what the backend holds.
func (m *Manager) LoadAll(ctx context.Context) (model.Goals, []*model.DailyRecord, bool, error) {
	snap, firstRun, err := m.backend.Load(ctx)
	if err != nil {
		return m.goals, m.records, m.firstRun, fmt.Errorf("load records: %w", err)
	}
	m.goals = snap.Goals
	m.records = snap.Records
	m.firstRun = firstRun
	return m.goals, m.records, m.firstRun, nil
}

// SaveAll writes goals and every record through the backend.
func (m *Manager) SaveAll(ctx context.Context) error {
	if err := m.backend.Save(ctx, m.Snapshot()); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	m.firstRun = false
	return nil
}

// Snapshot returns a deep copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	return cloneSnapshot(Snapshot{Goals: m.goals, Records: m.records})
}

// Replace swaps in a snapshot, e.g. one read by an import.
func (m *Manager) Replace(snap Snapshot) {
	m.goals = snap.Goals
	m.records = snap.Records
}

// GetOrCreateRecord returns the record for d, appending an empty one when
// none exists. The pointer stays valid until the next LoadAll or Replace.
func (m *Manager) GetOrCreateRecord(d calendar.Date) *model.DailyRecord {
	if r, ok := m.Lookup(d); ok {
		return r
	}
	r := &model.DailyRecord{Date: d}
	m.records = append(m.records, r)
	return r
}

func (m *Manager) Lookup(d calendar.Date) (*model.DailyRecord, bool) {
	for _, r := range m.records {
		if r.Date == d {
			return r, true
		}
	}
	return nil, false
}

// HasFoods reports whether anything is logged on d.
func (m *Manager) HasFoods(d calendar.Date) bool {
	r, ok := m.Lookup(d)
	return ok && len(r.Foods) > 0
}

func (m *Manager) Records() []*model.DailyRecord {
	return m.records
}

func (m *Manager) Goals() model.Goals {
	return m.goals
}

func (m *Manager) SetGoals(g model.Goals) {
	m.goals = g
}

// FirstRun reports whether the last LoadAll found no saved goals.
func (m *Manager) FirstRun() bool {
	return m.firstRun
}

// Close releases the backend when it holds resources.
func (m *Manager) Close() error {
	if c, ok := m.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
