package store

import (
	"context"
	"slices"

	"github.com/saadjs/kcal-tui/internal/model"
)

// MemoryBackend keeps the last saved snapshot in process memory.
type MemoryBackend struct {
	snap  Snapshot
	saved bool
	Saves int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{snap: Snapshot{Goals: model.DefaultGoals}}
}

func (b *MemoryBackend) Load(context.Context) (Snapshot, bool, error) {
	return cloneSnapshot(b.snap), !b.saved, nil
}

func (b *MemoryBackend) Save(_ context.Context, snap Snapshot) error {
	b.snap = cloneSnapshot(snap)
	b.saved = true
	b.Saves++
	return nil
}

func cloneSnapshot(s Snapshot) Snapshot {
	out := Snapshot{Goals: s.Goals, Records: make([]*model.DailyRecord, 0, len(s.Records))}
	for _, r := range s.Records {
		out.Records = append(out.Records, &model.DailyRecord{Date: r.Date, Foods: slices.Clone(r.Foods)})
	}
	return out
}
