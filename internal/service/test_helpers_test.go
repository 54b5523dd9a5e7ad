package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/saadjs/kcal-tui/internal/store"
)

func newTestManager(t *testing.T) *store.Manager {
	t.Helper()
	b, err := store.OpenSQLite(filepath.Join(t.TempDir(), "kcal.db"))
	if err != nil {
		t.Fatalf("open sqlite backend: %v", err)
	}
	m := store.NewManager(b)
	t.Cleanup(func() { _ = m.Close() })
	if _, _, _, err := m.LoadAll(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return m
}
