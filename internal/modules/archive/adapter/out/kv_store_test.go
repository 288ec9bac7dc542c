package out_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	archiveout "mindspace/internal/modules/archive/adapter/out"
	"mindspace/internal/modules/archive/domain"
	archiveport "mindspace/internal/modules/archive/port/out"
)

func exerciseStore(t *testing.T, store archiveport.KVStore) {
	t.Helper()
	ctx := context.Background()
	if _, ok, err := store.Get(ctx, domain.RoadmapKey); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}
	if err := store.Set(ctx, domain.RoadmapKey, []byte(`{"learn":"a"}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, domain.RoadmapKey, []byte(`{"learn":"b"}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, ok, err := store.Get(ctx, domain.RoadmapKey)
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if string(got) != `{"learn":"b"}` {
		t.Fatalf("expected latest value, got %s", got)
	}
	if _, ok, _ := store.Get(ctx, domain.NotesKey); ok {
		t.Fatalf("keys must be independent")
	}
}

func TestMemoryKVStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, archiveout.NewMemoryKVStore())
}

func TestSQLiteKVStore(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "mindspace.db")
	store, err := archiveout.NewSQLiteKVStore(path)
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	exerciseStore(t, store)
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := archiveout.NewSQLiteKVStore(path)
	if err != nil {
		t.Fatalf("reopen sqlite store: %v", err)
	}
	defer func() { _ = reopened.Close() }()
	got, ok, err := reopened.Get(context.Background(), domain.RoadmapKey)
	if err != nil || !ok || string(got) != `{"learn":"b"}` {
		t.Fatalf("value must survive reopen, got %s ok=%v err=%v", got, ok, err)
	}
}

func TestFileKVStore(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "archive")
	store := archiveout.NewFileKVStore(dir)
	exerciseStore(t, store)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read archive dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != domain.RoadmapKey+".json" {
		t.Fatalf("expected only the roadmap file, got %v", entries)
	}
	if err := store.Set(context.Background(), "../escape", []byte("x")); err == nil {
		t.Fatalf("path-like keys must be rejected")
	}
}

func TestFileKVStoreReadsExternalWrite(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	raw := `[{"id":"1","text":"from outside","date":"2026-10-14"}]`
	if err := os.WriteFile(filepath.Join(dir, domain.NotesKey+".json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}
	got, ok, err := archiveout.NewFileKVStore(dir).Get(context.Background(), domain.NotesKey)
	if err != nil || !ok || !strings.Contains(string(got), "from outside") {
		t.Fatalf("unexpected read %s ok=%v err=%v", got, ok, err)
	}
}
