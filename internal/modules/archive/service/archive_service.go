package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"mindspace/internal/modules/archive/domain"
	archiveout "mindspace/internal/modules/archive/port/out"
	"mindspace/internal/platform/clock"
	apperrors "mindspace/internal/platform/errors"
	"mindspace/internal/platform/id"
)

type ArchiveService struct {
	clock  clock.Clock
	idGen  id.Generator
	store  archiveout.KVStore
	logger *log.Logger
}

func NewArchiveService(clock clock.Clock, idGen id.Generator, store archiveout.KVStore, logger *log.Logger) *ArchiveService {
	return &ArchiveService{clock: clock, idGen: idGen, store: store, logger: logger}
}

// LoadRoadmap falls back to the empty record on any read or decode failure.
func (s *ArchiveService) LoadRoadmap(ctx context.Context) domain.RoadmapRecord {
	raw, ok := s.read(ctx, domain.RoadmapKey)
	if !ok {
		return domain.RoadmapRecord{}
	}
	record, err := domain.DecodeRoadmap(raw)
	if err != nil {
		s.logger.Warn("ignoring stored roadmap", "key", domain.RoadmapKey, "err", err)
		return domain.RoadmapRecord{}
	}
	return record
}

// LoadNotes falls back to an empty list on any read or decode failure.
func (s *ArchiveService) LoadNotes(ctx context.Context) []domain.NoteEntry {
	raw, ok := s.read(ctx, domain.NotesKey)
	if !ok {
		return []domain.NoteEntry{}
	}
	notes, err := domain.DecodeNotes(raw)
	if err != nil {
		s.logger.Warn("ignoring stored notes", "key", domain.NotesKey, "err", err)
		return []domain.NoteEntry{}
	}
	return notes
}

func (s *ArchiveService) SaveRoadmap(ctx context.Context, record domain.RoadmapRecord) error {
	raw, err := domain.EncodeRoadmap(record)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, domain.RoadmapKey, raw); err != nil {
		return fmt.Errorf("save roadmap: %w", err)
	}
	return nil
}

func (s *ArchiveService) AddNote(ctx context.Context, text string) (domain.NoteEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.NoteEntry{}, fmt.Errorf("note text is required: %w", apperrors.ErrInvalidInput)
	}
	entry := domain.NoteEntry{ID: s.idGen.New(), Text: text, Date: clock.Stamp(s.clock)}
	notes := append(s.LoadNotes(ctx), entry)
	if err := s.writeNotes(ctx, notes); err != nil {
		return domain.NoteEntry{}, err
	}
	return entry, nil
}

func (s *ArchiveService) DeleteNote(ctx context.Context, noteID string) error {
	notes := s.LoadNotes(ctx)
	kept := make([]domain.NoteEntry, 0, len(notes))
	for _, n := range notes {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		return fmt.Errorf("note %s: %w", noteID, apperrors.ErrNotFound)
	}
	return s.writeNotes(ctx, kept)
}

func (s *ArchiveService) writeNotes(ctx context.Context, notes []domain.NoteEntry) error {
	raw, err := domain.EncodeNotes(notes)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, domain.NotesKey, raw); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}

func (s *ArchiveService) read(ctx context.Context, key string) ([]byte, bool) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn("archive read failed", "key", key, "err", err)
		return nil, false
	}
	return raw, ok
}
