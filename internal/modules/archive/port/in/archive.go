package in

import (
	"context"

	"mindspace/internal/modules/archive/dto"
)

// Usecase reads never fail: missing or corrupt data yields defaults.
type Usecase interface {
	LoadRoadmap(ctx context.Context) dto.RoadmapOutput
	LoadNotes(ctx context.Context) []dto.NoteOutput
	SaveRoadmap(ctx context.Context, input dto.SaveRoadmapInput) error
	AddNote(ctx context.Context, input dto.AddNoteInput) (dto.NoteOutput, error)
	DeleteNote(ctx context.Context, id string) error
	Watch(ctx context.Context, fn func()) error
}
