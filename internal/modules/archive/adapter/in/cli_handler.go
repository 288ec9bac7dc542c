package in

import (
	"context"

	"mindspace/internal/modules/archive/dto"
	archivein "mindspace/internal/modules/archive/port/in"
)

type CLIHandler struct {
	usecase archivein.Usecase
}

func NewCLIHandler(usecase archivein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Roadmap(ctx context.Context) dto.RoadmapOutput {
	return h.usecase.LoadRoadmap(ctx)
}

func (h CLIHandler) SaveRoadmap(ctx context.Context, learn, struggle, nextStep string) error {
	return h.usecase.SaveRoadmap(ctx, dto.SaveRoadmapInput{Learn: learn, Struggle: struggle, NextStep: nextStep})
}

func (h CLIHandler) Notes(ctx context.Context) []dto.NoteOutput {
	return h.usecase.LoadNotes(ctx)
}

func (h CLIHandler) AddNote(ctx context.Context, text string) (dto.NoteOutput, error) {
	return h.usecase.AddNote(ctx, dto.AddNoteInput{Text: text})
}

func (h CLIHandler) DeleteNote(ctx context.Context, id string) error {
	return h.usecase.DeleteNote(ctx, id)
}
