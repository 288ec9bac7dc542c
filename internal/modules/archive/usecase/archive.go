package usecase

import (
	"context"

	"mindspace/internal/modules/archive/domain"
	"mindspace/internal/modules/archive/dto"
	archivein "mindspace/internal/modules/archive/port/in"
	archiveout "mindspace/internal/modules/archive/port/out"
	"mindspace/internal/modules/archive/service"
)

type Interactor struct {
	svc     *service.ArchiveService
	watcher archiveout.ChangeWatcher
}

// NewInteractor accepts a nil watcher for backends nobody else can write to.
func NewInteractor(svc *service.ArchiveService, watcher archiveout.ChangeWatcher) archivein.Usecase {
	return &Interactor{svc: svc, watcher: watcher}
}

func (i *Interactor) LoadRoadmap(ctx context.Context) dto.RoadmapOutput {
	r := i.svc.LoadRoadmap(ctx)
	return dto.RoadmapOutput{Learn: r.Learn, Struggle: r.Struggle, NextStep: r.NextStep}
}

func (i *Interactor) LoadNotes(ctx context.Context) []dto.NoteOutput {
	notes := i.svc.LoadNotes(ctx)
	out := make([]dto.NoteOutput, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteOutput(n))
	}
	return out
}

func (i *Interactor) SaveRoadmap(ctx context.Context, input dto.SaveRoadmapInput) error {
	return i.svc.SaveRoadmap(ctx, domain.RoadmapRecord{
		Learn:    input.Learn,
		Struggle: input.Struggle,
		NextStep: input.NextStep,
	})
}

func (i *Interactor) AddNote(ctx context.Context, input dto.AddNoteInput) (dto.NoteOutput, error) {
	entry, err := i.svc.AddNote(ctx, input.Text)
	if err != nil {
		return dto.NoteOutput{}, err
	}
	return toNoteOutput(entry), nil
}

func (i *Interactor) DeleteNote(ctx context.Context, id string) error {
	return i.svc.DeleteNote(ctx, id)
}

func (i *Interactor) Watch(ctx context.Context, fn func()) error {
	if i.watcher == nil {
		<-ctx.Done()
		return nil
	}
	return i.watcher.Watch(ctx, fn)
}

func toNoteOutput(n domain.NoteEntry) dto.NoteOutput {
	return dto.NoteOutput{ID: n.ID, Text: n.Text, Date: n.Date}
}
