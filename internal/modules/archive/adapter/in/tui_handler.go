package in

import (
	"context"

	"mindspace/internal/modules/archive/dto"
	archivein "mindspace/internal/modules/archive/port/in"
)

type TUIHandler struct {
	usecase archivein.Usecase
}

func NewTUIHandler(usecase archivein.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Roadmap(ctx context.Context) dto.RoadmapOutput {
	return h.usecase.LoadRoadmap(ctx)
}

func (h TUIHandler) Notes(ctx context.Context) []dto.NoteOutput {
	return h.usecase.LoadNotes(ctx)
}

func (h TUIHandler) Watch(ctx context.Context, fn func()) error {
	return h.usecase.Watch(ctx, fn)
}
