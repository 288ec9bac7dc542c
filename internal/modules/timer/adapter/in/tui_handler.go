package in

import (
	"context"

	"mindspace/internal/modules/timer/dto"
	timerin "mindspace/internal/modules/timer/port/in"
)

type TUIHandler struct {
	usecase timerin.Usecase
}

func NewTUIHandler(usecase timerin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) StartPreset(ctx context.Context, minutes int) (dto.StateOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{Minutes: minutes})
}

func (h TUIHandler) State(ctx context.Context) dto.StateOutput {
	return h.usecase.State(ctx)
}

func (h TUIHandler) Presets() []int {
	return h.usecase.Presets()
}

func (h TUIHandler) Watch(fn func(dto.StateOutput)) func() {
	return h.usecase.Watch(fn)
}
