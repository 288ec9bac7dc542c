package in

import (
	"context"

	"mindspace/internal/modules/timer/dto"
	timerin "mindspace/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, minutes int) (dto.StateOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{Minutes: minutes})
}

func (h CLIHandler) Presets() []int {
	return h.usecase.Presets()
}

func (h CLIHandler) Watch(fn func(dto.StateOutput)) func() {
	return h.usecase.Watch(fn)
}

func (h CLIHandler) Close() error {
	return h.usecase.Close()
}
