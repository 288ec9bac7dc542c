package in

import (
	"context"

	"mindspace/internal/modules/timer/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StateOutput, error)
	State(ctx context.Context) dto.StateOutput
	Presets() []int
	Watch(fn func(dto.StateOutput)) (stop func())
	Close() error
}
