package usecase

import (
	"context"

	"mindspace/internal/modules/timer/domain"
	"mindspace/internal/modules/timer/dto"
	timerin "mindspace/internal/modules/timer/port/in"
	"mindspace/internal/modules/timer/service"
)

type Interactor struct {
	ctrl    *service.Controller
	presets []int
}

func NewInteractor(ctrl *service.Controller, presets []int) timerin.Usecase {
	if len(presets) == 0 {
		presets = domain.DefaultPresets
	}
	return &Interactor{ctrl: ctrl, presets: append([]int(nil), presets...)}
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StateOutput, error) {
	snap, err := i.ctrl.Start(ctx, input.Minutes)
	if err != nil {
		return dto.StateOutput{}, err
	}
	return toOutput(snap), nil
}

func (i *Interactor) State(_ context.Context) dto.StateOutput {
	return toOutput(i.ctrl.Snapshot())
}

func (i *Interactor) Presets() []int {
	return append([]int(nil), i.presets...)
}

func (i *Interactor) Watch(fn func(dto.StateOutput)) func() {
	return i.ctrl.Subscribe(func(snap domain.Snapshot) { fn(toOutput(snap)) })
}

func (i *Interactor) Close() error {
	return i.ctrl.Close()
}

func toOutput(snap domain.Snapshot) dto.StateOutput {
	return dto.StateOutput{
		RemainingSeconds: snap.RemainingSeconds,
		HasValue:         snap.HasValue,
		Active:           snap.Active,
		Phase:            string(snap.Phase()),
		Display:          domain.FormatClock(snap.RemainingSeconds),
	}
}
