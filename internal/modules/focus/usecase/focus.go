package usecase

import (
	"mindspace/internal/modules/focus/domain"
	"mindspace/internal/modules/focus/dto"
	focusin "mindspace/internal/modules/focus/port/in"
	focusout "mindspace/internal/modules/focus/port/out"
)

// Interactor flips the display mode only; it holds no timer reference.
type Interactor struct {
	holder focusout.ModeHolder
}

func NewInteractor(holder focusout.ModeHolder) focusin.Usecase {
	return &Interactor{holder: holder}
}

func (i *Interactor) Enter() dto.ModeOutput {
	i.holder.SetFocusMode(true)
	return i.Current()
}

func (i *Interactor) Exit() dto.ModeOutput {
	i.holder.SetFocusMode(false)
	return i.Current()
}

func (i *Interactor) Toggle() dto.ModeOutput {
	i.holder.SetFocusMode(!i.holder.IsFocusMode())
	return i.Current()
}

func (i *Interactor) Current() dto.ModeOutput {
	focus := i.holder.IsFocusMode()
	return dto.ModeOutput{Focus: focus, Mode: string(domain.ModeOf(focus))}
}
