package in

import (
	"mindspace/internal/modules/focus/dto"
	focusin "mindspace/internal/modules/focus/port/in"
)

type TUIHandler struct {
	usecase focusin.Usecase
}

func NewTUIHandler(usecase focusin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) EnterFocus() dto.ModeOutput { return h.usecase.Enter() }

func (h TUIHandler) ExitFocus() dto.ModeOutput { return h.usecase.Exit() }

func (h TUIHandler) IsFocusMode() bool { return h.usecase.Current().Focus }
