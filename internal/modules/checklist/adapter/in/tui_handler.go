package in

import (
	"mindspace/internal/modules/checklist/dto"
	checklistin "mindspace/internal/modules/checklist/port/in"
)

type TUIHandler struct {
	usecase checklistin.Usecase
}

func NewTUIHandler(usecase checklistin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Items() []dto.ItemOutput {
	return h.usecase.Items()
}

func (h TUIHandler) Toggle(id string) []dto.ItemOutput {
	items, _ := h.usecase.Toggle(id)
	return items
}
