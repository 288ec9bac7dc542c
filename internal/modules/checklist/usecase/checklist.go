package usecase

import (
	"sync"

	"mindspace/internal/modules/checklist/domain"
	"mindspace/internal/modules/checklist/dto"
	checklistin "mindspace/internal/modules/checklist/port/in"
)

type Interactor struct {
	mu   sync.Mutex
	list *domain.Checklist
}

func NewInteractor() checklistin.Usecase {
	return &Interactor{list: domain.New()}
}

func (i *Interactor) Items() []dto.ItemOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.itemsLocked()
}

func (i *Interactor) Toggle(id string) ([]dto.ItemOutput, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	ok := i.list.Toggle(id)
	return i.itemsLocked(), ok
}

func (i *Interactor) Done() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.list.Done()
}

func (i *Interactor) itemsLocked() []dto.ItemOutput {
	out := make([]dto.ItemOutput, 0, len(domain.DailyItems))
	for _, item := range domain.DailyItems {
		out = append(out, dto.ItemOutput{
			ID:      item.ID,
			Label:   item.Label,
			Sub:     item.Sub,
			Checked: i.list.Checked(item.ID),
		})
	}
	return out
}
