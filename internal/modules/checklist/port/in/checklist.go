package in

import "mindspace/internal/modules/checklist/dto"

type Usecase interface {
	Items() []dto.ItemOutput
	Toggle(id string) ([]dto.ItemOutput, bool)
	Done() int
}
