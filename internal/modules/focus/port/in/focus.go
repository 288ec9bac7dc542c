package in

import "mindspace/internal/modules/focus/dto"

type Usecase interface {
	Enter() dto.ModeOutput
	Exit() dto.ModeOutput
	Toggle() dto.ModeOutput
	Current() dto.ModeOutput
}
