package domain

type Mode string

const (
	ModeNormal Mode = "normal"
	ModeFocus  Mode = "focus"
)

func ModeOf(focus bool) Mode {
	if focus {
		return ModeFocus
	}
	return ModeNormal
}
