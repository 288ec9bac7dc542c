package dto

type ModeOutput struct {
	Focus bool
	Mode  string
}
