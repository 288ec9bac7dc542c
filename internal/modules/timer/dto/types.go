package dto

type StartInput struct {
	Minutes int
}

type StateOutput struct {
	RemainingSeconds int
	HasValue         bool
	Active           bool
	Phase            string
	Display          string
}
