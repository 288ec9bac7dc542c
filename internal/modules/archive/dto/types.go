package dto

type RoadmapOutput struct {
	Learn    string
	Struggle string
	NextStep string
}

type SaveRoadmapInput struct {
	Learn    string
	Struggle string
	NextStep string
}

type NoteOutput struct {
	ID   string
	Text string
	Date string
}

type AddNoteInput struct {
	Text string
}
