package domain

type Item struct {
	ID    string
	Label string
	Sub   string
}

// DailyItems is the fixed self-assessment list shown every day.
var DailyItems = []Item{
	{ID: "learned", Label: "Learned a new concept", Sub: "Theory or practice."},
	{ID: "persisted", Label: "Kept going despite difficulty", Sub: "Refused to give up."},
	{ID: "on-plan", Label: "Stayed true to my plan", Sub: "Disciplined progress."},
	{ID: "rested", Label: "Rested my mind", Sub: "A quality break."},
}

// Checklist holds check marks for the current run only; nothing is saved.
type Checklist struct {
	checked map[string]bool
}

func New() *Checklist {
	return &Checklist{checked: map[string]bool{}}
}

// Toggle flips id and reports whether it was a known item.
func (c *Checklist) Toggle(id string) bool {
	if !known(id) {
		return false
	}
	c.checked[id] = !c.checked[id]
	return true
}

func (c *Checklist) Checked(id string) bool {
	return c.checked[id]
}

func (c *Checklist) Done() int {
	n := 0
	for _, item := range DailyItems {
		if c.checked[item.ID] {
			n++
		}
	}
	return n
}

func known(id string) bool {
	for _, item := range DailyItems {
		if item.ID == id {
			return true
		}
	}
	return false
}
