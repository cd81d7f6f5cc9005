package entities

import "github.com/google/uuid"

// PlaceholderAssignee is used when a transcript has no speakers
const PlaceholderAssignee = "Team"

type ActionItem struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	AssignedTo string `json:"assignedTo"`
	Completed  bool   `json:"completed"`
}

// NewActionItem creates a pending action item
func NewActionItem(text, assignedTo string) ActionItem {
	return ActionItem{
		ID:         uuid.NewString(),
		Text:       text,
		AssignedTo: assignedTo,
	}
}

// Toggled returns a copy with the completed flag flipped
func (a ActionItem) Toggled() ActionItem {
	a.Completed = !a.Completed
	return a
}
