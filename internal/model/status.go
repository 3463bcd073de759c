package model

// Status identifies one of the five fixed board columns
type Status string

const (
	StatusLinks      Status = "links"
	StatusBacklog    Status = "backlog"
	StatusInProgress Status = "inProgress"
	StatusOnHold     Status = "onHold"
	StatusComplete   Status = "complete"
)

// Statuses lists the columns in display order
func Statuses() []Status {
	return []Status{StatusLinks, StatusBacklog, StatusInProgress, StatusOnHold, StatusComplete}
}

// Valid reports whether s is one of the five column statuses
func (s Status) Valid() bool {
	switch s {
	case StatusLinks, StatusBacklog, StatusInProgress, StatusOnHold, StatusComplete:
		return true
	}
	return false
}

// Label returns the display name for a status
func (s Status) Label() string {
	switch s {
	case StatusLinks:
		return "Links"
	case StatusBacklog:
		return "Backlog"
	case StatusInProgress:
		return "In Progress"
	case StatusOnHold:
		return "On Hold"
	case StatusComplete:
		return "Complete"
	default:
		return string(s)
	}
}
