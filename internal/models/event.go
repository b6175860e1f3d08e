package models

// Event is a single dated calendar entry. Start and End are nil for
// all-day events; when both are set End is strictly after Start.
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Date        Date       `json:"date"`
	Start       *TimeOfDay `json:"startTime"`
	End         *TimeOfDay `json:"endTime"`
	Description string     `json:"description"`
}

// TimeLabel renders the "09:00 - 10:30" prefix shown in day cells,
// or an empty string for all-day events.
func (e Event) TimeLabel() string {
	if e.Start == nil {
		return ""
	}
	if e.End == nil {
		return e.Start.String()
	}
	return e.Start.String() + " - " + e.End.String()
}
