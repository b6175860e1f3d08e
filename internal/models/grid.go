package models

import "time"

// DayCell is one rendered square of the month grid. Cells are derived
// on every render and never persisted.
type DayCell struct {
	Date          Date    `json:"date"`
	IsOtherMonth  bool    `json:"isOtherMonth"`
	IsToday       bool    `json:"isToday"`
	Events        []Event `json:"events"`
	OverflowCount int     `json:"overflowCount"`
}

// MiniCell is the event-free variant used by the compact navigation widget.
type MiniCell struct {
	Day          int  `json:"day"`
	IsOtherMonth bool `json:"isOtherMonth"`
	IsToday      bool `json:"isToday"`
}

// MonthGrid is everything the rendering sink needs for one month view.
type MonthGrid struct {
	Year      int        `json:"year"`
	Month     time.Month `json:"month"`
	Label     string     `json:"label"`
	Weekdays  []string   `json:"weekdays"`
	Cells     []DayCell  `json:"cells"`
	MiniCells []MiniCell `json:"miniCells"`
}
