package models

import "strings"

// Weekday is a lower-case English day name as used by the league API
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// Weekdays lists every valid weekday starting on Sunday
var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseWeekday accepts any casing of a day name
func ParseWeekday(s string) (Weekday, bool) {
	w := Weekday(strings.ToLower(strings.TrimSpace(s)))
	for _, d := range Weekdays {
		if d == w {
			return w, true
		}
	}
	return "", false
}

// Availability is a recurring weekly slot in which a league's games can be played
type Availability struct {
	AvailabilityID int     `json:"availabilityId"`
	LeagueID       int     `json:"leagueId"`
	Weekday        Weekday `json:"weekday"`
	Hour           int     `json:"hour"`
	Minute         int     `json:"minute"`
	Duration       int     `json:"duration"` // minutes
}

// AvailabilityRequest represents the data needed to add an availability slot
type AvailabilityRequest struct {
	LeagueID int     `json:"leagueId" validate:"required"`
	Weekday  Weekday `json:"weekday" validate:"required"`
	Hour     int     `json:"hour" validate:"min=0,max=23"`
	Minute   int     `json:"minute" validate:"min=0,max=59"`
	Duration int     `json:"duration" validate:"required,min=1,max=1440"`
}
