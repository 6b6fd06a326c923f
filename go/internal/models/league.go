package models

import "time"

// League represents a league as reported by the league API
type League struct {
	LeagueID    int      `json:"leagueId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Game        GameType `json:"game"`
	PublicView  bool     `json:"publicView"`
	PublicJoin  bool     `json:"publicJoin"`
	SignupStart int64    `json:"signupStart"` // epoch seconds
	SignupEnd   int64    `json:"signupEnd"`
	LeagueStart int64    `json:"leagueStart"`
	LeagueEnd   int64    `json:"leagueEnd"`

	Teams          []Team         `json:"teams"`
	Availabilities []Availability `json:"availabilities"`
	Games          []Game         `json:"games"`
}

// LeagueRequest is the body of both the create and the update league calls.
// LeagueID is only sent on update.
type LeagueRequest struct {
	LeagueID    int      `json:"leagueId,omitempty"`
	Name        string   `json:"name" validate:"required,max=50"`
	Description string   `json:"description" validate:"max=500"`
	Game        GameType `json:"game" validate:"required"`
	PublicView  bool     `json:"publicView"`
	PublicJoin  bool     `json:"publicJoin"`
	SignupStart int64    `json:"signupStart" validate:"required"`
	SignupEnd   int64    `json:"signupEnd" validate:"required"`
	LeagueStart int64    `json:"leagueStart" validate:"required"`
	LeagueEnd   int64    `json:"leagueEnd" validate:"required"`
}

// Schedule is the signup and competition window of a league, in whole seconds
type Schedule struct {
	SignupStart time.Time
	SignupEnd   time.Time
	LeagueStart time.Time
	LeagueEnd   time.Time
}

// NewSchedule truncates every boundary to second precision
func NewSchedule(signupStart, signupEnd, leagueStart, leagueEnd time.Time) Schedule {
	return Schedule{
		SignupStart: signupStart.Truncate(time.Second),
		SignupEnd:   signupEnd.Truncate(time.Second),
		LeagueStart: leagueStart.Truncate(time.Second),
		LeagueEnd:   leagueEnd.Truncate(time.Second),
	}
}

// InSignup reports whether t falls inside the signup window
func (s Schedule) InSignup(t time.Time) bool {
	return !t.Before(s.SignupStart) && t.Before(s.SignupEnd)
}

// InCompetition reports whether t falls inside the competition window
func (s Schedule) InCompetition(t time.Time) bool {
	return !t.Before(s.LeagueStart) && t.Before(s.LeagueEnd)
}
