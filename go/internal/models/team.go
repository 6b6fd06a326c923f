package models

// Team represents a team registered in a league
type Team struct {
	TeamID      int       `json:"teamId"`
	LeagueID    int       `json:"leagueId"`
	Name        string    `json:"name"`
	Tag         string    `json:"tag"`
	Description string    `json:"description"`
	Seed        int       `json:"seed"`
	Wins        int       `json:"wins"`
	Losses      int       `json:"losses"`
	Managers    []Manager `json:"managers"`
}

// Manager is a user holding management permissions on a team
type Manager struct {
	UserID        int    `json:"userId"`
	Email         string `json:"email"`
	Administrator bool   `json:"administrator"`
	Information   bool   `json:"information"`
	Games         bool   `json:"games"`
}

// TeamRequest represents the data needed to register a team
type TeamRequest struct {
	LeagueID    int    `json:"leagueId" validate:"required"`
	ManagerID   int    `json:"managerId" validate:"required"`
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Tag         string `json:"tag" validate:"required,min=2,max=5"`
	Description string `json:"description" validate:"max=500"`
	Seed        int    `json:"seed" validate:"min=0,max=100"`
}
