package models

// NoWinner is the winnerId reported for games that are not complete
const NoWinner = -1

// Game represents a scheduled match between two teams of a league
type Game struct {
	GameID     int   `json:"gameId"`
	LeagueID   int   `json:"leagueId"`
	Team1ID    int   `json:"team1Id"`
	Team2ID    int   `json:"team2Id"`
	GameTime   int64 `json:"gameTime"` // epoch seconds
	Complete   bool  `json:"complete"`
	WinnerID   int   `json:"winnerId"`
	ScoreTeam1 int   `json:"scoreTeam1"`
	ScoreTeam2 int   `json:"scoreTeam2"`
}

// GameRequest represents the data needed to schedule a game
type GameRequest struct {
	LeagueID int   `json:"leagueId" validate:"required"`
	Team1ID  int   `json:"team1Id" validate:"required"`
	Team2ID  int   `json:"team2Id" validate:"required,nefield=Team1ID"`
	GameTime int64 `json:"gameTime" validate:"required"`
}
