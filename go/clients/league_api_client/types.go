package league_api_client

// Wire types use pointers so that a missing field can be told apart from a zero value.

type createdLeagueResponse struct {
	LeagueID *int `json:"leagueId" validate:"required"`
}

type createdTeamResponse struct {
	TeamID *int `json:"teamId" validate:"required"`
}

type createdUserResponse struct {
	UserID *int `json:"userId" validate:"required"`
}

type createdAvailabilityResponse struct {
	AvailabilityID *int `json:"availabilityId" validate:"required"`
}

type createdGameResponse struct {
	GameID *int `json:"gameId" validate:"required"`
}

type leagueListResponse struct {
	Leagues []leagueResponse `validate:"dive"`
}

type leagueResponse struct {
	LeagueID    *int    `json:"leagueId" validate:"required"`
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Game        *string `json:"game" validate:"required"`
	PublicView  *bool   `json:"publicView" validate:"required"`
	PublicJoin  *bool   `json:"publicJoin" validate:"required"`
	SignupStart *int64  `json:"signupStart" validate:"required"`
	SignupEnd   *int64  `json:"signupEnd" validate:"required"`
	LeagueStart *int64  `json:"leagueStart" validate:"required"`
	LeagueEnd   *int64  `json:"leagueEnd" validate:"required"`

	Teams          []teamResponse         `json:"teams" validate:"dive"`
	Availabilities []availabilityResponse `json:"availabilities" validate:"dive"`
	Games          []gameResponse         `json:"games" validate:"dive"`
}

type teamResponse struct {
	TeamID      *int              `json:"teamId" validate:"required"`
	LeagueID    int               `json:"leagueId"`
	Name        *string           `json:"name" validate:"required"`
	Tag         *string           `json:"tag" validate:"required"`
	Description string            `json:"description"`
	Seed        int               `json:"seed"`
	Wins        int               `json:"wins"`
	Losses      int               `json:"losses"`
	Managers    []managerResponse `json:"managers" validate:"dive"`
}

type managerResponse struct {
	UserID        *int    `json:"userId" validate:"required"`
	Email         *string `json:"email" validate:"required"`
	Administrator *bool   `json:"administrator" validate:"required"`
	Information   *bool   `json:"information" validate:"required"`
	Games         *bool   `json:"games" validate:"required"`
}

type availabilityResponse struct {
	AvailabilityID *int    `json:"availabilityId" validate:"required"`
	LeagueID       int     `json:"leagueId"`
	Weekday        *string `json:"weekday" validate:"required"`
	Hour           *int    `json:"hour" validate:"required"`
	Minute         *int    `json:"minute" validate:"required"`
	Duration       *int    `json:"duration" validate:"required"`
}

type gameResponse struct {
	GameID     *int   `json:"gameId" validate:"required"`
	LeagueID   int    `json:"leagueId"`
	Team1ID    *int   `json:"team1Id" validate:"required"`
	Team2ID    *int   `json:"team2Id" validate:"required"`
	GameTime   *int64 `json:"gameTime" validate:"required"`
	Complete   bool   `json:"complete"`
	WinnerID   int    `json:"winnerId"`
	ScoreTeam1 int    `json:"scoreTeam1"`
	ScoreTeam2 int    `json:"scoreTeam2"`
}
