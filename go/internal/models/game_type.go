package models

// GameType identifies the sport or esport a league is played in
type GameType string

const (
	GameGenericSport    GameType = "genericsport"
	GameBasketball      GameType = "basketball"
	GameCurling         GameType = "curling"
	GameFootball        GameType = "football"
	GameHockey          GameType = "hockey"
	GameRugby           GameType = "rugby"
	GameSoccer          GameType = "soccer"
	GameVolleyball      GameType = "volleyball"
	GameWaterPolo       GameType = "waterpolo"
	GameGenericEsport   GameType = "genericesport"
	GameCSGO            GameType = "csgo"
	GameLeagueOfLegends GameType = "leagueoflegends"
	GameOverwatch       GameType = "overwatch"
)

// GameTypeConfig holds display information for a game type
type GameTypeConfig struct {
	Game   GameType `json:"game"`
	Name   string   `json:"name"`
	Esport bool     `json:"esport"`
}

// gameTypes is ordered so random selection over it is reproducible for a given seed
var gameTypes = []GameTypeConfig{
	{Game: GameGenericSport, Name: "Generic Sport"},
	{Game: GameBasketball, Name: "Basketball"},
	{Game: GameCurling, Name: "Curling"},
	{Game: GameFootball, Name: "Football"},
	{Game: GameHockey, Name: "Hockey"},
	{Game: GameRugby, Name: "Rugby"},
	{Game: GameSoccer, Name: "Soccer"},
	{Game: GameVolleyball, Name: "Volleyball"},
	{Game: GameWaterPolo, Name: "Water Polo"},
	{Game: GameGenericEsport, Name: "Generic eSport", Esport: true},
	{Game: GameCSGO, Name: "Counter-Strike: Global Offensive", Esport: true},
	{Game: GameLeagueOfLegends, Name: "League of Legends", Esport: true},
	{Game: GameOverwatch, Name: "Overwatch", Esport: true},
}

// ValidGameTypes returns every game identifier the league API accepts
func ValidGameTypes() []GameType {
	games := make([]GameType, 0, len(gameTypes))
	for _, cfg := range gameTypes {
		games = append(games, cfg.Game)
	}
	return games
}

// GetGameTypes returns the registry keyed by identifier
func GetGameTypes() map[GameType]GameTypeConfig {
	all := make(map[GameType]GameTypeConfig, len(gameTypes))
	for _, cfg := range gameTypes {
		all[cfg.Game] = cfg
	}
	return all
}

// ValidateGameType checks if the game identifier is part of the closed set
func ValidateGameType(game GameType) bool {
	_, exists := GetGameTypes()[game]
	return exists
}

// GetEsportGameTypes returns only the esport identifiers
func GetEsportGameTypes() []GameType {
	var esports []GameType
	for _, cfg := range gameTypes {
		if cfg.Esport {
			esports = append(esports, cfg.Game)
		}
	}
	return esports
}
