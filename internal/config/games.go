package config

// GameConfig is the tuning entry for one instant play-once game. Win
// probability and multiplier range are configuration input, not engine logic.
type GameConfig struct {
	Code      string
	Route     string // HTTP route segment, e.g. "greedy-cat"
	Label     string // human-readable prefix for Winner records
	WinChance float64
	MinMult   float64
	MaxMult   float64
}

// DefaultGames returns the production tuning table for the instant games.
func DefaultGames() []GameConfig {
	return []GameConfig{
		{Code: "greedy_cat", Route: "greedy-cat", Label: "Greedy Cat", WinChance: 0.45, MinMult: 1.2, MaxMult: 3.5},
		{Code: "lion_tiger", Route: "lion-tiger", Label: "Lion vs Tiger", WinChance: 0.48, MinMult: 1.1, MaxMult: 2.8},
		{Code: "fish", Route: "fish", Label: "Fish", WinChance: 0.42, MinMult: 1.3, MaxMult: 4.2},
		{Code: "jackpot", Route: "jackpot", Label: "Jackpot", WinChance: 0.15, MinMult: 3, MaxMult: 15},
	}
}
