package armyforge

// GameSystem is the short code Army Forge uses for a rules system
type GameSystem string

// Supported game systems
const (
	GameSystemGrimdarkFuture          GameSystem = "gf"
	GameSystemGrimdarkFutureFirefight GameSystem = "gff"
	GameSystemAgeOfFantasy            GameSystem = "aof"
	GameSystemAgeOfFantasySkirmish    GameSystem = "aofs"
	GameSystemAgeOfFantasyRegiments   GameSystem = "aofr"
)

// Slug returns the URL slug Army Forge uses for the system
func (g GameSystem) Slug() string {
	switch g {
	case GameSystemGrimdarkFuture:
		return "grimdark-future"
	case GameSystemGrimdarkFutureFirefight:
		return "grimdark-future-firefight"
	case GameSystemAgeOfFantasy:
		return "age-of-fantasy"
	case GameSystemAgeOfFantasySkirmish:
		return "age-of-fantasy-skirmish"
	case GameSystemAgeOfFantasyRegiments:
		return "age-of-fantasy-regiments"
	default:
		return ""
	}
}

// CommonRulesID returns the id of the system's common rules document
func (g GameSystem) CommonRulesID() (int, bool) {
	switch g {
	case GameSystemGrimdarkFuture:
		return 2, true
	case GameSystemGrimdarkFutureFirefight:
		return 3, true
	case GameSystemAgeOfFantasy:
		return 4, true
	case GameSystemAgeOfFantasySkirmish:
		return 5, true
	case GameSystemAgeOfFantasyRegiments:
		return 6, true
	default:
		return 0, false
	}
}

// IsValid checks if the game system is one we know how to fetch rules for
func (g GameSystem) IsValid() bool {
	_, ok := g.CommonRulesID()
	return ok
}

// String returns the string representation of the game system
func (g GameSystem) String() string {
	return string(g)
}
