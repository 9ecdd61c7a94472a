package parse

// League identifies a game league. Unknown leagues map to LeagueUnknown.
type League int

const (
	LeagueUnknown League = iota
	LeagueStandard
	LeagueHardcore
	LeagueBreach
	LeagueBreachHardcore
)

var leagueIDs = map[string]League{
	"Standard":        LeagueStandard,
	"Hardcore":        LeagueHardcore,
	"Breach":          LeagueBreach,
	"Hardcore Breach": LeagueBreachHardcore,
}

// LeagueFromName resolves a league name as it appears on feed items.
func LeagueFromName(name string) League {
	return leagueIDs[name]
}

// Name returns the league's display name, or "" when unknown.
func (l League) Name() string {
	for name, id := range leagueIDs {
		if id == l {
			return name
		}
	}
	return ""
}
