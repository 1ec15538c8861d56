package memory

// SeedTeamNames returns the PSL club names preloaded into the default
// scoreboard when no DEFAULT_TEAMS override is configured.
func SeedTeamNames() []string {
	return []string{
		"Mamelodi Sundowns",
		"Kaizer Chiefs",
		"Orlando Pirates",
		"SuperSport United",
		"Cape Town City",
		"Stellenbosch",
		"Sekhukhune United",
		"Maritzburg United",
		"Moroka Swallows",
		"Chippa United",
		"Richards Bay",
		"Golden Arrows",
		"AmaZulu",
		"Polokwane City",
		"Black Leopards",
		"Tuks",
	}
}
