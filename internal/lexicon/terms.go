package lexicon

// DefaultVersion identifies the built-in term tables. Bump when the tables
// change so cached results keyed on lexicon version can be invalidated.
const DefaultVersion = "2026.1"

// Default returns a fresh copy of the built-in term tables.
func Default() *Set {
	return &Set{
		Version: DefaultVersion,

		Ethical: []string{
			"integrity", "honesty", "justice", "fairness", "compassion",
			"respect", "responsibility", "honor", "virtue", "kindness",
			"generosity", "humility", "truthfulness", "duty", "stewardship",
			"accountability", "care", "dignity",
		},
		Spiritual: []string{
			"sacred", "spirit", "soul", "divine", "prayer", "blessing",
			"meditation", "reverence", "grace", "devotion", "holy",
			"transcendence", "worship", "mystery", "awe", "gratitude",
			"communion", "presence",
		},
		Negative: []string{
			"hate", "destroy", "violence", "curse", "revenge", "exploit",
			"dominate", "greed", "corrupt", "cruel", "harm", "contempt",
			"malice", "punish", "shame", "fear",
		},

		Polarizing: []string{
			"enemy", "enemies", "traitor", "traitors", "evil", "invaders",
			"outsiders", "radical", "extremist", "war", "battle", "fight",
			"against", "oppose", "defeat",
		},
		Biased: []string{
			"primitive", "savage", "backward", "uncivilized", "inferior",
			"superior", "exotic", "barbaric", "undeveloped",
		},
		GenderCoded: []string{
			"bossy", "hysterical", "shrill", "nagging", "emasculate",
			"manly", "unladylike",
		},
		Hierarchy: []string{
			"civilized", "primitive", "savage", "advanced race",
			"master race", "lesser peoples", "backward peoples",
		},
		Harmony: []string{
			"together", "unity", "harmony", "peace", "community",
			"cooperation", "shared", "collective", "reconciliation",
			"understanding", "mutual", "inclusive", "welcome", "gather",
			"belonging", "kinship",
		},
		ClaimCues: []string{
			"scientifically", "research shows", "studies show", "proven",
			"experts agree", "it is known", "history shows", "ancient wisdom",
			"evidence shows",
		},
		Hedges: []string{
			"may", "might", "could", "suggest", "suggests", "appear",
			"appears", "seem", "seems",
		},
		Absolutes: []string{
			"always", "never", "everyone", "nobody", "all", "none",
		},
		InGroup: []string{
			"we", "us", "our", "ours",
		},
		OutGroup: []string{
			"they", "them", "their", "theirs",
		},
		Sensitive: []string{
			"ancient wisdom", "traditional knowledge", "sacred knowledge",
		},
		PermissionCues: []string{
			"permission", "consent", "consultation", "invited", "shared by",
			"entrusted", "with the blessing of", "granted",
		},

		Traditions: []string{
			"ceremony", "ritual", "solstice", "equinox", "harvest",
			"pilgrimage", "initiation", "vigil", "feast", "ancestors",
			"festival", "procession",
		},
		Symbols: []string{
			"cedar", "circle", "totem", "mandala", "spiral", "altar",
			"flame", "drum", "feather", "cairn", "wreath",
		},
		Practices: []string{
			"sage", "smudging", "blessing", "offering", "chant", "libation",
			"fasting", "drumming", "weaving", "anointing", "procession dance",
		},
		Languages: []string{
			"elder", "elders", "kinship", "clan", "lineage", "dialect",
			"proverb", "oral tradition", "mother tongue",
		},

		BeliefPatterns: []string{
			`ancestors?\s+(spirits?|guide|guides|protect|protects|bless|blesses|watch)`,
			`spirits?\s+of\s+the\s+\w+`,
			`sacred\s+(land|water|fire|mountain|grove|river)`,
			`(great|earth)\s+mother`,
			`circle\s+of\s+life`,
		},
		CustomPatterns: []string{
			`(passed|handed)\s+down\s+(through|across|for)\s+(the\s+)?generations`,
			`in\s+the\s+old\s+ways?`,
			`as\s+our\s+(grandmothers|grandfathers|elders|forebears)\s+(taught|did|practiced)`,
			`since\s+time\s+immemorial`,
		},
	}
}
