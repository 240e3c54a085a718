package normalize

import (
	"regexp"
	"sort"
)

// slangReplacements maps platform slang and abbreviations to canonical
// sentiment-bearing words. Matching is whole-word; multi-word entries are
// applied before shorter entries sharing a prefix ("no cap" before "cap").
var slangReplacements = map[string]string{
	// Laughter / humor
	"lol":   "funny",
	"lmao":  "funny",
	"rofl":  "funny",
	"lmfao": "funny",
	"hehe":  "funny",
	"haha":  "funny",
	"jk":    "joke",

	// Affirmation / agreement
	"ikr":  "agree",
	"fr":   "truth",
	"ngl":  "honest",
	"tbh":  "honest",
	"imo":  "opinion",
	"imho": "opinion",
	"bet":  "agree",
	"ye":   "yes",

	// Surprise / excitement
	"pog":  "excited",
	"omg":  "surprise",
	"wtf":  "shock",
	"bruh": "surprised",
	"dang": "surprised",
	"damn": "surprised",

	// Negatives / criticism
	"sus":    "suspicious",
	"cap":    "lie",
	"no cap": "truth",
	"rip":    "sad",
	"smh":    "disappointed",

	// Actions / social
	"hmu":           "contact",
	"wyd":           "asking",
	"brb":           "returning",
	"be right back": "returning",
	"gtg":           "leave",
	"afk":           "away",

	// Intensifiers / emphasis
	"af":        "very",
	"frfr":      "truth",
	"lowkey":    "slightly",
	"highkey":   "very",
	"big yikes": "embarrassed",

	// Emotions / feelings
	"sadge":        "sad",
	"pogchamp":     "excited",
	"feelsbadman":  "sad",
	"feelsgoodman": "happy",
	"tfw":          "feeling",

	// Trending
	"yeet":    "throw",
	"vibe":    "feeling",
	"vibes":   "feeling",
	"bussin":  "good",
	"lit":     "excited",
	"flex":    "showoff",
	"stan":    "support",
	"slaps":   "good",
	"drip":    "style",
	"shook":   "surprised",
	"poggers": "amazing",
}

type slangRule struct {
	pattern *regexp.Regexp
	repl    string
}

var slangRules = buildSlangRules()

// buildSlangRules compiles whole-word patterns ordered longest entry first,
// so multi-word slang is never shadowed by a shorter prefix.
func buildSlangRules() []slangRule {
	keys := make([]string, 0, len(slangReplacements))
	for k := range slangReplacements {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	rules := make([]slangRule, 0, len(keys))
	for _, k := range keys {
		rules = append(rules, slangRule{
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`),
			repl:    slangReplacements[k],
		})
	}
	return rules
}

func replaceSlang(s string) string {
	for _, rule := range slangRules {
		s = rule.pattern.ReplaceAllString(s, rule.repl)
	}
	return s
}
