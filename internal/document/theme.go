package document

import "strings"

// Theme is the color palette applied to a unit's handouts and decks.
// Keyword doubles as the unit term mixed into image search queries.
type Theme struct {
	Name      string
	Keyword   string
	Primary   string
	Secondary string
	Accent    string
}

// DefaultTheme is used when no rule matches the unit name.
var DefaultTheme = Theme{Name: "navy", Keyword: "media production", Primary: "1A3C6E", Secondary: "D6E3F8", Accent: "3498DB"}

// themeRules map unit name fragments to palettes. First match wins, so
// compound unit names resolve before their generic parts ("Music Video
// Pre-Production" hits the music video rule, not the pre-production one).
var themeRules = []struct {
	match string
	theme Theme
}{
	{"camera", Theme{Name: "orange", Keyword: "camera", Primary: "E65500", Secondary: "FFF3E0", Accent: "FF8C00"}},
	{"premiere", Theme{Name: "purple", Keyword: "video editing", Primary: "9B59B6", Secondary: "F5EEF8", Accent: "E91E63"}},
	{"psa", Theme{Name: "green", Keyword: "psa", Primary: "27AE60", Secondary: "E8F8F0", Accent: "2ECC71"}},
	{"music video", Theme{Name: "pink", Keyword: "music video", Primary: "E91E63", Secondary: "FCE4EC", Accent: "9C27B0"}},
	{"documentary", Theme{Name: "earth", Keyword: "documentary", Primary: "5D4E37", Secondary: "F5F0E6", Accent: "8B7D6B"}},
	{"news", Theme{Name: "red", Keyword: "news", Primary: "C0392B", Secondary: "FDEDEC", Accent: "E74C3C"}},
	{"history", Theme{Name: "brown", Keyword: "film history", Primary: "8B4513", Secondary: "F5F5DC", Accent: "D2691E"}},
	{"pre-production", Theme{Name: "blue", Keyword: "pre-production", Primary: "2E86AB", Secondary: "E8F4F8", Accent: "56B4E9"}},
	{"advanced", Theme{Name: "midnight", Keyword: "filmmaking", Primary: "1A1A2E", Secondary: "E8E8E8", Accent: "00D4FF"}},
	{"exam", Theme{Name: "navy", Keyword: "media production", Primary: "1A3C6E", Secondary: "D6E3F8", Accent: "3498DB"}},
}

// ThemeFor picks the palette for a unit by case-insensitive substring match
// against the rule table, falling back to DefaultTheme.
func ThemeFor(unit string) Theme {
	lower := strings.ToLower(unit)
	for _, rule := range themeRules {
		if strings.Contains(lower, rule.match) {
			return rule.theme
		}
	}
	return DefaultTheme
}
