// Package extract turns free-form chat text into an ordered, deduplicated
// list of delivery addresses using locale keyword heuristics.
package extract

import (
	"strings"
	"unicode"
)

// Default token sets for the Kyiv-region deployment.
var (
	defaultCityTokens = []string{
		"Київ", "Киев",
		"Ірпінь", "Ирпень",
		"Гостомель", "Буча",
		"Чабани", "Крюківщина", "Крюковщина",
		"Білогородка", "Гнідин", "Святопетрівське",
		"Вишневе", "Солом‘янка",
	}

	defaultStreetTokens = []string{
		"вул", "ул.", "просп", "пр-т", "пров", "бул", "шосе", "траса",
	}

	defaultLocatives = []string{"м.", "р."}
)

const defaultCity = "Київ"

// Config overrides the built-in token sets. Zero-value fields keep defaults.
type Config struct {
	CityTokens   []string
	StreetTokens []string
	Locatives    []string
	DefaultCity  string
}

// Extractor classifies lines of text as address-bearing and normalizes them.
type Extractor struct {
	cityTokens   []string // lowercased
	streetTokens []string // lowercased
	locatives    []string
	citySuffix   string
}

// New builds an Extractor, falling back to the Kyiv defaults for any
// config field left empty.
func New(cfg Config) *Extractor {
	cities := cfg.CityTokens
	if len(cities) == 0 {
		cities = defaultCityTokens
	}
	streets := cfg.StreetTokens
	if len(streets) == 0 {
		streets = defaultStreetTokens
	}
	locatives := cfg.Locatives
	if len(locatives) == 0 {
		locatives = defaultLocatives
	}
	city := cfg.DefaultCity
	if city == "" {
		city = defaultCity
	}

	e := &Extractor{
		cityTokens:   make([]string, len(cities)),
		streetTokens: make([]string, len(streets)),
		locatives:    locatives,
		citySuffix:   ", " + city,
	}
	for i, c := range cities {
		e.cityTokens[i] = strings.ToLower(c)
	}
	for i, s := range streets {
		e.streetTokens[i] = strings.ToLower(s)
	}
	return e
}

// Extract returns the addresses found in text, one per qualifying line,
// deduplicated by exact normalized string with first occurrence winning.
// A text with no qualifying line yields an empty result, never an error.
func (e *Extractor) Extract(text string) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		addr, ok := e.extractLine(line)
		if !ok {
			continue
		}
		if _, dup := seen[addr]; dup {
			continue
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}
	return out
}

// extractLine classifies one trimmed line. A line qualifies if it carries a
// street designator together with a digit (house-number signal), or if it
// mentions a known city. Matching is substring-based, not word-bounded.
//
// A street line is kept whole even when a city follows the house number.
// A city-only line is cut from the first city mention onward, dropping
// markers and commentary before it.
func (e *Extractor) extractLine(line string) (string, bool) {
	// ToLower preserves byte offsets here: the token sets are Cyrillic and
	// ASCII only, which keep their UTF-8 width under case mapping.
	lower := strings.ToLower(line)

	if e.hasStreetToken(lower) && strings.ContainsFunc(line, unicode.IsDigit) {
		return e.normalize(line), true
	}

	if idx := e.firstCityIndex(lower); idx >= 0 {
		return e.normalize(line[idx:]), true
	}

	return "", false
}

// firstCityIndex returns the byte offset of the earliest city-token match
// in the lowercased line, or -1.
func (e *Extractor) firstCityIndex(lower string) int {
	first := -1
	for _, tok := range e.cityTokens {
		if idx := strings.Index(lower, tok); idx >= 0 && (first < 0 || idx < first) {
			first = idx
		}
	}
	return first
}

func (e *Extractor) hasStreetToken(lower string) bool {
	for _, tok := range e.streetTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// normalize strips locative abbreviations, trims comma-and-space edges, and
// appends the default city suffix when no city token survives.
func (e *Extractor) normalize(addr string) string {
	for _, abbr := range e.locatives {
		addr = strings.ReplaceAll(addr, abbr, "")
	}
	addr = strings.TrimSpace(strings.Trim(addr, ", "))

	if e.firstCityIndex(strings.ToLower(addr)) < 0 {
		addr += e.citySuffix
	}
	return addr
}
